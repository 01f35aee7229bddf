package order

import (
	"time"

	"eats/internal/core/domain/model/kernel"
)

// EventKind names one of the three notification channels.
type EventKind string

const (
	// EventNewPendingOrder goes to the owner of the ordered restaurant.
	EventNewPendingOrder EventKind = "NewPendingOrder"

	// EventNewCookedOrder goes to every listening driver.
	EventNewCookedOrder EventKind = "NewCookedOrder"

	// EventOrderUpdated goes to the customer, driver and owner of the order.
	EventOrderUpdated EventKind = "OrderUpdated"
)

// Snapshot is a detached, read-only copy of an order taken when an event is raised.
type Snapshot struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	OwnerID      kernel.UUID
	DriverID     *kernel.UUID
	Items        []Item
	Total        kernel.Money
	Status       Status
	CreatedAt    time.Time
}

// IsParticipant reports whether the account is the customer, driver or
// restaurant owner of the order.
func (s Snapshot) IsParticipant(accountID kernel.UUID) bool {
	if s.CustomerID.IsEqual(accountID) || s.OwnerID.IsEqual(accountID) {
		return true
	}
	return s.DriverID != nil && s.DriverID.IsEqual(accountID)
}

// Event is a lifecycle notification carrying the order as it was when raised.
type Event struct {
	Kind       EventKind
	Order      Snapshot
	OccurredAt time.Time
}
