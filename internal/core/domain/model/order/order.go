package order

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of one customer purchase from one restaurant.
//
// Invariants:
//   - customer, restaurant and restaurant owner ids are valid
//   - at least one item
//   - total is fixed at creation and never recomputed
//   - a driver, once assigned, is never replaced
//
// The restaurant owner id is copied in at creation so visibility checks and
// the OrderUpdated filter need no restaurant lookup.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	ownerID      kernel.UUID

	// driverID is nil until a driver takes the order
	driverID *kernel.UUID

	items     []Item
	total     kernel.Money
	status    Status
	createdAt time.Time

	// events are raised by mutations and drained by PullEvents
	events []Event

	isConstructed bool
}

// NewOrder creates a Pending order and records a NewPendingOrder event.
//
// Parameters:
//   - id: identifier of the new order
//   - customerID: the ordering account
//   - restaurantID, ownerID: the restaurant and the account that owns it
//   - items: at least one item
//   - total: the sum of the item prices, computed by the caller
//   - now: creation time
//
// Example:
//
//	item, _ := order.NewItem(dish.ID(), []order.ItemOption{{Name: "Extra cheese"}})
//	total := pricing.ComputeItemPrice(dish, item.Options())
//	o, err := order.NewOrder(kernel.NewUUID(), actor.ID(), r.ID(), r.OwnerID(),
//	    []order.Item{item}, total, time.Now())
func NewOrder(
	id, customerID, restaurantID, ownerID kernel.UUID,
	items []Item,
	total kernel.Money,
	now time.Time,
) (*Order, error) {
	o, err := build(id, customerID, restaurantID, ownerID, items, total, now)
	if err != nil {
		return nil, err
	}
	o.status = Pending
	o.raise(EventNewPendingOrder, now)
	return o, nil
}

// RestoreOrder rebuilds an order read back from storage. No events are raised.
func RestoreOrder(
	id, customerID, restaurantID, ownerID kernel.UUID,
	driverID *kernel.UUID,
	items []Item,
	total kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o, err := build(id, customerID, restaurantID, ownerID, items, total, createdAt)
	if err != nil {
		return nil, err
	}
	if err = errors.Join(status.Validate(), o.setDriverID(driverID)); err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

func build(
	id, customerID, restaurantID, ownerID kernel.UUID,
	items []Item,
	total kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{isConstructed: true, createdAt: createdAt.UTC()}
	if err := errors.Join(
		o.setID(id),
		o.setParty("customer", &o.customerID, customerID),
		o.setParty("restaurant", &o.restaurantID, restaurantID),
		o.setParty("restaurant owner", &o.ownerID, ownerID),
		o.setItems(items),
		o.setTotal(total),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// OwnerID returns the owner of the ordered restaurant.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// DriverID returns nil while no driver has taken the order.
func (o *Order) DriverID() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

func (o *Order) HasDriver() bool {
	return o.driverID != nil
}

// Items returns a copy of the order items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus writes a new status on behalf of actor. It records
// NewCookedOrder when an owner marks the order Cooked, and OrderUpdated for
// every change. The caller is responsible for checking that actor may write
// the status.
func (o *Order) ChangeStatus(actor user.Actor, status Status, now time.Time) error {
	if err := errors.Join(actor.Validate(), status.Validate()); err != nil {
		return err
	}
	o.status = status
	if actor.Role() == user.Owner && status == Cooked {
		o.raise(EventNewCookedOrder, now)
	}
	o.raise(EventOrderUpdated, now)
	return nil
}

// AssignDriver records the driver that took the order. It fails with a
// conflict when a driver is already assigned, whoever it is.
func (o *Order) AssignDriver(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver", err)
	}
	if o.driverID != nil {
		return errs.NewConflictError("order already has a driver", o.id)
	}
	o.driverID = &driverID
	o.raise(EventOrderUpdated, now)
	return nil
}

// Snapshot copies the current state of the order.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:           o.id,
		CustomerID:   o.customerID,
		RestaurantID: o.restaurantID,
		OwnerID:      o.ownerID,
		DriverID:     o.DriverID(),
		Items:        o.Items(),
		Total:        o.total,
		Status:       o.status,
		CreatedAt:    o.createdAt,
	}
}

// PullEvents returns the recorded events and clears them.
func (o *Order) PullEvents() []Event {
	events := o.events
	o.events = nil
	return events
}

func (o *Order) raise(kind EventKind, now time.Time) {
	o.events = append(o.events, Event{Kind: kind, Order: o.Snapshot(), OccurredAt: now.UTC()})
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParty(name string, dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	*dst = id
	return nil
}

func (o *Order) setDriverID(driverID *kernel.UUID) error {
	if driverID == nil {
		return nil
	}
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("driver", err)
	}
	id := *driverID
	o.driverID = &id
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, it := range items {
		if err := it.dishID.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("dish", err)
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("total", err)
	}
	o.total = total
	return nil
}
