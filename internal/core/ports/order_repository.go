// Package ports defines the contracts between the food-delivery core and its
// adapters: repositories, the unit of work, event publishing and credentials.
package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderFilter narrows an order scan. Nil fields do not filter.
// CustomerID, DriverID and OwnerID are combined with AND.
type OrderFilter struct {
	CustomerID *kernel.UUID
	DriverID   *kernel.UUID
	OwnerID    *kernel.UUID
	Status     *order.Status
}

// OrderRepository defines the persistence contract for order aggregates and
// their items.
type OrderRepository interface {
	// Add persists a new order together with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	// Returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Find returns the orders matching the filter, newest first.
	Find(ctx context.Context, filter OrderFilter) ([]*order.Order, error)

	// AssignDriverIfUnset sets the driver in a single conditional write that only
	// applies while the order has no driver. It reports whether the write applied;
	// false means another driver got there first or the order does not exist.
	AssignDriverIfUnset(ctx context.Context, orderID, driverID kernel.UUID) (bool, error)
}
