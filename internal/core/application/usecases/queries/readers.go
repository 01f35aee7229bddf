// Package queries contains the read use cases of the food-delivery service.
// Order reads go through OrderReader so visibility rules apply to domain
// objects; flat listings read straight from the database.
package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
)

// OrderReader is the read side of ports.OrderRepository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
	Find(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error)
}

// UserReader is the read side of ports.UserRepository.
type UserReader interface {
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
}
