package ports

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurants.
type RestaurantRepository interface {
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists the promotion state of an existing restaurant.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetAllPromotionExpired returns promoted restaurants whose promotion ended
	// before now.
	GetAllPromotionExpired(ctx context.Context, now time.Time) ([]*restaurant.Restaurant, error)
}

// DishRepository defines the persistence contract for dishes.
type DishRepository interface {
	Add(ctx context.Context, dish *restaurant.Dish) error

	// Get returns errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Dish, error)
}
