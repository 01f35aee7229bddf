// Package commands contains the write use cases of the food-delivery service.
// Every handler validates its command, runs inside one unit of work and, for
// order mutations, publishes the recorded lifecycle events after commit.
package commands

import (
	"context"

	"eats/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to the repositories each
// handler actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderUoW serves commands that change an existing order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW serves order creation, which reads the restaurant and its
	// dishes and writes the order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   r, err := uow.RestaurantRepository().Get(ctx, restaurantID)
	//   dish, err := uow.DishRepository().Get(ctx, dishID)
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		DishRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// AccountUoW serves registration, login and profile edits.
	AccountUoW interface {
		TxManager
		UserRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// RestaurantUoW serves restaurant and menu management and the promotion sweep.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
		DishRepoFactory
	}

	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// PaymentUoW serves payments, which promote a restaurant and record the payment
	// in one transaction.
	PaymentUoW interface {
		TxManager
		RestaurantRepoFactory
		PaymentRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
