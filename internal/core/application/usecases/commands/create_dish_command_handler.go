package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
)

type CreateDishCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewCreateDishCommandHandler(uowFactory RestaurantUoWFactory) CreateDishCommandHandler {
	return CreateDishCommandHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound for an unknown restaurant and with
// errs.ErrForbidden when the actor does not own it.
func (h CreateDishCommandHandler) Handle(ctx context.Context, cmd CreateDishCommand) (*restaurant.Dish, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	r, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return nil, err
	}
	if !r.IsOwnedBy(cmd.Owner().ID()) {
		return nil, errs.NewForbiddenError("add dish to restaurant " + r.ID().String())
	}

	dish, err := restaurant.NewDish(cmd.DishID(), r.ID(), cmd.Name(), cmd.Price(), cmd.Options())
	if err != nil {
		return nil, err
	}

	if err = uow.DishRepository().Add(ctx, dish); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return dish, nil
}
