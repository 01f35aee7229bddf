package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrCreateDishCommandIsNotConstructed = errors.New(
	"CreateDishCommand must be created via NewCreateDishCommand constructor",
)

// CreateDishCommand adds a dish to a restaurant's menu. The dish itself is
// validated by restaurant.NewDish.
type CreateDishCommand struct {
	dishID       kernel.UUID
	owner        user.Actor
	restaurantID kernel.UUID
	name         string
	price        kernel.Money
	options      []restaurant.DishOption

	guard guard.ConstructorGuard
}

func NewCreateDishCommand(
	dishID kernel.UUID,
	owner user.Actor,
	restaurantID kernel.UUID,
	name string,
	price kernel.Money,
	options []restaurant.DishOption,
) (CreateDishCommand, error) {
	if err := errors.Join(dishID.Validate(), owner.Validate(), restaurantID.Validate(), price.Validate()); err != nil {
		return CreateDishCommand{}, err
	}
	return CreateDishCommand{
		dishID:       dishID,
		owner:        owner,
		restaurantID: restaurantID,
		name:         name,
		price:        price,
		options:      options,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateDishCommand) Validate() error {
	return c.guard.Validate(ErrCreateDishCommandIsNotConstructed)
}

func (c CreateDishCommand) DishID() kernel.UUID {
	return c.dishID
}

func (c CreateDishCommand) Owner() user.Actor {
	return c.owner
}

func (c CreateDishCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateDishCommand) Name() string {
	return c.name
}

func (c CreateDishCommand) Price() kernel.Money {
	return c.price
}

func (c CreateDishCommand) Options() []restaurant.DishOption {
	return c.options
}
