package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand registers a restaurant owned by the acting owner.
// Name and address are validated by the Restaurant aggregate.
type CreateRestaurantCommand struct {
	restaurantID kernel.UUID
	owner        user.Actor
	name         string
	address      string

	guard guard.ConstructorGuard
}

func NewCreateRestaurantCommand(restaurantID kernel.UUID, owner user.Actor, name, address string) (CreateRestaurantCommand, error) {
	if err := errors.Join(restaurantID.Validate(), owner.Validate()); err != nil {
		return CreateRestaurantCommand{}, err
	}
	return CreateRestaurantCommand{
		restaurantID: restaurantID,
		owner:        owner,
		name:         name,
		address:      address,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateRestaurantCommand) Owner() user.Actor {
	return c.owner
}

func (c CreateRestaurantCommand) Name() string {
	return c.name
}

func (c CreateRestaurantCommand) Address() string {
	return c.address
}
