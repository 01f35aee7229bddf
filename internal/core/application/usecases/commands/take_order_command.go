package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand asks to make driver the driver of an order.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	driver  user.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewTakeOrderCommand(driver user.Actor, orderID kernel.UUID) (TakeOrderCommand, error) {
	if err := errors.Join(driver.Validate(), orderID.Validate()); err != nil {
		return TakeOrderCommand{}, err
	}
	return TakeOrderCommand{
		driver:  driver,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

func (c TakeOrderCommand) Driver() user.Actor {
	return c.driver
}

func (c TakeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
