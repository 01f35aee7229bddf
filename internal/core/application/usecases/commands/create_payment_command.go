package commands

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreatePaymentCommandIsNotConstructed = errors.New(
	"CreatePaymentCommand must be created via NewCreatePaymentCommand constructor",
)

// CreatePaymentCommand records an owner's payment for promoting a restaurant.
type CreatePaymentCommand struct {
	paymentID     kernel.UUID
	owner         user.Actor
	transactionID string
	restaurantID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreatePaymentCommand(
	paymentID kernel.UUID,
	owner user.Actor,
	transactionID string,
	restaurantID kernel.UUID,
) (CreatePaymentCommand, error) {
	transactionID = strings.TrimSpace(transactionID)
	var txErr error
	if transactionID == "" {
		txErr = errs.NewValueIsRequiredError("transaction id")
	}
	if err := errors.Join(paymentID.Validate(), owner.Validate(), txErr, restaurantID.Validate()); err != nil {
		return CreatePaymentCommand{}, err
	}
	return CreatePaymentCommand{
		paymentID:     paymentID,
		owner:         owner,
		transactionID: transactionID,
		restaurantID:  restaurantID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentCommandIsNotConstructed)
}

func (c CreatePaymentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

func (c CreatePaymentCommand) Owner() user.Actor {
	return c.owner
}

func (c CreatePaymentCommand) TransactionID() string {
	return c.transactionID
}

func (c CreatePaymentCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}
