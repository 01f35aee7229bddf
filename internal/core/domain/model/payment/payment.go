// Package payment records promotion payments made by restaurant owners.
package payment

import (
	"errors"
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment is an owner's payment for promoting one of their restaurants.
// TransactionID is the reference issued by the payment provider.
type Payment struct {
	id            kernel.UUID
	transactionID string
	ownerID       kernel.UUID
	restaurantID  kernel.UUID
	createdAt     time.Time

	isConstructed bool
}

func NewPayment(id kernel.UUID, transactionID string, ownerID, restaurantID kernel.UUID, now time.Time) (*Payment, error) {
	transactionID = strings.TrimSpace(transactionID)
	if err := errors.Join(
		id.Validate(),
		requireTransactionID(transactionID),
		requireID("owner", ownerID),
		requireID("restaurant", restaurantID),
	); err != nil {
		return nil, err
	}
	return &Payment{
		id:            id,
		transactionID: transactionID,
		ownerID:       ownerID,
		restaurantID:  restaurantID,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

func RestorePayment(id kernel.UUID, transactionID string, ownerID, restaurantID kernel.UUID, createdAt time.Time) (*Payment, error) {
	return NewPayment(id, transactionID, ownerID, restaurantID, createdAt)
}

func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) ID() kernel.UUID {
	return p.id
}

func (p *Payment) TransactionID() string {
	return p.transactionID
}

func (p *Payment) OwnerID() kernel.UUID {
	return p.ownerID
}

func (p *Payment) RestaurantID() kernel.UUID {
	return p.restaurantID
}

func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func requireID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func requireTransactionID(transactionID string) error {
	if transactionID == "" {
		return errs.NewValueIsRequiredError("transaction id")
	}
	return nil
}
