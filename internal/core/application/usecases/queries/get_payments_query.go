package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrGetPaymentsQueryIsNotConstructed = errors.New(
	"GetPaymentsQuery must be created via NewGetPaymentsQuery constructor",
)

// GetPaymentsQuery lists the promotion payments made by an owner.
type GetPaymentsQuery struct {
	owner user.Actor
	guard guard.ConstructorGuard
}

func NewGetPaymentsQuery(owner user.Actor) (GetPaymentsQuery, error) {
	if err := owner.Validate(); err != nil {
		return GetPaymentsQuery{}, err
	}
	return GetPaymentsQuery{owner: owner, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPaymentsQueryIsNotConstructed)
}

func (q GetPaymentsQuery) Owner() user.Actor {
	return q.owner
}

// GetPaymentsQueryResponse is one recorded payment.
type GetPaymentsQueryResponse struct {
	ID            kernel.UUID
	TransactionID string
	RestaurantID  kernel.UUID
	CreatedAt     time.Time
}
