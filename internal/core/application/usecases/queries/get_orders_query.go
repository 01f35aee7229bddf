package queries

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the orders actor is party to, optionally narrowed to
// one status.
type GetOrdersQuery struct {
	actor  user.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery treats an empty status as "any status".
func NewGetOrdersQuery(actor user.Actor, status string) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	q := GetOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}
	if strings.TrimSpace(status) != "" {
		s, err := order.ParseStatus(status)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = &s
	}
	return q, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Actor() user.Actor {
	return q.actor
}

// Status returns nil when no status filter was given.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}
