package queries

import (
	"errors"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery reads the caller's own account.
type GetProfileQuery struct {
	actor user.Actor
	guard guard.ConstructorGuard
}

func NewGetProfileQuery(actor user.Actor) (GetProfileQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetProfileQuery{}, err
	}
	return GetProfileQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

func (q GetProfileQuery) Actor() user.Actor {
	return q.actor
}
