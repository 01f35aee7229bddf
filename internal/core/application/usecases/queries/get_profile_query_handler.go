package queries

import (
	"context"

	"eats/internal/core/domain/model/user"
)

type GetProfileQueryHandler struct {
	users UserReader
}

func NewGetProfileQueryHandler(users UserReader) GetProfileQueryHandler {
	return GetProfileQueryHandler{users: users}
}

// Handle fails with errs.ErrObjectNotFound when the token outlived its account.
func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.users.Get(ctx, query.Actor().ID())
}
