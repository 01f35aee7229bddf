package commands

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// EditProfileCommandHandler updates the caller's own account. A new password
// is hashed before it is stored.
type EditProfileCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
}

func NewEditProfileCommandHandler(uowFactory AccountUoWFactory, hasher ports.PasswordHasher) EditProfileCommandHandler {
	return EditProfileCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle fails with errs.ErrConflict when the new email belongs to another
// account.
func (h EditProfileCommandHandler) Handle(ctx context.Context, cmd EditProfileCommand) (*user.User, error) {
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

	userRepo := uow.UserRepository()
	account, err := userRepo.Get(ctx, cmd.Actor().ID())
	if err != nil {
		return nil, err
	}

	if email, ok := cmd.Email(); ok && email != account.Email() {
		holder, lookupErr := userRepo.GetByEmail(ctx, email)
		switch {
		case lookupErr == nil && !holder.ID().IsEqual(account.ID()):
			return nil, errs.NewConflictError("email", email)
		case lookupErr != nil && !errors.Is(lookupErr, errs.ErrObjectNotFound):
			return nil, lookupErr
		}
		if err = account.ChangeEmail(email); err != nil {
			return nil, err
		}
	}

	if password, ok := cmd.Password(); ok {
		hash, hashErr := h.hasher.Hash(password)
		if hashErr != nil {
			return nil, hashErr
		}
		if err = account.ChangePasswordHash(hash); err != nil {
			return nil, err
		}
	}

	if err = userRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return account, nil
}
