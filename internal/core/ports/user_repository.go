package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/payment"
	"eats/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for accounts.
type UserRepository interface {
	// Add returns errs.ErrConflict when the email is already registered.
	Add(ctx context.Context, account *user.User) error

	// Update stores email and password hash changes. It returns
	// errs.ErrConflict when the new email belongs to another account.
	Update(ctx context.Context, account *user.User) error

	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail matches the normalized (lower-case) email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// PaymentRepository defines the persistence contract for promotion payments.
type PaymentRepository interface {
	// Add returns errs.ErrConflict when the transaction id was already recorded.
	Add(ctx context.Context, p *payment.Payment) error
}
