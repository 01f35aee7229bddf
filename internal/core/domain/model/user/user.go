package user

import (
	"errors"
	"net/mail"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a registered account. The password is stored only as a hash
// produced by a ports.PasswordHasher.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         Role

	isConstructed bool
}

// NewUser creates an account. The email is normalized to lower case.
//
// Example:
//
//	hash, _ := hasher.Hash("correct horse")
//	u, err := user.NewUser(kernel.NewUUID(), "owner@example.com", hash, user.Owner)
func NewUser(id kernel.UUID, email, passwordHash string, role Role) (*User, error) {
	u := &User{isConstructed: true}
	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	u.role = role
	return u, nil
}

// RestoreUser rebuilds an account read back from storage.
func RestoreUser(id kernel.UUID, email, passwordHash string, role Role) (*User, error) {
	return NewUser(id, email, passwordHash, role)
}

func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

// ChangeEmail replaces the email. Uniqueness is the repository's concern.
func (u *User) ChangeEmail(email string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return u.setEmail(email)
}

// ChangePasswordHash replaces the stored hash after a password change.
func (u *User) ChangePasswordHash(hash string) error {
	if err := u.Validate(); err != nil {
		return err
	}
	return u.setPasswordHash(hash)
}

// Actor returns the identity this account authenticates as.
func (u *User) Actor() Actor {
	return Actor{id: u.id, role: u.role, guard: guard.NewConstructorGuard()}
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}
