package commands

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

const (
	passwordMinLen = 8
	// bcrypt ignores input past 72 bytes
	passwordMaxLen = 72
)

// RegisterAccountCommand creates a Client, Owner or Delivery account.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	email     string
	password  string
	role      user.Role

	guard guard.ConstructorGuard
}

func NewRegisterAccountCommand(accountID kernel.UUID, email, password string, role user.Role) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	return cmd, nil
}

func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

func (c RegisterAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Email returns the normalized (trimmed, lower-case) email.
func (c RegisterAccountCommand) Email() string {
	return c.email
}

func (c RegisterAccountCommand) Password() string {
	return c.password
}

func (c RegisterAccountCommand) Role() user.Role {
	return c.role
}

func (c *RegisterAccountCommand) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.accountID = id
	return nil
}

func (c *RegisterAccountCommand) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if n := len(password); n < passwordMinLen || n > passwordMaxLen {
		return errs.NewValueIsOutOfRangeError("password length", n, passwordMinLen, passwordMaxLen)
	}
	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
