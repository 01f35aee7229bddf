package commands

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrEditProfileCommandIsNotConstructed = errors.New(
	"EditProfileCommand must be created via NewEditProfileCommand constructor",
)

// EditProfileCommand changes the caller's email, password or both. A nil
// field is left as it is.
type EditProfileCommand struct { //nolint:recvcheck //using for validation
	actor    user.Actor
	email    *string
	password *string

	guard guard.ConstructorGuard
}

func NewEditProfileCommand(actor user.Actor, email, password *string) (EditProfileCommand, error) {
	if err := actor.Validate(); err != nil {
		return EditProfileCommand{}, err
	}
	if email == nil && password == nil {
		return EditProfileCommand{}, errs.NewValueIsRequiredError("email or password")
	}

	cmd := EditProfileCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}
	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return EditProfileCommand{}, err
	}

	return cmd, nil
}

func (c EditProfileCommand) Validate() error {
	return c.guard.Validate(ErrEditProfileCommandIsNotConstructed)
}

func (c EditProfileCommand) Actor() user.Actor {
	return c.actor
}

// Email returns the normalized new email, if any.
func (c EditProfileCommand) Email() (string, bool) {
	if c.email == nil {
		return "", false
	}
	return *c.email, true
}

func (c EditProfileCommand) Password() (string, bool) {
	if c.password == nil {
		return "", false
	}
	return *c.password, true
}

func (c *EditProfileCommand) setEmail(email *string) error {
	if email == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*email))
	if normalized == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = &normalized
	return nil
}

func (c *EditProfileCommand) setPassword(password *string) error {
	if password == nil {
		return nil
	}
	if n := len(*password); n < passwordMinLen || n > passwordMaxLen {
		return errs.NewValueIsOutOfRangeError("password length", n, passwordMinLen, passwordMaxLen)
	}
	p := *password
	c.password = &p
	return nil
}
