package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)

	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// LoginCommand represents an authentication request for a shop or courier
// account. The role selects which account store is consulted.
type LoginCommand struct { //nolint:recvcheck //using for validation
	role     kernel.Role
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a command to authenticate an account.
func NewLoginCommand(role kernel.Role, email, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRole(role),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Role returns the account kind being authenticated.
func (c LoginCommand) Role() kernel.Role {
	return c.role
}

// Email returns the login identity.
func (c LoginCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to verify.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *LoginCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
