package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand represents a request to register a new courier
// account. Phone, address and district are optional; a courier without an
// address starts at the origin point until the first location update.
type RegisterCourierCommand struct { //nolint:recvcheck //using for validation
	name        string
	email       string
	password    string
	phone       string
	addressText string
	district    string

	guard guard.ConstructorGuard
}

// NewRegisterCourierCommand creates a command to register a courier.
// Name, email and password are required.
func NewRegisterCourierCommand(name, email, password, phone, addressText, district string) (RegisterCourierCommand, error) {
	cmd := RegisterCourierCommand{
		phone:       phone,
		addressText: addressText,
		district:    district,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// Name returns the courier's name.
func (c RegisterCourierCommand) Name() string {
	return c.name
}

// Email returns the login identity for the new account.
func (c RegisterCourierCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed.
func (c RegisterCourierCommand) Password() string {
	return c.password
}

// Phone returns the optional contact number.
func (c RegisterCourierCommand) Phone() string {
	return c.phone
}

// AddressText returns the optional starting address.
func (c RegisterCourierCommand) AddressText() string {
	return c.addressText
}

// District returns the optional administrative district.
func (c RegisterCourierCommand) District() string {
	return c.district
}

func (c *RegisterCourierCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterCourierCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterCourierCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
