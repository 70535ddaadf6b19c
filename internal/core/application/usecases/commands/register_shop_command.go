package commands

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrRegisterShopCommandIsNotConstructed = errors.New(
		"RegisterShopCommand must be created via NewRegisterShopCommand constructor",
	)
	// ErrPasswordIsRequired is returned when a registration or login command
	// carries an empty password.
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
)

// RegisterShopCommand represents a request to register a new shop account.
// The address is mandatory: it is geocoded into the shop's fixed pickup
// point at handling time.
type RegisterShopCommand struct { //nolint:recvcheck //using for validation
	name        string
	email       string
	password    string
	addressText string
	district    string

	guard guard.ConstructorGuard
}

// NewRegisterShopCommand creates a command to register a shop.
// Name, email, password and address are required; district is optional.
func NewRegisterShopCommand(name, email, password, addressText, district string) (RegisterShopCommand, error) {
	cmd := RegisterShopCommand{
		district: district,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setAddressText(addressText),
	); err != nil {
		return RegisterShopCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterShopCommand) Validate() error {
	return c.guard.Validate(ErrRegisterShopCommandIsNotConstructed)
}

// Name returns the store name.
func (c RegisterShopCommand) Name() string {
	return c.name
}

// Email returns the login identity for the new account.
func (c RegisterShopCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed.
func (c RegisterShopCommand) Password() string {
	return c.password
}

// AddressText returns the address to geocode into the pickup point.
func (c RegisterShopCommand) AddressText() string {
	return c.addressText
}

// District returns the optional administrative district.
func (c RegisterShopCommand) District() string {
	return c.district
}

func (c *RegisterShopCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterShopCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterShopCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *RegisterShopCommand) setAddressText(addressText string) error {
	if addressText == "" {
		return errs.NewValueIsRequiredError("addressText")
	}

	c.addressText = addressText
	return nil
}
