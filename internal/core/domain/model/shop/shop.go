package shop

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for shop operations.
var (
	// ErrNameIsRequired is returned when attempting to create a shop without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a shop without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordHashIsRequired is returned when attempting to create a shop without a password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrAddressTextIsRequired is returned when attempting to create a shop without an address.
	ErrAddressTextIsRequired = errs.NewValueIsRequiredError("addressText")
	// ErrShopIsNotConstructed is returned when using an improperly initialized Shop.
	ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop constructor")
)

// Shop represents a store that places delivery orders. It is an aggregate
// root managing shop identity, credentials and the fixed pickup position.
//
// Business rules:
//   - Shop must have a valid UUID, non-empty name, email, password hash
//     and address
//   - The location is geocoded from the address at registration and is
//     immutable afterwards; it becomes the pickup point of every order the
//     shop creates
//
// District is informational and optional.
type Shop struct {
	// id uniquely identifies the shop
	id kernel.UUID
	// name is the store name shown to couriers
	name string
	// email is the login identity, unique across shops
	email string
	// passwordHash is the bcrypt hash of the shop's password
	passwordHash string
	// addressText is the free-form address the location was geocoded from
	addressText string
	// district is the administrative district of the shop
	district string
	// location is the geocoded pickup position, immutable after construction
	location kernel.GeoPoint
	// guard ensures the shop was properly constructed
	guard guard.ConstructorGuard
}

// NewShop creates a new Shop with the specified parameters.
// This is the only way to create a valid Shop instance; restoration from
// storage goes through the same constructor since shops carry no mutable
// lifecycle state.
//
// Parameters:
//   - id: Unique identifier for the shop
//   - name: Store name (must be non-empty)
//   - email: Login identity (must be non-empty)
//   - passwordHash: bcrypt hash of the password (must be non-empty)
//   - addressText: Address the location was geocoded from (must be non-empty)
//   - district: Optional administrative district
//   - location: Geocoded pickup position (must be valid)
//
// Returns:
//   - *Shop: A fully initialized shop
//   - error: Validation error if any parameter is invalid (aggregated for
//     multiple issues)
func NewShop(
	id kernel.UUID,
	name, email, passwordHash, addressText, district string,
	location kernel.GeoPoint,
) (*Shop, error) {
	shop := &Shop{
		district: district,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shop.setID(id),
		shop.setName(name),
		shop.setEmail(email),
		shop.setPasswordHash(passwordHash),
		shop.setAddressText(addressText),
		shop.setLocation(location),
	); err != nil {
		return nil, err
	}

	return shop, nil
}

// IsEqual compares two shops by their unique identifiers.
func (s *Shop) IsEqual(other *Shop) bool {
	if other == nil {
		return false
	}
	return s.id.IsEqual(other.id)
}

// Validate checks if the Shop was properly constructed using NewShop.
// The zero value of Shop is invalid.
func (s *Shop) Validate() error {
	if s == nil {
		return ErrShopIsNotConstructed
	}
	return s.guard.Validate(ErrShopIsNotConstructed)
}

// ID returns the unique identifier of the shop.
func (s *Shop) ID() kernel.UUID {
	return s.id
}

// Name returns the store name.
func (s *Shop) Name() string {
	return s.name
}

// Email returns the shop's login identity.
func (s *Shop) Email() string {
	return s.email
}

// PasswordHash returns the bcrypt hash of the shop's password.
func (s *Shop) PasswordHash() string {
	return s.passwordHash
}

// AddressText returns the address the shop's location was geocoded from.
func (s *Shop) AddressText() string {
	return s.addressText
}

// District returns the administrative district of the shop.
func (s *Shop) District() string {
	return s.district
}

// Location returns the shop's pickup position.
func (s *Shop) Location() kernel.GeoPoint {
	return s.location
}

// setID sets the shop's unique identifier with validation.
// This is an internal setter used during shop construction.
func (s *Shop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	s.id = id
	return nil
}

// setName sets the store name with validation.
// This is an internal setter used during shop construction.
func (s *Shop) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}

// setEmail sets the shop's login identity with validation.
// This is an internal setter used during shop construction.
func (s *Shop) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	s.email = email
	return nil
}

// setPasswordHash sets the shop's password hash with validation.
// This is an internal setter used during shop construction.
func (s *Shop) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}

	s.passwordHash = passwordHash
	return nil
}

// setAddressText sets the shop's address with validation.
// This is an internal setter used during shop construction.
func (s *Shop) setAddressText(addressText string) error {
	if addressText == "" {
		return ErrAddressTextIsRequired
	}

	s.addressText = addressText
	return nil
}

// setLocation sets the shop's pickup position with validation.
// This is an internal setter used during shop construction.
func (s *Shop) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	s.location = location
	return nil
}
