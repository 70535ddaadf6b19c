package courier

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrEmailIsRequired is returned when attempting to create a courier without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordHashIsRequired is returned when attempting to create a courier without a password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier represents a delivery courier. It is an aggregate root managing
// courier identity, credentials, position and availability.
//
// Business rules:
//   - Courier must have a valid UUID, non-empty name, email and password hash
//   - Position is a validated GeoPoint; a courier registered without an
//     address starts at the origin point until the first location update
//   - The active flag controls dispatch eligibility; only active couriers
//     are considered for assignment
//   - wentActiveAt records when the courier last went active, so active
//     time is computed server-side from a single timestamp
//
// Phone, address and district are informational and optional.
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// email is the login identity, unique across couriers
	email string
	// passwordHash is the bcrypt hash of the courier's password
	passwordHash string
	// phone is the contact number shown to shops
	phone string
	// addressText is the last free-form address the courier reported
	addressText string
	// district is the administrative district of the courier's address
	district string
	// location is the courier's current position
	location kernel.GeoPoint
	// active reports whether the courier is accepting orders
	active bool
	// wentActiveAt is when the courier last switched to active (nil while inactive)
	wentActiveAt *time.Time
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates a new Courier with the specified parameters.
// This is the only way to create a fresh Courier instance.
//
// Parameters:
//   - id: Unique identifier for the courier
//   - name: Human-readable name (must be non-empty)
//   - email: Login identity (must be non-empty)
//   - passwordHash: bcrypt hash of the password (must be non-empty)
//   - phone, addressText, district: Optional contact and address details
//   - location: Initial position (callers without a geocodable address pass
//     kernel.OriginGeoPoint())
//
// Returns:
//   - *Courier: A fully initialized courier, inactive until SetActive
//   - error: Validation error if any parameter is invalid (aggregated for
//     multiple issues)
func NewCourier(
	id kernel.UUID,
	name, email, passwordHash string,
	phone, addressText, district string,
	location kernel.GeoPoint,
) (*Courier, error) {
	courier := &Courier{
		phone:       phone,
		addressText: addressText,
		district:    district,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setEmail(email),
		courier.setPasswordHash(passwordHash),
		courier.setLocation(location),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistent storage.
// Unlike NewCourier, it restores the availability state: the active flag and
// the timestamp of the last activation.
//
// The restored courier behaves identically to one created through normal
// domain operations.
func RestoreCourier(
	id kernel.UUID,
	name, email, passwordHash string,
	phone, addressText, district string,
	location kernel.GeoPoint,
	active bool,
	wentActiveAt *time.Time,
) (*Courier, error) {
	courier := &Courier{
		phone:        phone,
		addressText:  addressText,
		district:     district,
		active:       active,
		wentActiveAt: wentActiveAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setEmail(email),
		courier.setPasswordHash(passwordHash),
		courier.setLocation(location),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks if the Courier was properly constructed using a factory
// constructor. The zero value of Courier is invalid.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the unique identifier of the courier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the human-readable name of the courier.
func (c *Courier) Name() string {
	return c.name
}

// Email returns the courier's login identity.
func (c *Courier) Email() string {
	return c.email
}

// PasswordHash returns the bcrypt hash of the courier's password.
func (c *Courier) PasswordHash() string {
	return c.passwordHash
}

// Phone returns the courier's contact number.
func (c *Courier) Phone() string {
	return c.phone
}

// AddressText returns the last free-form address the courier reported.
func (c *Courier) AddressText() string {
	return c.addressText
}

// District returns the administrative district of the courier's address.
func (c *Courier) District() string {
	return c.district
}

// Location returns the courier's current position.
func (c *Courier) Location() kernel.GeoPoint {
	return c.location
}

// IsActive reports whether the courier is accepting orders.
func (c *Courier) IsActive() bool {
	return c.active
}

// WentActiveAt returns when the courier last switched to active.
// Returns nil while the courier is inactive.
func (c *Courier) WentActiveAt() *time.Time {
	return c.wentActiveAt
}

// Status returns the courier's presence as the aggregate knows it:
// StatusAvailable while active, StatusOffline otherwise. The Busy refinement
// lives in the query layer, which can see the courier's orders.
func (c *Courier) Status() Status {
	if c.active {
		return StatusAvailable
	}
	return StatusOffline
}

// SetActive switches the courier's availability.
//
// Going active stamps wentActiveAt with the current UTC time; going inactive
// clears it. Setting the current value again is a no-op, so repeated activation
// requests do not reset the active-time clock.
func (c *Courier) SetActive(active bool) {
	if c.active == active {
		return
	}

	c.active = active
	if active {
		now := time.Now().UTC()
		c.wentActiveAt = &now
	} else {
		c.wentActiveAt = nil
	}
}

// ActiveFor returns how long the courier has been active as of now.
// Returns zero for inactive couriers.
func (c *Courier) ActiveFor(now time.Time) time.Duration {
	if !c.active || c.wentActiveAt == nil {
		return 0
	}

	d := now.Sub(*c.wentActiveAt)
	if d < 0 {
		return 0
	}
	return d
}

// MoveTo updates the courier's position, optionally recording the address the
// position was resolved from.
//
// Parameters:
//   - location: The new position (must be valid)
//   - addressText: The reported address, or empty when raw coordinates were sent
//
// Returns:
//   - error: Validation error if the location is invalid
func (c *Courier) MoveTo(location kernel.GeoPoint, addressText string) error {
	if err := c.setLocation(location); err != nil {
		return err
	}

	if addressText != "" {
		c.addressText = addressText
	}
	return nil
}

// setID sets the courier's unique identifier with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// setName sets the courier's name with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

// setEmail sets the courier's login identity with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

// setPasswordHash sets the courier's password hash with validation.
// This is an internal setter used during courier construction.
func (c *Courier) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}

	c.passwordHash = passwordHash
	return nil
}

// setLocation sets the courier's current position with validation.
// This is an internal setter used during construction and movement operations.
func (c *Courier) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
