package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
		"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
	)

	// ErrLocationSourceIsRequired is returned when neither coordinates nor an
	// address is provided.
	ErrLocationSourceIsRequired = errs.NewValueIsRequiredError("coords or addressText")
)

// UpdateCourierLocationCommand represents a courier's position report: either
// raw coordinates or a free-form address to geocode. Exactly one source is
// carried; coordinates win when the caller sends both.
type UpdateCourierLocationCommand struct { //nolint:recvcheck //using for validation
	courierID   kernel.UUID
	point       *kernel.GeoPoint
	addressText string

	guard guard.ConstructorGuard
}

// NewUpdateCourierLocationCommand creates a position-report command from raw
// coordinates.
func NewUpdateCourierLocationCommand(courierID kernel.UUID, point kernel.GeoPoint) (UpdateCourierLocationCommand, error) {
	cmd := UpdateCourierLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setPoint(point),
	); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	return cmd, nil
}

// NewUpdateCourierLocationCommandFromAddress creates a position-report
// command that resolves the position by geocoding the address.
func NewUpdateCourierLocationCommandFromAddress(
	courierID kernel.UUID,
	addressText string,
) (UpdateCourierLocationCommand, error) {
	cmd := UpdateCourierLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setAddressText(addressText),
	); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

// CourierID returns the identifier of the reporting courier.
func (c UpdateCourierLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Point returns the reported coordinates, or nil when the command carries an
// address instead.
func (c UpdateCourierLocationCommand) Point() *kernel.GeoPoint {
	return c.point
}

// AddressText returns the address to geocode, or empty when the command
// carries coordinates.
func (c UpdateCourierLocationCommand) AddressText() string {
	return c.addressText
}

func (c *UpdateCourierLocationCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateCourierLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = &point
	return nil
}

func (c *UpdateCourierLocationCommand) setAddressText(addressText string) error {
	if addressText == "" {
		return ErrLocationSourceIsRequired
	}

	c.addressText = addressText
	return nil
}
