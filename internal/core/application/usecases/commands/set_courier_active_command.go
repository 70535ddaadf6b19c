package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetCourierActiveCommandIsNotConstructed = errors.New(
	"SetCourierActiveCommand must be created via NewSetCourierActiveCommand constructor",
)

// SetCourierActiveCommand represents a courier's request to toggle their own
// availability for dispatch.
type SetCourierActiveCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	active    bool

	guard guard.ConstructorGuard
}

// NewSetCourierActiveCommand creates a command to switch a courier's
// availability.
func NewSetCourierActiveCommand(courierID kernel.UUID, active bool) (SetCourierActiveCommand, error) {
	cmd := SetCourierActiveCommand{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := cmd.setCourierID(courierID); err != nil {
		return SetCourierActiveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCourierActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetCourierActiveCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier toggling availability.
func (c SetCourierActiveCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Active returns the requested availability.
func (c SetCourierActiveCommand) Active() bool {
	return c.active
}

func (c *SetCourierActiveCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}
