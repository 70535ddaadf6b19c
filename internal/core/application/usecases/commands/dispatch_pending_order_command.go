package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var (
	ErrDispatchPendingOrderCommandIsNotConstructed = errors.New(
		"DispatchPendingOrderCommand must be created via NewDispatchPendingOrderCommand constructor",
	)

	// ErrNoPendingOrders is returned when every order already has a courier
	// or a terminal status. A normal outcome for the redispatch job.
	ErrNoPendingOrders = errors.New("no pending orders")
)

// DispatchPendingOrderCommand represents a request to re-attempt courier
// assignment for the oldest pending order. Carries no parameters; the target
// order is discovered at handling time.
type DispatchPendingOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchPendingOrderCommand creates a redispatch command.
func NewDispatchPendingOrderCommand() DispatchPendingOrderCommand {
	return DispatchPendingOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c DispatchPendingOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchPendingOrderCommandIsNotConstructed)
}
