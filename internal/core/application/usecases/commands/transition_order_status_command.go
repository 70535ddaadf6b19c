package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand represents an actor's request to move an order
// to a new lifecycle status: a shop cancelling, or a courier picking or
// delivering. Authorization and transition rules live in the Order aggregate.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	actor     kernel.Actor
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand creates a command to change an order's status.
// Validates the order ID, the actor and that the requested status is a known
// value. Whether the transition is allowed is decided by the aggregate.
func NewTransitionOrderStatusCommand(
	orderID kernel.UUID,
	actor kernel.Actor,
	newStatus order.Status,
) (TransitionOrderStatusCommand, error) {
	cmd := TransitionOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the shop or courier requesting the transition.
func (c TransitionOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// NewStatus returns the requested target status.
func (c TransitionOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *TransitionOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *TransitionOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
