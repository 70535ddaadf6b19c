package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// TransitionOrderStatusCommandHandler applies actor-requested lifecycle
// transitions to orders. The transition either fully applies, with its
// timestamp, or the order is left untouched.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderStatusCommandHandler creates a handler for order status
// transitions. Requires an OrderUoWFactory for transactional persistence.
func NewTransitionOrderStatusCommandHandler(uowFactory OrderUoWFactory) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Loads the order, delegates authorization and transition rules to the
// aggregate and persists the result. Returns the updated order.
func (h *TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.TransitionTo(cmd.Actor(), cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
