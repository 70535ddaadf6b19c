package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// DispatchPendingOrderCommandHandler re-attempts courier assignment for
// orders that were created with no courier in range. Invoked periodically by
// the dispatch job.
type DispatchPendingOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
}

// NewDispatchPendingOrderCommandHandler creates a handler for redispatch
// operations.
func NewDispatchPendingOrderCommandHandler(
	uowFactory UoWFactory,
	dispatcher services.OrderDispatcher,
) DispatchPendingOrderCommandHandler {
	return DispatchPendingOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle finds the oldest pending order and dispatches it against the
// currently active couriers.
//
// Returns the assigned courier on success. Returns ErrNoPendingOrders when
// there is nothing to dispatch and services.ErrCourierNotFound when the order
// must keep waiting; both are expected outcomes, not faults.
func (h *DispatchPendingOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchPendingOrderCommand,
) (*courier.Courier, error) {
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
	pending, err := orderRepo.GetOldestPending(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrNoPendingOrders
		}
		return nil, err
	}

	activeCouriers, err := uow.CourierRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	assigned, err := h.dispatcher.Dispatch(pending, activeCouriers)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, pending); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return assigned, nil
}
