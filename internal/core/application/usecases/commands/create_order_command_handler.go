package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// CreateOrderResult is the outcome of order creation: the persisted order and
// the courier assigned to it, or nil when no courier was in range and the
// order stayed pending.
type CreateOrderResult struct {
	Order           *order.Order
	AssignedCourier *courier.Courier
}

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the shop's pickup point, attempts immediate nearest-courier
// assignment and persists the order in assigned or pending status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, dispatcher)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	if result.AssignedCourier == nil {
//	    // Order is pending, no courier within range
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.OrderDispatcher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory spanning shops, couriers and orders.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, dispatcher services.OrderDispatcher) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the order creation command.
//
// Workflow:
//  1. Load the acting shop; its geocoded location becomes the pickup point
//  2. Create the order in Pending status
//  3. Dispatch against the currently active couriers; no courier in range
//     leaves the order pending rather than failing the command
//  4. Persist and commit
//
// The active-courier read and the assignment write happen in one
// transaction, but courier positions are not locked: two concurrent
// creations may pick the same courier.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	placingShop, err := uow.ShopRepository().Get(ctx, cmd.Actor().ID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), placingShop.ID(), placingShop.Location(), cmd.Details())
	if err != nil {
		return CreateOrderResult{}, err
	}

	activeCouriers, err := uow.CourierRepository().GetAllActive(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	assigned, err := h.dispatcher.Dispatch(newOrder, activeCouriers)
	if err != nil && !errors.Is(err, services.ErrCourierNotFound) {
		return CreateOrderResult{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{Order: newOrder, AssignedCourier: assigned}, nil
}
