package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
)

// SetCourierActiveCommandHandler toggles a courier's availability for
// dispatch. Activation stamps the went-active timestamp in the aggregate.
type SetCourierActiveCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierActiveCommandHandler creates a handler for availability
// toggles. Requires a CourierUoWFactory for transactional persistence.
func NewSetCourierActiveCommandHandler(uowFactory CourierUoWFactory) SetCourierActiveCommandHandler {
	return SetCourierActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability command and returns the updated courier.
func (h *SetCourierActiveCommandHandler) Handle(
	ctx context.Context,
	cmd SetCourierActiveCommand,
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

	courierRepo := uow.CourierRepository()
	aggregate, err := courierRepo.Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	aggregate.SetActive(cmd.Active())

	if err = courierRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
