package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// UpdateCourierLocationCommandHandler applies courier position reports.
//
// Address-based reports are geocoded before the transaction opens; unlike
// registration, a failed geocode fails the command, since the courier
// explicitly asked to move to that address.
type UpdateCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
	geocoder   ports.Geocoder
}

// NewUpdateCourierLocationCommandHandler creates a handler for position
// reports.
func NewUpdateCourierLocationCommandHandler(
	uowFactory CourierUoWFactory,
	geocoder ports.Geocoder,
) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
	}
}

// Handle processes the position report and returns the updated courier.
func (h *UpdateCourierLocationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCourierLocationCommand,
) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	location, err := h.resolveLocation(ctx, cmd)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.MoveTo(location, cmd.AddressText()); err != nil {
		return nil, err
	}

	if err = courierRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// resolveLocation returns the reported coordinates directly, or geocodes the
// reported address.
func (h *UpdateCourierLocationCommandHandler) resolveLocation(
	ctx context.Context,
	cmd UpdateCourierLocationCommand,
) (kernel.GeoPoint, error) {
	if point := cmd.Point(); point != nil {
		return *point, nil
	}

	return h.geocoder.Geocode(ctx, cmd.AddressText())
}
