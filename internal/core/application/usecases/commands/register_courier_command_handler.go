package commands

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// RegisterCourierResult is the outcome of courier registration: the created
// courier and a signed token for immediate use.
type RegisterCourierResult struct {
	Courier *courier.Courier
	Token   string
}

// RegisterCourierCommandHandler handles courier account registration.
//
// Unlike shops, couriers do not need a resolvable position to register: the
// address is optional, and when geocoding fails the courier starts at the
// origin point and corrects it with the first location update. New couriers
// always start inactive.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	geocoder   ports.Geocoder
	hasher     PasswordHasher
	tokens     TokenIssuer
}

// NewRegisterCourierCommandHandler creates a handler for courier registration.
func NewRegisterCourierCommandHandler(
	uowFactory CourierUoWFactory,
	geocoder ports.Geocoder,
	hasher PasswordHasher,
	tokens TokenIssuer,
) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle processes the registration command: resolves the starting position,
// hashes the password, persists the courier and issues a token.
func (h *RegisterCourierCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterCourierCommand,
) (RegisterCourierResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterCourierResult{}, err
	}

	location := kernel.OriginGeoPoint()
	if cmd.AddressText() != "" {
		if geocoded, err := h.geocoder.Geocode(ctx, cmd.AddressText()); err == nil {
			location = geocoded
		}
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return RegisterCourierResult{}, err
	}

	newCourier, err := courier.NewCourier(
		kernel.NewUUID(),
		cmd.Name(), cmd.Email(), passwordHash,
		cmd.Phone(), cmd.AddressText(), cmd.District(),
		location,
	)
	if err != nil {
		return RegisterCourierResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RegisterCourierResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, newCourier); err != nil {
		return RegisterCourierResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterCourierResult{}, err
	}

	actor, err := kernel.NewActor(newCourier.ID(), kernel.RoleCourier)
	if err != nil {
		return RegisterCourierResult{}, err
	}

	token, err := h.tokens.Issue(actor)
	if err != nil {
		return RegisterCourierResult{}, err
	}

	return RegisterCourierResult{Courier: newCourier, Token: token}, nil
}
