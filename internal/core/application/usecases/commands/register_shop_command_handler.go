package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shop"
	"dispatch/internal/core/ports"
)

// RegisterShopResult is the outcome of shop registration: the created shop
// and a signed token for immediate use.
type RegisterShopResult struct {
	Shop  *shop.Shop
	Token string
}

// RegisterShopCommandHandler handles shop account registration.
//
// The shop's address is geocoded into the fixed pickup point. Geocoding
// failure fails the registration: a shop without a resolvable position
// could never have orders dispatched.
type RegisterShopCommandHandler struct {
	uowFactory ShopUoWFactory
	geocoder   ports.Geocoder
	hasher     PasswordHasher
	tokens     TokenIssuer
}

// NewRegisterShopCommandHandler creates a handler for shop registration.
func NewRegisterShopCommandHandler(
	uowFactory ShopUoWFactory,
	geocoder ports.Geocoder,
	hasher PasswordHasher,
	tokens TokenIssuer,
) RegisterShopCommandHandler {
	return RegisterShopCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle processes the registration command: geocodes the address, hashes
// the password, persists the shop and issues a token for the new account.
func (h *RegisterShopCommandHandler) Handle(ctx context.Context, cmd RegisterShopCommand) (RegisterShopResult, error) {
	if err := cmd.Validate(); err != nil {
		return RegisterShopResult{}, err
	}

	location, err := h.geocoder.Geocode(ctx, cmd.AddressText())
	if err != nil {
		return RegisterShopResult{}, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return RegisterShopResult{}, err
	}

	newShop, err := shop.NewShop(
		kernel.NewUUID(),
		cmd.Name(), cmd.Email(), passwordHash, cmd.AddressText(), cmd.District(),
		location,
	)
	if err != nil {
		return RegisterShopResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RegisterShopResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ShopRepository().Add(ctx, newShop); err != nil {
		return RegisterShopResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterShopResult{}, err
	}

	actor, err := kernel.NewActor(newShop.ID(), kernel.RoleShop)
	if err != nil {
		return RegisterShopResult{}, err
	}

	token, err := h.tokens.Issue(actor)
	if err != nil {
		return RegisterShopResult{}, err
	}

	return RegisterShopResult{Shop: newShop, Token: token}, nil
}
