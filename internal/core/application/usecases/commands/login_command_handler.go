package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// LoginCommandHandler authenticates shop and courier accounts and issues
// tokens. Unknown email and wrong password both collapse into
// ErrInvalidCredentials.
type LoginCommandHandler struct {
	uowFactory AuthUoWFactory
	hasher     PasswordHasher
	tokens     TokenIssuer
}

// NewLoginCommandHandler creates a handler for login operations.
func NewLoginCommandHandler(uowFactory AuthUoWFactory, hasher PasswordHasher, tokens TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle processes the login command and returns a signed token on success.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountID, passwordHash, err := h.lookupAccount(ctx, uow, cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err = h.hasher.Verify(passwordHash, cmd.Password()); err != nil {
		return "", ErrInvalidCredentials
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	actor, err := kernel.NewActor(accountID, cmd.Role())
	if err != nil {
		return "", err
	}

	return h.tokens.Issue(actor)
}

// lookupAccount resolves the account ID and stored password hash for the
// command's role and email.
func (h *LoginCommandHandler) lookupAccount(
	ctx context.Context,
	uow AuthUoW,
	cmd LoginCommand,
) (kernel.UUID, string, error) {
	if cmd.Role() == kernel.RoleShop {
		account, err := uow.ShopRepository().GetByEmail(ctx, cmd.Email())
		if err != nil {
			return kernel.UUID{}, "", err
		}
		return account.ID(), account.PasswordHash(), nil
	}

	account, err := uow.CourierRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		return kernel.UUID{}, "", err
	}
	return account.ID(), account.PasswordHash(), nil
}
