package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shop"
)

// ShopRepository defines the persistence contract for shop aggregates.
// Shops are immutable after registration, so there is no Update.
type ShopRepository interface {
	// Add persists a new shop aggregate to storage.
	// The shop must be valid and not already exist in the repository.
	Add(ctx context.Context, shop *shop.Shop) error

	// Get retrieves a shop aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shop.Shop, error)

	// GetByEmail retrieves a shop aggregate by its login identity.
	// Used by authentication flows; email is unique across shops.
	GetByEmail(ctx context.Context, email string) (*shop.Shop, error)
}
