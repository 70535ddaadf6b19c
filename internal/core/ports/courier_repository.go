// Package ports defines repository and gateway interfaces for the dispatch
// domain. These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	// The courier must be valid and not already exist in the repository.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists changes to an existing courier aggregate.
	// The courier must exist in the repository and be valid.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetByEmail retrieves a courier aggregate by its login identity.
	// Used by authentication flows; email is unique across couriers.
	GetByEmail(ctx context.Context, email string) (*courier.Courier, error)

	// GetAllActive retrieves every courier whose active flag is set,
	// regardless of position. Dispatch applies the radius filter itself so
	// the selection policy stays in the domain.
	GetAllActive(ctx context.Context) ([]*courier.Courier, error)
}
