// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// ShopRepoFactory provides access to the shop repository within a transaction.
	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// ShopUoW manages transactions for shop-only operations.
	ShopUoW interface {
		TxManager
		ShopRepoFactory
	}

	// ShopUoWFactory creates new shop unit of work instances.
	ShopUoWFactory interface {
		Create() ShopUoW
	}

	// AuthUoW spans the two account aggregates for login flows.
	AuthUoW interface {
		TxManager
		CourierRepoFactory
		ShopRepoFactory
	}

	// AuthUoWFactory creates new auth unit of work instances.
	AuthUoWFactory interface {
		Create() AuthUoW
	}

	// UoW manages transactions across all three aggregates.
	// Used by order creation and redispatch, which read shops and couriers
	// while writing orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   courierRepo := uow.CourierRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		CourierRepoFactory
		ShopRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Credential interfaces isolate command handlers from the concrete hashing
// and token libraries, keeping handlers testable with plain mocks.
type (
	// PasswordHasher hashes and verifies account passwords.
	PasswordHasher interface {
		// Hash derives a storable hash from a plaintext password.
		Hash(password string) (string, error)

		// Verify compares a stored hash with a plaintext password.
		// Returns an error when they do not match.
		Verify(hash, password string) error
	}

	// TokenIssuer mints authentication tokens for actors.
	TokenIssuer interface {
		// Issue returns a signed token encoding the actor's identity and role.
		Issue(actor kernel.Actor) (string, error)
	}
)
