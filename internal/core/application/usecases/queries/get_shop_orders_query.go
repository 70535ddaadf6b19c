// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregates and read optimized models straight from
// storage.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetShopOrdersQueryIsNotConstructed = errors.New(
	"GetShopOrdersQuery must be created via NewGetShopOrdersQuery constructor",
)

// GetShopOrdersQuery retrieves every order placed by one shop, newest first.
// The read model carries the assigned courier's contact data so the shop can
// reach the courier without a second lookup.
//
// Example:
//
//	query, err := NewGetShopOrdersQuery(shopID)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve shop orders: %w", err)
//	}
type GetShopOrdersQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShopOrdersQuery creates a query for one shop's order history.
func NewGetShopOrdersQuery(shopID kernel.UUID) (GetShopOrdersQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetShopOrdersQuery{}, err
	}

	return GetShopOrdersQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopOrdersQueryIsNotConstructed)
}

// ShopID returns the identifier of the shop whose orders are requested.
func (q GetShopOrdersQuery) ShopID() kernel.UUID {
	return q.shopID
}

// GetShopOrdersQueryResponse is one order in the shop's order history.
// Courier fields are nil while the order is pending or cancelled without
// ever being assigned.
type GetShopOrdersQueryResponse struct {
	ID               kernel.UUID
	Status           string
	Priority         string
	CustomerName     string
	CustomerPhone    string
	DeliveryAddress  string
	DeliveryDistrict string
	PackageDetails   string
	Notes            string
	CourierName      *string
	CourierPhone     *string
	CreatedAt        time.Time
	AssignedAt       *time.Time
	PickedAt         *time.Time
	DeliveredAt      *time.Time
}
