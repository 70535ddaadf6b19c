package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierOrdersQueryIsNotConstructed = errors.New(
	"GetCourierOrdersQuery must be created via NewGetCourierOrdersQuery constructor",
)

// GetCourierOrdersQuery retrieves a courier's current workload: orders in
// assigned or picked status. Delivered and cancelled orders drop out of the
// listing.
type GetCourierOrdersQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierOrdersQuery creates a query for one courier's active orders.
func NewGetCourierOrdersQuery(courierID kernel.UUID) (GetCourierOrdersQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierOrdersQuery{}, err
	}

	return GetCourierOrdersQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierOrdersQueryIsNotConstructed)
}

// CourierID returns the identifier of the courier whose workload is
// requested.
func (q GetCourierOrdersQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierOrdersQueryResponse is one order in a courier's workload,
// enriched with the pickup shop's name and address.
type GetCourierOrdersQueryResponse struct {
	ID               kernel.UUID
	Status           string
	Priority         string
	CustomerName     string
	CustomerPhone    string
	DeliveryAddress  string
	DeliveryDistrict string
	PackageDetails   string
	Notes            string
	ShopName         string
	ShopAddress      string
	PickupLocation   kernel.GeoPoint
	CreatedAt        time.Time
	AssignedAt       *time.Time
	PickedAt         *time.Time
}
