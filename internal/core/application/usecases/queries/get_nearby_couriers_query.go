package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// Proximity listings share one radius and page size. The radius is wider
// than the assignment radius on purpose: the listing is informational and
// shows couriers that may come into range.
const (
	MaxNearbyRadiusKm = 20.0
	NearbyLimit       = 10
)

var ErrGetNearbyCouriersQueryIsNotConstructed = errors.New(
	"GetNearbyCouriersQuery must be created via NewGetNearbyCouriersQuery constructor",
)

// GetNearbyCouriersQuery retrieves the active couriers closest to a pickup
// point, with their distance and a derived availability status.
type GetNearbyCouriersQuery struct {
	origin kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewGetNearbyCouriersQuery creates a proximity query around the given
// pickup point.
func NewGetNearbyCouriersQuery(origin kernel.GeoPoint) (GetNearbyCouriersQuery, error) {
	if err := origin.Validate(); err != nil {
		return GetNearbyCouriersQuery{}, err
	}

	return GetNearbyCouriersQuery{
		origin: origin,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearbyCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyCouriersQueryIsNotConstructed)
}

// Origin returns the pickup point the proximity search is centered on.
func (q GetNearbyCouriersQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// GetNearbyCouriersQueryResponse is one courier in the proximity listing.
// Status is busy when the courier is carrying an assigned or picked order,
// available otherwise.
type GetNearbyCouriersQueryResponse struct {
	ID         kernel.UUID
	Name       string
	Phone      string
	District   string
	Location   kernel.GeoPoint
	DistanceKm float64
	Status     courier.Status
}
