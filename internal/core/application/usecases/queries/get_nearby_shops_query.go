package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetNearbyShopsQueryIsNotConstructed = errors.New(
	"GetNearbyShopsQuery must be created via NewGetNearbyShopsQuery constructor",
)

// GetNearbyShopsQuery retrieves the shops closest to a courier's position,
// so a courier can see where work is likely to come from.
type GetNearbyShopsQuery struct {
	origin kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewGetNearbyShopsQuery creates a proximity query around the given
// position.
func NewGetNearbyShopsQuery(origin kernel.GeoPoint) (GetNearbyShopsQuery, error) {
	if err := origin.Validate(); err != nil {
		return GetNearbyShopsQuery{}, err
	}

	return GetNearbyShopsQuery{
		origin: origin,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearbyShopsQuery) Validate() error {
	return q.guard.Validate(ErrGetNearbyShopsQueryIsNotConstructed)
}

// Origin returns the position the proximity search is centered on.
func (q GetNearbyShopsQuery) Origin() kernel.GeoPoint {
	return q.origin
}

// GetNearbyShopsQueryResponse is one shop in the proximity listing.
type GetNearbyShopsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	AddressText string
	District    string
	Location    kernel.GeoPoint
	DistanceKm  float64
}
