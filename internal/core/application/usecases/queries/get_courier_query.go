package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetCourierQueryIsNotConstructed = errors.New(
	"GetCourierQuery must be created via NewGetCourierQuery constructor",
)

// GetCourierQuery retrieves one courier's profile, served by the courier
// self-service endpoint.
type GetCourierQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierQuery creates a query for one courier's profile.
func NewGetCourierQuery(courierID kernel.UUID) (GetCourierQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierQuery{}, err
	}

	return GetCourierQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

// CourierID returns the identifier of the requested courier.
func (q GetCourierQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetCourierQueryResponse is the courier profile read model.
// WentActiveAt is nil while the courier is offline.
type GetCourierQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Email        string
	Phone        string
	AddressText  string
	District     string
	Location     kernel.GeoPoint
	Active       bool
	WentActiveAt *time.Time
}
