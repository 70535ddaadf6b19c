package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Geocoder resolves a free-form address into a geographic point.
// Implementations call an external geocoding service; failures surface as
// errs.UpstreamServiceError so callers can decide whether to fail the
// operation or fall back.
type Geocoder interface {
	// Geocode resolves addressText to a point.
	// Returns an error when the service is unreachable or the address
	// yields no result.
	Geocode(ctx context.Context, addressText string) (kernel.GeoPoint, error)
}
