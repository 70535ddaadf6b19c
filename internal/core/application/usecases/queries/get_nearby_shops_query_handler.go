package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNearbyShopsQueryHandler finds shops around a courier's position using
// the same haversine SQL as the courier listing.
type GetNearbyShopsQueryHandler struct {
	db *gorm.DB
}

// NewGetNearbyShopsQueryHandler creates a handler for shop proximity
// queries. Requires a GORM database connection for query execution.
func NewGetNearbyShopsQueryHandler(db *gorm.DB) GetNearbyShopsQueryHandler {
	return GetNearbyShopsQueryHandler{db: db}
}

// Handle executes the proximity query. Returns at most NearbyLimit shops
// within MaxNearbyRadiusKm of the origin, nearest first.
func (h GetNearbyShopsQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyShopsQuery,
) ([]GetNearbyShopsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shops := make([]GetNearbyShopsQueryResponse, 0)

	origin := query.Origin()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.address_text,
			s.district,
			s.longitude,
			s.latitude,
			6371 * acos(
				least(1.0,
					cos(radians(?)) * cos(radians(s.latitude)) *
					cos(radians(s.longitude) - radians(?)) +
					sin(radians(?)) * sin(radians(s.latitude))
				)
			) AS distance_km
		FROM shops s
		WHERE 6371 * acos(
			least(1.0,
				cos(radians(?)) * cos(radians(s.latitude)) *
				cos(radians(s.longitude) - radians(?)) +
				sin(radians(?)) * sin(radians(s.latitude))
			)
		) <= ?
		ORDER BY distance_km
		LIMIT ?
	`,
		origin.Latitude(), origin.Longitude(), origin.Latitude(),
		origin.Latitude(), origin.Longitude(), origin.Latitude(),
		MaxNearbyRadiusKm, NearbyLimit,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shopResp GetNearbyShopsQueryResponse
		var id uuid.UUID
		var longitude, latitude float64

		err = rows.Scan(
			&id,
			&shopResp.Name,
			&shopResp.AddressText,
			&shopResp.District,
			&longitude,
			&latitude,
			&shopResp.DistanceKm,
		)
		if err != nil {
			return nil, err
		}

		shopID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		shopResp.ID = shopID

		location, locErr := kernel.NewGeoPoint(longitude, latitude)
		if locErr != nil {
			return nil, locErr
		}
		shopResp.Location = location

		shops = append(shops, shopResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shops, nil
}
