package queries

import (
	"context"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetNearbyCouriersQueryHandler finds active couriers around a pickup
// point. The great-circle distance is computed in SQL with the haversine
// formula, so filtering, ordering and the page limit all happen in the
// database.
type GetNearbyCouriersQueryHandler struct {
	db *gorm.DB
}

// NewGetNearbyCouriersQueryHandler creates a handler for courier proximity
// queries. Requires a GORM database connection for query execution.
func NewGetNearbyCouriersQueryHandler(db *gorm.DB) GetNearbyCouriersQueryHandler {
	return GetNearbyCouriersQueryHandler{db: db}
}

// Handle executes the proximity query. Returns at most NearbyLimit active
// couriers within MaxNearbyRadiusKm of the origin, nearest first, each with
// its distance and a busy flag derived from open orders.
func (h GetNearbyCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetNearbyCouriersQuery,
) ([]GetNearbyCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetNearbyCouriersQueryResponse, 0)

	origin := query.Origin()
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.phone,
			c.district,
			c.longitude,
			c.latitude,
			6371 * acos(
				least(1.0,
					cos(radians(?)) * cos(radians(c.latitude)) *
					cos(radians(c.longitude) - radians(?)) +
					sin(radians(?)) * sin(radians(c.latitude))
				)
			) AS distance_km,
			EXISTS (
				SELECT 1 FROM orders o
				WHERE o.courier_id = c.id AND o.status IN (?, ?)
			) AS busy
		FROM couriers c
		WHERE c.active
		  AND 6371 * acos(
			least(1.0,
				cos(radians(?)) * cos(radians(c.latitude)) *
				cos(radians(c.longitude) - radians(?)) +
				sin(radians(?)) * sin(radians(c.latitude))
			)
		  ) <= ?
		ORDER BY distance_km
		LIMIT ?
	`,
		origin.Latitude(), origin.Longitude(), origin.Latitude(),
		order.Assigned.String(), order.Picked.String(),
		origin.Latitude(), origin.Longitude(), origin.Latitude(),
		MaxNearbyRadiusKm, NearbyLimit,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var courierResp GetNearbyCouriersQueryResponse
		var id uuid.UUID
		var longitude, latitude float64
		var busy bool

		err = rows.Scan(
			&id,
			&courierResp.Name,
			&courierResp.Phone,
			&courierResp.District,
			&longitude,
			&latitude,
			&courierResp.DistanceKm,
			&busy,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		courierResp.ID = courierID

		location, locErr := kernel.NewGeoPoint(longitude, latitude)
		if locErr != nil {
			return nil, locErr
		}
		courierResp.Location = location

		courierResp.Status = courier.StatusAvailable
		if busy {
			courierResp.Status = courier.StatusBusy
		}

		couriers = append(couriers, courierResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
