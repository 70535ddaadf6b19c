package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierQueryHandler reads one courier profile from the database.
type GetCourierQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierQueryHandler creates a handler for courier profile queries.
// Requires a GORM database connection for query execution.
func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

// Handle executes the query and returns the courier's profile.
func (h GetCourierQueryHandler) Handle(
	ctx context.Context,
	query GetCourierQuery,
) (GetCourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone,
			address_text,
			district,
			longitude,
			latitude,
			active,
			went_active_at
		FROM couriers
		WHERE id = ?
	`, query.CourierID().Bytes()).Row()

	var courierResp GetCourierQueryResponse
	var id uuid.UUID
	var longitude, latitude float64

	err := row.Scan(
		&id,
		&courierResp.Name,
		&courierResp.Email,
		&courierResp.Phone,
		&courierResp.AddressText,
		&courierResp.District,
		&longitude,
		&latitude,
		&courierResp.Active,
		&courierResp.WentActiveAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCourierQueryResponse{},
				errs.NewObjectNotFoundError("courier", query.CourierID().String())
		}
		return GetCourierQueryResponse{}, err
	}

	courierID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetCourierQueryResponse{}, err
	}
	courierResp.ID = courierID

	location, err := kernel.NewGeoPoint(longitude, latitude)
	if err != nil {
		return GetCourierQueryResponse{}, err
	}
	courierResp.Location = location

	return courierResp, nil
}
