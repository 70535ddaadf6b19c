package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCourierOrdersQueryHandler reads a courier's active workload from the
// database. Uses direct SQL for optimal read performance in the CQRS
// pattern.
type GetCourierOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierOrdersQueryHandler creates a handler for courier workload
// queries. Requires a GORM database connection for query execution.
func NewGetCourierOrdersQueryHandler(db *gorm.DB) GetCourierOrdersQueryHandler {
	return GetCourierOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the courier's assigned and picked
// orders in assignment order, joined with the pickup shop's name and
// address.
func (h GetCourierOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCourierOrdersQuery,
) ([]GetCourierOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCourierOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.priority,
			o.customer_name,
			o.customer_phone,
			o.delivery_address,
			o.delivery_district,
			o.package_details,
			o.notes,
			s.name,
			s.address_text,
			o.pickup_longitude,
			o.pickup_latitude,
			o.created_at,
			o.assigned_at,
			o.picked_at
		FROM orders o
		JOIN shops s ON s.id = o.shop_id
		WHERE o.courier_id = ? AND o.status IN (?, ?)
		ORDER BY o.assigned_at
	`, query.CourierID().Bytes(), order.Assigned.String(), order.Picked.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetCourierOrdersQueryResponse
		var id uuid.UUID
		var pickupLongitude, pickupLatitude float64

		err = rows.Scan(
			&id,
			&orderResp.Status,
			&orderResp.Priority,
			&orderResp.CustomerName,
			&orderResp.CustomerPhone,
			&orderResp.DeliveryAddress,
			&orderResp.DeliveryDistrict,
			&orderResp.PackageDetails,
			&orderResp.Notes,
			&orderResp.ShopName,
			&orderResp.ShopAddress,
			&pickupLongitude,
			&pickupLatitude,
			&orderResp.CreatedAt,
			&orderResp.AssignedAt,
			&orderResp.PickedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		pickup, locErr := kernel.NewGeoPoint(pickupLongitude, pickupLatitude)
		if locErr != nil {
			return nil, locErr
		}
		orderResp.PickupLocation = pickup

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
