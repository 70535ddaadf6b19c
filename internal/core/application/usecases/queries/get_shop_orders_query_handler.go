package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShopOrdersQueryHandler reads a shop's order history from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
type GetShopOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShopOrdersQueryHandler creates a handler for shop order history
// queries. Requires a GORM database connection for query execution.
func NewGetShopOrdersQueryHandler(db *gorm.DB) GetShopOrdersQueryHandler {
	return GetShopOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the shop's orders, newest first,
// joined with the assigned courier's name and phone where one exists.
func (h GetShopOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopOrdersQuery,
) ([]GetShopOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetShopOrdersQueryResponse, 0)

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
			c.name,
			c.phone,
			o.created_at,
			o.assigned_at,
			o.picked_at,
			o.delivered_at
		FROM orders o
		LEFT JOIN couriers c ON c.id = o.courier_id
		WHERE o.shop_id = ?
		ORDER BY o.created_at DESC
	`, query.ShopID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetShopOrdersQueryResponse
		var id uuid.UUID

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
			&orderResp.CourierName,
			&orderResp.CourierPhone,
			&orderResp.CreatedAt,
			&orderResp.AssignedAt,
			&orderResp.PickedAt,
			&orderResp.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderResp.ID = orderID

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
