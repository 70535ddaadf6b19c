// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and priority are stored in their wire representation so rows stay
// readable and the read models can filter on them directly.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShopID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	CourierID        *uuid.UUID `gorm:"type:uuid;index"`
	PickupLongitude  float64    `gorm:"not null"`
	PickupLatitude   float64    `gorm:"not null"`
	CustomerName     string     `gorm:"type:varchar(255);not null"`
	CustomerPhone    string     `gorm:"type:varchar(64);not null"`
	DeliveryAddress  string     `gorm:"type:varchar(512);not null"`
	DeliveryDistrict string     `gorm:"type:varchar(255);not null"`
	PackageDetails   string     `gorm:"type:varchar(512);not null"`
	Priority         string     `gorm:"type:varchar(16);not null"`
	Notes            string     `gorm:"type:varchar(512)"`
	Status           string     `gorm:"type:varchar(16);not null;index"`
	CreatedAt        time.Time  `gorm:"not null;index"`
	AssignedAt       *time.Time
	PickedAt         *time.Time
	DeliveredAt      *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	details := aggregate.Details()
	pickup := aggregate.PickupLocation()

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		ShopID:           aggregate.ShopID().Bytes(),
		CourierID:        courierID,
		PickupLongitude:  pickup.Longitude(),
		PickupLatitude:   pickup.Latitude(),
		CustomerName:     details.CustomerName,
		CustomerPhone:    details.CustomerPhone,
		DeliveryAddress:  details.DeliveryAddress,
		DeliveryDistrict: details.DeliveryDistrict,
		PackageDetails:   details.PackageDetails,
		Priority:         details.Priority.String(),
		Notes:            details.Notes,
		Status:           aggregate.Status().String(),
		CreatedAt:        aggregate.CreatedAt(),
		AssignedAt:       aggregate.AssignedAt(),
		PickedAt:         aggregate.PickedAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate via RestoreOrder, which re-validates
// every field and the status/courier consistency.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	pickup, err := kernel.NewGeoPoint(dto.PickupLongitude, dto.PickupLatitude)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := order.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	details := order.Details{
		CustomerName:     dto.CustomerName,
		CustomerPhone:    dto.CustomerPhone,
		DeliveryAddress:  dto.DeliveryAddress,
		DeliveryDistrict: dto.DeliveryDistrict,
		PackageDetails:   dto.PackageDetails,
		Priority:         priority,
		Notes:            dto.Notes,
	}

	return order.RestoreOrder(
		id, shopID, courierID, pickup, details, status,
		dto.CreatedAt, dto.AssignedAt, dto.PickedAt, dto.DeliveredAt,
	)
}
