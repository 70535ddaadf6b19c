// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"time"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Email carries a unique index since it is the login identity.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(64)"`
	AddressText  string    `gorm:"type:varchar(512)"`
	District     string    `gorm:"type:varchar(255)"`
	Longitude    float64   `gorm:"not null"`
	Latitude     float64   `gorm:"not null"`
	Active       bool      `gorm:"not null;index"`
	WentActiveAt *time.Time
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers" instead of "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	location := aggregate.Location()

	return CourierDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Phone:        aggregate.Phone(),
		AddressText:  aggregate.AddressText(),
		District:     aggregate.District(),
		Longitude:    location.Longitude(),
		Latitude:     location.Latitude(),
		Active:       aggregate.IsActive(),
		WentActiveAt: aggregate.WentActiveAt(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate using
// RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Longitude, dto.Latitude)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id, dto.Name, dto.Email, dto.PasswordHash,
		dto.Phone, dto.AddressText, dto.District,
		location, dto.Active, dto.WentActiveAt,
	)
}
