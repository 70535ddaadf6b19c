// Package shoprepo provides data transfer objects and mapping functions for shop persistence.
// This package implements the repository pattern for the shop domain aggregate.
package shoprepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/shop"

	"github.com/google/uuid"
)

// ShopDTO represents the database structure for persisting shop aggregates.
// Email carries a unique index since it is the login identity.
type ShopDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	AddressText  string    `gorm:"type:varchar(512);not null"`
	District     string    `gorm:"type:varchar(255)"`
	Longitude    float64   `gorm:"not null"`
	Latitude     float64   `gorm:"not null"`
}

// TableName specifies the database table name for shop entities.
// Overrides GORM's default naming convention to use "shops".
func (ShopDTO) TableName() string {
	return "shops"
}

// fromDomain converts a shop domain aggregate to its database representation.
func fromDomain(aggregate *shop.Shop) ShopDTO {
	location := aggregate.Location()

	return ShopDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		AddressText:  aggregate.AddressText(),
		District:     aggregate.District(),
		Longitude:    location.Longitude(),
		Latitude:     location.Latitude(),
	}
}

// toDomain converts a database DTO to a shop domain aggregate.
func toDomain(dto ShopDTO) (*shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Longitude, dto.Latitude)
	if err != nil {
		return nil, err
	}

	return shop.NewShop(
		id, dto.Name, dto.Email, dto.PasswordHash,
		dto.AddressText, dto.District, location,
	)
}
