// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// Lat and Lng are nullable because a driver may be registered before reporting
// a location; the status column is indexed to serve availability scans.
type DriverDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name               string     `gorm:"type:varchar(255);not null"`
	Phone              string     `gorm:"type:varchar(64);not null"`
	VehicleType        string     `gorm:"type:varchar(64);not null"`
	LicensePlate       string     `gorm:"type:varchar(32);not null"`
	Lat                *float64   `gorm:"type:double precision"`
	Lng                *float64   `gorm:"type:double precision"`
	Status             string     `gorm:"type:varchar(32);not null;index"`
	LastLocationUpdate *time.Time
	CreatedAt          time.Time  `gorm:"not null"`
	UpdatedAt          time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(aggregate *driver.Driver) DriverDTO {
	var lat, lng *float64
	if location := aggregate.Location(); location != nil {
		latValue, lngValue := location.Lat(), location.Lng()
		lat, lng = &latValue, &lngValue
	}

	return DriverDTO{
		ID:                 aggregate.ID().Bytes(),
		Name:               aggregate.Name(),
		Phone:              aggregate.Phone(),
		VehicleType:        aggregate.VehicleType(),
		LicensePlate:       aggregate.LicensePlate(),
		Lat:                lat,
		Lng:                lng,
		Status:             aggregate.Status().String(),
		LastLocationUpdate: aggregate.LastLocationUpdate(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a driver domain aggregate using RestoreDriver.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := driver.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Lat != nil && dto.Lng != nil {
		loc := kernel.NewLocation(*dto.Lat, *dto.Lng)
		location = &loc
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Phone,
		dto.VehicleType,
		dto.LicensePlate,
		location,
		status,
		dto.LastLocationUpdate,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
