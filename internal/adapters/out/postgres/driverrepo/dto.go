// Package driverrepo maps the Driver aggregate to the drivers table.
package driverrepo

import (
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO is the persisted form of a driver.
type DriverDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name              string     `gorm:"type:varchar(255);not null"`
	LicenseNumber     string     `gorm:"type:varchar(64);not null"`
	LicenseExpiryDate time.Time  `gorm:"not null;index"`
	Status            string     `gorm:"type:varchar(32);not null;index"`
	TripsCompleted    int        `gorm:"not null;default:0"`
	SafetyScore       float64    `gorm:"type:double precision;not null"`
	ComplaintsCount   int        `gorm:"not null;default:0"`
	ActiveTripID      *uuid.UUID `gorm:"type:uuid"`
	Version           int64      `gorm:"not null;default:0"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	var activeTripID *uuid.UUID
	if d.ActiveTripID() != nil {
		raw := d.ActiveTripID().Bytes()
		activeTripID = &raw
	}

	return DriverDTO{
		ID:                d.ID().Bytes(),
		Name:              d.Name(),
		LicenseNumber:     d.LicenseNumber(),
		LicenseExpiryDate: d.LicenseExpiryDate(),
		Status:            d.Status().String(),
		TripsCompleted:    d.TripsCompleted(),
		SafetyScore:       d.SafetyScore(),
		ComplaintsCount:   d.ComplaintsCount(),
		ActiveTripID:      activeTripID,
		Version:           d.Version(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := driver.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var activeTripID *kernel.UUID
	if dto.ActiveTripID != nil {
		tripID, tripErr := kernel.UUIDFromBytes(dto.ActiveTripID[:])
		if tripErr != nil {
			return nil, tripErr
		}
		activeTripID = &tripID
	}

	return driver.RestoreDriver(id, dto.Name, dto.LicenseNumber, dto.LicenseExpiryDate.UTC(), status,
		dto.TripsCompleted, dto.SafetyScore, dto.ComplaintsCount, activeTripID, dto.Version)
}
