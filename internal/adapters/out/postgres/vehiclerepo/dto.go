// Package vehiclerepo maps the Vehicle aggregate to the vehicles table.
package vehiclerepo

import (
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO is the persisted form of a vehicle. ActiveTripID is set exactly
// while the vehicle is OnTrip.
type VehicleDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name            string     `gorm:"type:varchar(255);not null"`
	LicensePlate    string     `gorm:"type:varchar(32);not null;index"`
	MaxCapacityKg   float64    `gorm:"type:double precision;not null"`
	CurrentOdometer float64    `gorm:"type:double precision;not null"`
	Status          string     `gorm:"type:varchar(32);not null;index"`
	ActiveTripID    *uuid.UUID `gorm:"type:uuid"`
	Version         int64      `gorm:"not null;default:0"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:              v.ID().Bytes(),
		Name:            v.Name(),
		LicensePlate:    v.LicensePlate(),
		MaxCapacityKg:   v.MaxCapacityKg(),
		CurrentOdometer: v.CurrentOdometer(),
		Status:          v.Status().String(),
		ActiveTripID:    uuidPtr(v.ActiveTripID()),
		Version:         v.Version(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := vehicle.ParseStatus(dto.Status)
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

	return vehicle.RestoreVehicle(id, dto.Name, dto.LicensePlate, dto.MaxCapacityKg, dto.CurrentOdometer,
		status, activeTripID, dto.Version)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
