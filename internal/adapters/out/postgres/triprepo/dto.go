// Package triprepo maps the Trip aggregate to the trips table.
package triprepo

import (
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO is the persisted form of a trip. At most one Dispatched row may
// reference a given vehicle_id or driver_id; see postgres.Migrate.
type TripDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID         uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CargoWeightKg     float64   `gorm:"type:double precision;not null"`
	CargoDescription  string    `gorm:"type:text"`
	Origin            string    `gorm:"type:varchar(255);not null"`
	Destination       string    `gorm:"type:varchar(255);not null"`
	EstimatedFuelCost float64   `gorm:"type:double precision;not null;default:0"`
	Revenue           float64   `gorm:"type:double precision;not null;default:0"`
	Status            string    `gorm:"type:varchar(32);not null;index"`
	StartOdometer     *float64  `gorm:"type:double precision"`
	EndOdometer       *float64  `gorm:"type:double precision"`
	TripStartTime     *time.Time
	TripEndTime       *time.Time
	CreatedAt         time.Time `gorm:"not null;index"`
	Version           int64     `gorm:"not null;default:0"`
}

func (TripDTO) TableName() string {
	return "trips"
}

func fromDomain(t *trip.Trip) TripDTO {
	details := t.Details()
	return TripDTO{
		ID:                t.ID().Bytes(),
		VehicleID:         t.VehicleID().Bytes(),
		DriverID:          t.DriverID().Bytes(),
		CargoWeightKg:     t.CargoWeightKg(),
		CargoDescription:  details.CargoDescription,
		Origin:            details.Origin,
		Destination:       details.Destination,
		EstimatedFuelCost: details.EstimatedFuelCost,
		Revenue:           details.Revenue,
		Status:            t.Status().String(),
		StartOdometer:     t.StartOdometer(),
		EndOdometer:       t.EndOdometer(),
		TripStartTime:     t.TripStartTime(),
		TripEndTime:       t.TripEndTime(),
		CreatedAt:         t.CreatedAt(),
		Version:           t.Version(),
	}
}

func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	status, err := trip.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	details := trip.Details{
		Origin:            dto.Origin,
		Destination:       dto.Destination,
		EstimatedFuelCost: dto.EstimatedFuelCost,
		Revenue:           dto.Revenue,
		CargoDescription:  dto.CargoDescription,
	}

	return trip.RestoreTrip(id, vehicleID, driverID, dto.CargoWeightKg, details, status,
		dto.StartOdometer, dto.EndOdometer, utcPtr(dto.TripStartTime), utcPtr(dto.TripEndTime),
		dto.CreatedAt, dto.Version)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
