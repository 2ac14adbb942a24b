// Package maintenancerepo maps the MaintenanceLog aggregate to the
// maintenance_logs table.
package maintenancerepo

import (
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// MaintenanceLogDTO is the persisted form of a maintenance log.
type MaintenanceLogDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Description        string    `gorm:"type:text;not null"`
	Cost               float64   `gorm:"type:double precision;not null;default:0"`
	ServiceDate        time.Time `gorm:"not null;index"`
	Status             string    `gorm:"type:varchar(32);not null;index"`
	CompletedDate      *time.Time
	TechnicianName     string `gorm:"type:varchar(255)"`
	PriorVehicleStatus string `gorm:"type:varchar(32);not null"`
	Version            int64  `gorm:"not null;default:0"`
}

func (MaintenanceLogDTO) TableName() string {
	return "maintenance_logs"
}

func fromDomain(l *maintenance.MaintenanceLog) MaintenanceLogDTO {
	return MaintenanceLogDTO{
		ID:                 l.ID().Bytes(),
		VehicleID:          l.VehicleID().Bytes(),
		Description:        l.Description(),
		Cost:               l.Cost(),
		ServiceDate:        l.ServiceDate(),
		Status:             l.Status().String(),
		CompletedDate:      l.CompletedDate(),
		TechnicianName:     l.TechnicianName(),
		PriorVehicleStatus: l.PriorVehicleStatus().String(),
		Version:            l.Version(),
	}
}

func toDomain(dto MaintenanceLogDTO) (*maintenance.MaintenanceLog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	status, err := maintenance.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	prior, err := vehicle.ParseStatus(dto.PriorVehicleStatus)
	if err != nil {
		return nil, err
	}

	var completedDate *time.Time
	if dto.CompletedDate != nil {
		c := dto.CompletedDate.UTC()
		completedDate = &c
	}

	return maintenance.RestoreMaintenanceLog(id, vehicleID, dto.Description, dto.Cost, dto.ServiceDate.UTC(),
		status, completedDate, dto.TechnicianName, prior, dto.Version)
}
