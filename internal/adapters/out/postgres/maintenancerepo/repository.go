package maintenancerepo

import (
	"context"

	"fleetflow/internal/adapters/out/postgres/dberr"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMaintenanceLogRepository implements ports.MaintenanceLogRepository
// using GORM.
type GormMaintenanceLogRepository struct {
	db *gorm.DB
}

func NewGormMaintenanceLogRepository(db *gorm.DB) *GormMaintenanceLogRepository {
	return &GormMaintenanceLogRepository{db: db}
}

// Add inserts a new log. A second Pending log for the same vehicle violates
// the partial unique index and is reported as a conflict.
func (r *GormMaintenanceLogRepository) Add(ctx context.Context, aggregate *maintenance.MaintenanceLog) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dberr.Translate("maintenance log", aggregate.ID(), r.db.WithContext(ctx).Create(&dto).Error)
}

// Update is a conditional write on id, version and loaded status.
func (r *GormMaintenanceLogRepository) Update(ctx context.Context, aggregate *maintenance.MaintenanceLog) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MaintenanceLogDTO{}).
		Where("id = ? AND version = ? AND status = ?", dto.ID, aggregate.Version(), aggregate.LoadedStatus().String()).
		Updates(map[string]any{
			"description":     dto.Description,
			"cost":            dto.Cost,
			"status":          dto.Status,
			"completed_date":  dto.CompletedDate,
			"technician_name": dto.TechnicianName,
			"version":         gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return dberr.Translate("maintenance log", aggregate.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewResourceConflictError("maintenance log", aggregate.ID())
	}
	return nil
}

// Get retrieves a log by ID.
func (r *GormMaintenanceLogRepository) Get(ctx context.Context, id kernel.UUID) (*maintenance.MaintenanceLog, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MaintenanceLogDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.NotFound("maintenance log", id.String(), err)
	}

	return toDomain(dto)
}

// GetPendingByVehicle returns the open log of a vehicle.
func (r *GormMaintenanceLogRepository) GetPendingByVehicle(
	ctx context.Context,
	vehicleID kernel.UUID,
) (*maintenance.MaintenanceLog, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dto MaintenanceLogDTO
	if err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND status = ?", vehicleID.Bytes(), maintenance.Pending.String()).
		First(&dto).Error; err != nil {
		return nil, dberr.NotFound("maintenance log", vehicleID.String(), err)
	}

	return toDomain(dto)
}
