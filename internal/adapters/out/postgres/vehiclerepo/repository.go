package vehiclerepo

import (
	"context"

	"fleetflow/internal/adapters/out/postgres/dberr"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add inserts a new vehicle.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dberr.Translate("vehicle", aggregate.ID(), r.db.WithContext(ctx).Create(&dto).Error)
}

// Update writes the vehicle only if the stored row still has the version and
// status it was loaded with, and bumps the version.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ? AND version = ? AND status = ?", dto.ID, aggregate.Version(), aggregate.LoadedStatus().String()).
		Updates(map[string]any{
			"name":             dto.Name,
			"license_plate":    dto.LicensePlate,
			"max_capacity_kg":  dto.MaxCapacityKg,
			"current_odometer": dto.CurrentOdometer,
			"status":           dto.Status,
			"active_trip_id":   dto.ActiveTripID,
			"version":          gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return dberr.Translate("vehicle", aggregate.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewResourceConflictError("vehicle", aggregate.ID())
	}
	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.NotFound("vehicle", id.String(), err)
	}

	return toDomain(dto)
}

// Delete removes the vehicle if it still has the loaded version and status and
// no Draft or Dispatched trip or Pending maintenance log references it.
func (r *GormVehicleRepository) Delete(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND version = ? AND status = ?",
			aggregate.ID().Bytes(), aggregate.Version(), aggregate.LoadedStatus().String()).
		Where("NOT EXISTS (SELECT 1 FROM trips t WHERE t.vehicle_id = vehicles.id AND t.status IN ?)",
			[]string{trip.Draft.String(), trip.Dispatched.String()}).
		Where("NOT EXISTS (SELECT 1 FROM maintenance_logs m WHERE m.vehicle_id = vehicles.id AND m.status = ?)",
			maintenance.Pending.String()).
		Delete(&VehicleDTO{})
	if result.Error != nil {
		return dberr.Translate("vehicle", aggregate.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewResourceConflictError("vehicle", aggregate.ID())
	}
	return nil
}
