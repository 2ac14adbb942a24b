package triprepo

import (
	"context"

	"fleetflow/internal/adapters/out/postgres/dberr"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTripRepository implements ports.TripRepository using GORM.
type GormTripRepository struct {
	db *gorm.DB
}

func NewGormTripRepository(db *gorm.DB) *GormTripRepository {
	return &GormTripRepository{db: db}
}

// Add inserts a new trip.
func (r *GormTripRepository) Add(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dberr.Translate("trip", aggregate.ID(), r.db.WithContext(ctx).Create(&dto).Error)
}

// Update is a conditional write on id, version and loaded status. Moving a
// second trip of the same vehicle or driver to Dispatched trips the partial
// unique indexes and is reported as a conflict as well.
func (r *GormTripRepository) Update(ctx context.Context, aggregate *trip.Trip) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&TripDTO{}).
		Where("id = ? AND version = ? AND status = ?", dto.ID, aggregate.Version(), aggregate.LoadedStatus().String()).
		Updates(map[string]any{
			"status":          dto.Status,
			"start_odometer":  dto.StartOdometer,
			"end_odometer":    dto.EndOdometer,
			"trip_start_time": dto.TripStartTime,
			"trip_end_time":   dto.TripEndTime,
			"version":         gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return dberr.Translate("trip", aggregate.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewResourceConflictError("trip", aggregate.ID())
	}
	return nil
}

// Get retrieves a trip by ID.
func (r *GormTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TripDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.NotFound("trip", id.String(), err)
	}

	return toDomain(dto)
}

// CountActiveByVehicle counts Draft and Dispatched trips of a vehicle.
func (r *GormTripRepository) CountActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) (int, error) {
	return r.countActive(ctx, "vehicle_id", vehicleID)
}

// CountActiveByDriver counts Draft and Dispatched trips of a driver.
func (r *GormTripRepository) CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int, error) {
	return r.countActive(ctx, "driver_id", driverID)
}

func (r *GormTripRepository) countActive(ctx context.Context, column string, id kernel.UUID) (int, error) {
	if err := id.Validate(); err != nil {
		return 0, err
	}

	var n int64
	err := r.db.WithContext(ctx).
		Model(&TripDTO{}).
		Where(column+" = ? AND status IN ?", id.Bytes(), []string{trip.Draft.String(), trip.Dispatched.String()}).
		Count(&n).Error
	return int(n), err
}
