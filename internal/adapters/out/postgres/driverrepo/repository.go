package driverrepo

import (
	"context"
	"time"

	"fleetflow/internal/adapters/out/postgres/dberr"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add inserts a new driver.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dberr.Translate("driver", aggregate.ID(), r.db.WithContext(ctx).Create(&dto).Error)
}

// Update is a conditional write on id, version and loaded status.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND version = ? AND status = ?", dto.ID, aggregate.Version(), aggregate.LoadedStatus().String()).
		Updates(map[string]any{
			"name":                dto.Name,
			"license_number":      dto.LicenseNumber,
			"license_expiry_date": dto.LicenseExpiryDate,
			"status":              dto.Status,
			"trips_completed":     dto.TripsCompleted,
			"safety_score":        dto.SafetyScore,
			"complaints_count":    dto.ComplaintsCount,
			"active_trip_id":      dto.ActiveTripID,
			"version":             gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return dberr.Translate("driver", aggregate.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewResourceConflictError("driver", aggregate.ID())
	}
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.NotFound("driver", id.String(), err)
	}

	return toDomain(dto)
}

// Delete removes the driver if it still has the loaded version and status and
// no Draft or Dispatched trip references it.
func (r *GormDriverRepository) Delete(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND version = ? AND status = ?",
			aggregate.ID().Bytes(), aggregate.Version(), aggregate.LoadedStatus().String()).
		Where("NOT EXISTS (SELECT 1 FROM trips t WHERE t.driver_id = drivers.id AND t.status IN ?)",
			[]string{trip.Draft.String(), trip.Dispatched.String()}).
		Delete(&DriverDTO{})
	if result.Error != nil {
		return dberr.Translate("driver", aggregate.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewResourceConflictError("driver", aggregate.ID())
	}
	return nil
}

// GetAllWithExpiredLicense lists drivers whose license expired before now
// and who are not Suspended yet, ordered by id.
func (r *GormDriverRepository) GetAllWithExpiredLicense(ctx context.Context, now time.Time) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).
		Where("license_expiry_date < ? AND status <> ?", now, driver.Suspended.String()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}
