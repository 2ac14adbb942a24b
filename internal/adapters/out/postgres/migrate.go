package postgres

import (
	"fleetflow/internal/adapters/out/postgres/driverrepo"
	"fleetflow/internal/adapters/out/postgres/expenserepo"
	"fleetflow/internal/adapters/out/postgres/maintenancerepo"
	"fleetflow/internal/adapters/out/postgres/triprepo"
	"fleetflow/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// exclusivityIndexes enforce that a vehicle or driver is held by at most one
// Dispatched trip and that a vehicle has at most one Pending maintenance log.
var exclusivityIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_trips_dispatched_vehicle
		ON trips (vehicle_id) WHERE status = 'Dispatched'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_trips_dispatched_driver
		ON trips (driver_id) WHERE status = 'Dispatched'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_maintenance_logs_pending_vehicle
		ON maintenance_logs (vehicle_id) WHERE status = 'Pending'`,
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&vehiclerepo.VehicleDTO{},
		&driverrepo.DriverDTO{},
		&triprepo.TripDTO{},
		&maintenancerepo.MaintenanceLogDTO{},
		&expenserepo.ExpenseDTO{},
	); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range exclusivityIndexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
