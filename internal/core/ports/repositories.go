// Package ports defines the contracts between the fleet domain and its
// infrastructure: repositories, the unit of work and the event publisher.
//
// Every repository Update is a conditional write. It succeeds only if the
// stored record still carries the version and status the aggregate was loaded
// with, and fails with *errs.ResourceConflictError otherwise. Get returns
// *errs.ObjectNotFoundError for unknown identifiers. Delete is conditional in
// the same way and also refuses records still referenced by a Draft or
// Dispatched trip.
package ports

import (
	"context"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
)

// VehicleRepository persists Vehicle aggregates.
type VehicleRepository interface {
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// Delete removes the vehicle. It also fails with a conflict while the
	// vehicle has an active trip or a Pending maintenance log.
	Delete(ctx context.Context, aggregate *vehicle.Vehicle) error
}

// DriverRepository persists Driver aggregates.
type DriverRepository interface {
	Add(ctx context.Context, aggregate *driver.Driver) error
	Update(ctx context.Context, aggregate *driver.Driver) error
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// Delete removes the driver. It also fails with a conflict while the
	// driver has an active trip.
	Delete(ctx context.Context, aggregate *driver.Driver) error

	// GetAllWithExpiredLicense returns drivers whose license expired before
	// now and who are not Suspended yet.
	GetAllWithExpiredLicense(ctx context.Context, now time.Time) ([]*driver.Driver, error)
}

// TripRepository persists Trip aggregates.
type TripRepository interface {
	Add(ctx context.Context, aggregate *trip.Trip) error
	Update(ctx context.Context, aggregate *trip.Trip) error
	Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error)

	// CountActiveByVehicle and CountActiveByDriver count Draft and Dispatched
	// trips referencing the resource.
	CountActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) (int, error)
	CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int, error)
}

// MaintenanceLogRepository persists MaintenanceLog aggregates.
type MaintenanceLogRepository interface {
	Add(ctx context.Context, aggregate *maintenance.MaintenanceLog) error
	Update(ctx context.Context, aggregate *maintenance.MaintenanceLog) error
	Get(ctx context.Context, id kernel.UUID) (*maintenance.MaintenanceLog, error)

	// GetPendingByVehicle returns the open log of a vehicle, or
	// *errs.ObjectNotFoundError when the vehicle has none.
	GetPendingByVehicle(ctx context.Context, vehicleID kernel.UUID) (*maintenance.MaintenanceLog, error)
}

// ExpenseRepository persists Expense aggregates. Expenses are append-only.
type ExpenseRepository interface {
	Add(ctx context.Context, aggregate *expense.Expense) error
	Get(ctx context.Context, id kernel.UUID) (*expense.Expense, error)
}
