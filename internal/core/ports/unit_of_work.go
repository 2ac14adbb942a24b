package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the atomic commit boundary of a command. Writes made through
// its repositories become visible together on Commit or not at all.
// A UnitOfWork and the aggregates loaded through it are single-use.
type UnitOfWork interface {
	// Begin starts the transaction.
	Begin(ctx context.Context) error

	// Commit makes every write visible. A failed conditional write surfaces
	// here or from the repository call as *errs.ResourceConflictError.
	Commit(ctx context.Context) error

	// Rollback discards every write. Calling it after Commit is harmless.
	Rollback(ctx context.Context) error

	VehicleRepository() VehicleRepository
	DriverRepository() DriverRepository
	TripRepository() TripRepository
	MaintenanceLogRepository() MaintenanceLogRepository
	ExpenseRepository() ExpenseRepository
}
