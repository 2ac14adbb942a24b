// Package postgres provides the GORM implementation of the unit of work.
//
// Every command runs inside one database transaction. Repositories obtained
// from a started unit of work share that transaction, and their conditional
// updates (id, version and loaded status in the WHERE clause) make a lost race
// visible as *errs.ResourceConflictError. The partial unique indexes created
// by Migrate back this up at the schema level.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.TripRepository().Update(ctx, t); err != nil {
//	    return err
//	}
//	if err := uow.VehicleRepository().Update(ctx, v); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"fleetflow/internal/adapters/out/postgres/dberr"
	"fleetflow/internal/adapters/out/postgres/driverrepo"
	"fleetflow/internal/adapters/out/postgres/expenserepo"
	"fleetflow/internal/adapters/out/postgres/maintenancerepo"
	"fleetflow/internal/adapters/out/postgres/triprepo"
	"fleetflow/internal/adapters/out/postgres/vehiclerepo"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one connection
// pool. Each instance owns at most one transaction at a time.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts the transaction. Calling Begin twice on the same instance
// keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the transaction's writes durable. Serialization failures
// raised at commit time are reported as conflicts.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil && dberr.IsConflict(err) {
		return errs.NewResourceConflictErrorWithCause("transaction", "commit", err)
	}
	return err
}

// Rollback discards the transaction. It returns gorm.ErrInvalidTransaction
// when nothing is open, which deferred callers ignore after a Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// VehicleRepository returns a repository bound to the current transaction,
// or to the pool when none is open.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn())
}

// DriverRepository returns a repository bound to the current transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn())
}

// TripRepository returns a repository bound to the current transaction.
func (uow *GormUnitOfWork) TripRepository() ports.TripRepository {
	return triprepo.NewGormTripRepository(uow.conn())
}

// MaintenanceLogRepository returns a repository bound to the current transaction.
func (uow *GormUnitOfWork) MaintenanceLogRepository() ports.MaintenanceLogRepository {
	return maintenancerepo.NewGormMaintenanceLogRepository(uow.conn())
}

// ExpenseRepository returns a repository bound to the current transaction.
func (uow *GormUnitOfWork) ExpenseRepository() ports.ExpenseRepository {
	return expenserepo.NewGormExpenseRepository(uow.conn())
}
