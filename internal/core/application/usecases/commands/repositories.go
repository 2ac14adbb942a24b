// Package commands contains the write operations of the fleet engine.
// Every handler follows the same shape: validate the command, open a unit of
// work, load snapshots, let the domain services mutate them, write every
// changed aggregate with a conditional update, commit, then publish events.
package commands

import (
	"context"

	"fleetflow/internal/core/ports"
)

// Unit of work views narrowed to the repositories each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	MaintenanceRepoFactory interface {
		MaintenanceLogRepository() ports.MaintenanceLogRepository
	}

	ExpenseRepoFactory interface {
		ExpenseRepository() ports.ExpenseRepository
	}

	// TripUoW spans a trip and the vehicle and driver it references.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer uow.Rollback(ctx)
	//
	//   // load, mutate, update trip, vehicle and driver
	//
	//   return uow.Commit(ctx)
	TripUoW interface {
		TxManager
		TripRepoFactory
		VehicleRepoFactory
		DriverRepoFactory
	}

	TripUoWFactory interface {
		Create() TripUoW
	}

	// MaintenanceUoW spans maintenance logs and vehicles.
	MaintenanceUoW interface {
		TxManager
		MaintenanceRepoFactory
		VehicleRepoFactory
	}

	MaintenanceUoWFactory interface {
		Create() MaintenanceUoW
	}

	// DriverUoW is used by driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// VehicleUoW is used by vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// VehicleRemovalUoW sees everything that can still reference a vehicle.
	VehicleRemovalUoW interface {
		TxManager
		VehicleRepoFactory
		TripRepoFactory
		MaintenanceRepoFactory
	}

	VehicleRemovalUoWFactory interface {
		Create() VehicleRemovalUoW
	}

	// DriverRemovalUoW sees the driver and the trips referencing it.
	DriverRemovalUoW interface {
		TxManager
		DriverRepoFactory
		TripRepoFactory
	}

	DriverRemovalUoWFactory interface {
		Create() DriverRemovalUoW
	}

	// ExpenseUoW books expenses against vehicles and trips.
	ExpenseUoW interface {
		TxManager
		ExpenseRepoFactory
		VehicleRepoFactory
		TripRepoFactory
	}

	ExpenseUoWFactory interface {
		Create() ExpenseUoW
	}
)
