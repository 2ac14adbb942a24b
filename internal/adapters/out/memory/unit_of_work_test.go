package memory_test

import (
	"testing"
	"time"

	"fleetflow/internal/adapters/out/memory"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func seedVehicle(t *testing.T, store *memory.Store) *vehicle.Vehicle {
	t.Helper()
	ctx := t.Context()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "V1", "P-1", 5000, 100)
	require.NoError(t, err)

	uow := store.UnitOfWorkFactory().Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.VehicleRepository().Add(ctx, v))
	require.NoError(t, uow.Commit(ctx))
	return v
}

func TestUnitOfWork_VersionedUpdate(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	seeded := seedVehicle(t, store)
	factory := store.UnitOfWorkFactory()

	first := factory.Create()
	second := factory.Create()
	require.NoError(t, first.Begin(ctx))
	require.NoError(t, second.Begin(ctx))

	v1, err := first.VehicleRepository().Get(ctx, seeded.ID())
	require.NoError(t, err)
	v2, err := second.VehicleRepository().Get(ctx, seeded.ID())
	require.NoError(t, err)

	require.NoError(t, v1.Retire())
	require.NoError(t, first.VehicleRepository().Update(ctx, v1))
	require.NoError(t, first.Commit(ctx))

	require.NoError(t, v2.Retire())
	err = second.VehicleRepository().Update(ctx, v2)
	require.ErrorIs(t, err, errs.ErrResourceConflict)

	reader := factory.Create()
	require.NoError(t, reader.Begin(ctx))
	stored, err := reader.VehicleRepository().Get(ctx, seeded.ID())
	require.NoError(t, err)
	assert.Equal(t, vehicle.OutOfService, stored.Status())
	assert.Equal(t, int64(1), stored.Version())
}

func TestUnitOfWork_CommitIsAllOrNothing(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	seeded := seedVehicle(t, store)
	factory := store.UnitOfWorkFactory()

	stale := factory.Create()
	require.NoError(t, stale.Begin(ctx))
	staleVehicle, err := stale.VehicleRepository().Get(ctx, seeded.ID())
	require.NoError(t, err)

	d, err := driver.NewDriver(kernel.NewUUID(), "D1", "L-1", now.AddDate(1, 0, 0), 90, now)
	require.NoError(t, err)
	require.NoError(t, stale.DriverRepository().Add(ctx, d))
	require.NoError(t, staleVehicle.Retire())
	require.NoError(t, stale.VehicleRepository().Update(ctx, staleVehicle))

	// another writer moves the vehicle before the stale unit commits
	winner := factory.Create()
	require.NoError(t, winner.Begin(ctx))
	v, err := winner.VehicleRepository().Get(ctx, seeded.ID())
	require.NoError(t, err)
	_, err = v.SendToShop()
	require.NoError(t, err)
	require.NoError(t, winner.VehicleRepository().Update(ctx, v))
	require.NoError(t, winner.Commit(ctx))

	err = stale.Commit(ctx)
	require.ErrorIs(t, err, errs.ErrResourceConflict)

	reader := factory.Create()
	require.NoError(t, reader.Begin(ctx))
	_, err = reader.DriverRepository().Get(ctx, d.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound, "driver add must be rolled back with the failed vehicle write")
}

func TestUnitOfWork_Rollback(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	uow := store.UnitOfWorkFactory().Create()

	require.ErrorIs(t, uow.Rollback(ctx), memory.ErrNoTransaction)

	require.NoError(t, uow.Begin(ctx))
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "V1", "P-1", 5000, 100)
	require.NoError(t, err)
	require.NoError(t, uow.VehicleRepository().Add(ctx, v))
	require.NoError(t, uow.Rollback(ctx))

	reader := store.UnitOfWorkFactory().Create()
	require.NoError(t, reader.Begin(ctx))
	_, err = reader.VehicleRepository().Get(ctx, v.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestUnitOfWork_OneDispatchedTripPerVehicle(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	vehicleID := kernel.NewUUID()

	addDispatched := func() error {
		tr, err := trip.RestoreTrip(kernel.NewUUID(), vehicleID, kernel.NewUUID(), 1, trip.Details{},
			trip.Dispatched, nil, nil, nil, nil, now, 0)
		require.NoError(t, err)

		uow := store.UnitOfWorkFactory().Create()
		require.NoError(t, uow.Begin(ctx))
		require.NoError(t, uow.TripRepository().Add(ctx, tr))
		return uow.Commit(ctx)
	}

	require.NoError(t, addDispatched())
	require.ErrorIs(t, addDispatched(), errs.ErrResourceConflict)
}

func TestMaintenanceRepository_GetPendingByVehicle(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	vehicleID := kernel.NewUUID()

	uow := store.UnitOfWorkFactory().Create()
	require.NoError(t, uow.Begin(ctx))
	_, err := uow.MaintenanceLogRepository().GetPendingByVehicle(ctx, vehicleID)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	l, err := maintenance.NewMaintenanceLog(kernel.NewUUID(), vehicleID, "brakes", 10, now, vehicle.Available)
	require.NoError(t, err)
	require.NoError(t, uow.MaintenanceLogRepository().Add(ctx, l))
	require.NoError(t, uow.Commit(ctx))

	reader := store.UnitOfWorkFactory().Create()
	require.NoError(t, reader.Begin(ctx))
	found, err := reader.MaintenanceLogRepository().GetPendingByVehicle(ctx, vehicleID)
	require.NoError(t, err)
	assert.True(t, found.ID().IsEqual(l.ID()))
}

func TestUnitOfWork_DeleteRefusedOnceATripReferencesTheVehicle(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	seeded := seedVehicle(t, store)
	factory := store.UnitOfWorkFactory()

	deleter := factory.Create()
	require.NoError(t, deleter.Begin(ctx))
	v, err := deleter.VehicleRepository().Get(ctx, seeded.ID())
	require.NoError(t, err)
	require.NoError(t, deleter.VehicleRepository().Delete(ctx, v))

	creator := factory.Create()
	require.NoError(t, creator.Begin(ctx))
	draft, err := trip.NewTrip(kernel.NewUUID(), seeded.ID(), kernel.NewUUID(), 10, trip.Details{}, now)
	require.NoError(t, err)
	require.NoError(t, creator.TripRepository().Add(ctx, draft))
	require.NoError(t, creator.Commit(ctx))

	err = deleter.Commit(ctx)
	require.ErrorIs(t, err, errs.ErrResourceConflict)
	require.ErrorIs(t, err, vehicle.ErrVehicleHasActiveTrips)

	reader := factory.Create()
	require.NoError(t, reader.Begin(ctx))
	_, err = reader.VehicleRepository().Get(ctx, seeded.ID())
	require.NoError(t, err, "the vehicle survives")
	n, err := reader.TripRepository().CountActiveByVehicle(ctx, seeded.ID())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUnitOfWork_DeleteStaleVehicle(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	seeded := seedVehicle(t, store)
	factory := store.UnitOfWorkFactory()

	deleter := factory.Create()
	require.NoError(t, deleter.Begin(ctx))
	v, err := deleter.VehicleRepository().Get(ctx, seeded.ID())
	require.NoError(t, err)

	retirer := factory.Create()
	require.NoError(t, retirer.Begin(ctx))
	r, err := retirer.VehicleRepository().Get(ctx, seeded.ID())
	require.NoError(t, err)
	require.NoError(t, r.Retire())
	require.NoError(t, retirer.VehicleRepository().Update(ctx, r))
	require.NoError(t, retirer.Commit(ctx))

	require.ErrorIs(t, deleter.VehicleRepository().Delete(ctx, v), errs.ErrResourceConflict)
}

func TestUnitOfWork_ExpenseRoundTrip(t *testing.T) {
	ctx := t.Context()
	store := memory.NewStore()
	seeded := seedVehicle(t, store)
	factory := store.UnitOfWorkFactory()

	litres := 40.0
	e, err := expense.NewExpense(kernel.NewUUID(), seeded.ID(), expense.Fuel, 3600, now,
		expense.Details{Quantity: &litres, Unit: "Litres"})
	require.NoError(t, err)

	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.ExpenseRepository().Add(ctx, e))
	require.NoError(t, uow.Commit(ctx))

	reader := factory.Create()
	require.NoError(t, reader.Begin(ctx))
	stored, err := reader.ExpenseRepository().Get(ctx, e.ID())
	require.NoError(t, err)
	assert.Equal(t, expense.Fuel, stored.Category())
	assert.Equal(t, 3600.0, stored.Amount())
	require.NotNil(t, stored.Quantity())
	assert.Equal(t, 40.0, *stored.Quantity())
	assert.Nil(t, stored.TripID())

	_, err = reader.ExpenseRepository().Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
