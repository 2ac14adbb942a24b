package commands_test

import (
	"testing"
	"time"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_DeleteVehicle(t *testing.T) {
	t.Run("idle vehicle is removed", func(t *testing.T) {
		e := newEngine(t)
		vehicleID := e.addVehicle(t, 5000, 0)

		require.NoError(t, e.removeVehicle(t, vehicleID))

		require.ErrorIs(t, e.removeVehicle(t, vehicleID), errs.ErrObjectNotFound)
		assert.Contains(t, e.publisher.types(), kernel.EventVehicleDeleted)
	})

	t.Run("draft trip blocks removal until cancelled", func(t *testing.T) {
		e := newEngine(t)
		vehicleID := e.addVehicle(t, 5000, 0)
		tripID := e.mustCreate(t, vehicleID, e.addDriver(t, engineStart.AddDate(1, 0, 0)), 100)

		require.ErrorIs(t, e.removeVehicle(t, vehicleID), vehicle.ErrVehicleHasActiveTrips)

		_, err := e.cancel(t, tripID)
		require.NoError(t, err)
		require.NoError(t, e.removeVehicle(t, vehicleID))
	})

	t.Run("dispatched vehicle is in use", func(t *testing.T) {
		e := newEngine(t)
		vehicleID := e.addVehicle(t, 5000, 0)
		tripID := e.mustCreate(t, vehicleID, e.addDriver(t, engineStart.AddDate(1, 0, 0)), 100)
		_, err := e.dispatch(t.Context(), tripID, 0)
		require.NoError(t, err)

		require.ErrorIs(t, e.removeVehicle(t, vehicleID), vehicle.ErrVehicleInUse)
		assert.Equal(t, vehicle.OnTrip, e.vehicle(t, vehicleID).Status())
	})

	t.Run("completed trips do not block removal", func(t *testing.T) {
		e := newEngine(t)
		vehicleID := e.addVehicle(t, 5000, 0)
		tripID := e.mustCreate(t, vehicleID, e.addDriver(t, engineStart.AddDate(1, 0, 0)), 100)
		_, err := e.dispatch(t.Context(), tripID, 0)
		require.NoError(t, err)
		_, err = e.complete(t, tripID, 40)
		require.NoError(t, err)

		require.NoError(t, e.removeVehicle(t, vehicleID))
		assert.Equal(t, trip.Completed, e.trip(t, tripID).Status(), "history is kept")
	})

	t.Run("open maintenance blocks removal", func(t *testing.T) {
		e := newEngine(t)
		vehicleID := e.addVehicle(t, 5000, 0)
		open, err := commands.NewOpenMaintenanceCommand(kernel.NewUUID(), vehicleID, "clutch", 900, time.Time{})
		require.NoError(t, err)
		_, err = e.openMaintenance.Handle(t.Context(), open)
		require.NoError(t, err)

		require.ErrorIs(t, e.removeVehicle(t, vehicleID), vehicle.ErrVehicleInShop)
	})
}

func TestScenario_DeleteDriver(t *testing.T) {
	t.Run("draft trip blocks removal", func(t *testing.T) {
		e := newEngine(t)
		driverID := e.addDriver(t, engineStart.AddDate(1, 0, 0))
		e.mustCreate(t, e.addVehicle(t, 5000, 0), driverID, 100)

		require.ErrorIs(t, e.removeDriver(t, driverID), driver.ErrDriverHasActiveTrips)
		assert.Equal(t, driver.Available, e.driver(t, driverID).Status())
	})

	t.Run("driver on a dispatched trip is refused", func(t *testing.T) {
		e := newEngine(t)
		driverID := e.addDriver(t, engineStart.AddDate(1, 0, 0))
		tripID := e.mustCreate(t, e.addVehicle(t, 5000, 0), driverID, 100)
		_, err := e.dispatch(t.Context(), tripID, 0)
		require.NoError(t, err)

		require.ErrorIs(t, e.removeDriver(t, driverID), driver.ErrDriverOnTrip)
	})

	t.Run("idle driver is removed", func(t *testing.T) {
		e := newEngine(t)
		driverID := e.addDriver(t, engineStart.AddDate(1, 0, 0))

		require.NoError(t, e.removeDriver(t, driverID))
		assert.Equal(t, []string{kernel.EventDriverDeleted}, e.publisher.types())
	})
}

func TestScenario_CancelDraftWhoseVehicleIsGone(t *testing.T) {
	e := newEngine(t)

	// a draft left behind by a delete that raced its creation
	orphan, err := trip.NewTrip(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 100, trip.Details{}, engineStart)
	require.NoError(t, err)
	uow := e.store.UnitOfWorkFactory().Create()
	require.NoError(t, uow.Begin(t.Context()))
	require.NoError(t, uow.TripRepository().Add(t.Context(), orphan))
	require.NoError(t, uow.Commit(t.Context()))

	_, err = e.dispatch(t.Context(), orphan.ID(), 0)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	cancelled, err := e.cancel(t, orphan.ID())
	require.NoError(t, err)
	assert.Equal(t, trip.Cancelled, cancelled.Status())
}

func TestScenario_RecordExpense(t *testing.T) {
	t.Run("fuel bought on a trip", func(t *testing.T) {
		e := newEngine(t)
		vehicleID := e.addVehicle(t, 5000, 0)
		tripID := e.mustCreate(t, vehicleID, e.addDriver(t, engineStart.AddDate(1, 0, 0)), 100)
		litres := 45.0

		cmd, err := commands.NewRecordExpenseCommand(kernel.NewUUID(), vehicleID, expense.Fuel, 4000,
			engineStart, expense.Details{TripID: &tripID, Quantity: &litres, Unit: "Litres"})
		require.NoError(t, err)
		recorded, err := e.recordExpense.Handle(t.Context(), cmd)
		require.NoError(t, err)

		assert.Equal(t, expense.Fuel, recorded.Category())
		require.NotNil(t, recorded.TripID())
		assert.True(t, recorded.TripID().IsEqual(tripID))
		assert.Contains(t, e.publisher.types(), kernel.EventExpenseRecorded)
	})

	t.Run("expense date defaults to now", func(t *testing.T) {
		e := newEngine(t)
		cmd, err := commands.NewRecordExpenseCommand(kernel.NewUUID(), e.addVehicle(t, 5000, 0), expense.Toll, 80,
			time.Time{}, expense.Details{})
		require.NoError(t, err)

		recorded, err := e.recordExpense.Handle(t.Context(), cmd)
		require.NoError(t, err)
		assert.Equal(t, engineStart, recorded.ExpenseDate())
	})

	t.Run("unknown vehicle", func(t *testing.T) {
		e := newEngine(t)
		cmd, err := commands.NewRecordExpenseCommand(kernel.NewUUID(), kernel.NewUUID(), expense.Toll, 120,
			engineStart, expense.Details{})
		require.NoError(t, err)

		_, err = e.recordExpense.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("trip of another vehicle", func(t *testing.T) {
		e := newEngine(t)
		tripID := e.mustCreate(t, e.addVehicle(t, 5000, 0), e.addDriver(t, engineStart.AddDate(1, 0, 0)), 100)
		other := e.addVehicle(t, 5000, 0)

		cmd, err := commands.NewRecordExpenseCommand(kernel.NewUUID(), other, expense.Repair, 700,
			engineStart, expense.Details{TripID: &tripID})
		require.NoError(t, err)

		_, err = e.recordExpense.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, expense.ErrTripOfAnotherVehicle)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("non positive amount", func(t *testing.T) {
		e := newEngine(t)
		cmd, err := commands.NewRecordExpenseCommand(kernel.NewUUID(), e.addVehicle(t, 5000, 0), expense.Other, 0,
			engineStart, expense.Details{})
		require.NoError(t, err)

		_, err = e.recordExpense.Handle(t.Context(), cmd)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
