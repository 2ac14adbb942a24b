package commands_test

import (
	"errors"
	"testing"
	"time"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/pkg/clock"
	"fleetflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchFixture struct {
	trip    *trip.Trip
	vehicle *vehicle.Vehicle
	driver  *driver.Driver

	tripRepo    *MockTripRepository
	vehicleRepo *MockVehicleRepository
	driverRepo  *MockDriverRepository
	uow         *MockTripUoW
	factory     *MockTripUoWFactory
	publisher   *MockEventPublisher
	handler     commands.DispatchTripCommandHandler
}

func newDispatchFixture(t *testing.T) *dispatchFixture {
	t.Helper()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	v, err := vehicle.NewVehicle(kernel.NewUUID(), "V1", "P-1", 5000, 1000)
	require.NoError(t, err)
	d, err := driver.NewDriver(kernel.NewUUID(), "D1", "L-1", now.AddDate(1, 0, 0), 90, now)
	require.NoError(t, err)
	tr, err := trip.NewTrip(kernel.NewUUID(), v.ID(), d.ID(), 4000, trip.Details{}, now)
	require.NoError(t, err)

	validator, err := services.NewEligibilityValidator()
	require.NoError(t, err)

	f := &dispatchFixture{
		trip:        tr,
		vehicle:     v,
		driver:      d,
		tripRepo:    new(MockTripRepository),
		vehicleRepo: new(MockVehicleRepository),
		driverRepo:  new(MockDriverRepository),
		uow:         new(MockTripUoW),
		factory:     new(MockTripUoWFactory),
		publisher:   new(MockEventPublisher),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.handler = commands.NewDispatchTripCommandHandler(
		f.factory,
		services.NewTripLifecycle(validator),
		clock.NewManual(now),
		f.publisher,
	)
	return f
}

func TestDispatchTripCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newDispatchFixture(t)
	cmd, err := commands.NewDispatchTripCommand(f.trip.ID(), 1000)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("TripRepository").Return(f.tripRepo).Once(),
		f.uow.On("VehicleRepository").Return(f.vehicleRepo).Once(),
		f.uow.On("DriverRepository").Return(f.driverRepo).Once(),
		f.tripRepo.On("Get", ctx, f.trip.ID()).Return(f.trip, nil).Once(),
		f.vehicleRepo.On("Get", ctx, f.vehicle.ID()).Return(f.vehicle, nil).Once(),
		f.driverRepo.On("Get", ctx, f.driver.ID()).Return(f.driver, nil).Once(),
		f.tripRepo.On("Update", ctx, f.trip).Return(nil).Once(),
		f.vehicleRepo.On("Update", ctx, f.vehicle).Return(nil).Once(),
		f.driverRepo.On("Update", ctx, f.driver).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.publisher.On("Publish", ctx, mock.MatchedBy(func(events []kernel.Event) bool {
			return len(events) == 1 && events[0].Type == kernel.EventTripDispatched
		})).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	dispatched, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, trip.Dispatched, dispatched.Status())
	assert.Equal(t, vehicle.OnTrip, f.vehicle.Status())
	assert.Equal(t, driver.OnDuty, f.driver.Status())
	f.uow.AssertExpectations(t)
	f.tripRepo.AssertExpectations(t)
	f.vehicleRepo.AssertExpectations(t)
	f.driverRepo.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestDispatchTripCommandHandler_Handle_NotConstructed(t *testing.T) {
	f := newDispatchFixture(t)

	_, err := f.handler.Handle(t.Context(), commands.DispatchTripCommand{})

	require.ErrorIs(t, err, commands.ErrDispatchTripCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}

func TestDispatchTripCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newDispatchFixture(t)
	cmd, _ := commands.NewDispatchTripCommand(f.trip.ID(), 1000)

	f.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	_, err := f.handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	f.uow.AssertNotCalled(t, "TripRepository")
}

func TestDispatchTripCommandHandler_Handle_TripNotFound(t *testing.T) {
	ctx := t.Context()
	f := newDispatchFixture(t)
	cmd, _ := commands.NewDispatchTripCommand(f.trip.ID(), 1000)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("TripRepository").Return(f.tripRepo).Once(),
		f.uow.On("VehicleRepository").Return(f.vehicleRepo).Once(),
		f.uow.On("DriverRepository").Return(f.driverRepo).Once(),
		f.tripRepo.On("Get", ctx, f.trip.ID()).Return(nil, errs.NewObjectNotFoundError("trip", f.trip.ID())).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.uow.AssertNotCalled(t, "Commit", ctx)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDispatchTripCommandHandler_Handle_ConflictOnUpdate(t *testing.T) {
	ctx := t.Context()
	f := newDispatchFixture(t)
	cmd, _ := commands.NewDispatchTripCommand(f.trip.ID(), 1000)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("TripRepository").Return(f.tripRepo).Once(),
		f.uow.On("VehicleRepository").Return(f.vehicleRepo).Once(),
		f.uow.On("DriverRepository").Return(f.driverRepo).Once(),
		f.tripRepo.On("Get", ctx, f.trip.ID()).Return(f.trip, nil).Once(),
		f.vehicleRepo.On("Get", ctx, f.vehicle.ID()).Return(f.vehicle, nil).Once(),
		f.driverRepo.On("Get", ctx, f.driver.ID()).Return(f.driver, nil).Once(),
		f.tripRepo.On("Update", ctx, f.trip).Return(nil).Once(),
		f.vehicleRepo.On("Update", ctx, f.vehicle).
			Return(errs.NewResourceConflictError("vehicle", f.vehicle.ID())).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrResourceConflict)
	f.driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", ctx)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDispatchTripCommandHandler_Handle_CapacityIsRevalidated(t *testing.T) {
	ctx := t.Context()
	f := newDispatchFixture(t)
	cmd, _ := commands.NewDispatchTripCommand(f.trip.ID(), 1000)

	// capacity changed after the trip was drafted
	smaller, err := vehicle.RestoreVehicle(f.vehicle.ID(), "V1", "P-1", 3000, 1000, vehicle.Available, nil, 2)
	require.NoError(t, err)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.uow.On("TripRepository").Return(f.tripRepo).Once(),
		f.uow.On("VehicleRepository").Return(f.vehicleRepo).Once(),
		f.uow.On("DriverRepository").Return(f.driverRepo).Once(),
		f.tripRepo.On("Get", ctx, f.trip.ID()).Return(f.trip, nil).Once(),
		f.vehicleRepo.On("Get", ctx, f.vehicle.ID()).Return(smaller, nil).Once(),
		f.driverRepo.On("Get", ctx, f.driver.ID()).Return(f.driver, nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err = f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrCapacityExceeded)
	assert.True(t, errs.IsValidation(err))
	f.tripRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
