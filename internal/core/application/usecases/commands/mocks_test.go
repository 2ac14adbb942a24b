package commands_test

import (
	"context"
	"time"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTripRepository struct{ mock.Mock }

func (m *MockTripRepository) Add(ctx context.Context, t *trip.Trip) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTripRepository) Update(ctx context.Context, t *trip.Trip) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTripRepository) Get(ctx context.Context, id kernel.UUID) (*trip.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trip.Trip), args.Error(1)
}

func (m *MockTripRepository) CountActiveByVehicle(ctx context.Context, vehicleID kernel.UUID) (int, error) {
	args := m.Called(ctx, vehicleID)
	return args.Int(0), args.Error(1)
}

func (m *MockTripRepository) CountActiveByDriver(ctx context.Context, driverID kernel.UUID) (int, error) {
	args := m.Called(ctx, driverID)
	return args.Int(0), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, v *vehicle.Vehicle) error {
	return m.Called(ctx, v).Error(0)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllWithExpiredLicense(ctx context.Context, now time.Time) ([]*driver.Driver, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) Delete(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

type MockTripUoW struct{ mock.Mock }

func (m *MockTripUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockTripUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockTripUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockTripUoW) TripRepository() ports.TripRepository {
	return m.Called().Get(0).(ports.TripRepository)
}

func (m *MockTripUoW) VehicleRepository() ports.VehicleRepository {
	return m.Called().Get(0).(ports.VehicleRepository)
}

func (m *MockTripUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

type MockTripUoWFactory struct{ mock.Mock }

func (m *MockTripUoWFactory) Create() commands.TripUoW {
	return m.Called().Get(0).(commands.TripUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...kernel.Event) {
	m.Called(ctx, events)
}
