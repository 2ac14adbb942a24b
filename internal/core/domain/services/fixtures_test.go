package services_test

import (
	"testing"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newVehicle(t *testing.T, capacity float64) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(kernel.NewUUID(), "V1", "PLATE-1", capacity, 1000)
	require.NoError(t, err)
	return v
}

func newDriver(t *testing.T, expiry time.Time) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "D1", "LIC-1", expiry, 90, now)
	require.NoError(t, err)
	return d
}

func newLifecycle(t *testing.T) services.TripLifecycle {
	t.Helper()
	validator, err := services.NewEligibilityValidator()
	require.NoError(t, err)
	return services.NewTripLifecycle(validator)
}

func newDraftTrip(t *testing.T, v *vehicle.Vehicle, d *driver.Driver, cargo float64) *trip.Trip {
	t.Helper()
	tr, err := newLifecycle(t).Create(kernel.NewUUID(), services.EligibilityRequest{
		VehicleID:     v.ID(),
		Vehicle:       v,
		DriverID:      d.ID(),
		Driver:        d,
		CargoWeightKg: cargo,
	}, trip.Details{}, now)
	require.NoError(t, err)
	return tr
}
