package commands

import (
	"context"
	"errors"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/errs"
)

// vehicleOrNil loads a vehicle snapshot, mapping "not found" to nil so the
// eligibility validator can report it next to the other violations.
func vehicleOrNil(ctx context.Context, repo ports.VehicleRepository, id kernel.UUID) (*vehicle.Vehicle, error) {
	v, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return v, err
}

func driverOrNil(ctx context.Context, repo ports.DriverRepository, id kernel.UUID) (*driver.Driver, error) {
	d, err := repo.Get(ctx, id)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return d, err
}
