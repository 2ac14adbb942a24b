package services

import (
	"errors"
	"fmt"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/pkg/errs"
)

// Release describes which resources a completed or cancelled trip actually
// freed. A resource claimed by another trip is never touched.
type Release struct {
	Vehicle bool
	Driver  bool
}

// TripLifecycle applies the linked three-entity transitions of a trip.
// Every method either mutates all snapshots consistently or returns an
// error; on error the snapshots must be discarded.
//
// Example:
//
//	lifecycle := services.NewTripLifecycle(validator)
//	if err := lifecycle.Dispatch(t, v, d, 12000, clock.Now()); err != nil {
//	    return err // nothing is persisted
//	}
//	// persist t, v and d in one unit of work
type TripLifecycle struct {
	eligibility EligibilityValidator
}

// NewTripLifecycle creates a TripLifecycle using eligibility for the
// create-time and dispatch-time checks.
func NewTripLifecycle(eligibility EligibilityValidator) TripLifecycle {
	return TripLifecycle{eligibility: eligibility}
}

// Create validates the request and returns a new Draft trip. Field errors
// and eligibility violations are reported together in an *errs.ValidationError.
func (l TripLifecycle) Create(
	id kernel.UUID,
	req EligibilityRequest,
	details trip.Details,
	now time.Time,
) (*trip.Trip, error) {
	violations := l.eligibility.Validate(req, now).Violations

	t, err := trip.NewTrip(id, req.VehicleID, req.DriverID, req.CargoWeightKg, details, now)
	if err != nil {
		violations = append(violations, err)
	}

	if err := errs.NewValidationError(violations...); err != nil {
		return nil, err
	}
	return t, nil
}

// Dispatch moves a Draft trip to Dispatched and claims its vehicle and driver.
//
// The resource state is re-validated against the snapshots:
//   - a vehicle or driver that is no longer free yields *errs.ResourceConflictError
//     wrapping the full *errs.ValidationError
//   - capacity or license violations yield *errs.ValidationError
//   - a start reading below the vehicle odometer yields trip.ErrInvalidOdometer
func (l TripLifecycle) Dispatch(
	t *trip.Trip,
	v *vehicle.Vehicle,
	d *driver.Driver,
	startOdometer float64,
	now time.Time,
) error {
	if _, err := t.Status().Dispatch(); err != nil {
		return err
	}

	eligibility := l.eligibility.Validate(EligibilityRequest{
		VehicleID:     t.VehicleID(),
		Vehicle:       v,
		DriverID:      t.DriverID(),
		Driver:        d,
		CargoWeightKg: t.CargoWeightKg(),
	}, now)
	if eligibility.HasAvailabilityViolation() {
		return conflictFor(eligibility, v, d)
	}
	if !eligibility.OK() {
		return eligibility.Err()
	}

	if startOdometer < v.CurrentOdometer() {
		return fmt.Errorf("%w: start %.1f is below vehicle odometer %.1f",
			trip.ErrInvalidOdometer, startOdometer, v.CurrentOdometer())
	}

	if err := t.Dispatch(startOdometer, now); err != nil {
		return err
	}
	if err := v.Claim(t.ID(), startOdometer); err != nil {
		return errs.NewResourceConflictErrorWithCause("vehicle", v.ID(), err)
	}
	if err := d.Claim(t.ID()); err != nil {
		return errs.NewResourceConflictErrorWithCause("driver", d.ID(), err)
	}
	return nil
}

// Complete moves a Dispatched trip to Completed, advances the vehicle
// odometer and credits the driver. Resources held by another trip are left
// alone.
func (l TripLifecycle) Complete(
	t *trip.Trip,
	v *vehicle.Vehicle,
	d *driver.Driver,
	endOdometer float64,
	now time.Time,
) (Release, error) {
	if err := t.Complete(endOdometer, now); err != nil {
		return Release{}, err
	}

	vehicleReleased, err := v.Release(t.ID(), &endOdometer)
	if err != nil {
		if errors.Is(err, vehicle.ErrOdometerDecrease) {
			return Release{}, fmt.Errorf("%w: %w", trip.ErrInvalidOdometer, err)
		}
		return Release{}, err
	}

	return Release{
		Vehicle: vehicleReleased,
		Driver:  d.Release(t.ID(), true),
	}, nil
}

// Cancel moves a Draft or Dispatched trip to Cancelled. Only a dispatched
// trip releases resources, and only those it still holds.
func (l TripLifecycle) Cancel(t *trip.Trip, v *vehicle.Vehicle, d *driver.Driver) (Release, error) {
	wasDispatched, err := t.Cancel()
	if err != nil {
		return Release{}, err
	}
	if !wasDispatched {
		return Release{}, nil
	}

	vehicleReleased, err := v.Release(t.ID(), nil)
	if err != nil {
		return Release{}, err
	}

	return Release{
		Vehicle: vehicleReleased,
		Driver:  d.Release(t.ID(), false),
	}, nil
}

func conflictFor(eligibility Eligibility, v *vehicle.Vehicle, d *driver.Driver) error {
	for _, violation := range eligibility.Violations {
		if errors.Is(violation, ErrVehicleUnavailable) {
			return errs.NewResourceConflictErrorWithCause("vehicle", v.ID(), eligibility.Err())
		}
	}
	return errs.NewResourceConflictErrorWithCause("driver", d.ID(), eligibility.Err())
}
