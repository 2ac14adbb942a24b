package trip

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/errs"
	"fleetflow/internal/pkg/guard"
)

// Defaults applied when a trip is created without a route.
const (
	DefaultOrigin      = "Main Hub"
	DefaultDestination = "Delivery Point"
)

var (
	// ErrTripIsNotConstructed is returned when a Trip was not created via NewTrip or RestoreTrip.
	ErrTripIsNotConstructed = errors.New("trip must be created via NewTrip or RestoreTrip")

	// ErrInvalidOdometer is returned for a negative start reading, or an end
	// reading below the start reading.
	ErrInvalidOdometer = errors.New("invalid odometer reading")
)

// Details are the descriptive fields of a trip. Empty route fields fall back
// to DefaultOrigin and DefaultDestination.
type Details struct {
	Origin            string
	Destination       string
	EstimatedFuelCost float64
	Revenue           float64
	CargoDescription  string
}

// Trip is the aggregate root for a single movement of cargo by one vehicle
// and one driver.
type Trip struct {
	id            kernel.UUID
	vehicleID     kernel.UUID
	driverID      kernel.UUID
	cargoWeightKg float64
	details       Details
	status        Status
	startOdometer *float64
	endOdometer   *float64
	tripStartTime *time.Time
	tripEndTime   *time.Time
	createdAt     time.Time

	version      int64
	loadedStatus Status

	guard guard.ConstructorGuard
}

// NewTrip creates a Draft trip. Eligibility of the vehicle and driver is
// checked by the caller before the trip is built.
func NewTrip(
	id kernel.UUID,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	cargoWeightKg float64,
	details Details,
	createdAt time.Time,
) (*Trip, error) {
	t := &Trip{
		status:    Draft,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setIDs(id, vehicleID, driverID),
		t.setCargoWeight(cargoWeightKg),
		t.setDetails(details),
	); err != nil {
		return nil, err
	}

	t.loadedStatus = t.status
	return t, nil
}

// RestoreTrip rebuilds a Trip from persisted state.
func RestoreTrip(
	id kernel.UUID,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	cargoWeightKg float64,
	details Details,
	status Status,
	startOdometer, endOdometer *float64,
	tripStartTime, tripEndTime *time.Time,
	createdAt time.Time,
	version int64,
) (*Trip, error) {
	t := &Trip{
		startOdometer: startOdometer,
		endOdometer:   endOdometer,
		tripStartTime: tripStartTime,
		tripEndTime:   tripEndTime,
		createdAt:     createdAt.UTC(),
		version:       version,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setIDs(id, vehicleID, driverID),
		t.setCargoWeight(cargoWeightKg),
		t.setDetails(details),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	t.status = status
	t.loadedStatus = status
	return t, nil
}

// Validate ensures the trip was built by a constructor.
func (t *Trip) Validate() error {
	if t == nil {
		return ErrTripIsNotConstructed
	}
	return t.guard.Validate(ErrTripIsNotConstructed)
}

func (t *Trip) ID() kernel.UUID           { return t.id }
func (t *Trip) VehicleID() kernel.UUID    { return t.vehicleID }
func (t *Trip) DriverID() kernel.UUID     { return t.driverID }
func (t *Trip) CargoWeightKg() float64    { return t.cargoWeightKg }
func (t *Trip) Details() Details          { return t.details }
func (t *Trip) Status() Status            { return t.status }
func (t *Trip) StartOdometer() *float64   { return t.startOdometer }
func (t *Trip) EndOdometer() *float64     { return t.endOdometer }
func (t *Trip) TripStartTime() *time.Time { return t.tripStartTime }
func (t *Trip) TripEndTime() *time.Time   { return t.tripEndTime }
func (t *Trip) CreatedAt() time.Time      { return t.createdAt }
func (t *Trip) Version() int64            { return t.version }
func (t *Trip) LoadedStatus() Status      { return t.loadedStatus }

// Dispatch moves a Draft trip to Dispatched, recording the start reading and time.
func (t *Trip) Dispatch(startOdometer float64, now time.Time) error {
	next, err := t.status.Dispatch()
	if err != nil {
		return err
	}
	if startOdometer < 0 {
		return fmt.Errorf("%w: start %.1f is negative", ErrInvalidOdometer, startOdometer)
	}

	started := now.UTC()
	t.status = next
	t.startOdometer = &startOdometer
	t.tripStartTime = &started
	return nil
}

// Complete moves a Dispatched trip to Completed. endOdometer must not be
// below the start reading.
func (t *Trip) Complete(endOdometer float64, now time.Time) error {
	next, err := t.status.Complete()
	if err != nil {
		return err
	}
	if t.startOdometer != nil && endOdometer < *t.startOdometer {
		return fmt.Errorf("%w: end %.1f is below start %.1f", ErrInvalidOdometer, endOdometer, *t.startOdometer)
	}

	ended := now.UTC()
	t.status = next
	t.endOdometer = &endOdometer
	t.tripEndTime = &ended
	return nil
}

// Cancel moves a Draft or Dispatched trip to Cancelled. It reports whether
// the trip was Dispatched, in which case its resources must be released.
func (t *Trip) Cancel() (bool, error) {
	wasDispatched := t.status == Dispatched
	next, err := t.status.Cancel()
	if err != nil {
		return false, err
	}
	t.status = next
	return wasDispatched, nil
}

func (t *Trip) setIDs(id, vehicleID, driverID kernel.UUID) error {
	if err := errors.Join(id.Validate(), vehicleID.Validate(), driverID.Validate()); err != nil {
		return err
	}
	t.id = id
	t.vehicleID = vehicleID
	t.driverID = driverID
	return nil
}

func (t *Trip) setCargoWeight(cargoWeightKg float64) error {
	if cargoWeightKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cargoWeightKg", fmt.Errorf("%.1f is negative", cargoWeightKg))
	}
	t.cargoWeightKg = cargoWeightKg
	return nil
}

func (t *Trip) setDetails(d Details) error {
	d.Origin = strings.TrimSpace(d.Origin)
	if d.Origin == "" {
		d.Origin = DefaultOrigin
	}
	d.Destination = strings.TrimSpace(d.Destination)
	if d.Destination == "" {
		d.Destination = DefaultDestination
	}

	var violations []error
	if d.EstimatedFuelCost < 0 {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause(
			"estimatedFuelCost", fmt.Errorf("%.2f is negative", d.EstimatedFuelCost)))
	}
	if d.Revenue < 0 {
		violations = append(violations, errs.NewValueIsInvalidErrorWithCause(
			"revenue", fmt.Errorf("%.2f is negative", d.Revenue)))
	}
	if err := errors.Join(violations...); err != nil {
		return err
	}

	t.details = d
	return nil
}
