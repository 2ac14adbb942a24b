package vehicle

import (
	"errors"
	"fmt"
	"strings"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/errs"
	"fleetflow/internal/pkg/guard"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle was not created via NewVehicle or RestoreVehicle.
	ErrVehicleIsNotConstructed = errors.New("vehicle must be created via NewVehicle or RestoreVehicle")

	// ErrVehicleInUse is returned when an operation needs the vehicle idle but it is on a trip.
	ErrVehicleInUse = errors.New("vehicle is in use by a dispatched trip")

	// ErrVehicleClaimed is returned when a vehicle already claimed by a trip is claimed again.
	ErrVehicleClaimed = errors.New("vehicle is already claimed by a trip")

	// ErrOdometerDecrease is returned when an odometer reading is lower than the current one.
	ErrOdometerDecrease = errors.New("odometer cannot decrease")

	// ErrVehicleHasActiveTrips is returned when a vehicle referenced by a Draft or Dispatched trip is removed.
	ErrVehicleHasActiveTrips = errors.New("vehicle has active trips")

	// ErrVehicleInShop is returned when a vehicle with an open maintenance log is removed.
	ErrVehicleInShop = errors.New("vehicle has pending maintenance")
)

// Vehicle is the aggregate root for a fleet vehicle.
//
// Vehicle follows these invariants:
//   - Status is OnTrip if and only if ActiveTripID is set
//   - MaxCapacityKg and CurrentOdometer are never negative
//   - CurrentOdometer never decreases
//
// Version and LoadedStatus are the concurrency token read from the store;
// repositories only persist changes when both still match.
type Vehicle struct {
	id              kernel.UUID
	name            string
	licensePlate    string
	maxCapacityKg   float64
	currentOdometer float64
	status          Status
	activeTripID    *kernel.UUID

	version      int64
	loadedStatus Status

	guard guard.ConstructorGuard
}

// NewVehicle registers a new Available vehicle.
//
// Example:
//
//	v, err := vehicle.NewVehicle(kernel.NewUUID(), "Van-05", "MH-12-AB-1234", 5000, 12000)
func NewVehicle(id kernel.UUID, name, licensePlate string, maxCapacityKg, currentOdometer float64) (*Vehicle, error) {
	v := &Vehicle{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setLicensePlate(licensePlate),
		v.setMaxCapacity(maxCapacityKg),
		v.setOdometer(currentOdometer),
	); err != nil {
		return nil, err
	}

	v.loadedStatus = v.status
	return v, nil
}

// RestoreVehicle rebuilds a Vehicle from persisted state.
func RestoreVehicle(
	id kernel.UUID,
	name string,
	licensePlate string,
	maxCapacityKg float64,
	currentOdometer float64,
	status Status,
	activeTripID *kernel.UUID,
	version int64,
) (*Vehicle, error) {
	v := &Vehicle{
		guard:   guard.NewConstructorGuard(),
		version: version,
	}

	if err := errors.Join(
		v.setID(id),
		v.setName(name),
		v.setLicensePlate(licensePlate),
		v.setMaxCapacity(maxCapacityKg),
		v.setOdometer(currentOdometer),
		v.setStatus(status, activeTripID),
	); err != nil {
		return nil, err
	}

	v.loadedStatus = v.status
	return v, nil
}

// Validate ensures the vehicle was built by a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identifier.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

func (v *Vehicle) ID() kernel.UUID            { return v.id }
func (v *Vehicle) Name() string               { return v.name }
func (v *Vehicle) LicensePlate() string       { return v.licensePlate }
func (v *Vehicle) MaxCapacityKg() float64     { return v.maxCapacityKg }
func (v *Vehicle) CurrentOdometer() float64   { return v.currentOdometer }
func (v *Vehicle) Status() Status             { return v.status }
func (v *Vehicle) Version() int64             { return v.version }
func (v *Vehicle) LoadedStatus() Status       { return v.loadedStatus }
func (v *Vehicle) ActiveTripID() *kernel.UUID { return v.activeTripID }

// CanCarry reports whether cargoWeightKg fits within the vehicle's capacity.
func (v *Vehicle) CanCarry(cargoWeightKg float64) bool {
	return cargoWeightKg <= v.maxCapacityKg
}

// Claim moves the vehicle to OnTrip on behalf of tripID.
//
// Returns:
//   - ErrVehicleClaimed if another trip already holds the vehicle
//   - InvalidTransitionError if the vehicle is not Available
//   - ErrOdometerDecrease if startOdometer is below the current reading
func (v *Vehicle) Claim(tripID kernel.UUID, startOdometer float64) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	if v.activeTripID != nil {
		return ErrVehicleClaimed
	}
	if startOdometer < v.currentOdometer {
		return fmt.Errorf("%w: start %.1f is below current %.1f", ErrOdometerDecrease, startOdometer, v.currentOdometer)
	}

	next, err := v.status.Dispatch()
	if err != nil {
		return err
	}

	v.status = next
	v.activeTripID = &tripID
	v.currentOdometer = startOdometer
	return nil
}

// Release frees the vehicle if, and only if, tripID is the trip holding it.
// When endOdometer is non-nil the odometer advances to it.
//
// It reports whether the vehicle was released. A vehicle held by a different
// trip, or by none, is left untouched and Release returns false.
func (v *Vehicle) Release(tripID kernel.UUID, endOdometer *float64) (bool, error) {
	if v.activeTripID == nil || !v.activeTripID.IsEqual(tripID) {
		return false, nil
	}

	next, err := v.status.Release()
	if err != nil {
		return false, err
	}
	if endOdometer != nil {
		if err := v.setOdometer(*endOdometer); err != nil {
			return false, err
		}
	}

	v.status = next
	v.activeTripID = nil
	return true, nil
}

// SendToShop moves the vehicle to InShop and returns the status it had before,
// which the maintenance log records for later restoration.
func (v *Vehicle) SendToShop() (Status, error) {
	prior := v.status
	next, err := v.status.SendToShop()
	if err != nil {
		return Unknown, err
	}
	v.status = next
	return prior, nil
}

// ReturnFromShop restores prior when the vehicle is still InShop. A vehicle
// that left the shop in the meantime, for example by being retired, keeps its
// current status and ReturnFromShop reports false.
func (v *Vehicle) ReturnFromShop(prior Status) (bool, error) {
	if v.status != InShop {
		return false, nil
	}
	if prior != Available && prior != OutOfService {
		prior = Available
	}
	v.status = prior
	return true, nil
}

// Retire marks the vehicle OutOfService.
func (v *Vehicle) Retire() error {
	next, err := v.status.Retire()
	if err != nil {
		return err
	}
	v.status = next
	return nil
}

// Reinstate brings an OutOfService vehicle back, into InShop when
// maintenancePending is set.
func (v *Vehicle) Reinstate(maintenancePending bool) error {
	next, err := v.status.Reinstate(maintenancePending)
	if err != nil {
		return err
	}
	v.status = next
	return nil
}

// CheckRemovable reports whether the vehicle may be deleted given the number
// of Draft or Dispatched trips referencing it and whether a maintenance log
// is still open.
func (v *Vehicle) CheckRemovable(activeTrips int, maintenancePending bool) error {
	switch {
	case v.activeTripID != nil:
		return ErrVehicleInUse
	case activeTrips > 0:
		return fmt.Errorf("%w: %d", ErrVehicleHasActiveTrips, activeTrips)
	case maintenancePending:
		return ErrVehicleInShop
	}
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	v.name = name
	return nil
}

func (v *Vehicle) setLicensePlate(plate string) error {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return errs.NewValueIsRequiredError("licensePlate")
	}
	v.licensePlate = plate
	return nil
}

func (v *Vehicle) setMaxCapacity(maxCapacityKg float64) error {
	if maxCapacityKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxCapacityKg", fmt.Errorf("%.1f is negative", maxCapacityKg))
	}
	v.maxCapacityKg = maxCapacityKg
	return nil
}

func (v *Vehicle) setOdometer(odometer float64) error {
	if odometer < 0 {
		return errs.NewValueIsInvalidErrorWithCause("currentOdometer", fmt.Errorf("%.1f is negative", odometer))
	}
	if odometer < v.currentOdometer {
		return fmt.Errorf("%w: %.1f is below current %.1f", ErrOdometerDecrease, odometer, v.currentOdometer)
	}
	v.currentOdometer = odometer
	return nil
}

// setStatus enforces that OnTrip and ActiveTripID go together.
func (v *Vehicle) setStatus(status Status, activeTripID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if (status == OnTrip) != (activeTripID != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle status",
			fmt.Errorf("%s is inconsistent with active trip %v", status, activeTripID),
		)
	}
	if activeTripID != nil {
		if err := activeTripID.Validate(); err != nil {
			return err
		}
		id := *activeTripID
		activeTripID = &id
	}
	v.status = status
	v.activeTripID = activeTripID
	return nil
}
