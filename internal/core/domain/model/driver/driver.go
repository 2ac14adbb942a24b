package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/errs"
	"fleetflow/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created via NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("driver must be created via NewDriver or RestoreDriver")

	// ErrDriverOnTrip is returned when an administrative change targets a driver held by a dispatched trip.
	ErrDriverOnTrip = errors.New("driver is assigned to a dispatched trip")

	// ErrDriverClaimed is returned when a driver already held by a trip is claimed again.
	ErrDriverClaimed = errors.New("driver is already claimed by a trip")

	// ErrDriverHasActiveTrips is returned when a driver referenced by a Draft or Dispatched trip is removed.
	ErrDriverHasActiveTrips = errors.New("driver has active trips")
)

// Driver is the aggregate root for a fleet driver.
//
// Invariants:
//   - ActiveTripID is set while the driver is held by a dispatched trip
//   - TripsCompleted and ComplaintsCount never decrease
//   - SafetyScore lies within [0, 100]
type Driver struct {
	id                kernel.UUID
	name              string
	licenseNumber     string
	licenseExpiryDate time.Time
	status            Status
	tripsCompleted    int
	safetyScore       float64
	complaintsCount   int
	activeTripID      *kernel.UUID

	version      int64
	loadedStatus Status

	guard guard.ConstructorGuard
}

// NewDriver registers a driver. A driver whose license has already expired
// at now starts Suspended, everyone else starts Available.
func NewDriver(
	id kernel.UUID,
	name string,
	licenseNumber string,
	licenseExpiryDate time.Time,
	safetyScore float64,
	now time.Time,
) (*Driver, error) {
	d := &Driver{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicense(licenseNumber, licenseExpiryDate),
		d.setSafetyScore(safetyScore),
	); err != nil {
		return nil, err
	}

	if d.LicenseExpired(now) {
		d.status = Suspended
	}
	d.loadedStatus = d.status
	return d, nil
}

// RestoreDriver rebuilds a Driver from persisted state.
func RestoreDriver(
	id kernel.UUID,
	name string,
	licenseNumber string,
	licenseExpiryDate time.Time,
	status Status,
	tripsCompleted int,
	safetyScore float64,
	complaintsCount int,
	activeTripID *kernel.UUID,
	version int64,
) (*Driver, error) {
	d := &Driver{
		guard:   guard.NewConstructorGuard(),
		version: version,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLicense(licenseNumber, licenseExpiryDate),
		d.setSafetyScore(safetyScore),
		d.setCounters(tripsCompleted, complaintsCount),
		d.setStatus(status, activeTripID),
	); err != nil {
		return nil, err
	}

	d.loadedStatus = d.status
	return d, nil
}

// Validate ensures the driver was built by a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID              { return d.id }
func (d *Driver) Name() string                 { return d.name }
func (d *Driver) LicenseNumber() string        { return d.licenseNumber }
func (d *Driver) LicenseExpiryDate() time.Time { return d.licenseExpiryDate }
func (d *Driver) Status() Status               { return d.status }
func (d *Driver) TripsCompleted() int          { return d.tripsCompleted }
func (d *Driver) SafetyScore() float64         { return d.safetyScore }
func (d *Driver) ComplaintsCount() int         { return d.complaintsCount }
func (d *Driver) ActiveTripID() *kernel.UUID   { return d.activeTripID }
func (d *Driver) Version() int64               { return d.version }
func (d *Driver) LoadedStatus() Status         { return d.loadedStatus }

// LicenseExpired reports whether the license expiry date lies before now.
func (d *Driver) LicenseExpired(now time.Time) bool {
	return d.licenseExpiryDate.Before(now)
}

// Claim puts the driver on duty for tripID.
func (d *Driver) Claim(tripID kernel.UUID) error {
	if err := tripID.Validate(); err != nil {
		return err
	}
	if d.activeTripID != nil {
		return ErrDriverClaimed
	}

	next, err := d.status.Claim()
	if err != nil {
		return err
	}

	d.status = next
	d.activeTripID = &tripID
	return nil
}

// Release frees the driver if tripID is the trip holding it. When completed
// is set the trip counts towards TripsCompleted. It reports whether the
// driver was held by tripID.
func (d *Driver) Release(tripID kernel.UUID, completed bool) bool {
	if d.activeTripID == nil || !d.activeTripID.IsEqual(tripID) {
		return false
	}

	d.status = d.status.Release()
	d.activeTripID = nil
	if completed {
		d.tripsCompleted++
	}
	return true
}

// Suspend marks the driver Suspended and reports whether the status changed.
// A claimed driver keeps its trip; the trip's completion will not return a
// suspended driver to Available.
func (d *Driver) Suspend() bool {
	if d.status == Suspended {
		return false
	}
	d.status = Suspended
	return true
}

// ChangeStatus applies an administrative status change. Drivers held by a
// dispatched trip are refused with ErrDriverOnTrip.
func (d *Driver) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if d.activeTripID != nil {
		return ErrDriverOnTrip
	}
	d.status = target
	return nil
}

// CheckRemovable reports whether the driver may be deleted given the number
// of Draft or Dispatched trips referencing it.
func (d *Driver) CheckRemovable(activeTrips int) error {
	if d.activeTripID != nil {
		return ErrDriverOnTrip
	}
	if activeTrips > 0 {
		return fmt.Errorf("%w: %d", ErrDriverHasActiveTrips, activeTrips)
	}
	return nil
}

// RecordComplaint increments the complaint counter.
func (d *Driver) RecordComplaint() {
	d.complaintsCount++
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setLicense(number string, expiry time.Time) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	if expiry.IsZero() {
		return errs.NewValueIsRequiredError("licenseExpiryDate")
	}
	d.licenseNumber = number
	d.licenseExpiryDate = expiry.UTC()
	return nil
}

func (d *Driver) setSafetyScore(score float64) error {
	if score < 0 || score > 100 {
		return errs.NewValueIsOutOfRangeError("safetyScore", score, 0, 100)
	}
	d.safetyScore = score
	return nil
}

func (d *Driver) setCounters(tripsCompleted, complaintsCount int) error {
	if tripsCompleted < 0 || complaintsCount < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"driver counters",
			fmt.Errorf("tripsCompleted=%d complaintsCount=%d", tripsCompleted, complaintsCount),
		)
	}
	d.tripsCompleted = tripsCompleted
	d.complaintsCount = complaintsCount
	return nil
}

// setStatus enforces that a held driver is OnDuty or, after a mid-trip
// suspension, Suspended.
func (d *Driver) setStatus(status Status, activeTripID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == OnDuty && activeTripID == nil {
		// administrative OnDuty without a trip is allowed
		d.status = status
		return nil
	}
	if activeTripID != nil {
		if status != OnDuty && status != Suspended {
			return errs.NewValueIsInvalidErrorWithCause(
				"driver status",
				fmt.Errorf("%s driver cannot hold trip %s", status, activeTripID),
			)
		}
		if err := activeTripID.Validate(); err != nil {
			return err
		}
		id := *activeTripID
		d.activeTripID = &id
	}
	d.status = status
	return nil
}
