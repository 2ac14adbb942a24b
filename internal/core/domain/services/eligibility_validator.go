package services

import (
	"errors"
	"fmt"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/pkg/errs"
)

// EligibilityRequest carries the snapshots a prospective trip is checked
// against. A nil Vehicle or Driver means the referenced record does not exist.
type EligibilityRequest struct {
	VehicleID     kernel.UUID
	Vehicle       *vehicle.Vehicle
	DriverID      kernel.UUID
	Driver        *driver.Driver
	CargoWeightKg float64
}

// Eligibility is the outcome of a check. Violations are listed in a fixed
// order: vehicle existence, driver existence, capacity, vehicle availability,
// driver availability, license.
type Eligibility struct {
	Violations []error
}

// OK reports whether no violation was found.
func (e Eligibility) OK() bool {
	return len(e.Violations) == 0
}

// Err returns the violations as an *errs.ValidationError, or nil.
func (e Eligibility) Err() error {
	return errs.NewValidationError(e.Violations...)
}

// HasAvailabilityViolation reports whether the vehicle or driver could not be
// claimed. On dispatch this means another writer got there first.
func (e Eligibility) HasAvailabilityViolation() bool {
	for _, v := range e.Violations {
		if errors.Is(v, ErrVehicleUnavailable) || errors.Is(v, ErrDriverUnavailable) {
			return true
		}
	}
	return false
}

// EligibilityValidator is a pure check with no side effects. The set of
// driver statuses that may take a trip is configurable: Available only by
// default, or Available and OnDuty.
type EligibilityValidator struct {
	eligibleDriverStatuses map[driver.Status]struct{}
}

// NewEligibilityValidator creates a validator accepting drivers in the given
// statuses. OnLeave and Suspended drivers can never be claimed and are rejected.
func NewEligibilityValidator(eligibleDriverStatuses ...driver.Status) (EligibilityValidator, error) {
	if len(eligibleDriverStatuses) == 0 {
		eligibleDriverStatuses = []driver.Status{driver.Available}
	}

	set := make(map[driver.Status]struct{}, len(eligibleDriverStatuses))
	for _, s := range eligibleDriverStatuses {
		if _, err := s.Claim(); err != nil {
			return EligibilityValidator{}, errs.NewValueIsInvalidErrorWithCause(
				"eligibleDriverStatuses",
				fmt.Errorf("%s drivers cannot be assigned to a trip", s),
			)
		}
		set[s] = struct{}{}
	}

	return EligibilityValidator{eligibleDriverStatuses: set}, nil
}

// Validate evaluates every check without short-circuiting.
func (ev EligibilityValidator) Validate(req EligibilityRequest, now time.Time) Eligibility {
	var violations []error

	if req.Vehicle == nil {
		violations = append(violations, errs.NewObjectNotFoundError("vehicle", req.VehicleID))
	}
	if req.Driver == nil {
		violations = append(violations, errs.NewObjectNotFoundError("driver", req.DriverID))
	}

	if v := req.Vehicle; v != nil {
		if !v.CanCarry(req.CargoWeightKg) {
			violations = append(violations, &CapacityExceededError{
				CargoWeightKg: req.CargoWeightKg,
				MaxCapacityKg: v.MaxCapacityKg(),
			})
		}
		if v.Status() != vehicle.Available || v.ActiveTripID() != nil {
			violations = append(violations, &VehicleUnavailableError{
				Status:  v.Status(),
				Claimed: v.ActiveTripID() != nil,
			})
		}
	}

	if d := req.Driver; d != nil {
		if !ev.isEligible(d.Status()) || d.ActiveTripID() != nil {
			violations = append(violations, &DriverUnavailableError{
				Status:  d.Status(),
				Claimed: d.ActiveTripID() != nil,
			})
		}
		if d.LicenseExpired(now) {
			violations = append(violations, &LicenseExpiredError{ExpiryDate: d.LicenseExpiryDate()})
		}
	}

	return Eligibility{Violations: violations}
}

func (ev EligibilityValidator) isEligible(s driver.Status) bool {
	if ev.eligibleDriverStatuses == nil {
		return s == driver.Available
	}
	_, ok := ev.eligibleDriverStatuses[s]
	return ok
}
