package vehicle

import (
	"fmt"

	"fleetflow/internal/pkg/errs"
)

// Status represents the availability of a vehicle.
//
// State transitions:
//
//	Available ──dispatch──> OnTrip ──release──> Available
//	Available | OutOfService ──maintenance──> InShop ──restore──> prior status
//	Available | InShop ──retire──> OutOfService ──reinstate──> Available | InShop
//
// Statuses are persisted by name, see String and ParseStatus.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Available vehicles may be claimed by a trip.
	Available

	// OnTrip vehicles are claimed by exactly one dispatched trip.
	OnTrip

	// InShop vehicles have a pending maintenance log.
	InShop

	// OutOfService vehicles are retired until reinstated.
	OutOfService
)

var statusNames = map[Status]string{
	Available:    "Available",
	OnTrip:       "OnTrip",
	InShop:       "InShop",
	OutOfService: "OutOfService",
}

// String returns the persisted name of the status, or "Unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Validate checks that s is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("vehicle status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus converts a persisted name back into a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("vehicle status", fmt.Errorf("%q is not a valid status", name))
}

// Dispatch transitions Available to OnTrip.
func (s Status) Dispatch() (Status, error) {
	if s != Available {
		return Unknown, errs.NewInvalidTransitionError("vehicle", s.String(), "dispatch")
	}
	return OnTrip, nil
}

// Release transitions OnTrip back to Available.
func (s Status) Release() (Status, error) {
	if s != OnTrip {
		return Unknown, errs.NewInvalidTransitionError("vehicle", s.String(), "release")
	}
	return Available, nil
}

// SendToShop transitions Available or OutOfService to InShop.
// A vehicle on a trip is refused with ErrVehicleInUse.
func (s Status) SendToShop() (Status, error) {
	switch s {
	case Available, OutOfService:
		return InShop, nil
	case OnTrip:
		return Unknown, ErrVehicleInUse
	default:
		return Unknown, errs.NewInvalidTransitionError("vehicle", s.String(), "send to shop")
	}
}

// Retire transitions Available or InShop to OutOfService.
func (s Status) Retire() (Status, error) {
	switch s {
	case Available, InShop:
		return OutOfService, nil
	case OnTrip:
		return Unknown, ErrVehicleInUse
	default:
		return Unknown, errs.NewInvalidTransitionError("vehicle", s.String(), "retire")
	}
}

// Reinstate transitions OutOfService back into service. The vehicle returns
// to InShop when maintenance is still pending on it.
func (s Status) Reinstate(maintenancePending bool) (Status, error) {
	if s != OutOfService {
		return Unknown, errs.NewInvalidTransitionError("vehicle", s.String(), "reinstate")
	}
	if maintenancePending {
		return InShop, nil
	}
	return Available, nil
}
