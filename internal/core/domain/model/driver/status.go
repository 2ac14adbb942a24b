package driver

import (
	"fmt"

	"fleetflow/internal/pkg/errs"
)

// Status represents the duty state of a driver.
//
//	Available ──claim──> OnDuty ──release──> Available
//	OnDuty (no trip) ──claim──> OnDuty
//	any ──suspend──> Suspended
//
// OnLeave and Suspended drivers are reinstated administratively and are never
// claimed directly.
type Status int

const (
	Unknown Status = iota
	Available
	OnDuty
	OnLeave
	Suspended
)

var statusNames = map[Status]string{
	Available: "Available",
	OnDuty:    "OnDuty",
	OnLeave:   "OnLeave",
	Suspended: "Suspended",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Validate checks that s is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%d is not a valid status", s))
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("driver status", fmt.Errorf("%q is not a valid status", name))
}

// Claim transitions a driver onto a trip. Only Available and OnDuty drivers
// can be claimed. An OnDuty driver already holding a trip is refused by the
// aggregate before the status is consulted; whether OnDuty is acceptable at
// all is an eligibility decision made before the claim.
func (s Status) Claim() (Status, error) {
	switch s {
	case Available, OnDuty:
		return OnDuty, nil
	default:
		return Unknown, errs.NewInvalidTransitionError("driver", s.String(), "claim")
	}
}

// Release returns an OnDuty driver to Available. Any other status is kept,
// so a driver suspended during the trip stays Suspended.
func (s Status) Release() Status {
	if s == OnDuty {
		return Available
	}
	return s
}
