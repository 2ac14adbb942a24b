package trip

import (
	"fmt"

	"fleetflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a trip.
//
// State transitions:
//
//	Draft ──dispatch──> Dispatched ──complete──> Completed
//	  │                     │
//	  └──────cancel─────────┴──────────────────> Cancelled
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Draft trips passed eligibility at creation but hold no resources.
	Draft

	// Dispatched trips hold their vehicle and driver.
	Dispatched

	// Completed is terminal.
	Completed

	// Cancelled is terminal.
	Cancelled
)

var statusNames = map[Status]string{
	Draft:      "Draft",
	Dispatched: "Dispatched",
	Completed:  "Completed",
	Cancelled:  "Cancelled",
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
		return errs.NewValueIsInvalidErrorWithCause("trip status", fmt.Errorf("%d is not a valid status", s))
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("trip status", fmt.Errorf("%q is not a valid status", name))
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Dispatch transitions Draft to Dispatched.
func (s Status) Dispatch() (Status, error) {
	if s != Draft {
		return Unknown, errs.NewInvalidTransitionError("trip", s.String(), "dispatch")
	}
	return Dispatched, nil
}

// Complete transitions Dispatched to Completed.
func (s Status) Complete() (Status, error) {
	if s != Dispatched {
		return Unknown, errs.NewInvalidTransitionError("trip", s.String(), "complete")
	}
	return Completed, nil
}

// Cancel transitions Draft or Dispatched to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Draft && s != Dispatched {
		return Unknown, errs.NewInvalidTransitionError("trip", s.String(), "cancel")
	}
	return Cancelled, nil
}
