package maintenance

import (
	"fmt"

	"fleetflow/internal/pkg/errs"
)

// Status is the state of a maintenance log: Pending until it is completed.
type Status int

const (
	Unknown Status = iota
	Pending
	Completed
)

var statusNames = map[Status]string{
	Pending:   "Pending",
	Completed: "Completed",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("maintenance status", fmt.Errorf("%d is not a valid status", s))
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
	return Unknown, errs.NewValueIsInvalidErrorWithCause("maintenance status", fmt.Errorf("%q is not a valid status", name))
}

// Complete transitions Pending to Completed.
func (s Status) Complete() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidTransitionError("maintenance log", s.String(), "complete")
	}
	return Completed, nil
}
