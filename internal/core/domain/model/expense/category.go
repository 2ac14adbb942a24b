package expense

import (
	"fmt"

	"fleetflow/internal/pkg/errs"
)

// Category classifies an expense. Persisted by name.
type Category int

const (
	Unknown Category = iota
	Fuel
	Maintenance
	Toll
	Insurance
	Repair
	Other
)

var categoryNames = map[Category]string{
	Fuel:        "Fuel",
	Maintenance: "Maintenance",
	Toll:        "Toll",
	Insurance:   "Insurance",
	Repair:      "Repair",
	Other:       "Other",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

func (c Category) Validate() error {
	if _, ok := categoryNames[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("expense type", fmt.Errorf("%d is not a valid type", c))
	}
	return nil
}

// ParseCategory converts a persisted name back into a Category.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("expense type", fmt.Errorf("%q is not a valid type", name))
}
