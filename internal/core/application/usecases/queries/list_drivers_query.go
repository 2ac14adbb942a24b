package queries

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrListDriversQueryIsNotConstructed = errors.New(
	"ListDriversQuery must be created via NewListDriversQuery constructor",
)

// ListDriversQuery lists drivers ordered by name.
type ListDriversQuery struct {
	status driver.Status

	guard guard.ConstructorGuard
}

// NewListDriversQuery creates the query. driver.Unknown lists every status.
func NewListDriversQuery(status driver.Status) (ListDriversQuery, error) {
	if status != driver.Unknown {
		if err := status.Validate(); err != nil {
			return ListDriversQuery{}, err
		}
	}
	return ListDriversQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListDriversQuery) Validate() error {
	return q.guard.Validate(ErrListDriversQueryIsNotConstructed)
}

func (q ListDriversQuery) Status() driver.Status { return q.status }

// ListDriversQueryResponse is the driver read model.
type ListDriversQueryResponse struct {
	ID                kernel.UUID
	Name              string
	LicenseNumber     string
	LicenseExpiryDate time.Time
	Status            driver.Status
	TripsCompleted    int
	SafetyScore       float64
	ComplaintsCount   int
}
