package queries

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/pkg/guard"
)

var ErrListVehiclesQueryIsNotConstructed = errors.New(
	"ListVehiclesQuery must be created via NewListVehiclesQuery constructor",
)

// ListVehiclesQuery lists the fleet ordered by name.
type ListVehiclesQuery struct {
	status vehicle.Status

	guard guard.ConstructorGuard
}

// NewListVehiclesQuery creates the query. vehicle.Unknown lists every status.
func NewListVehiclesQuery(status vehicle.Status) (ListVehiclesQuery, error) {
	if status != vehicle.Unknown {
		if err := status.Validate(); err != nil {
			return ListVehiclesQuery{}, err
		}
	}
	return ListVehiclesQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListVehiclesQueryIsNotConstructed)
}

func (q ListVehiclesQuery) Status() vehicle.Status { return q.status }

// ListVehiclesQueryResponse is the vehicle read model.
type ListVehiclesQueryResponse struct {
	ID              kernel.UUID
	Name            string
	LicensePlate    string
	MaxCapacityKg   float64
	CurrentOdometer float64
	Status          vehicle.Status
	ActiveTripID    *kernel.UUID
}
