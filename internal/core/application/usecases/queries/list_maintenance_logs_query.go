package queries

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/pkg/guard"
)

var ErrListMaintenanceLogsQueryIsNotConstructed = errors.New(
	"ListMaintenanceLogsQuery must be created via NewListMaintenanceLogsQuery constructor",
)

// ListMaintenanceLogsQuery lists maintenance logs by service date, newest
// first. Both filters are optional.
type ListMaintenanceLogsQuery struct {
	status    maintenance.Status
	vehicleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListMaintenanceLogsQuery creates the query. maintenance.Unknown and a
// nil vehicleID disable the respective filter.
func NewListMaintenanceLogsQuery(status maintenance.Status, vehicleID *kernel.UUID) (ListMaintenanceLogsQuery, error) {
	if status != maintenance.Unknown {
		if err := status.Validate(); err != nil {
			return ListMaintenanceLogsQuery{}, err
		}
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return ListMaintenanceLogsQuery{}, err
		}
	}
	return ListMaintenanceLogsQuery{
		status:    status,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListMaintenanceLogsQuery) Validate() error {
	return q.guard.Validate(ErrListMaintenanceLogsQueryIsNotConstructed)
}

func (q ListMaintenanceLogsQuery) Status() maintenance.Status { return q.status }
func (q ListMaintenanceLogsQuery) VehicleID() *kernel.UUID    { return q.vehicleID }

// ListMaintenanceLogsQueryResponse is the maintenance log read model.
type ListMaintenanceLogsQueryResponse struct {
	ID                 kernel.UUID
	VehicleID          kernel.UUID
	VehicleName        string
	Description        string
	Cost               float64
	ServiceDate        time.Time
	Status             maintenance.Status
	CompletedDate      *time.Time
	TechnicianName     string
	PriorVehicleStatus vehicle.Status
}
