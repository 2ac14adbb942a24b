package services

import (
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/vehicle"
)

// MaintenanceRequest holds the fields of a new maintenance log.
type MaintenanceRequest struct {
	Description string
	Cost        float64
	ServiceDate time.Time
}

// MaintenanceGate couples maintenance logs to vehicle availability.
//
// Business rules:
//   - A vehicle on a trip cannot be sent to the shop (vehicle.ErrVehicleInUse)
//   - A vehicle has at most one Pending log (maintenance.ErrMaintenanceAlreadyPending)
//   - Completion restores the status the vehicle had before the shop, unless
//     the vehicle left the shop in the meantime
type MaintenanceGate struct{}

// NewMaintenanceGate creates a MaintenanceGate.
func NewMaintenanceGate() MaintenanceGate {
	return MaintenanceGate{}
}

// Open sends v to the shop and returns the new Pending log. pending is the
// vehicle's currently open log, or nil.
func (MaintenanceGate) Open(
	id kernel.UUID,
	v *vehicle.Vehicle,
	pending *maintenance.MaintenanceLog,
	req MaintenanceRequest,
) (*maintenance.MaintenanceLog, error) {
	if pending != nil {
		return nil, maintenance.ErrMaintenanceAlreadyPending
	}
	if _, err := v.Status().SendToShop(); err != nil {
		return nil, err
	}

	log, err := maintenance.NewMaintenanceLog(id, v.ID(), req.Description, req.Cost, req.ServiceDate, v.Status())
	if err != nil {
		return nil, err
	}
	if _, err := v.SendToShop(); err != nil {
		return nil, err
	}
	return log, nil
}

// Complete closes log and returns v to its recorded prior status. It
// reports whether the vehicle status was restored.
func (MaintenanceGate) Complete(
	log *maintenance.MaintenanceLog,
	v *vehicle.Vehicle,
	completedDate time.Time,
	technicianName string,
) (bool, error) {
	if err := log.Complete(completedDate, technicianName); err != nil {
		return false, err
	}
	return v.ReturnFromShop(log.PriorVehicleStatus())
}
