package memory

import (
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/pkg/errs"
)

// checkUniqueness mirrors the partial unique indexes of the database schema.
func (st state) checkUniqueness() error {
	dispatched := trip.Dispatched.String()
	byVehicle := make(map[kernel.UUID]struct{})
	byDriver := make(map[kernel.UUID]struct{})
	for _, t := range st.trips {
		if t.status != dispatched {
			continue
		}
		if _, taken := byVehicle[t.vehicleID]; taken {
			return errs.NewResourceConflictError("vehicle", t.vehicleID)
		}
		if _, taken := byDriver[t.driverID]; taken {
			return errs.NewResourceConflictError("driver", t.driverID)
		}
		byVehicle[t.vehicleID] = struct{}{}
		byDriver[t.driverID] = struct{}{}
	}

	pending := maintenance.Pending.String()
	pendingByVehicle := make(map[kernel.UUID]struct{})
	for _, l := range st.logs {
		if l.status != pending {
			continue
		}
		if _, taken := pendingByVehicle[l.vehicleID]; taken {
			return errs.NewResourceConflictError("vehicle", l.vehicleID)
		}
		pendingByVehicle[l.vehicleID] = struct{}{}
	}
	return nil
}
