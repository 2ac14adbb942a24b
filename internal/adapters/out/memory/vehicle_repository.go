package memory

import (
	"context"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/errs"
)

type vehicleRepository struct {
	uow *UnitOfWork
}

func (uow *UnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehicleRepository{uow: uow}
}

func (r vehicleRepository) Add(_ context.Context, v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}
	rec := vehicleToRecord(v)
	id := v.ID()
	return r.uow.stage(stagedWrite{
		check: func(st state) error {
			if _, exists := st.vehicles[id]; exists {
				return errs.NewResourceConflictError("vehicle", id)
			}
			return nil
		},
		apply: func(st state) { st.vehicles[id] = rec },
	})
}

func (r vehicleRepository) Update(_ context.Context, v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}
	rec := vehicleToRecord(v)
	id := v.ID()
	expectedVersion, expectedStatus := v.Version(), v.LoadedStatus().String()
	return r.uow.stage(stagedWrite{
		check: func(st state) error {
			cur, ok := st.vehicles[id]
			if !ok || cur.version != expectedVersion || cur.status != expectedStatus {
				return errs.NewResourceConflictError("vehicle", id)
			}
			return nil
		},
		apply: func(st state) {
			rec.version = expectedVersion + 1
			st.vehicles[id] = rec
		},
	})
}

func (r vehicleRepository) Delete(_ context.Context, v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}
	id := v.ID()
	expectedVersion, expectedStatus := v.Version(), v.LoadedStatus().String()
	pending := maintenance.Pending.String()
	return r.uow.stage(stagedWrite{
		check: func(st state) error {
			cur, ok := st.vehicles[id]
			if !ok || cur.version != expectedVersion || cur.status != expectedStatus {
				return errs.NewResourceConflictError("vehicle", id)
			}
			if n := st.activeTrips(func(t tripRecord) bool { return t.vehicleID == id }); n > 0 {
				return errs.NewResourceConflictErrorWithCause("vehicle", id, vehicle.ErrVehicleHasActiveTrips)
			}
			for _, l := range st.logs {
				if l.vehicleID == id && l.status == pending {
					return errs.NewResourceConflictErrorWithCause("vehicle", id, vehicle.ErrVehicleInShop)
				}
			}
			return nil
		},
		apply: func(st state) { delete(st.vehicles, id) },
	})
}

func (r vehicleRepository) Get(_ context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	var (
		rec vehicleRecord
		ok  bool
	)
	r.uow.read(func(st state) { rec, ok = st.vehicles[id] })
	if !ok {
		return nil, errs.NewObjectNotFoundError("vehicle", id)
	}

	status, err := vehicle.ParseStatus(rec.status)
	if err != nil {
		return nil, err
	}
	return vehicle.RestoreVehicle(id, rec.name, rec.licensePlate, rec.maxCapacityKg, rec.currentOdometer,
		status, rec.activeTripID, rec.version)
}

func vehicleToRecord(v *vehicle.Vehicle) vehicleRecord {
	return vehicleRecord{
		name:            v.Name(),
		licensePlate:    v.LicensePlate(),
		maxCapacityKg:   v.MaxCapacityKg(),
		currentOdometer: v.CurrentOdometer(),
		status:          v.Status().String(),
		activeTripID:    copyUUID(v.ActiveTripID()),
		version:         v.Version(),
	}
}

func copyUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
