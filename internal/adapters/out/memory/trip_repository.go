package memory

import (
	"context"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/errs"
)

type tripRepository struct {
	uow *UnitOfWork
}

func (uow *UnitOfWork) TripRepository() ports.TripRepository {
	return tripRepository{uow: uow}
}

func (r tripRepository) Add(_ context.Context, t *trip.Trip) error {
	if err := t.Validate(); err != nil {
		return err
	}
	rec := tripToRecord(t)
	id := t.ID()
	return r.uow.stage(stagedWrite{
		check: func(st state) error {
			if _, exists := st.trips[id]; exists {
				return errs.NewResourceConflictError("trip", id)
			}
			return nil
		},
		apply: func(st state) { st.trips[id] = rec },
	})
}

func (r tripRepository) Update(_ context.Context, t *trip.Trip) error {
	if err := t.Validate(); err != nil {
		return err
	}
	rec := tripToRecord(t)
	id := t.ID()
	expectedVersion, expectedStatus := t.Version(), t.LoadedStatus().String()
	return r.uow.stage(stagedWrite{
		check: func(st state) error {
			cur, ok := st.trips[id]
			if !ok || cur.version != expectedVersion || cur.status != expectedStatus {
				return errs.NewResourceConflictError("trip", id)
			}
			return nil
		},
		apply: func(st state) {
			rec.version = expectedVersion + 1
			st.trips[id] = rec
		},
	})
}

func (r tripRepository) Get(_ context.Context, id kernel.UUID) (*trip.Trip, error) {
	var (
		rec tripRecord
		ok  bool
	)
	r.uow.read(func(st state) { rec, ok = st.trips[id] })
	if !ok {
		return nil, errs.NewObjectNotFoundError("trip", id)
	}

	status, err := trip.ParseStatus(rec.status)
	if err != nil {
		return nil, err
	}
	return trip.RestoreTrip(id, rec.vehicleID, rec.driverID, rec.cargoWeightKg, trip.Details{
		Origin:            rec.origin,
		Destination:       rec.destination,
		EstimatedFuelCost: rec.estimatedFuelCost,
		Revenue:           rec.revenue,
		CargoDescription:  rec.cargoDescription,
	}, status, rec.startOdometer, rec.endOdometer, rec.tripStartTime, rec.tripEndTime, rec.createdAt, rec.version)
}

func (r tripRepository) CountActiveByVehicle(_ context.Context, vehicleID kernel.UUID) (int, error) {
	var n int
	r.uow.read(func(st state) {
		n = st.activeTrips(func(t tripRecord) bool { return t.vehicleID == vehicleID })
	})
	return n, nil
}

func (r tripRepository) CountActiveByDriver(_ context.Context, driverID kernel.UUID) (int, error) {
	var n int
	r.uow.read(func(st state) {
		n = st.activeTrips(func(t tripRecord) bool { return t.driverID == driverID })
	})
	return n, nil
}

func tripToRecord(t *trip.Trip) tripRecord {
	details := t.Details()
	return tripRecord{
		vehicleID:         t.VehicleID(),
		driverID:          t.DriverID(),
		cargoWeightKg:     t.CargoWeightKg(),
		origin:            details.Origin,
		destination:       details.Destination,
		estimatedFuelCost: details.EstimatedFuelCost,
		revenue:           details.Revenue,
		cargoDescription:  details.CargoDescription,
		status:            t.Status().String(),
		startOdometer:     t.StartOdometer(),
		endOdometer:       t.EndOdometer(),
		tripStartTime:     t.TripStartTime(),
		tripEndTime:       t.TripEndTime(),
		createdAt:         t.CreatedAt(),
		version:           t.Version(),
	}
}
