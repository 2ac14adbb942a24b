package memory

import (
	"context"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/errs"
)

type maintenanceRepository struct {
	uow *UnitOfWork
}

func (uow *UnitOfWork) MaintenanceLogRepository() ports.MaintenanceLogRepository {
	return maintenanceRepository{uow: uow}
}

func (r maintenanceRepository) Add(_ context.Context, l *maintenance.MaintenanceLog) error {
	if err := l.Validate(); err != nil {
		return err
	}
	rec := maintenanceToRecord(l)
	id := l.ID()
	return r.uow.stage(stagedWrite{
		check: func(st state) error {
			if _, exists := st.logs[id]; exists {
				return errs.NewResourceConflictError("maintenance log", id)
			}
			return nil
		},
		apply: func(st state) { st.logs[id] = rec },
	})
}

func (r maintenanceRepository) Update(_ context.Context, l *maintenance.MaintenanceLog) error {
	if err := l.Validate(); err != nil {
		return err
	}
	rec := maintenanceToRecord(l)
	id := l.ID()
	expectedVersion, expectedStatus := l.Version(), l.LoadedStatus().String()
	return r.uow.stage(stagedWrite{
		check: func(st state) error {
			cur, ok := st.logs[id]
			if !ok || cur.version != expectedVersion || cur.status != expectedStatus {
				return errs.NewResourceConflictError("maintenance log", id)
			}
			return nil
		},
		apply: func(st state) {
			rec.version = expectedVersion + 1
			st.logs[id] = rec
		},
	})
}

func (r maintenanceRepository) Get(_ context.Context, id kernel.UUID) (*maintenance.MaintenanceLog, error) {
	var (
		rec maintenanceRecord
		ok  bool
	)
	r.uow.read(func(st state) { rec, ok = st.logs[id] })
	if !ok {
		return nil, errs.NewObjectNotFoundError("maintenance log", id)
	}
	return maintenanceFromRecord(id, rec)
}

func (r maintenanceRepository) GetPendingByVehicle(
	_ context.Context,
	vehicleID kernel.UUID,
) (*maintenance.MaintenanceLog, error) {
	pending := maintenance.Pending.String()
	var (
		id    kernel.UUID
		rec   maintenanceRecord
		found bool
	)
	r.uow.read(func(st state) {
		for logID, l := range st.logs {
			if l.vehicleID == vehicleID && l.status == pending {
				id, rec, found = logID, l, true
				return
			}
		}
	})
	if !found {
		return nil, errs.NewObjectNotFoundError("pending maintenance log", vehicleID)
	}
	return maintenanceFromRecord(id, rec)
}

func maintenanceToRecord(l *maintenance.MaintenanceLog) maintenanceRecord {
	return maintenanceRecord{
		vehicleID:          l.VehicleID(),
		description:        l.Description(),
		cost:               l.Cost(),
		serviceDate:        l.ServiceDate(),
		status:             l.Status().String(),
		completedDate:      l.CompletedDate(),
		technicianName:     l.TechnicianName(),
		priorVehicleStatus: l.PriorVehicleStatus().String(),
		version:            l.Version(),
	}
}

func maintenanceFromRecord(id kernel.UUID, rec maintenanceRecord) (*maintenance.MaintenanceLog, error) {
	status, err := maintenance.ParseStatus(rec.status)
	if err != nil {
		return nil, err
	}
	prior, err := vehicle.ParseStatus(rec.priorVehicleStatus)
	if err != nil {
		return nil, err
	}
	return maintenance.RestoreMaintenanceLog(id, rec.vehicleID, rec.description, rec.cost, rec.serviceDate,
		status, rec.completedDate, rec.technicianName, prior, rec.version)
}
