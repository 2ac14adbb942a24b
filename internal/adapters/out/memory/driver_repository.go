package memory

import (
	"context"
	"sort"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/errs"
)

type driverRepository struct {
	uow *UnitOfWork
}

func (uow *UnitOfWork) DriverRepository() ports.DriverRepository {
	return driverRepository{uow: uow}
}

func (r driverRepository) Add(_ context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}
	rec := driverToRecord(d)
	id := d.ID()
	return r.uow.stage(stagedWrite{
		check: func(st state) error {
			if _, exists := st.drivers[id]; exists {
				return errs.NewResourceConflictError("driver", id)
			}
			return nil
		},
		apply: func(st state) { st.drivers[id] = rec },
	})
}

func (r driverRepository) Update(_ context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}
	rec := driverToRecord(d)
	id := d.ID()
	expectedVersion, expectedStatus := d.Version(), d.LoadedStatus().String()
	return r.uow.stage(stagedWrite{
		check: func(st state) error {
			cur, ok := st.drivers[id]
			if !ok || cur.version != expectedVersion || cur.status != expectedStatus {
				return errs.NewResourceConflictError("driver", id)
			}
			return nil
		},
		apply: func(st state) {
			rec.version = expectedVersion + 1
			st.drivers[id] = rec
		},
	})
}

func (r driverRepository) Delete(_ context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}
	id := d.ID()
	expectedVersion, expectedStatus := d.Version(), d.LoadedStatus().String()
	return r.uow.stage(stagedWrite{
		check: func(st state) error {
			cur, ok := st.drivers[id]
			if !ok || cur.version != expectedVersion || cur.status != expectedStatus {
				return errs.NewResourceConflictError("driver", id)
			}
			if n := st.activeTrips(func(t tripRecord) bool { return t.driverID == id }); n > 0 {
				return errs.NewResourceConflictErrorWithCause("driver", id, driver.ErrDriverHasActiveTrips)
			}
			return nil
		},
		apply: func(st state) { delete(st.drivers, id) },
	})
}

func (r driverRepository) Get(_ context.Context, id kernel.UUID) (*driver.Driver, error) {
	var (
		rec driverRecord
		ok  bool
	)
	r.uow.read(func(st state) { rec, ok = st.drivers[id] })
	if !ok {
		return nil, errs.NewObjectNotFoundError("driver", id)
	}
	return driverFromRecord(id, rec)
}

func (r driverRepository) GetAllWithExpiredLicense(_ context.Context, now time.Time) ([]*driver.Driver, error) {
	suspended := driver.Suspended.String()
	type entry struct {
		id  kernel.UUID
		rec driverRecord
	}
	var found []entry
	r.uow.read(func(st state) {
		for id, rec := range st.drivers {
			if rec.licenseExpiryDate.Before(now) && rec.status != suspended {
				found = append(found, entry{id: id, rec: rec})
			}
		}
	})
	sort.Slice(found, func(i, j int) bool { return found[i].id.String() < found[j].id.String() })

	drivers := make([]*driver.Driver, 0, len(found))
	for _, e := range found {
		d, err := driverFromRecord(e.id, e.rec)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

func driverToRecord(d *driver.Driver) driverRecord {
	return driverRecord{
		name:              d.Name(),
		licenseNumber:     d.LicenseNumber(),
		licenseExpiryDate: d.LicenseExpiryDate(),
		status:            d.Status().String(),
		tripsCompleted:    d.TripsCompleted(),
		safetyScore:       d.SafetyScore(),
		complaintsCount:   d.ComplaintsCount(),
		activeTripID:      copyUUID(d.ActiveTripID()),
		version:           d.Version(),
	}
}

func driverFromRecord(id kernel.UUID, rec driverRecord) (*driver.Driver, error) {
	status, err := driver.ParseStatus(rec.status)
	if err != nil {
		return nil, err
	}
	return driver.RestoreDriver(id, rec.name, rec.licenseNumber, rec.licenseExpiryDate, status,
		rec.tripsCompleted, rec.safetyScore, rec.complaintsCount, rec.activeTripID, rec.version)
}
