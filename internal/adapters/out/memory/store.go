// Package memory provides an in-process entity store implementing the same
// unit of work and conditional update contract as the Postgres adapter.
//
// Writes made through a UnitOfWork are staged and applied at Commit under
// the store mutex. Every staged update is checked against the version and
// status it was loaded with before any of them is applied, so a commit is
// all-or-nothing. The store enforces the same uniqueness rules as the
// database: one Dispatched trip per vehicle and per driver, one Pending
// maintenance log per vehicle. Deletes are staged the same way and refused
// while a Draft or Dispatched trip still references the record.
package memory

import (
	"maps"
	"sync"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/ports"
)

type vehicleRecord struct {
	name            string
	licensePlate    string
	maxCapacityKg   float64
	currentOdometer float64
	status          string
	activeTripID    *kernel.UUID
	version         int64
}

type driverRecord struct {
	name              string
	licenseNumber     string
	licenseExpiryDate time.Time
	status            string
	tripsCompleted    int
	safetyScore       float64
	complaintsCount   int
	activeTripID      *kernel.UUID
	version           int64
}

type tripRecord struct {
	vehicleID         kernel.UUID
	driverID          kernel.UUID
	cargoWeightKg     float64
	origin            string
	destination       string
	estimatedFuelCost float64
	revenue           float64
	cargoDescription  string
	status            string
	startOdometer     *float64
	endOdometer       *float64
	tripStartTime     *time.Time
	tripEndTime       *time.Time
	createdAt         time.Time
	version           int64
}

type maintenanceRecord struct {
	vehicleID          kernel.UUID
	description        string
	cost               float64
	serviceDate        time.Time
	status             string
	completedDate      *time.Time
	technicianName     string
	priorVehicleStatus string
	version            int64
}

type expenseRecord struct {
	vehicleID   kernel.UUID
	category    string
	amount      float64
	expenseDate time.Time
	tripID      *kernel.UUID
	quantity    *float64
	unit        string
	notes       string
}

type state struct {
	vehicles map[kernel.UUID]vehicleRecord
	drivers  map[kernel.UUID]driverRecord
	trips    map[kernel.UUID]tripRecord
	logs     map[kernel.UUID]maintenanceRecord
	expenses map[kernel.UUID]expenseRecord
}

func (st state) clone() state {
	return state{
		vehicles: maps.Clone(st.vehicles),
		drivers:  maps.Clone(st.drivers),
		trips:    maps.Clone(st.trips),
		logs:     maps.Clone(st.logs),
		expenses: maps.Clone(st.expenses),
	}
}

// activeTrips counts Draft and Dispatched trips matching ref.
func (st state) activeTrips(ref func(tripRecord) bool) int {
	draft, dispatched := trip.Draft.String(), trip.Dispatched.String()
	n := 0
	for _, t := range st.trips {
		if (t.status == draft || t.status == dispatched) && ref(t) {
			n++
		}
	}
	return n
}

// Store holds committed records. The zero value is not usable; call NewStore.
type Store struct {
	mu        sync.Mutex
	committed state
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		committed: state{
			vehicles: make(map[kernel.UUID]vehicleRecord),
			drivers:  make(map[kernel.UUID]driverRecord),
			trips:    make(map[kernel.UUID]tripRecord),
			logs:     make(map[kernel.UUID]maintenanceRecord),
			expenses: make(map[kernel.UUID]expenseRecord),
		},
	}
}

// UnitOfWorkFactory returns a factory creating units of work over s.
func (s *Store) UnitOfWorkFactory() ports.UnitOfWorkFactory {
	return unitOfWorkFactory{store: s}
}

type unitOfWorkFactory struct {
	store *Store
}

func (f unitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}
