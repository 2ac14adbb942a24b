package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fleetflow/internal/adapters/out/memory"
	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"

	"github.com/stretchr/testify/require"
)

type tripUoWFactory struct{ ports.UnitOfWorkFactory }

func (f tripUoWFactory) Create() commands.TripUoW { return f.UnitOfWorkFactory.Create() }

type maintenanceUoWFactory struct{ ports.UnitOfWorkFactory }

func (f maintenanceUoWFactory) Create() commands.MaintenanceUoW { return f.UnitOfWorkFactory.Create() }

type driverUoWFactory struct{ ports.UnitOfWorkFactory }

func (f driverUoWFactory) Create() commands.DriverUoW { return f.UnitOfWorkFactory.Create() }

type vehicleUoWFactory struct{ ports.UnitOfWorkFactory }

func (f vehicleUoWFactory) Create() commands.VehicleUoW { return f.UnitOfWorkFactory.Create() }

type vehicleRemovalUoWFactory struct{ ports.UnitOfWorkFactory }

func (f vehicleRemovalUoWFactory) Create() commands.VehicleRemovalUoW {
	return f.UnitOfWorkFactory.Create()
}

type driverRemovalUoWFactory struct{ ports.UnitOfWorkFactory }

func (f driverRemovalUoWFactory) Create() commands.DriverRemovalUoW {
	return f.UnitOfWorkFactory.Create()
}

type expenseUoWFactory struct{ ports.UnitOfWorkFactory }

func (f expenseUoWFactory) Create() commands.ExpenseUoW { return f.UnitOfWorkFactory.Create() }

type recordingPublisher struct {
	mu     sync.Mutex
	events []kernel.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...kernel.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// engine wires every command handler over an in-memory store.
type engine struct {
	store     *memory.Store
	clock     *clock.Manual
	publisher *recordingPublisher

	registerVehicle     commands.RegisterVehicleCommandHandler
	registerDriver      commands.RegisterDriverCommandHandler
	createTrip          commands.CreateTripCommandHandler
	dispatchTrip        commands.DispatchTripCommandHandler
	completeTrip        commands.CompleteTripCommandHandler
	cancelTrip          commands.CancelTripCommandHandler
	openMaintenance     commands.OpenMaintenanceCommandHandler
	completeMaintenance commands.CompleteMaintenanceCommandHandler
	toggleRetirement    commands.ToggleVehicleRetirementCommandHandler
	changeDriverStatus  commands.ChangeDriverStatusCommandHandler
	sweep               commands.SweepExpiredLicensesCommandHandler
	deleteVehicle       commands.DeleteVehicleCommandHandler
	deleteDriver        commands.DeleteDriverCommandHandler
	recordExpense       commands.RecordExpenseCommandHandler
}

var engineStart = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newEngine(t *testing.T) *engine {
	t.Helper()
	return newEngineWithEligible(t)
}

// newEngineWithEligible builds an engine dispatching drivers in the given
// statuses; none means the default set.
func newEngineWithEligible(t *testing.T, eligibleDriverStatuses ...driver.Status) *engine {
	t.Helper()

	store := memory.NewStore()
	factory := store.UnitOfWorkFactory()
	clk := clock.NewManual(engineStart)
	publisher := &recordingPublisher{}

	validator, err := services.NewEligibilityValidator(eligibleDriverStatuses...)
	require.NoError(t, err)
	lifecycle := services.NewTripLifecycle(validator)
	gate := services.NewMaintenanceGate()

	return &engine{
		store:     store,
		clock:     clk,
		publisher: publisher,

		registerVehicle:     commands.NewRegisterVehicleCommandHandler(vehicleUoWFactory{factory}),
		registerDriver:      commands.NewRegisterDriverCommandHandler(driverUoWFactory{factory}, clk),
		createTrip:          commands.NewCreateTripCommandHandler(tripUoWFactory{factory}, lifecycle, clk, publisher),
		dispatchTrip:        commands.NewDispatchTripCommandHandler(tripUoWFactory{factory}, lifecycle, clk, publisher),
		completeTrip:        commands.NewCompleteTripCommandHandler(tripUoWFactory{factory}, lifecycle, clk, publisher),
		cancelTrip:          commands.NewCancelTripCommandHandler(tripUoWFactory{factory}, lifecycle, clk, publisher),
		openMaintenance:     commands.NewOpenMaintenanceCommandHandler(maintenanceUoWFactory{factory}, gate, clk, publisher),
		completeMaintenance: commands.NewCompleteMaintenanceCommandHandler(maintenanceUoWFactory{factory}, gate, clk, publisher),
		toggleRetirement:    commands.NewToggleVehicleRetirementCommandHandler(maintenanceUoWFactory{factory}, clk, publisher),
		changeDriverStatus:  commands.NewChangeDriverStatusCommandHandler(driverUoWFactory{factory}, clk, publisher),
		sweep: commands.NewSweepExpiredLicensesCommandHandler(
			driverUoWFactory{factory}, services.NewLicenseSweeper(), clk, publisher),
		deleteVehicle: commands.NewDeleteVehicleCommandHandler(vehicleRemovalUoWFactory{factory}, clk, publisher),
		deleteDriver:  commands.NewDeleteDriverCommandHandler(driverRemovalUoWFactory{factory}, clk, publisher),
		recordExpense: commands.NewRecordExpenseCommandHandler(expenseUoWFactory{factory}, clk, publisher),
	}
}

func (e *engine) addVehicle(t *testing.T, capacity, odometer float64) kernel.UUID {
	t.Helper()
	cmd, err := commands.NewRegisterVehicleCommand(kernel.NewUUID(), "Van", "MH-01", capacity, odometer)
	require.NoError(t, err)
	v, err := e.registerVehicle.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return v.ID()
}

func (e *engine) addDriver(t *testing.T, licenseExpiry time.Time) kernel.UUID {
	t.Helper()
	cmd, err := commands.NewRegisterDriverCommand(kernel.NewUUID(), "Driver", "DL-1", licenseExpiry, 95)
	require.NoError(t, err)
	d, err := e.registerDriver.Handle(t.Context(), cmd)
	require.NoError(t, err)
	return d.ID()
}

func (e *engine) create(t *testing.T, vehicleID, driverID kernel.UUID, cargo float64) (*trip.Trip, error) {
	t.Helper()
	cmd, err := commands.NewCreateTripCommand(kernel.NewUUID(), vehicleID, driverID, cargo, trip.Details{})
	require.NoError(t, err)
	return e.createTrip.Handle(t.Context(), cmd)
}

func (e *engine) mustCreate(t *testing.T, vehicleID, driverID kernel.UUID, cargo float64) kernel.UUID {
	t.Helper()
	created, err := e.create(t, vehicleID, driverID, cargo)
	require.NoError(t, err)
	return created.ID()
}

func (e *engine) dispatch(ctx context.Context, tripID kernel.UUID, startOdometer float64) (*trip.Trip, error) {
	cmd, err := commands.NewDispatchTripCommand(tripID, startOdometer)
	if err != nil {
		return nil, err
	}
	return e.dispatchTrip.Handle(ctx, cmd)
}

func (e *engine) complete(t *testing.T, tripID kernel.UUID, endOdometer float64) (*trip.Trip, error) {
	t.Helper()
	cmd, err := commands.NewCompleteTripCommand(tripID, endOdometer)
	require.NoError(t, err)
	return e.completeTrip.Handle(t.Context(), cmd)
}

func (e *engine) cancel(t *testing.T, tripID kernel.UUID) (*trip.Trip, error) {
	t.Helper()
	cmd, err := commands.NewCancelTripCommand(tripID)
	require.NoError(t, err)
	return e.cancelTrip.Handle(t.Context(), cmd)
}

func (e *engine) removeVehicle(t *testing.T, id kernel.UUID) error {
	t.Helper()
	cmd, err := commands.NewDeleteVehicleCommand(id)
	require.NoError(t, err)
	return e.deleteVehicle.Handle(t.Context(), cmd)
}

func (e *engine) removeDriver(t *testing.T, id kernel.UUID) error {
	t.Helper()
	cmd, err := commands.NewDeleteDriverCommand(id)
	require.NoError(t, err)
	return e.deleteDriver.Handle(t.Context(), cmd)
}

func (e *engine) vehicle(t *testing.T, id kernel.UUID) *vehicle.Vehicle {
	t.Helper()
	uow := e.store.UnitOfWorkFactory().Create()
	require.NoError(t, uow.Begin(t.Context()))
	defer func() { _ = uow.Rollback(t.Context()) }()
	v, err := uow.VehicleRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return v
}

func (e *engine) driver(t *testing.T, id kernel.UUID) *driver.Driver {
	t.Helper()
	uow := e.store.UnitOfWorkFactory().Create()
	require.NoError(t, uow.Begin(t.Context()))
	defer func() { _ = uow.Rollback(t.Context()) }()
	d, err := uow.DriverRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return d
}

func (e *engine) trip(t *testing.T, id kernel.UUID) *trip.Trip {
	t.Helper()
	uow := e.store.UnitOfWorkFactory().Create()
	require.NoError(t, uow.Begin(t.Context()))
	defer func() { _ = uow.Rollback(t.Context()) }()
	tr, err := uow.TripRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return tr
}

func (e *engine) maintenanceLog(t *testing.T, id kernel.UUID) *maintenance.MaintenanceLog {
	t.Helper()
	uow := e.store.UnitOfWorkFactory().Create()
	require.NoError(t, uow.Begin(t.Context()))
	defer func() { _ = uow.Rollback(t.Context()) }()
	l, err := uow.MaintenanceLogRepository().Get(t.Context(), id)
	require.NoError(t, err)
	return l
}
