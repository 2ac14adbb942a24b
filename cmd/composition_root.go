package cmd

import (
	"log/slog"

	"fleetflow/internal/adapters/in/http"
	"fleetflow/internal/adapters/out/postgres"
	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/jobs"
	"fleetflow/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	clock      clock.Clock
	lifecycle  services.TripLifecycle
	gate       services.MaintenanceGate
	logger     *slog.Logger
}

// NewCompositionRoot wires the engine over gormDB. The driver statuses that
// may be dispatched come from the config.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) (CompositionRoot, error) {
	eligibility, err := services.NewEligibilityValidator(config.DriverEligibleStatuses...)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		clock:      clock.System{},
		lifecycle:  services.NewTripLifecycle(eligibility),
		gate:       services.NewMaintenanceGate(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) tripUoWFactory() commands.TripUoWFactory {
	return FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) maintenanceUoWFactory() commands.MaintenanceUoWFactory {
	return FuncMaintenanceUoWFactory(func() commands.MaintenanceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleUoWFactory() commands.VehicleUoWFactory {
	return FuncVehicleUoWFactory(func() commands.VehicleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) vehicleRemovalUoWFactory() commands.VehicleRemovalUoWFactory {
	return FuncVehicleRemovalUoWFactory(func() commands.VehicleRemovalUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverRemovalUoWFactory() commands.DriverRemovalUoWFactory {
	return FuncDriverRemovalUoWFactory(func() commands.DriverRemovalUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) expenseUoWFactory() commands.ExpenseUoWFactory {
	return FuncExpenseUoWFactory(func() commands.ExpenseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateTripCommandHandler() commands.CreateTripCommandHandler {
	return commands.NewCreateTripCommandHandler(c.tripUoWFactory(), c.lifecycle, c.clock, c.publisher)
}

func (c *CompositionRoot) CreateDispatchTripCommandHandler() commands.DispatchTripCommandHandler {
	return commands.NewDispatchTripCommandHandler(c.tripUoWFactory(), c.lifecycle, c.clock, c.publisher)
}

func (c *CompositionRoot) CreateCompleteTripCommandHandler() commands.CompleteTripCommandHandler {
	return commands.NewCompleteTripCommandHandler(c.tripUoWFactory(), c.lifecycle, c.clock, c.publisher)
}

func (c *CompositionRoot) CreateCancelTripCommandHandler() commands.CancelTripCommandHandler {
	return commands.NewCancelTripCommandHandler(c.tripUoWFactory(), c.lifecycle, c.clock, c.publisher)
}

func (c *CompositionRoot) CreateOpenMaintenanceCommandHandler() commands.OpenMaintenanceCommandHandler {
	return commands.NewOpenMaintenanceCommandHandler(c.maintenanceUoWFactory(), c.gate, c.clock, c.publisher)
}

func (c *CompositionRoot) CreateCompleteMaintenanceCommandHandler() commands.CompleteMaintenanceCommandHandler {
	return commands.NewCompleteMaintenanceCommandHandler(c.maintenanceUoWFactory(), c.gate, c.clock, c.publisher)
}

func (c *CompositionRoot) CreateToggleVehicleRetirementCommandHandler() commands.ToggleVehicleRetirementCommandHandler {
	return commands.NewToggleVehicleRetirementCommandHandler(c.maintenanceUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateRegisterVehicleCommandHandler() commands.RegisterVehicleCommandHandler {
	return commands.NewRegisterVehicleCommandHandler(c.vehicleUoWFactory())
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	return commands.NewRegisterDriverCommandHandler(c.driverUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateChangeDriverStatusCommandHandler() commands.ChangeDriverStatusCommandHandler {
	return commands.NewChangeDriverStatusCommandHandler(c.driverUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateDeleteVehicleCommandHandler() commands.DeleteVehicleCommandHandler {
	return commands.NewDeleteVehicleCommandHandler(c.vehicleRemovalUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.driverRemovalUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateRecordExpenseCommandHandler() commands.RecordExpenseCommandHandler {
	return commands.NewRecordExpenseCommandHandler(c.expenseUoWFactory(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateSweepExpiredLicensesCommandHandler() commands.SweepExpiredLicensesCommandHandler {
	return commands.NewSweepExpiredLicensesCommandHandler(
		c.driverUoWFactory(), services.NewLicenseSweeper(), c.clock, c.publisher)
}

func (c *CompositionRoot) CreateListTripsQueryHandler() queries.ListTripsQueryHandler {
	return queries.NewListTripsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVehiclesQueryHandler() queries.ListVehiclesQueryHandler {
	return queries.NewListVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMaintenanceLogsQueryHandler() queries.ListMaintenanceLogsQueryHandler {
	return queries.NewListMaintenanceLogsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListExpensesQueryHandler() queries.ListExpensesQueryHandler {
	return queries.NewListExpensesQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case exposed over HTTP.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateTrip:              c.CreateCreateTripCommandHandler(),
		DispatchTrip:            c.CreateDispatchTripCommandHandler(),
		CompleteTrip:            c.CreateCompleteTripCommandHandler(),
		CancelTrip:              c.CreateCancelTripCommandHandler(),
		RegisterVehicle:         c.CreateRegisterVehicleCommandHandler(),
		ToggleVehicleRetirement: c.CreateToggleVehicleRetirementCommandHandler(),
		RegisterDriver:          c.CreateRegisterDriverCommandHandler(),
		ChangeDriverStatus:      c.CreateChangeDriverStatusCommandHandler(),
		OpenMaintenance:         c.CreateOpenMaintenanceCommandHandler(),
		CompleteMaintenance:     c.CreateCompleteMaintenanceCommandHandler(),
		DeleteVehicle:           c.CreateDeleteVehicleCommandHandler(),
		DeleteDriver:            c.CreateDeleteDriverCommandHandler(),
		RecordExpense:           c.CreateRecordExpenseCommandHandler(),
		ListTrips:               c.CreateListTripsQueryHandler(),
		ListVehicles:            c.CreateListVehiclesQueryHandler(),
		ListDrivers:             c.CreateListDriversQueryHandler(),
		ListMaintenanceLogs:     c.CreateListMaintenanceLogsQueryHandler(),
		ListExpenses:            c.CreateListExpensesQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateSweepExpiredLicensesCommandHandler(), c.config.LicenseSweepSchedule, c.logger)
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncMaintenanceUoWFactory func() commands.MaintenanceUoW

func (f FuncMaintenanceUoWFactory) Create() commands.MaintenanceUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncVehicleUoWFactory func() commands.VehicleUoW

func (f FuncVehicleUoWFactory) Create() commands.VehicleUoW {
	return f()
}

type FuncVehicleRemovalUoWFactory func() commands.VehicleRemovalUoW

func (f FuncVehicleRemovalUoWFactory) Create() commands.VehicleRemovalUoW {
	return f()
}

type FuncDriverRemovalUoWFactory func() commands.DriverRemovalUoW

func (f FuncDriverRemovalUoWFactory) Create() commands.DriverRemovalUoW {
	return f()
}

type FuncExpenseUoWFactory func() commands.ExpenseUoW

func (f FuncExpenseUoWFactory) Create() commands.ExpenseUoW {
	return f()
}
