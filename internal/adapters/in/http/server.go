package http

import (
	"context"
	"log/slog"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/application/usecases/queries"
)

type TripLister interface {
	Handle(ctx context.Context, query queries.ListTripsQuery) ([]queries.ListTripsQueryResponse, error)
}

type VehicleLister interface {
	Handle(ctx context.Context, query queries.ListVehiclesQuery) ([]queries.ListVehiclesQueryResponse, error)
}

type DriverLister interface {
	Handle(ctx context.Context, query queries.ListDriversQuery) ([]queries.ListDriversQueryResponse, error)
}

type MaintenanceLogLister interface {
	Handle(
		ctx context.Context,
		query queries.ListMaintenanceLogsQuery,
	) ([]queries.ListMaintenanceLogsQueryResponse, error)
}

type ExpenseLister interface {
	Handle(ctx context.Context, query queries.ListExpensesQuery) ([]queries.ListExpensesQueryResponse, error)
}

// Handlers groups the use cases the server exposes. Read models are taken as
// interfaces since they are backed directly by SQL.
type Handlers struct {
	CreateTrip              commands.CreateTripCommandHandler
	DispatchTrip            commands.DispatchTripCommandHandler
	CompleteTrip            commands.CompleteTripCommandHandler
	CancelTrip              commands.CancelTripCommandHandler
	RegisterVehicle         commands.RegisterVehicleCommandHandler
	ToggleVehicleRetirement commands.ToggleVehicleRetirementCommandHandler
	RegisterDriver          commands.RegisterDriverCommandHandler
	ChangeDriverStatus      commands.ChangeDriverStatusCommandHandler
	OpenMaintenance         commands.OpenMaintenanceCommandHandler
	CompleteMaintenance     commands.CompleteMaintenanceCommandHandler
	DeleteVehicle           commands.DeleteVehicleCommandHandler
	DeleteDriver            commands.DeleteDriverCommandHandler
	RecordExpense           commands.RecordExpenseCommandHandler

	ListTrips           TripLister
	ListVehicles        VehicleLister
	ListDrivers         DriverLister
	ListMaintenanceLogs MaintenanceLogLister
	ListExpenses        ExpenseLister
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}
