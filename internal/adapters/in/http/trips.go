package http

import (
	"net/http"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/core/domain/model/trip"

	"github.com/labstack/echo/v4"
)

// CreateTrip handles POST /api/v1/trips.
func (s *Server) CreateTrip(ctx echo.Context) error {
	var req NewTrip
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	tripID, err := idOrNew(req.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	vehicleID, err := toKernelID(req.VehicleID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	driverID, err := toKernelID(req.DriverID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateTripCommand(tripID, vehicleID, driverID, *req.CargoWeightKg, trip.Details{
		Origin:            req.Origin,
		Destination:       req.Destination,
		EstimatedFuelCost: req.EstimatedFuelCost,
		Revenue:           req.Revenue,
		CargoDescription:  req.CargoDescription,
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	created, err := s.handlers.CreateTrip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, tripFromAggregate(created))
}

// DispatchTrip handles POST /api/v1/trips/{tripId}/dispatch.
func (s *Server) DispatchTrip(ctx echo.Context) error {
	tripID, err := pathID(ctx, "tripId")
	if err != nil {
		return err
	}
	var req DispatchTrip
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewDispatchTripCommand(tripID, *req.StartOdometer)
	if err != nil {
		return s.respondError(ctx, err)
	}

	dispatched, err := s.handlers.DispatchTrip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, tripFromAggregate(dispatched))
}

// CompleteTrip handles POST /api/v1/trips/{tripId}/complete.
func (s *Server) CompleteTrip(ctx echo.Context) error {
	tripID, err := pathID(ctx, "tripId")
	if err != nil {
		return err
	}
	var req CompleteTrip
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteTripCommand(tripID, *req.EndOdometer)
	if err != nil {
		return s.respondError(ctx, err)
	}

	completed, err := s.handlers.CompleteTrip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, tripFromAggregate(completed))
}

// CancelTrip handles POST /api/v1/trips/{tripId}/cancel. Cancelling a trip
// that is already cancelled succeeds without changes.
func (s *Server) CancelTrip(ctx echo.Context) error {
	tripID, err := pathID(ctx, "tripId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelTripCommand(tripID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cancelled, err := s.handlers.CancelTrip.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, tripFromAggregate(cancelled))
}

// ListTrips handles GET /api/v1/trips.
func (s *Server) ListTrips(ctx echo.Context) error {
	name, err := queryString(ctx, "status")
	if err != nil {
		return err
	}
	status := trip.Unknown
	if name != "" {
		if status, err = trip.ParseStatus(name); err != nil {
			return s.respondError(ctx, err)
		}
	}

	query, err := queries.NewListTripsQuery(status)
	if err != nil {
		return s.respondError(ctx, err)
	}
	trips, err := s.handlers.ListTrips.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Trip, len(trips))
	for i, t := range trips {
		response[i] = tripFromReadModel(t)
	}
	return ctx.JSON(http.StatusOK, response)
}
