package http

import (
	"net/http"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// RegisterVehicle handles POST /api/v1/vehicles.
func (s *Server) RegisterVehicle(ctx echo.Context) error {
	var req NewVehicle
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	vehicleID, err := idOrNew(req.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewRegisterVehicleCommand(vehicleID, req.Name, req.LicensePlate, req.MaxCapacityKg, req.CurrentOdometer)
	if err != nil {
		return s.respondError(ctx, err)
	}
	registered, err := s.handlers.RegisterVehicle.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, vehicleFromAggregate(registered))
}

// ToggleVehicleRetirement handles POST /api/v1/vehicles/{vehicleId}/retirement.
func (s *Server) ToggleVehicleRetirement(ctx echo.Context) error {
	vehicleID, err := pathID(ctx, "vehicleId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewToggleVehicleRetirementCommand(vehicleID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	toggled, err := s.handlers.ToggleVehicleRetirement.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, vehicleFromAggregate(toggled))
}

// DeleteVehicle handles DELETE /api/v1/vehicles/{vehicleId}. A vehicle with
// draft or dispatched trips, or one in the shop, is kept.
func (s *Server) DeleteVehicle(ctx echo.Context) error {
	vehicleID, err := pathID(ctx, "vehicleId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteVehicleCommand(vehicleID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.DeleteVehicle.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListVehicles handles GET /api/v1/vehicles.
func (s *Server) ListVehicles(ctx echo.Context) error {
	name, err := queryString(ctx, "status")
	if err != nil {
		return err
	}
	status := vehicle.Unknown
	if name != "" {
		if status, err = vehicle.ParseStatus(name); err != nil {
			return s.respondError(ctx, err)
		}
	}

	query, err := queries.NewListVehiclesQuery(status)
	if err != nil {
		return s.respondError(ctx, err)
	}
	vehicles, err := s.handlers.ListVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = vehicleFromReadModel(v)
	}
	return ctx.JSON(http.StatusOK, response)
}
