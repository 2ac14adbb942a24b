package http

import (
	"net/http"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/core/domain/model/driver"

	"github.com/labstack/echo/v4"
)

// RegisterDriver handles POST /api/v1/drivers. A driver whose license has
// already expired is registered Suspended.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req NewDriver
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	driverID, err := idOrNew(req.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	safetyScore := float64(defaultSafetyScore)
	if req.SafetyScore != nil {
		safetyScore = *req.SafetyScore
	}

	cmd, err := commands.NewRegisterDriverCommand(driverID, req.Name, req.LicenseNumber, req.LicenseExpiryDate, safetyScore)
	if err != nil {
		return s.respondError(ctx, err)
	}
	registered, err := s.handlers.RegisterDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, driverFromAggregate(registered))
}

// ChangeDriverStatus handles PUT /api/v1/drivers/{driverId}/status.
func (s *Server) ChangeDriverStatus(ctx echo.Context) error {
	driverID, err := pathID(ctx, "driverId")
	if err != nil {
		return err
	}
	var req DriverStatusChange
	if err = bindBody(ctx, &req); err != nil {
		return err
	}
	status, err := driver.ParseStatus(req.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeDriverStatusCommand(driverID, status)
	if err != nil {
		return s.respondError(ctx, err)
	}
	changed, err := s.handlers.ChangeDriverStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, driverFromAggregate(changed))
}

// DeleteDriver handles DELETE /api/v1/drivers/{driverId}.
func (s *Server) DeleteDriver(ctx echo.Context) error {
	driverID, err := pathID(ctx, "driverId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteDriverCommand(driverID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	if err = s.handlers.DeleteDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListDrivers handles GET /api/v1/drivers.
func (s *Server) ListDrivers(ctx echo.Context) error {
	name, err := queryString(ctx, "status")
	if err != nil {
		return err
	}
	status := driver.Unknown
	if name != "" {
		if status, err = driver.ParseStatus(name); err != nil {
			return s.respondError(ctx, err)
		}
	}

	query, err := queries.NewListDriversQuery(status)
	if err != nil {
		return s.respondError(ctx, err)
	}
	drivers, err := s.handlers.ListDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = driverFromReadModel(d)
	}
	return ctx.JSON(http.StatusOK, response)
}
