package http

import (
	"net/http"
	"time"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/core/domain/model/maintenance"

	"github.com/labstack/echo/v4"
)

// OpenMaintenance handles POST /api/v1/maintenance-logs. The service date
// defaults to now.
func (s *Server) OpenMaintenance(ctx echo.Context) error {
	var req NewMaintenanceLog
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	logID, err := idOrNew(req.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	vehicleID, err := toKernelID(req.VehicleID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewOpenMaintenanceCommand(logID, vehicleID, req.Description, req.Cost, timeOrZero(req.ServiceDate))
	if err != nil {
		return s.respondError(ctx, err)
	}
	opened, err := s.handlers.OpenMaintenance.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, maintenanceLogFromAggregate(opened))
}

// CompleteMaintenance handles POST /api/v1/maintenance-logs/{logId}/complete.
func (s *Server) CompleteMaintenance(ctx echo.Context) error {
	logID, err := pathID(ctx, "logId")
	if err != nil {
		return err
	}
	var req CompleteMaintenance
	if err = bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCompleteMaintenanceCommand(logID, timeOrZero(req.CompletedDate), req.TechnicianName)
	if err != nil {
		return s.respondError(ctx, err)
	}
	completed, err := s.handlers.CompleteMaintenance.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, maintenanceLogFromAggregate(completed))
}

// ListMaintenanceLogs handles GET /api/v1/maintenance-logs.
func (s *Server) ListMaintenanceLogs(ctx echo.Context) error {
	name, err := queryString(ctx, "status")
	if err != nil {
		return err
	}
	vehicleID, err := queryID(ctx, "vehicleId")
	if err != nil {
		return err
	}
	status := maintenance.Unknown
	if name != "" {
		if status, err = maintenance.ParseStatus(name); err != nil {
			return s.respondError(ctx, err)
		}
	}

	query, err := queries.NewListMaintenanceLogsQuery(status, vehicleID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	logs, err := s.handlers.ListMaintenanceLogs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]MaintenanceLog, len(logs))
	for i, l := range logs {
		response[i] = maintenanceLogFromReadModel(l)
	}
	return ctx.JSON(http.StatusOK, response)
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
