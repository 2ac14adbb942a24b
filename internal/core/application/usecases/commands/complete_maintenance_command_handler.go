package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
)

// CompleteMaintenanceCommandHandler closes a log and returns the vehicle to
// the status it had before the shop. A vehicle retired in the meantime is
// not written.
type CompleteMaintenanceCommandHandler struct {
	uowFactory MaintenanceUoWFactory
	gate       services.MaintenanceGate
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewCompleteMaintenanceCommandHandler(
	uowFactory MaintenanceUoWFactory,
	gate services.MaintenanceGate,
	clk clock.Clock,
	publisher ports.EventPublisher,
) CompleteMaintenanceCommandHandler {
	return CompleteMaintenanceCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		clock:      clk,
		publisher:  publisher,
	}
}

func (h CompleteMaintenanceCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteMaintenanceCommand,
) (*maintenance.MaintenanceLog, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()
	logRepo := uow.MaintenanceLogRepository()

	log, err := logRepo.Get(ctx, cmd.LogID())
	if err != nil {
		return nil, err
	}
	v, err := vehicleRepo.Get(ctx, log.VehicleID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	completedDate := cmd.CompletedDate()
	if completedDate.IsZero() {
		completedDate = now
	}

	restored, err := h.gate.Complete(log, v, completedDate, cmd.TechnicianName())
	if err != nil {
		return nil, err
	}

	if err = logRepo.Update(ctx, log); err != nil {
		return nil, err
	}
	if restored {
		if err = vehicleRepo.Update(ctx, v); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, maintenanceEvent(kernel.EventMaintenanceCompleted, log, v, now))
	return log, nil
}
