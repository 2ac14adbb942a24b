package commands

import (
	"context"
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/maintenance"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
	"fleetflow/internal/pkg/errs"
)

// OpenMaintenanceCommandHandler opens a Pending log and moves the vehicle to
// InShop in one commit. A vehicle on a trip is refused with
// vehicle.ErrVehicleInUse; a vehicle with an open log is refused with
// maintenance.ErrMaintenanceAlreadyPending.
type OpenMaintenanceCommandHandler struct {
	uowFactory MaintenanceUoWFactory
	gate       services.MaintenanceGate
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewOpenMaintenanceCommandHandler(
	uowFactory MaintenanceUoWFactory,
	gate services.MaintenanceGate,
	clk clock.Clock,
	publisher ports.EventPublisher,
) OpenMaintenanceCommandHandler {
	return OpenMaintenanceCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		clock:      clk,
		publisher:  publisher,
	}
}

func (h OpenMaintenanceCommandHandler) Handle(
	ctx context.Context,
	cmd OpenMaintenanceCommand,
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

	v, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	pending, err := logRepo.GetPendingByVehicle(ctx, cmd.VehicleID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	serviceDate := cmd.ServiceDate()
	if serviceDate.IsZero() {
		serviceDate = h.clock.Now()
	}

	log, err := h.gate.Open(cmd.LogID(), v, pending, services.MaintenanceRequest{
		Description: cmd.Description(),
		Cost:        cmd.Cost(),
		ServiceDate: serviceDate,
	})
	if err != nil {
		return nil, err
	}

	if err = logRepo.Add(ctx, log); err != nil {
		return nil, err
	}
	if err = vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, maintenanceEvent(kernel.EventMaintenanceOpened, log, v, h.clock.Now()))
	return log, nil
}
