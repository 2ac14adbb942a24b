package commands

import (
	"context"
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
	"fleetflow/internal/pkg/errs"
)

// ToggleVehicleRetirementCommandHandler flips a vehicle between service and
// OutOfService. A reinstated vehicle with an open maintenance log goes back
// to InShop so a Pending log always has its vehicle in the shop or retired.
type ToggleVehicleRetirementCommandHandler struct {
	uowFactory MaintenanceUoWFactory
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewToggleVehicleRetirementCommandHandler(
	uowFactory MaintenanceUoWFactory,
	clk clock.Clock,
	publisher ports.EventPublisher,
) ToggleVehicleRetirementCommandHandler {
	return ToggleVehicleRetirementCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		publisher:  publisher,
	}
}

func (h ToggleVehicleRetirementCommandHandler) Handle(
	ctx context.Context,
	cmd ToggleVehicleRetirementCommand,
) (*vehicle.Vehicle, error) {
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

	v, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return nil, err
	}

	eventType := kernel.EventVehicleRetired
	if v.Status() == vehicle.OutOfService {
		_, err = uow.MaintenanceLogRepository().GetPendingByVehicle(ctx, v.ID())
		switch {
		case err == nil:
			err = v.Reinstate(true)
		case errors.Is(err, errs.ErrObjectNotFound):
			err = v.Reinstate(false)
		}
		eventType = kernel.EventVehicleReinstated
	} else {
		err = v.Retire()
	}
	if err != nil {
		return nil, err
	}

	if err = vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, vehicleEvent(eventType, v, h.clock.Now()))
	return v, nil
}
