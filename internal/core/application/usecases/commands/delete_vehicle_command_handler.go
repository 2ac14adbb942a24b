package commands

import (
	"context"
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
	"fleetflow/internal/pkg/errs"
)

// DeleteVehicleCommandHandler removes a vehicle nothing active depends on.
// A vehicle referenced by a Draft or Dispatched trip is refused with
// vehicle.ErrVehicleHasActiveTrips, one with an open maintenance log with
// vehicle.ErrVehicleInShop. The delete itself is conditional, so a trip or
// log added after the check makes it fail with a conflict instead of
// orphaning the newcomer.
type DeleteVehicleCommandHandler struct {
	uowFactory VehicleRemovalUoWFactory
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewDeleteVehicleCommandHandler(
	uowFactory VehicleRemovalUoWFactory,
	clk clock.Clock,
	publisher ports.EventPublisher,
) DeleteVehicleCommandHandler {
	return DeleteVehicleCommandHandler{uowFactory: uowFactory, clock: clk, publisher: publisher}
}

func (h DeleteVehicleCommandHandler) Handle(ctx context.Context, cmd DeleteVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vehicleRepo := uow.VehicleRepository()

	v, err := vehicleRepo.Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	activeTrips, err := uow.TripRepository().CountActiveByVehicle(ctx, v.ID())
	if err != nil {
		return err
	}
	_, err = uow.MaintenanceLogRepository().GetPendingByVehicle(ctx, v.ID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	maintenancePending := err == nil

	if err = v.CheckRemovable(activeTrips, maintenancePending); err != nil {
		return err
	}

	if err = vehicleRepo.Delete(ctx, v); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, vehicleEvent(kernel.EventVehicleDeleted, v, h.clock.Now()))
	return nil
}
