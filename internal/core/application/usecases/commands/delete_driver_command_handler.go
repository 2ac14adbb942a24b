package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
)

// DeleteDriverCommandHandler removes a driver without Draft or Dispatched
// trips. Otherwise it fails with driver.ErrDriverHasActiveTrips, or with a
// conflict when such a trip appears between the check and the delete.
type DeleteDriverCommandHandler struct {
	uowFactory DriverRemovalUoWFactory
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewDeleteDriverCommandHandler(
	uowFactory DriverRemovalUoWFactory,
	clk clock.Clock,
	publisher ports.EventPublisher,
) DeleteDriverCommandHandler {
	return DeleteDriverCommandHandler{uowFactory: uowFactory, clock: clk, publisher: publisher}
}

func (h DeleteDriverCommandHandler) Handle(ctx context.Context, cmd DeleteDriverCommand) error {
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

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}

	activeTrips, err := uow.TripRepository().CountActiveByDriver(ctx, d.ID())
	if err != nil {
		return err
	}
	if err = d.CheckRemovable(activeTrips); err != nil {
		return err
	}

	if err = driverRepo.Delete(ctx, d); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, driverEvent(kernel.EventDriverDeleted, d, h.clock.Now()))
	return nil
}
