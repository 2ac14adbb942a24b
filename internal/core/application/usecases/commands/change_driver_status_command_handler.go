package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
)

// ChangeDriverStatusCommandHandler applies an administrative status change.
// Drivers held by a dispatched trip are refused with driver.ErrDriverOnTrip;
// their status is owned by the trip lifecycle until it ends.
type ChangeDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewChangeDriverStatusCommandHandler(
	uowFactory DriverUoWFactory,
	clk clock.Clock,
	publisher ports.EventPublisher,
) ChangeDriverStatusCommandHandler {
	return ChangeDriverStatusCommandHandler{uowFactory: uowFactory, clock: clk, publisher: publisher}
}

func (h ChangeDriverStatusCommandHandler) Handle(ctx context.Context, cmd ChangeDriverStatusCommand) (*driver.Driver, error) {
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

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}
	wasSuspended := d.Status() == driver.Suspended

	if err = d.ChangeStatus(cmd.Status()); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if !wasSuspended && d.Status() == driver.Suspended {
		h.publisher.Publish(ctx, driverEvent(kernel.EventDriverSuspended, d, h.clock.Now()))
	}
	return d, nil
}
