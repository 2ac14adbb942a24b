package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
)

// DispatchTripCommandHandler claims the vehicle and driver of a Draft trip.
//
// The three writes are conditional on the versions read in this unit of
// work and are committed together. Of two concurrent dispatches competing
// for the same vehicle or driver exactly one commits; the other fails with
// *errs.ResourceConflictError and is not retried.
//
// Example:
//
//	cmd, _ := NewDispatchTripCommand(tripID, 12000)
//	dispatched, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrResourceConflict) {
//	    // re-read the trip and its resources before trying again
//	}
type DispatchTripCommandHandler struct {
	uowFactory TripUoWFactory
	lifecycle  services.TripLifecycle
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewDispatchTripCommandHandler(
	uowFactory TripUoWFactory,
	lifecycle services.TripLifecycle,
	clk clock.Clock,
	publisher ports.EventPublisher,
) DispatchTripCommandHandler {
	return DispatchTripCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		clock:      clk,
		publisher:  publisher,
	}
}

func (h DispatchTripCommandHandler) Handle(ctx context.Context, cmd DispatchTripCommand) (*trip.Trip, error) {
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

	tripRepo := uow.TripRepository()
	vehicleRepo := uow.VehicleRepository()
	driverRepo := uow.DriverRepository()

	t, err := tripRepo.Get(ctx, cmd.TripID())
	if err != nil {
		return nil, err
	}
	v, err := vehicleRepo.Get(ctx, t.VehicleID())
	if err != nil {
		return nil, err
	}
	d, err := driverRepo.Get(ctx, t.DriverID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	if err = h.lifecycle.Dispatch(t, v, d, cmd.StartOdometer(), now); err != nil {
		return nil, err
	}

	if err = tripRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	if err = vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, tripEvent(kernel.EventTripDispatched, t, now))
	return t, nil
}
