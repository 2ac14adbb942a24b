package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
)

// CompleteTripCommandHandler finishes a Dispatched trip. The vehicle and
// driver are written only when the trip actually released them.
type CompleteTripCommandHandler struct {
	uowFactory TripUoWFactory
	lifecycle  services.TripLifecycle
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewCompleteTripCommandHandler(
	uowFactory TripUoWFactory,
	lifecycle services.TripLifecycle,
	clk clock.Clock,
	publisher ports.EventPublisher,
) CompleteTripCommandHandler {
	return CompleteTripCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		clock:      clk,
		publisher:  publisher,
	}
}

func (h CompleteTripCommandHandler) Handle(ctx context.Context, cmd CompleteTripCommand) (*trip.Trip, error) {
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
	release, err := h.lifecycle.Complete(t, v, d, cmd.EndOdometer(), now)
	if err != nil {
		return nil, err
	}

	if err = tripRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	if release.Vehicle {
		if err = vehicleRepo.Update(ctx, v); err != nil {
			return nil, err
		}
	}
	if release.Driver {
		if err = driverRepo.Update(ctx, d); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, tripEvent(kernel.EventTripCompleted, t, now))
	return t, nil
}
