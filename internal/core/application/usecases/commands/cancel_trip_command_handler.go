package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/model/vehicle"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
)

// CancelTripCommandHandler cancels a trip. A Draft trip holds no resources,
// so only the trip is written. A Dispatched trip releases the vehicle and
// driver it still holds, using the same conditional writes as dispatch, so
// it can never free a resource that another trip has claimed since.
type CancelTripCommandHandler struct {
	uowFactory TripUoWFactory
	lifecycle  services.TripLifecycle
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewCancelTripCommandHandler(
	uowFactory TripUoWFactory,
	lifecycle services.TripLifecycle,
	clk clock.Clock,
	publisher ports.EventPublisher,
) CancelTripCommandHandler {
	return CancelTripCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		clock:      clk,
		publisher:  publisher,
	}
}

func (h CancelTripCommandHandler) Handle(ctx context.Context, cmd CancelTripCommand) (*trip.Trip, error) {
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
	if _, err = t.Status().Cancel(); err != nil {
		return nil, err
	}

	// a Draft trip is cancelled without its resources, which may be gone
	var (
		v *vehicle.Vehicle
		d *driver.Driver
	)
	if t.Status() == trip.Dispatched {
		if v, err = vehicleRepo.Get(ctx, t.VehicleID()); err != nil {
			return nil, err
		}
		if d, err = driverRepo.Get(ctx, t.DriverID()); err != nil {
			return nil, err
		}
	}

	release, err := h.lifecycle.Cancel(t, v, d)
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

	h.publisher.Publish(ctx, tripEvent(kernel.EventTripCancelled, t, h.clock.Now()))
	return t, nil
}
