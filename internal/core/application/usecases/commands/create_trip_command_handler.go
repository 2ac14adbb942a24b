package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
)

// CreateTripCommandHandler validates eligibility and stores a Draft trip.
// Vehicle and driver are only read; nothing is claimed until dispatch.
type CreateTripCommandHandler struct {
	uowFactory TripUoWFactory
	lifecycle  services.TripLifecycle
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewCreateTripCommandHandler(
	uowFactory TripUoWFactory,
	lifecycle services.TripLifecycle,
	clk clock.Clock,
	publisher ports.EventPublisher,
) CreateTripCommandHandler {
	return CreateTripCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  lifecycle,
		clock:      clk,
		publisher:  publisher,
	}
}

// Handle returns the new trip, or *errs.ValidationError listing every
// violation when the trip may not be created.
func (h CreateTripCommandHandler) Handle(ctx context.Context, cmd CreateTripCommand) (*trip.Trip, error) {
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

	vehicleSnapshot, err := vehicleOrNil(ctx, uow.VehicleRepository(), cmd.VehicleID())
	if err != nil {
		return nil, err
	}
	driverSnapshot, err := driverOrNil(ctx, uow.DriverRepository(), cmd.DriverID())
	if err != nil {
		return nil, err
	}

	now := h.clock.Now()
	created, err := h.lifecycle.Create(cmd.TripID(), services.EligibilityRequest{
		VehicleID:     cmd.VehicleID(),
		Vehicle:       vehicleSnapshot,
		DriverID:      cmd.DriverID(),
		Driver:        driverSnapshot,
		CargoWeightKg: cmd.CargoWeightKg(),
	}, cmd.Details(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.TripRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, tripEvent(kernel.EventTripCreated, created, now))
	return created, nil
}
