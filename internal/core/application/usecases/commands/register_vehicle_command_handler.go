package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/vehicle"
)

// RegisterVehicleCommandHandler stores a new Available vehicle.
type RegisterVehicleCommandHandler struct {
	uowFactory VehicleUoWFactory
}

func NewRegisterVehicleCommandHandler(uowFactory VehicleUoWFactory) RegisterVehicleCommandHandler {
	return RegisterVehicleCommandHandler{uowFactory: uowFactory}
}

func (h RegisterVehicleCommandHandler) Handle(ctx context.Context, cmd RegisterVehicleCommand) (*vehicle.Vehicle, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	v, err := vehicle.NewVehicle(
		cmd.VehicleID(),
		cmd.Name(),
		cmd.LicensePlate(),
		cmd.MaxCapacityKg(),
		cmd.CurrentOdometer(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.VehicleRepository().Add(ctx, v); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return v, nil
}
