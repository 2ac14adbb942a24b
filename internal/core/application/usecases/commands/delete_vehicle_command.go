package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrDeleteVehicleCommandIsNotConstructed = errors.New(
	"DeleteVehicleCommand must be created via NewDeleteVehicleCommand constructor",
)

// DeleteVehicleCommand removes a vehicle from the fleet.
type DeleteVehicleCommand struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteVehicleCommand(vehicleID kernel.UUID) (DeleteVehicleCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return DeleteVehicleCommand{}, err
	}
	return DeleteVehicleCommand{vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteVehicleCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVehicleCommandIsNotConstructed)
}

func (c DeleteVehicleCommand) VehicleID() kernel.UUID { return c.vehicleID }
