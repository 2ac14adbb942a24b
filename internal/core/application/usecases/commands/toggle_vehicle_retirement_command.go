package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrToggleVehicleRetirementCommandIsNotConstructed = errors.New(
	"ToggleVehicleRetirementCommand must be created via NewToggleVehicleRetirementCommand constructor",
)

// ToggleVehicleRetirementCommand retires an active vehicle or reinstates a
// retired one.
type ToggleVehicleRetirementCommand struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewToggleVehicleRetirementCommand(vehicleID kernel.UUID) (ToggleVehicleRetirementCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return ToggleVehicleRetirementCommand{}, err
	}
	return ToggleVehicleRetirementCommand{vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

func (c ToggleVehicleRetirementCommand) Validate() error {
	return c.guard.Validate(ErrToggleVehicleRetirementCommandIsNotConstructed)
}

func (c ToggleVehicleRetirementCommand) VehicleID() kernel.UUID { return c.vehicleID }
