package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrRegisterVehicleCommandIsNotConstructed = errors.New(
	"RegisterVehicleCommand must be created via NewRegisterVehicleCommand constructor",
)

// RegisterVehicleCommand adds a vehicle to the fleet.
type RegisterVehicleCommand struct {
	vehicleID       kernel.UUID
	name            string
	licensePlate    string
	maxCapacityKg   float64
	currentOdometer float64

	guard guard.ConstructorGuard
}

func NewRegisterVehicleCommand(
	vehicleID kernel.UUID,
	name string,
	licensePlate string,
	maxCapacityKg float64,
	currentOdometer float64,
) (RegisterVehicleCommand, error) {
	if err := vehicleID.Validate(); err != nil {
		return RegisterVehicleCommand{}, err
	}
	return RegisterVehicleCommand{
		vehicleID:       vehicleID,
		name:            name,
		licensePlate:    licensePlate,
		maxCapacityKg:   maxCapacityKg,
		currentOdometer: currentOdometer,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterVehicleCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVehicleCommandIsNotConstructed)
}

func (c RegisterVehicleCommand) VehicleID() kernel.UUID   { return c.vehicleID }
func (c RegisterVehicleCommand) Name() string             { return c.name }
func (c RegisterVehicleCommand) LicensePlate() string     { return c.licensePlate }
func (c RegisterVehicleCommand) MaxCapacityKg() float64   { return c.maxCapacityKg }
func (c RegisterVehicleCommand) CurrentOdometer() float64 { return c.currentOdometer }
