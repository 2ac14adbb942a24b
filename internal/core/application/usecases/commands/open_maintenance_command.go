package commands

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrOpenMaintenanceCommandIsNotConstructed = errors.New(
	"OpenMaintenanceCommand must be created via NewOpenMaintenanceCommand constructor",
)

// OpenMaintenanceCommand sends a vehicle to the shop under a new log.
type OpenMaintenanceCommand struct {
	logID       kernel.UUID
	vehicleID   kernel.UUID
	description string
	cost        float64
	serviceDate time.Time

	guard guard.ConstructorGuard
}

func NewOpenMaintenanceCommand(
	logID kernel.UUID,
	vehicleID kernel.UUID,
	description string,
	cost float64,
	serviceDate time.Time,
) (OpenMaintenanceCommand, error) {
	if err := errors.Join(logID.Validate(), vehicleID.Validate()); err != nil {
		return OpenMaintenanceCommand{}, err
	}
	return OpenMaintenanceCommand{
		logID:       logID,
		vehicleID:   vehicleID,
		description: description,
		cost:        cost,
		serviceDate: serviceDate,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c OpenMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrOpenMaintenanceCommandIsNotConstructed)
}

func (c OpenMaintenanceCommand) LogID() kernel.UUID     { return c.logID }
func (c OpenMaintenanceCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c OpenMaintenanceCommand) Description() string    { return c.description }
func (c OpenMaintenanceCommand) Cost() float64          { return c.cost }
func (c OpenMaintenanceCommand) ServiceDate() time.Time { return c.serviceDate }
