package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrDispatchTripCommandIsNotConstructed = errors.New(
	"DispatchTripCommand must be created via NewDispatchTripCommand constructor",
)

// DispatchTripCommand moves a Draft trip onto the road.
type DispatchTripCommand struct {
	tripID        kernel.UUID
	startOdometer float64

	guard guard.ConstructorGuard
}

// NewDispatchTripCommand creates a command to dispatch tripID with the
// vehicle odometer reading at departure.
func NewDispatchTripCommand(tripID kernel.UUID, startOdometer float64) (DispatchTripCommand, error) {
	if err := tripID.Validate(); err != nil {
		return DispatchTripCommand{}, err
	}
	return DispatchTripCommand{
		tripID:        tripID,
		startOdometer: startOdometer,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchTripCommand) Validate() error {
	return c.guard.Validate(ErrDispatchTripCommandIsNotConstructed)
}

func (c DispatchTripCommand) TripID() kernel.UUID    { return c.tripID }
func (c DispatchTripCommand) StartOdometer() float64 { return c.startOdometer }
