package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrCompleteTripCommandIsNotConstructed = errors.New(
	"CompleteTripCommand must be created via NewCompleteTripCommand constructor",
)

// CompleteTripCommand closes a Dispatched trip with its final odometer reading.
type CompleteTripCommand struct {
	tripID      kernel.UUID
	endOdometer float64

	guard guard.ConstructorGuard
}

func NewCompleteTripCommand(tripID kernel.UUID, endOdometer float64) (CompleteTripCommand, error) {
	if err := tripID.Validate(); err != nil {
		return CompleteTripCommand{}, err
	}
	return CompleteTripCommand{
		tripID:      tripID,
		endOdometer: endOdometer,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteTripCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTripCommandIsNotConstructed)
}

func (c CompleteTripCommand) TripID() kernel.UUID  { return c.tripID }
func (c CompleteTripCommand) EndOdometer() float64 { return c.endOdometer }
