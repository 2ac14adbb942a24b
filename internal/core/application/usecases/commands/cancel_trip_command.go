package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrCancelTripCommandIsNotConstructed = errors.New(
	"CancelTripCommand must be created via NewCancelTripCommand constructor",
)

// CancelTripCommand abandons a Draft or Dispatched trip.
type CancelTripCommand struct {
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCancelTripCommand(tripID kernel.UUID) (CancelTripCommand, error) {
	if err := tripID.Validate(); err != nil {
		return CancelTripCommand{}, err
	}
	return CancelTripCommand{tripID: tripID, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelTripCommand) Validate() error {
	return c.guard.Validate(ErrCancelTripCommandIsNotConstructed)
}

func (c CancelTripCommand) TripID() kernel.UUID { return c.tripID }
