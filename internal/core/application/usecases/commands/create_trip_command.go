package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/model/trip"
	"fleetflow/internal/pkg/guard"
)

var ErrCreateTripCommandIsNotConstructed = errors.New(
	"CreateTripCommand must be created via NewCreateTripCommand constructor",
)

// CreateTripCommand asks for a new Draft trip. The trip ID is chosen by the
// caller so a retried request can be recognised.
//
// Example:
//
//	cmd, err := NewCreateTripCommand(kernel.NewUUID(), vehicleID, driverID, 4000, trip.Details{
//	    Origin:      "Pune Depot",
//	    Destination: "Mumbai Port",
//	})
type CreateTripCommand struct {
	tripID        kernel.UUID
	vehicleID     kernel.UUID
	driverID      kernel.UUID
	cargoWeightKg float64
	details       trip.Details

	guard guard.ConstructorGuard
}

// NewCreateTripCommand validates the identifiers. Cargo and money fields are
// validated together with eligibility so every problem is reported at once.
func NewCreateTripCommand(
	tripID kernel.UUID,
	vehicleID kernel.UUID,
	driverID kernel.UUID,
	cargoWeightKg float64,
	details trip.Details,
) (CreateTripCommand, error) {
	if err := errors.Join(tripID.Validate(), vehicleID.Validate(), driverID.Validate()); err != nil {
		return CreateTripCommand{}, err
	}

	return CreateTripCommand{
		tripID:        tripID,
		vehicleID:     vehicleID,
		driverID:      driverID,
		cargoWeightKg: cargoWeightKg,
		details:       details,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTripCommand) Validate() error {
	return c.guard.Validate(ErrCreateTripCommandIsNotConstructed)
}

func (c CreateTripCommand) TripID() kernel.UUID    { return c.tripID }
func (c CreateTripCommand) VehicleID() kernel.UUID { return c.vehicleID }
func (c CreateTripCommand) DriverID() kernel.UUID  { return c.driverID }
func (c CreateTripCommand) CargoWeightKg() float64 { return c.cargoWeightKg }
func (c CreateTripCommand) Details() trip.Details  { return c.details }
