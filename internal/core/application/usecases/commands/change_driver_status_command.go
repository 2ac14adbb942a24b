package commands

import (
	"errors"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrChangeDriverStatusCommandIsNotConstructed = errors.New(
	"ChangeDriverStatusCommand must be created via NewChangeDriverStatusCommand constructor",
)

// ChangeDriverStatusCommand is an administrative status edit.
type ChangeDriverStatusCommand struct {
	driverID kernel.UUID
	status   driver.Status

	guard guard.ConstructorGuard
}

func NewChangeDriverStatusCommand(driverID kernel.UUID, status driver.Status) (ChangeDriverStatusCommand, error) {
	if err := errors.Join(driverID.Validate(), status.Validate()); err != nil {
		return ChangeDriverStatusCommand{}, err
	}
	return ChangeDriverStatusCommand{
		driverID: driverID,
		status:   status,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDriverStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverStatusCommandIsNotConstructed)
}

func (c ChangeDriverStatusCommand) DriverID() kernel.UUID { return c.driverID }
func (c ChangeDriverStatusCommand) Status() driver.Status { return c.status }
