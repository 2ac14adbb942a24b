package commands

import (
	"errors"

	"fleetflow/internal/pkg/guard"
)

var ErrSweepExpiredLicensesCommandIsNotConstructed = errors.New(
	"SweepExpiredLicensesCommand must be created via NewSweepExpiredLicensesCommand constructor",
)

// SweepExpiredLicensesCommand suspends every driver whose license lapsed.
// It carries no parameters; "now" comes from the handler's clock.
type SweepExpiredLicensesCommand struct {
	guard guard.ConstructorGuard
}

func NewSweepExpiredLicensesCommand() SweepExpiredLicensesCommand {
	return SweepExpiredLicensesCommand{guard: guard.NewConstructorGuard()}
}

func (c SweepExpiredLicensesCommand) Validate() error {
	return c.guard.Validate(ErrSweepExpiredLicensesCommandIsNotConstructed)
}
