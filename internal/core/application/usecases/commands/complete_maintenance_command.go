package commands

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrCompleteMaintenanceCommandIsNotConstructed = errors.New(
	"CompleteMaintenanceCommand must be created via NewCompleteMaintenanceCommand constructor",
)

// CompleteMaintenanceCommand closes a Pending log. A zero completedDate
// means "now".
type CompleteMaintenanceCommand struct {
	logID          kernel.UUID
	completedDate  time.Time
	technicianName string

	guard guard.ConstructorGuard
}

func NewCompleteMaintenanceCommand(
	logID kernel.UUID,
	completedDate time.Time,
	technicianName string,
) (CompleteMaintenanceCommand, error) {
	if err := logID.Validate(); err != nil {
		return CompleteMaintenanceCommand{}, err
	}
	return CompleteMaintenanceCommand{
		logID:          logID,
		completedDate:  completedDate,
		technicianName: technicianName,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteMaintenanceCommand) Validate() error {
	return c.guard.Validate(ErrCompleteMaintenanceCommandIsNotConstructed)
}

func (c CompleteMaintenanceCommand) LogID() kernel.UUID       { return c.logID }
func (c CompleteMaintenanceCommand) CompletedDate() time.Time { return c.completedDate }
func (c CompleteMaintenanceCommand) TechnicianName() string   { return c.technicianName }
