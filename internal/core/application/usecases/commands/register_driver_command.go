package commands

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand adds a driver to the roster.
type RegisterDriverCommand struct {
	driverID          kernel.UUID
	name              string
	licenseNumber     string
	licenseExpiryDate time.Time
	safetyScore       float64

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(
	driverID kernel.UUID,
	name string,
	licenseNumber string,
	licenseExpiryDate time.Time,
	safetyScore float64,
) (RegisterDriverCommand, error) {
	if err := driverID.Validate(); err != nil {
		return RegisterDriverCommand{}, err
	}
	return RegisterDriverCommand{
		driverID:          driverID,
		name:              name,
		licenseNumber:     licenseNumber,
		licenseExpiryDate: licenseExpiryDate,
		safetyScore:       safetyScore,
		guard:             guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() kernel.UUID        { return c.driverID }
func (c RegisterDriverCommand) Name() string                 { return c.name }
func (c RegisterDriverCommand) LicenseNumber() string        { return c.licenseNumber }
func (c RegisterDriverCommand) LicenseExpiryDate() time.Time { return c.licenseExpiryDate }
func (c RegisterDriverCommand) SafetyScore() float64         { return c.safetyScore }
