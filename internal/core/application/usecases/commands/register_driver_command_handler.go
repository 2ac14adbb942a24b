package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/pkg/clock"
)

// RegisterDriverCommandHandler stores a new driver. A driver registered with
// an already expired license is stored Suspended.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      clock.Clock
}

func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory, clk clock.Clock) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{uowFactory: uowFactory, clock: clk}
}

func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(
		cmd.DriverID(),
		cmd.Name(),
		cmd.LicenseNumber(),
		cmd.LicenseExpiryDate(),
		cmd.SafetyScore(),
		h.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
