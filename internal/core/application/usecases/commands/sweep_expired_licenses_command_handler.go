package commands

import (
	"context"
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/driver"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/domain/services"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
	"fleetflow/internal/pkg/errs"
)

// SweepResult summarises one sweep. Conflicts counts drivers modified
// concurrently; they are picked up again by the next sweep.
type SweepResult struct {
	Suspended []kernel.UUID
	Conflicts int
}

// SweepExpiredLicensesCommandHandler suspends drivers with lapsed licenses,
// one unit of work per driver so a conflict on one driver does not undo the
// others. Running it twice has the same effect as running it once.
type SweepExpiredLicensesCommandHandler struct {
	uowFactory DriverUoWFactory
	sweeper    services.LicenseSweeper
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewSweepExpiredLicensesCommandHandler(
	uowFactory DriverUoWFactory,
	sweeper services.LicenseSweeper,
	clk clock.Clock,
	publisher ports.EventPublisher,
) SweepExpiredLicensesCommandHandler {
	return SweepExpiredLicensesCommandHandler{
		uowFactory: uowFactory,
		sweeper:    sweeper,
		clock:      clk,
		publisher:  publisher,
	}
}

func (h SweepExpiredLicensesCommandHandler) Handle(
	ctx context.Context,
	cmd SweepExpiredLicensesCommand,
) (SweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return SweepResult{}, err
	}

	now := h.clock.Now()
	candidates, err := h.findCandidates(ctx, now)
	if err != nil {
		return SweepResult{}, err
	}

	var result SweepResult
	for _, candidate := range candidates {
		suspended, err := h.suspend(ctx, candidate.ID(), now)
		switch {
		case errors.Is(err, errs.ErrResourceConflict):
			result.Conflicts++
		case err != nil:
			return result, err
		case suspended != nil:
			result.Suspended = append(result.Suspended, suspended.ID())
			h.publisher.Publish(ctx, driverEvent(kernel.EventDriverSuspended, suspended, now))
		}
	}

	return result, nil
}

func (h SweepExpiredLicensesCommandHandler) findCandidates(ctx context.Context, now time.Time) ([]*driver.Driver, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.DriverRepository().GetAllWithExpiredLicense(ctx, now)
}

// suspend re-reads the driver in its own unit of work and returns it when
// it was suspended, or nil when there was nothing to do.
func (h SweepExpiredLicensesCommandHandler) suspend(ctx context.Context, id kernel.UUID, now time.Time) (*driver.Driver, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	d, err := driverRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !h.sweeper.Sweep(d, now) {
		return nil, nil
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
