package commands

import (
	"context"

	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/clock"
	"fleetflow/internal/pkg/errs"
)

// RecordExpenseCommandHandler books an expense. The vehicle must exist, and
// a referenced trip must exist and have been run by that vehicle.
type RecordExpenseCommandHandler struct {
	uowFactory ExpenseUoWFactory
	clock      clock.Clock
	publisher  ports.EventPublisher
}

func NewRecordExpenseCommandHandler(
	uowFactory ExpenseUoWFactory,
	clk clock.Clock,
	publisher ports.EventPublisher,
) RecordExpenseCommandHandler {
	return RecordExpenseCommandHandler{uowFactory: uowFactory, clock: clk, publisher: publisher}
}

func (h RecordExpenseCommandHandler) Handle(ctx context.Context, cmd RecordExpenseCommand) (*expense.Expense, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID()); err != nil {
		return nil, err
	}
	if tripID := cmd.Details().TripID; tripID != nil {
		t, err := uow.TripRepository().Get(ctx, *tripID)
		if err != nil {
			return nil, err
		}
		if !t.VehicleID().IsEqual(cmd.VehicleID()) {
			return nil, errs.NewValueIsInvalidErrorWithCause("tripId", expense.ErrTripOfAnotherVehicle)
		}
	}

	expenseDate := cmd.ExpenseDate()
	if expenseDate.IsZero() {
		expenseDate = h.clock.Now()
	}

	e, err := expense.NewExpense(cmd.ExpenseID(), cmd.VehicleID(), cmd.Category(), cmd.Amount(),
		expenseDate, cmd.Details())
	if err != nil {
		return nil, err
	}

	if err = uow.ExpenseRepository().Add(ctx, e); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, expenseEvent(e, h.clock.Now()))
	return e, nil
}
