package memory

import (
	"context"

	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/core/ports"
	"fleetflow/internal/pkg/errs"
)

type expenseRepository struct {
	uow *UnitOfWork
}

func (uow *UnitOfWork) ExpenseRepository() ports.ExpenseRepository {
	return expenseRepository{uow: uow}
}

func (r expenseRepository) Add(_ context.Context, e *expense.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	rec := expenseRecord{
		vehicleID:   e.VehicleID(),
		category:    e.Category().String(),
		amount:      e.Amount(),
		expenseDate: e.ExpenseDate(),
		tripID:      copyUUID(e.TripID()),
		quantity:    e.Quantity(),
		unit:        e.Unit(),
		notes:       e.Notes(),
	}
	id := e.ID()
	return r.uow.stage(stagedWrite{
		check: func(st state) error {
			if _, exists := st.expenses[id]; exists {
				return errs.NewResourceConflictError("expense", id)
			}
			return nil
		},
		apply: func(st state) { st.expenses[id] = rec },
	})
}

func (r expenseRepository) Get(_ context.Context, id kernel.UUID) (*expense.Expense, error) {
	var (
		rec expenseRecord
		ok  bool
	)
	r.uow.read(func(st state) { rec, ok = st.expenses[id] })
	if !ok {
		return nil, errs.NewObjectNotFoundError("expense", id)
	}

	category, err := expense.ParseCategory(rec.category)
	if err != nil {
		return nil, err
	}
	return expense.RestoreExpense(id, rec.vehicleID, category, rec.amount, rec.expenseDate, expense.Details{
		TripID:   rec.tripID,
		Quantity: rec.quantity,
		Unit:     rec.unit,
		Notes:    rec.notes,
	})
}
