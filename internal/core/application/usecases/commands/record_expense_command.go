package commands

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrRecordExpenseCommandIsNotConstructed = errors.New(
	"RecordExpenseCommand must be created via NewRecordExpenseCommand constructor",
)

// RecordExpenseCommand books a cost against a vehicle and, optionally, one
// of its trips.
type RecordExpenseCommand struct {
	expenseID   kernel.UUID
	vehicleID   kernel.UUID
	category    expense.Category
	amount      float64
	expenseDate time.Time
	details     expense.Details

	guard guard.ConstructorGuard
}

func NewRecordExpenseCommand(
	expenseID kernel.UUID,
	vehicleID kernel.UUID,
	category expense.Category,
	amount float64,
	expenseDate time.Time,
	details expense.Details,
) (RecordExpenseCommand, error) {
	if err := errors.Join(expenseID.Validate(), vehicleID.Validate(), category.Validate()); err != nil {
		return RecordExpenseCommand{}, err
	}
	return RecordExpenseCommand{
		expenseID:   expenseID,
		vehicleID:   vehicleID,
		category:    category,
		amount:      amount,
		expenseDate: expenseDate,
		details:     details,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RecordExpenseCommand) Validate() error {
	return c.guard.Validate(ErrRecordExpenseCommandIsNotConstructed)
}

func (c RecordExpenseCommand) ExpenseID() kernel.UUID     { return c.expenseID }
func (c RecordExpenseCommand) VehicleID() kernel.UUID     { return c.vehicleID }
func (c RecordExpenseCommand) Category() expense.Category { return c.category }
func (c RecordExpenseCommand) Amount() float64            { return c.amount }
func (c RecordExpenseCommand) ExpenseDate() time.Time     { return c.expenseDate }
func (c RecordExpenseCommand) Details() expense.Details   { return c.details }
