package queries

import (
	"errors"
	"time"

	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/guard"
)

var ErrListExpensesQueryIsNotConstructed = errors.New(
	"ListExpensesQuery must be created via NewListExpensesQuery constructor",
)

// ListExpensesQuery lists expenses by date, newest first.
type ListExpensesQuery struct {
	category  expense.Category
	vehicleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListExpensesQuery creates the query. expense.Unknown and a nil vehicleID
// disable the respective filter.
func NewListExpensesQuery(category expense.Category, vehicleID *kernel.UUID) (ListExpensesQuery, error) {
	if category != expense.Unknown {
		if err := category.Validate(); err != nil {
			return ListExpensesQuery{}, err
		}
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return ListExpensesQuery{}, err
		}
	}
	return ListExpensesQuery{
		category:  category,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListExpensesQuery) Validate() error {
	return q.guard.Validate(ErrListExpensesQueryIsNotConstructed)
}

func (q ListExpensesQuery) Category() expense.Category { return q.category }
func (q ListExpensesQuery) VehicleID() *kernel.UUID    { return q.vehicleID }

type ListExpensesQueryResponse struct {
	ID          kernel.UUID
	VehicleID   kernel.UUID
	VehicleName string
	TripID      *kernel.UUID
	Category    expense.Category
	Amount      float64
	Quantity    *float64
	Unit        string
	ExpenseDate time.Time
	Notes       string
}
