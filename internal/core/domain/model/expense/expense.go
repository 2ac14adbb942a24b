package expense

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetflow/internal/core/domain/model/kernel"
	"fleetflow/internal/pkg/errs"
	"fleetflow/internal/pkg/guard"
)

var (
	// ErrExpenseIsNotConstructed is returned when an Expense was not created via NewExpense or RestoreExpense.
	ErrExpenseIsNotConstructed = errors.New("expense must be created via NewExpense or RestoreExpense")

	// ErrTripOfAnotherVehicle is returned when an expense names a trip run by a different vehicle.
	ErrTripOfAnotherVehicle = errors.New("trip belongs to another vehicle")
)

// Details holds the optional fields of an expense.
type Details struct {
	TripID   *kernel.UUID
	Quantity *float64
	Unit     string
	Notes    string
}

// Expense is a cost booked against a vehicle.
//
// Invariants:
//   - Amount is positive
//   - Quantity, when present, is positive
type Expense struct {
	id          kernel.UUID
	vehicleID   kernel.UUID
	category    Category
	amount      float64
	expenseDate time.Time
	details     Details

	guard guard.ConstructorGuard
}

// NewExpense records an expense. Every invalid field is reported.
func NewExpense(
	id kernel.UUID,
	vehicleID kernel.UUID,
	category Category,
	amount float64,
	expenseDate time.Time,
	details Details,
) (*Expense, error) {
	e := &Expense{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		e.setIDs(id, vehicleID),
		category.Validate(),
		e.setAmount(amount),
		e.setExpenseDate(expenseDate),
		e.setDetails(details),
	); err != nil {
		return nil, err
	}

	e.category = category
	return e, nil
}

// RestoreExpense rebuilds an Expense from persisted state.
func RestoreExpense(
	id kernel.UUID,
	vehicleID kernel.UUID,
	category Category,
	amount float64,
	expenseDate time.Time,
	details Details,
) (*Expense, error) {
	return NewExpense(id, vehicleID, category, amount, expenseDate, details)
}

// Validate ensures the expense was built by a constructor.
func (e *Expense) Validate() error {
	if e == nil {
		return ErrExpenseIsNotConstructed
	}
	return e.guard.Validate(ErrExpenseIsNotConstructed)
}

func (e *Expense) ID() kernel.UUID        { return e.id }
func (e *Expense) VehicleID() kernel.UUID { return e.vehicleID }
func (e *Expense) Category() Category     { return e.category }
func (e *Expense) Amount() float64        { return e.amount }
func (e *Expense) ExpenseDate() time.Time { return e.expenseDate }
func (e *Expense) TripID() *kernel.UUID   { return e.details.TripID }
func (e *Expense) Quantity() *float64     { return e.details.Quantity }
func (e *Expense) Unit() string           { return e.details.Unit }
func (e *Expense) Notes() string          { return e.details.Notes }

func (e *Expense) setIDs(id, vehicleID kernel.UUID) error {
	if err := errors.Join(id.Validate(), vehicleID.Validate()); err != nil {
		return err
	}
	e.id = id
	e.vehicleID = vehicleID
	return nil
}

func (e *Expense) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%.2f is not positive", amount))
	}
	e.amount = amount
	return nil
}

func (e *Expense) setExpenseDate(expenseDate time.Time) error {
	if expenseDate.IsZero() {
		return errs.NewValueIsRequiredError("expenseDate")
	}
	e.expenseDate = expenseDate.UTC()
	return nil
}

func (e *Expense) setDetails(details Details) error {
	if details.TripID != nil {
		if err := details.TripID.Validate(); err != nil {
			return err
		}
		id := *details.TripID
		details.TripID = &id
	}
	if details.Quantity != nil {
		if *details.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%.2f is not positive", *details.Quantity))
		}
		q := *details.Quantity
		details.Quantity = &q
	}
	details.Unit = strings.TrimSpace(details.Unit)
	details.Notes = strings.TrimSpace(details.Notes)
	e.details = details
	return nil
}
