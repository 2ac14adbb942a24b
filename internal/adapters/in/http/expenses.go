package http

import (
	"net/http"

	"fleetflow/internal/core/application/usecases/commands"
	"fleetflow/internal/core/application/usecases/queries"
	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RecordExpense handles POST /api/v1/expenses. The expense date defaults to
// now.
func (s *Server) RecordExpense(ctx echo.Context) error {
	var req NewExpense
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	expenseID, err := idOrNew(req.ID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	vehicleID, err := toKernelID(req.VehicleID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	category, err := expense.ParseCategory(req.ExpenseType)
	if err != nil {
		return s.respondError(ctx, err)
	}
	details := expense.Details{Quantity: req.Quantity, Unit: req.Unit, Notes: req.Notes}
	if req.TripID != nil {
		tripID, tripErr := kernel.UUIDFromBytes(req.TripID[:])
		if tripErr != nil {
			return s.respondError(ctx, tripErr)
		}
		details.TripID = &tripID
	}

	cmd, err := commands.NewRecordExpenseCommand(expenseID, vehicleID, category, req.Amount,
		timeOrZero(req.ExpenseDate), details)
	if err != nil {
		return s.respondError(ctx, err)
	}
	recorded, err := s.handlers.RecordExpense.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, expenseFromAggregate(recorded))
}

// ListExpenses handles GET /api/v1/expenses.
func (s *Server) ListExpenses(ctx echo.Context) error {
	name, err := queryString(ctx, "expenseType")
	if err != nil {
		return err
	}
	vehicleID, err := queryID(ctx, "vehicleId")
	if err != nil {
		return err
	}
	category := expense.Unknown
	if name != "" {
		if category, err = expense.ParseCategory(name); err != nil {
			return s.respondError(ctx, err)
		}
	}

	query, err := queries.NewListExpensesQuery(category, vehicleID)
	if err != nil {
		return s.respondError(ctx, err)
	}
	expenses, err := s.handlers.ListExpenses.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]Expense, len(expenses))
	for i, e := range expenses {
		response[i] = expenseFromReadModel(e)
	}
	return ctx.JSON(http.StatusOK, response)
}
