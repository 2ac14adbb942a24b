package queries

import (
	"context"

	"fleetflow/internal/core/domain/model/expense"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListExpensesQueryHandler struct {
	db *gorm.DB
}

func NewListExpensesQueryHandler(db *gorm.DB) ListExpensesQueryHandler {
	return ListExpensesQueryHandler{db: db}
}

func (h ListExpensesQueryHandler) Handle(ctx context.Context, query ListExpensesQuery) ([]ListExpensesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	category := ""
	if query.Category() != expense.Unknown {
		category = query.Category().String()
	}
	var vehicleID *uuid.UUID
	if query.VehicleID() != nil {
		raw := query.VehicleID().Bytes()
		vehicleID = &raw
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.vehicle_id,
			COALESCE(v.name, ''),
			e.trip_id,
			e.expense_type,
			e.amount,
			e.quantity,
			COALESCE(e.unit, ''),
			e.expense_date,
			COALESCE(e.notes, '')
		FROM expenses e
		LEFT JOIN vehicles v ON v.id = e.vehicle_id
		WHERE (@type = '' OR e.expense_type = @type)
			AND (CAST(@vehicle AS uuid) IS NULL OR e.vehicle_id = @vehicle)
		ORDER BY e.expense_date DESC, e.id
	`, map[string]any{"type": category, "vehicle": vehicleID}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := make([]ListExpensesQueryResponse, 0)
	for rows.Next() {
		var (
			item                 ListExpensesQueryResponse
			id, expenseVehicleID uuid.UUID
			tripID               *uuid.UUID
			typeName             string
		)

		err = rows.Scan(
			&id,
			&expenseVehicleID,
			&item.VehicleName,
			&tripID,
			&typeName,
			&item.Amount,
			&item.Quantity,
			&item.Unit,
			&item.ExpenseDate,
			&item.Notes,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = toKernelUUID(id); err != nil {
			return nil, err
		}
		if item.VehicleID, err = toKernelUUID(expenseVehicleID); err != nil {
			return nil, err
		}
		if tripID != nil {
			converted, tripErr := toKernelUUID(*tripID)
			if tripErr != nil {
				return nil, tripErr
			}
			item.TripID = &converted
		}
		if item.Category, err = expense.ParseCategory(typeName); err != nil {
			return nil, err
		}
		item.ExpenseDate = item.ExpenseDate.UTC()

		expenses = append(expenses, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return expenses, nil
}
