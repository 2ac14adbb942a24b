package expenserepo

import (
	"context"

	"fleetflow/internal/adapters/out/postgres/dberr"
	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormExpenseRepository implements ports.ExpenseRepository using GORM.
type GormExpenseRepository struct {
	db *gorm.DB
}

func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// Add inserts a new expense.
func (r *GormExpenseRepository) Add(ctx context.Context, aggregate *expense.Expense) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return dberr.Translate("expense", aggregate.ID(), r.db.WithContext(ctx).Create(&dto).Error)
}

// Get retrieves an expense by ID.
func (r *GormExpenseRepository) Get(ctx context.Context, id kernel.UUID) (*expense.Expense, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ExpenseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, dberr.NotFound("expense", id.String(), err)
	}

	return toDomain(dto)
}
