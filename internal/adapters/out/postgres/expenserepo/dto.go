// Package expenserepo maps the Expense aggregate to the expenses table.
package expenserepo

import (
	"time"

	"fleetflow/internal/core/domain/model/expense"
	"fleetflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExpenseDTO is the persisted form of an expense.
type ExpenseDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	VehicleID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	TripID      *uuid.UUID `gorm:"type:uuid;index"`
	ExpenseType string     `gorm:"type:varchar(32);not null;index"`
	Amount      float64    `gorm:"type:double precision;not null"`
	Quantity    *float64   `gorm:"type:double precision"`
	Unit        string     `gorm:"type:varchar(32)"`
	ExpenseDate time.Time  `gorm:"not null;index"`
	Notes       string     `gorm:"type:text"`
}

func (ExpenseDTO) TableName() string {
	return "expenses"
}

func fromDomain(e *expense.Expense) ExpenseDTO {
	dto := ExpenseDTO{
		ID:          e.ID().Bytes(),
		VehicleID:   e.VehicleID().Bytes(),
		ExpenseType: e.Category().String(),
		Amount:      e.Amount(),
		Quantity:    e.Quantity(),
		Unit:        e.Unit(),
		ExpenseDate: e.ExpenseDate(),
		Notes:       e.Notes(),
	}
	if e.TripID() != nil {
		raw := e.TripID().Bytes()
		dto.TripID = &raw
	}
	return dto
}

func toDomain(dto ExpenseDTO) (*expense.Expense, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}
	category, err := expense.ParseCategory(dto.ExpenseType)
	if err != nil {
		return nil, err
	}

	details := expense.Details{Quantity: dto.Quantity, Unit: dto.Unit, Notes: dto.Notes}
	if dto.TripID != nil {
		tripID, tripErr := kernel.UUIDFromBytes(dto.TripID[:])
		if tripErr != nil {
			return nil, tripErr
		}
		details.TripID = &tripID
	}

	return expense.RestoreExpense(id, vehicleID, category, dto.Amount, dto.ExpenseDate, details)
}
