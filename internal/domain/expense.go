package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single recorded expense. CategoryName is denormalized from the
// category at read time so reporting never has to chase the relation.
type Expense struct {
	ID           int64           `json:"id"`
	UserID       uuid.UUID       `json:"-"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ExpenseFilters narrows an expense listing. All fields are optional;
// StartDate and EndDate are inclusive.
type ExpenseFilters struct {
	CategoryID *int64
	StartDate  *time.Time
	EndDate    *time.Time
}

// Validate checks the basic shape invariants of an expense.
func (e *Expense) Validate() error {
	desc := strings.TrimSpace(e.Description)
	if n := utf8.RuneCountInString(desc); n < MinDescriptionLength || n > MaxDescriptionLength {
		return ErrInvalidDescription
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if e.Amount.Exponent() < -2 {
		return ErrInvalidAmount
	}
	if e.CategoryID <= 0 {
		return ErrCategoryRequired
	}
	if e.Date.IsZero() {
		return ErrDateRequired
	}
	return nil
}

// ExpenseRepository defines persistence operations for expenses.
// All reads and writes are scoped to a single owning user.
type ExpenseRepository interface {
	Create(expense *Expense) (*Expense, error)
	GetByID(userID uuid.UUID, id int64) (*Expense, error)
	GetByUser(userID uuid.UUID, filters *ExpenseFilters) ([]*Expense, error)
	Update(expense *Expense) (*Expense, error)
	Delete(userID uuid.UUID, id int64) error
}
