package service

import (
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseService handles expense CRUD business logic
type ExpenseService struct {
	expenseRepo  domain.ExpenseRepository
	categoryRepo domain.CategoryRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo domain.ExpenseRepository, categoryRepo domain.CategoryRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// ExpenseInput carries the writable fields of an expense
type ExpenseInput struct {
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	CategoryID  int64
}

// CreateExpense validates the input, resolves the category name and persists
// a new expense for the user.
func (s *ExpenseService) CreateExpense(userID uuid.UUID, input ExpenseInput) (*domain.Expense, error) {
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		UserID:       userID,
		Description:  input.Description,
		Amount:       input.Amount,
		Date:         input.Date,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	return s.expenseRepo.Create(expense)
}

// GetExpenses returns the user's expenses, most recent first, optionally
// narrowed by category and date window. The returned records carry
// denormalized category names and are ready for the reporting engine.
func (s *ExpenseService) GetExpenses(userID uuid.UUID, filters *domain.ExpenseFilters) ([]*domain.Expense, error) {
	return s.expenseRepo.GetByUser(userID, filters)
}

// GetExpense returns one of the user's expenses by ID
func (s *ExpenseService) GetExpense(userID uuid.UUID, id int64) (*domain.Expense, error) {
	return s.expenseRepo.GetByID(userID, id)
}

// UpdateExpense validates and applies changes to an existing expense
func (s *ExpenseService) UpdateExpense(userID uuid.UUID, id int64, input ExpenseInput) (*domain.Expense, error) {
	expense, err := s.expenseRepo.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return nil, err
	}

	expense.Description = input.Description
	expense.Amount = input.Amount
	expense.Date = input.Date
	expense.CategoryID = category.ID
	expense.CategoryName = category.Name
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	return s.expenseRepo.Update(expense)
}

// DeleteExpense removes one of the user's expenses
func (s *ExpenseService) DeleteExpense(userID uuid.UUID, id int64) error {
	if _, err := s.expenseRepo.GetByID(userID, id); err != nil {
		return err
	}
	return s.expenseRepo.Delete(userID, id)
}
