package service

import (
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SummaryService computes aggregate views over a user's filtered expenses.
// Grouping runs in memory over the same listing the expense endpoints serve,
// so summaries and listings can never disagree.
type SummaryService struct {
	expenseRepo domain.ExpenseRepository
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(expenseRepo domain.ExpenseRepository) *SummaryService {
	return &SummaryService{expenseRepo: expenseRepo}
}

// TotalAmount returns the sum of the user's expenses within the window.
// An empty window sums to zero, never an absent result.
func (s *SummaryService) TotalAmount(userID uuid.UUID, filters *domain.ExpenseFilters) (decimal.Decimal, error) {
	expenses, err := s.expenseRepo.GetByUser(userID, filters)
	if err != nil {
		return decimal.Zero, err
	}
	return report.Total(expenses), nil
}

// CategoryBreakdown returns per-category totals, counts and percentage
// shares, largest total first.
func (s *SummaryService) CategoryBreakdown(userID uuid.UUID, filters *domain.ExpenseFilters) ([]*domain.CategorySummary, error) {
	expenses, err := s.expenseRepo.GetByUser(userID, filters)
	if err != nil {
		return nil, err
	}
	return report.ByCategory(expenses), nil
}

// MonthlyBreakdown returns per-month totals and counts, most recent first.
func (s *SummaryService) MonthlyBreakdown(userID uuid.UUID, filters *domain.ExpenseFilters) ([]*domain.MonthlySummary, error) {
	expenses, err := s.expenseRepo.GetByUser(userID, filters)
	if err != nil {
		return nil, err
	}
	return report.ByMonth(expenses), nil
}
