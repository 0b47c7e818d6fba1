package domain

import "github.com/shopspring/decimal"

// CategorySummary is a per-category roll-up over a filtered expense set.
// Percentage is the category's share of the grand total, scaled to 100.
type CategorySummary struct {
	CategoryID   int64           `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	ExpenseCount int64           `json:"expenseCount"`
	Percentage   decimal.Decimal `json:"percentage"`
}

// MonthlySummary is a per-month roll-up over a filtered expense set.
type MonthlySummary struct {
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	MonthName    string          `json:"monthName"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	ExpenseCount int64           `json:"expenseCount"`
}
