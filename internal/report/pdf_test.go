package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
)

func TestRenderPDF_ProducesDocument(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	expenses := []*domain.Expense{
		expense(1, 1, "Food & Dining", "50.00", day),
		expense(2, 2, "Travel", "150.00", day),
	}

	data, err := renderPDF(expenses, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("Output is not a PDF document")
	}
}

func TestRenderPDF_Empty(t *testing.T) {
	data, err := renderPDF(nil, nil)
	if err != nil {
		t.Fatalf("Expected no error for empty input, got %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("Output is not a PDF document")
	}
}

func TestRenderPDF_ManyRowsPaginate(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	var expenses []*domain.Expense
	for i := int64(1); i <= 120; i++ {
		expenses = append(expenses, expense(i, 1, "Food & Dining", "10.00", day))
	}

	data, err := renderPDF(expenses, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("Output is not a PDF document")
	}
}

func TestDateRangeCaption(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		filters *domain.ExpenseFilters
		want    string
	}{
		{"both bounds", &domain.ExpenseFilters{StartDate: &start, EndDate: &end}, "From 2024-01-01 to 2024-01-31"},
		{"start only", &domain.ExpenseFilters{StartDate: &start}, "From 2024-01-01"},
		{"end only", &domain.ExpenseFilters{EndDate: &end}, "Until 2024-01-31"},
		{"no bounds", &domain.ExpenseFilters{}, "All Expenses"},
		{"nil filters", nil, "All Expenses"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DateRangeCaption(tc.filters); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}
