package report

import (
	"strings"
	"testing"
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
)

func TestRenderHTML_Contents(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	expenses := []*domain.Expense{
		expense(1, 1, "Food & Dining", "50.00", day),
		expense(2, 2, "Travel", "150.00", day),
	}
	now := time.Date(2024, 2, 1, 10, 30, 0, 0, time.UTC)

	data, err := renderHTML("hitendra", expenses, nil, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	html := string(data)
	for _, want := range []string{
		"hitendra",
		"All Expenses",
		"Food & Dining",
		"Travel",
		"75.00%",
		"25.00%",
		"₹200.00",
		"Recorded expenses: 2",
		"2024-02-01 10:30:00",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("Report missing %q", want)
		}
	}
}

func TestRenderHTML_EscapesMarkup(t *testing.T) {
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	e := expense(1, 1, "Food & Dining", "50.00", day)
	e.Description = `<script>alert("x")</script>`

	data, err := renderHTML("hitendra", []*domain.Expense{e}, nil, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if strings.Contains(string(data), "<script>alert") {
		t.Errorf("Description markup was not escaped")
	}
}

func TestRenderHTML_Empty(t *testing.T) {
	data, err := renderHTML("hitendra", nil, nil, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	html := string(data)
	if !strings.Contains(html, "No expenses recorded for this period.") {
		t.Errorf("Empty report missing placeholder row")
	}
	if !strings.Contains(html, "₹0.00") {
		t.Errorf("Empty report should show a zero total")
	}
}

func TestBuildSubject(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		filters *domain.ExpenseFilters
		want    string
	}{
		{"both bounds", &domain.ExpenseFilters{StartDate: &start, EndDate: &end}, "Expense Report: 2024-01-01 to 2024-01-31"},
		{"start only", &domain.ExpenseFilters{StartDate: &start}, "Expense Report: From 2024-01-01"},
		{"end only", &domain.ExpenseFilters{EndDate: &end}, "Expense Report: Until 2024-01-31"},
		{"no bounds", nil, "Expense Report: All Time Summary"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := BuildSubject(tc.filters); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}
