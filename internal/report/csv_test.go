package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/shopspring/decimal"
)

func TestRenderCSV_RoundTrip(t *testing.T) {
	expenses := []*domain.Expense{
		{
			ID:           1,
			Description:  `Dinner, "La Piazza"`,
			Amount:       decimal.RequireFromString("89.90"),
			Date:         time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			CategoryID:   1,
			CategoryName: "Food & Dining",
		},
		{
			ID:           2,
			Description:  "Train ticket",
			Amount:       decimal.RequireFromString("12.5"),
			Date:         time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			CategoryID:   7,
			CategoryName: "Travel",
		},
	}

	data, err := renderCSV(expenses)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("Output did not parse as CSV: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d rows", len(rows))
	}

	header := rows[0]
	want := []string{"ID", "Description", "Amount", "Date", "Category"}
	for i := range want {
		if header[i] != want[i] {
			t.Errorf("Header column %d: expected %q, got %q", i, want[i], header[i])
		}
	}

	first := rows[1]
	if first[0] != "1" {
		t.Errorf("Expected ID 1, got %q", first[0])
	}
	if first[1] != `Dinner, "La Piazza"` {
		t.Errorf("Description with comma and quotes did not round-trip: %q", first[1])
	}
	if first[2] != "89.90" {
		t.Errorf("Expected amount 89.90, got %q", first[2])
	}
	if first[3] != "2024-01-31" {
		t.Errorf("Expected date 2024-01-31, got %q", first[3])
	}
	if first[4] != "Food & Dining" {
		t.Errorf("Expected category Food & Dining, got %q", first[4])
	}

	second := rows[2]
	if second[2] != "12.5" {
		t.Errorf("Expected canonical decimal string 12.5, got %q", second[2])
	}
}

func TestRenderCSV_Empty(t *testing.T) {
	data, err := renderCSV(nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("Output did not parse as CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected header-only output, got %d rows", len(rows))
	}
}
