package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestRenderXLSX_SheetContents(t *testing.T) {
	expenses := []*domain.Expense{
		{
			ID:           42,
			Description:  "Flight to Goa",
			Amount:       decimal.RequireFromString("4999.00"),
			Date:         time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
			CategoryID:   7,
			CategoryName: "Travel",
		},
	}

	data, err := renderXLSX(expenses)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Output did not open as a workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Expenses" {
		t.Fatalf("Expected single sheet 'Expenses', got %v", sheets)
	}

	rows, err := f.GetRows("Expenses")
	if err != nil {
		t.Fatalf("Expected rows, got error %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected header + 1 row, got %d", len(rows))
	}

	want := []string{"ID", "Description", "Amount", "Date", "Category"}
	for i := range want {
		if rows[0][i] != want[i] {
			t.Errorf("Header column %d: expected %q, got %q", i, want[i], rows[0][i])
		}
	}

	if rows[1][1] != "Flight to Goa" {
		t.Errorf("Expected description, got %q", rows[1][1])
	}
	if rows[1][3] != "2024-06-12" {
		t.Errorf("Expected date text 2024-06-12, got %q", rows[1][3])
	}

	// Amount must be numeric, not text
	cellType, err := f.GetCellType("Expenses", "C2")
	if err != nil {
		t.Fatalf("Expected cell type, got error %v", err)
	}
	if cellType == excelize.CellTypeSharedString || cellType == excelize.CellTypeInlineString {
		t.Errorf("Amount cell is a string cell, expected numeric")
	}

	amount, err := f.GetCellValue("Expenses", "C2")
	if err != nil {
		t.Fatalf("Expected amount value, got error %v", err)
	}
	parsed, err := decimal.NewFromString(amount)
	if err != nil || !parsed.Equal(decimal.RequireFromString("4999")) {
		t.Errorf("Expected numeric amount 4999, got %q", amount)
	}
}

func TestRenderXLSX_IDColumnWidth(t *testing.T) {
	expenses := []*domain.Expense{
		{
			ID:           900000000123456,
			Description:  "Rent",
			Amount:       decimal.RequireFromString("15000.00"),
			Date:         time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			CategoryID:   5,
			CategoryName: "Bills & Utilities",
		},
	}

	data, err := renderXLSX(expenses)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Output did not open as a workbook: %v", err)
	}
	defer f.Close()

	// The ID column must widen past its header label to fit long IDs.
	width, err := f.GetColWidth("Expenses", "A")
	if err != nil {
		t.Fatalf("Expected column width, got error %v", err)
	}
	if want := float64(len("900000000123456")); width < want {
		t.Errorf("Expected ID column width >= %.0f, got %.2f", want, width)
	}
}

func TestRenderXLSX_Empty(t *testing.T) {
	data, err := renderXLSX(nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Output did not open as a workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Expenses")
	if err != nil {
		t.Fatalf("Expected rows, got error %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("Expected header-only sheet, got %d rows", len(rows))
	}
}
