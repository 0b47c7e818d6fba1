package report

import (
	"strconv"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Expenses"

// renderXLSX serializes expenses into a single-sheet workbook. Amounts are
// written as numeric cells so spreadsheet tools can sum them; no aggregate
// rows are included.
func renderXLSX(expenses []*domain.Expense) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	// Track content widths for column auto-sizing.
	widths := make([]int, len(columnHeaders))

	for i, header := range columnHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		widths[i] = len(header)
	}

	for rowIdx, e := range expenses {
		// Amount must be a numeric cell; the float conversion happens only
		// at this serialization boundary, never in aggregation.
		values := []interface{}{
			e.ID,
			e.Description,
			e.Amount.InexactFloat64(),
			e.Date.Format(dateLayout),
			e.CategoryName,
		}
		texts := []string{
			strconv.FormatInt(e.ID, 10),
			e.Description,
			e.Amount.String(),
			e.Date.Format(dateLayout),
			e.CategoryName,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
			if n := len(texts[colIdx]); n > widths[colIdx] {
				widths[colIdx] = n
			}
		}
	}

	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, float64(width)+2); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
