package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
)

// dateLayout is the date form used in every export format
const dateLayout = "2006-01-02"

var columnHeaders = []string{"ID", "Description", "Amount", "Date", "Category"}

// renderCSV serializes expenses to UTF-8 CSV in input order. Fields
// containing delimiters, quotes or newlines are quoted by the writer, so the
// output round-trips through any standard CSV parser.
func renderCSV(expenses []*domain.Expense) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(columnHeaders); err != nil {
		return nil, err
	}

	for _, e := range expenses {
		row := []string{
			strconv.FormatInt(e.ID, 10),
			e.Description,
			e.Amount.String(),
			e.Date.Format(dateLayout),
			e.CategoryName,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
