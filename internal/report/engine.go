package report

import (
	"fmt"
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
)

// Engine renders a filtered expense set into one of the supported export
// formats. It is stateless; a single instance is safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Generate renders the given expenses into the requested format. The caller
// is responsible for scoping and filtering the records; the engine only
// validates, aggregates and renders. An invalid record rejects the whole
// batch, since skipping it would misreport the totals. No partial output is
// ever returned.
func (en *Engine) Generate(username string, expenses []*domain.Expense, filters *domain.ExpenseFilters, format domain.ReportFormat) ([]byte, error) {
	for _, e := range expenses {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("invalid expense record %d: %w", e.ID, err)
		}
	}

	switch format {
	case domain.FormatCSV:
		return renderCSV(expenses)
	case domain.FormatXLSX:
		return renderXLSX(expenses)
	case domain.FormatPDF:
		return renderPDF(expenses, filters)
	case domain.FormatHTML:
		return renderHTML(username, expenses, filters, time.Now())
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// ContentType returns the MIME type for a format.
func ContentType(format domain.ReportFormat) (string, error) {
	switch format {
	case domain.FormatCSV:
		return "text/csv", nil
	case domain.FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil
	case domain.FormatPDF:
		return "application/pdf", nil
	case domain.FormatHTML:
		return "text/html", nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// Filename returns the attachment filename for a format.
func Filename(format domain.ReportFormat) (string, error) {
	switch format {
	case domain.FormatCSV:
		return "expenses.csv", nil
	case domain.FormatXLSX:
		return "expenses.xlsx", nil
	case domain.FormatPDF:
		return "expenses.pdf", nil
	case domain.FormatHTML:
		return "expense-report.html", nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

// DateRangeCaption describes the active date window of a report.
func DateRangeCaption(filters *domain.ExpenseFilters) string {
	start, end := filterBounds(filters)
	switch {
	case start != nil && end != nil:
		return fmt.Sprintf("From %s to %s", start.Format(dateLayout), end.Format(dateLayout))
	case start != nil:
		return fmt.Sprintf("From %s", start.Format(dateLayout))
	case end != nil:
		return fmt.Sprintf("Until %s", end.Format(dateLayout))
	default:
		return "All Expenses"
	}
}

func filterBounds(filters *domain.ExpenseFilters) (start, end *time.Time) {
	if filters == nil {
		return nil, nil
	}
	return filters.StartDate, filters.EndDate
}
