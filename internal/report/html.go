package report

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
)

//go:embed templates/expense_report.html
var reportTemplateHTML string

var reportTemplate = template.Must(template.New("expense_report").Parse(reportTemplateHTML))

type htmlExpenseRow struct {
	ID          int64
	Description string
	Amount      string
	Date        string
	Category    string
}

type htmlCategoryRow struct {
	Name       string
	Total      string
	Count      int64
	Percentage string
}

type htmlReportData struct {
	Username     string
	RangeCaption string
	Expenses     []htmlExpenseRow
	Categories   []htmlCategoryRow
	Total        string
	ExpenseCount int
	GeneratedAt  string
}

// renderHTML produces the self-contained summary document. The same bytes
// serve both the email body and the direct download; only the delivery
// differs.
func renderHTML(username string, expenses []*domain.Expense, filters *domain.ExpenseFilters, now time.Time) ([]byte, error) {
	data := htmlReportData{
		Username:     username,
		RangeCaption: DateRangeCaption(filters),
		Total:        currencyMark + Total(expenses).StringFixed(2),
		ExpenseCount: len(expenses),
		GeneratedAt:  now.Format("2006-01-02 15:04:05"),
	}

	for _, e := range expenses {
		data.Expenses = append(data.Expenses, htmlExpenseRow{
			ID:          e.ID,
			Description: e.Description,
			Amount:      currencyMark + e.Amount.String(),
			Date:        e.Date.Format(dateLayout),
			Category:    e.CategoryName,
		})
	}

	for _, s := range ByCategory(expenses) {
		data.Categories = append(data.Categories, htmlCategoryRow{
			Name:       s.CategoryName,
			Total:      currencyMark + s.TotalAmount.StringFixed(2),
			Count:      s.ExpenseCount,
			Percentage: s.Percentage.StringFixed(2) + "%",
		})
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildSubject returns the email subject line for a report over the given
// window. The wording mirrors the PDF caption, with a distinct all-time form.
func BuildSubject(filters *domain.ExpenseFilters) string {
	start, end := filterBounds(filters)
	switch {
	case start != nil && end != nil:
		return fmt.Sprintf("Expense Report: %s to %s", start.Format(dateLayout), end.Format(dateLayout))
	case start != nil:
		return fmt.Sprintf("Expense Report: From %s", start.Format(dateLayout))
	case end != nil:
		return fmt.Sprintf("Expense Report: Until %s", end.Format(dateLayout))
	default:
		return "Expense Report: All Time Summary"
	}
}
