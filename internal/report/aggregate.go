package report

import (
	"sort"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/util"
	"github.com/shopspring/decimal"
)

// percentageScale is the number of fractional digits carried when dividing a
// category total by the grand total, before scaling to 100.
const percentageScale = 4

var oneHundred = decimal.NewFromInt(100)

// Total returns the sum of all expense amounts. An empty slice sums to zero.
func Total(expenses []*domain.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// ByCategory groups expenses by category and computes per-category totals,
// counts and share of the grand total. Results are ordered by descending
// total, ties broken by ascending category ID. When the grand total is zero
// every percentage is exactly zero.
func ByCategory(expenses []*domain.Expense) []*domain.CategorySummary {
	grouped := make(map[int64]*domain.CategorySummary)
	for _, e := range expenses {
		s, ok := grouped[e.CategoryID]
		if !ok {
			s = &domain.CategorySummary{
				CategoryID:   e.CategoryID,
				CategoryName: e.CategoryName,
				TotalAmount:  decimal.Zero,
				Percentage:   decimal.Zero,
			}
			grouped[e.CategoryID] = s
		}
		s.TotalAmount = s.TotalAmount.Add(e.Amount)
		s.ExpenseCount++
	}

	grandTotal := Total(expenses)

	summaries := make([]*domain.CategorySummary, 0, len(grouped))
	for _, s := range grouped {
		if grandTotal.IsPositive() {
			s.Percentage = s.TotalAmount.DivRound(grandTotal, percentageScale).Mul(oneHundred)
		}
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		cmp := summaries[i].TotalAmount.Cmp(summaries[j].TotalAmount)
		if cmp != 0 {
			return cmp > 0
		}
		return summaries[i].CategoryID < summaries[j].CategoryID
	})

	return summaries
}

// ByMonth groups expenses by calendar month and computes per-bucket totals
// and counts. Results are ordered most recent first: descending year, then
// descending month.
func ByMonth(expenses []*domain.Expense) []*domain.MonthlySummary {
	type yearMonth struct {
		year  int
		month int
	}

	grouped := make(map[yearMonth]*domain.MonthlySummary)
	for _, e := range expenses {
		key := yearMonth{year: e.Date.Year(), month: int(e.Date.Month())}
		s, ok := grouped[key]
		if !ok {
			s = &domain.MonthlySummary{
				Year:        key.year,
				Month:       key.month,
				MonthName:   util.MonthName(key.month),
				TotalAmount: decimal.Zero,
			}
			grouped[key] = s
		}
		s.TotalAmount = s.TotalAmount.Add(e.Amount)
		s.ExpenseCount++
	}

	summaries := make([]*domain.MonthlySummary, 0, len(grouped))
	for _, s := range grouped {
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Year != summaries[j].Year {
			return summaries[i].Year > summaries[j].Year
		}
		return summaries[i].Month > summaries[j].Month
	})

	return summaries
}
