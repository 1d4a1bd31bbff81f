package ledger

import (
	"sort"
	"time"

	"spendwise/internal/models"
)

// CategoryShare is one row of the category breakdown report.
type CategoryShare struct {
	Category models.Category `json:"category"`
	Total    int64           `json:"total"`
	Percent  float64         `json:"percent"`
}

// CategoryBreakdown returns per-category totals with each category's
// share of the grand total, largest spend first (ties by category ID).
// Only categories with at least one expense appear.
func (l *Ledger) CategoryBreakdown() []CategoryShare {
	totals := l.CategoryWiseExpenses()

	var grand int64
	for _, total := range totals {
		grand += total
	}

	out := make([]CategoryShare, 0, len(totals))
	for category, total := range totals {
		share := CategoryShare{Category: category, Total: total}
		if grand > 0 {
			share.Percent = float64(total) / float64(grand) * 100
		}
		out = append(out, share)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category.ID < out[j].Category.ID
	})
	return out
}

// MonthlySummary aggregates one calendar month of spending.
type MonthlySummary struct {
	Total   int64           `json:"total"`
	Count   int             `json:"count"`
	Average float64         `json:"average"` // cents per expense
	Highest *models.Expense `json:"highest,omitempty"`
}

// MonthlySummaryFor returns the total, expense count, average amount
// and the single highest expense for the given month. Highest is nil
// for an empty month.
func (l *Ledger) MonthlySummaryFor(year int, month time.Month) MonthlySummary {
	expenses := l.ExpensesByMonth(year, month)

	summary := MonthlySummary{Count: len(expenses)}
	for i := range expenses {
		e := &expenses[i]
		summary.Total += e.Amount
		if summary.Highest == nil || e.Amount > summary.Highest.Amount {
			summary.Highest = e
		}
	}
	if summary.Count > 0 {
		summary.Average = float64(summary.Total) / float64(summary.Count)
	}
	return summary
}

// MonthlyTrend is one month's row of the spending trends report.
type MonthlyTrend struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	Total         int64      `json:"total"`
	Count         int        `json:"count"`
	AveragePerDay float64    `json:"average_per_day"` // cents per calendar day
}

// MonthlyTrends returns totals for the last months calendar months,
// oldest first, ending at the injected clock's current month.
func (l *Ledger) MonthlyTrends(months int) []MonthlyTrend {
	if months <= 0 {
		return nil
	}

	now := l.clock.Now()
	out := make([]MonthlyTrend, 0, months)
	for i := months - 1; i >= 0; i-- {
		// Anchor to the first of the month so subtracting months never
		// skips short months.
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)

		total := l.MonthlyTotal(m.Year(), m.Month())
		out = append(out, MonthlyTrend{
			Year:          m.Year(),
			Month:         m.Month(),
			Total:         total,
			Count:         len(l.ExpensesByMonth(m.Year(), m.Month())),
			AveragePerDay: float64(total) / float64(daysInMonth(m.Year(), m.Month())),
		})
	}
	return out
}

// daysInMonth returns the number of calendar days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
