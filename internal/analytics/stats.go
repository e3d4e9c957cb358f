// Package analytics folds canonical transactions into summary statistics
// and builds the comprehensive report.
package analytics

import (
	"math"
	"time"

	"github.com/pengeflyt/backend/internal/model"
)

// parseDay parses a canonical transaction date. ok=false means the date
// kept its raw fallback form; such rows are excluded from daily and
// monthly aggregation but still counted everywhere else.
func parseDay(date string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Aggregator accumulates statistics one transaction at a time. Each
// request gets its own instance; nothing is shared across requests.
type Aggregator struct {
	stats *model.Stats
}

// NewAggregator returns an empty accumulator.
func NewAggregator() *Aggregator {
	return &Aggregator{stats: model.NewStats()}
}

// Add folds a single transaction into the running statistics.
func (a *Aggregator) Add(tx model.Transaction) {
	abs := math.Abs(tx.Amount)
	day, dateOk := parseDay(tx.Date)

	switch tx.MainCategory {
	case model.MainExpenses:
		a.stats.Expenses.Total += abs
		if tx.ParentCategory != "" {
			a.stats.Expenses.Categories[tx.ParentCategory] += abs
		}
		if tx.Subcategory != "" {
			a.stats.Expenses.Subcategories[tx.Subcategory] += abs
		}
	case model.MainIncome:
		a.stats.Income.Total += tx.Amount
		if tx.Subcategory != "" {
			a.stats.Income.Subcategories[tx.Subcategory] += tx.Amount
		}
	case model.MainTransfers:
		a.stats.Transfers += abs
	case model.MainInvestments:
		a.stats.Investments += abs
	}

	if !dateOk {
		return
	}

	if tx.IsExpense {
		a.stats.DailyExpenses[day.Weekday().String()] += abs
	}

	month := day.Format("2006-01")
	summary, ok := a.stats.MonthlySummary[month]
	if !ok {
		summary = &model.MonthlySummary{}
		a.stats.MonthlySummary[month] = summary
	}
	switch tx.MainCategory {
	case model.MainExpenses:
		summary.Expenses += abs
	case model.MainIncome:
		summary.Income += tx.Amount
	}
}

// Stats finalizes the accumulator: buckets whose total is exactly zero are
// pruned (they are only ever created at zero and incremented by magnitudes,
// so exact equality is sufficient) and all floats are scrubbed.
func (a *Aggregator) Stats() *model.Stats {
	pruneZero(a.stats.Expenses.Categories)
	pruneZero(a.stats.Expenses.Subcategories)
	pruneZero(a.stats.Income.Subcategories)
	a.stats.Sanitize()
	return a.stats
}

func pruneZero(m map[string]float64) {
	for k, v := range m {
		if v == 0 {
			delete(m, k)
		}
	}
}

// CalculateBasicStats folds a full transaction list and finalizes. This is
// the one-shot form used by the ingest and analyze entry points.
func CalculateBasicStats(transactions []model.Transaction) *model.Stats {
	agg := NewAggregator()
	for _, tx := range transactions {
		agg.Add(tx)
	}
	return agg.Stats()
}
