package analytics

import (
	"math"
	"sort"

	"github.com/pengeflyt/backend/internal/model"
)

const maxRecurringExpenses = 10

// AnalyzeSpendingPatterns is the non-incremental second pass over the full
// transaction set. Unlike the fold it groups daily spending by calendar
// date, not weekday. It returns a structured error instead of failing when
// the set is empty or has no expense transactions.
func AnalyzeSpendingPatterns(transactions []model.Transaction) *model.SpendingPatterns {
	if len(transactions) == 0 {
		return &model.SpendingPatterns{Error: "No transaction data provided"}
	}

	var expenses []model.Transaction
	for _, tx := range transactions {
		if tx.IsExpense {
			expenses = append(expenses, tx)
		}
	}
	if len(expenses) == 0 {
		return &model.SpendingPatterns{Error: "No expense transactions found"}
	}

	patterns := &model.SpendingPatterns{
		AverageDailySpend:     averageDailySpend(expenses),
		HighestSpendDay:       highestSpendWeekday(expenses),
		TopSpendingCategories: topCategories(expenses, 3),
		RecurringExpenses:     recurringExpenses(expenses),
	}

	patterns.AverageDailySpend = model.Finite(patterns.AverageDailySpend)
	return patterns
}

// averageDailySpend is the mean of per-calendar-day expense magnitudes.
func averageDailySpend(expenses []model.Transaction) float64 {
	daily := make(map[string]float64)
	for _, tx := range expenses {
		if _, ok := parseDay(tx.Date); !ok {
			continue
		}
		daily[tx.Date] += math.Abs(tx.Amount)
	}
	if len(daily) == 0 {
		return 0
	}
	var total float64
	for _, v := range daily {
		total += v
	}
	return total / float64(len(daily))
}

// highestSpendWeekday returns the weekday with the largest expense total.
// Keys are scanned in sorted order so ties break deterministically.
func highestSpendWeekday(expenses []model.Transaction) string {
	byWeekday := make(map[string]float64)
	for _, tx := range expenses {
		day, ok := parseDay(tx.Date)
		if !ok {
			continue
		}
		byWeekday[day.Weekday().String()] += math.Abs(tx.Amount)
	}
	if len(byWeekday) == 0 {
		return "N/A"
	}

	keys := make([]string, 0, len(byWeekday))
	for k := range byWeekday {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	best := keys[0]
	for _, k := range keys[1:] {
		if byWeekday[k] > byWeekday[best] {
			best = k
		}
	}
	return best
}

// topCategories returns the n largest parent-category expense totals.
func topCategories(expenses []model.Transaction, n int) map[string]float64 {
	byParent := make(map[string]float64)
	for _, tx := range expenses {
		if tx.ParentCategory == "" {
			continue
		}
		byParent[tx.ParentCategory] += math.Abs(tx.Amount)
	}
	if len(byParent) == 0 {
		return map[string]float64{}
	}

	type entry struct {
		key   string
		total float64
	}
	entries := make([]entry, 0, len(byParent))
	for k, v := range byParent {
		entries = append(entries, entry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].total != entries[j].total {
			return entries[i].total > entries[j].total
		}
		return entries[i].key < entries[j].key
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	top := make(map[string]float64, len(entries))
	for _, e := range entries {
		top[e.key] = e.total
	}
	return top
}

// recurringExpenses finds descriptions appearing more than once among the
// expense transactions, limited to the most frequent ten. Ties break by
// first-encountered order.
func recurringExpenses(expenses []model.Transaction) []model.RecurringExpense {
	type group struct {
		count      int
		totalAbs   float64
		category   string
		firstIndex int
	}
	groups := make(map[string]*group)
	for i, tx := range expenses {
		g, ok := groups[tx.Description]
		if !ok {
			g = &group{category: tx.ParentCategory, firstIndex: i}
			groups[tx.Description] = g
		}
		g.count++
		g.totalAbs += math.Abs(tx.Amount)
	}

	type entry struct {
		description string
		g           *group
	}
	var recurring []entry
	for desc, g := range groups {
		if g.count > 1 {
			recurring = append(recurring, entry{desc, g})
		}
	}
	sort.Slice(recurring, func(i, j int) bool {
		if recurring[i].g.count != recurring[j].g.count {
			return recurring[i].g.count > recurring[j].g.count
		}
		return recurring[i].g.firstIndex < recurring[j].g.firstIndex
	})

	if len(recurring) > maxRecurringExpenses {
		recurring = recurring[:maxRecurringExpenses]
	}

	out := make([]model.RecurringExpense, 0, len(recurring))
	for _, e := range recurring {
		out = append(out, model.RecurringExpense{
			Description:   e.description,
			Count:         e.g.count,
			AverageAmount: model.Finite(e.g.totalAbs / float64(e.g.count)),
			Category:      e.g.category,
		})
	}
	return out
}
