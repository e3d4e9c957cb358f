package analytics

import (
	"errors"

	"github.com/pengeflyt/backend/internal/model"
)

// ErrEmptyInput is returned when analysis is requested for an empty
// transaction list.
var ErrEmptyInput = errors.New("no transaction data provided")

// BuildReport composes the comprehensive financial report: fold stats,
// spending patterns, the investment summary, savings rate, and counts.
func BuildReport(transactions []model.Transaction) (*model.Report, error) {
	if len(transactions) == 0 {
		return nil, ErrEmptyInput
	}

	stats := CalculateBasicStats(transactions)

	report := &model.Report{
		Stats:             stats,
		SpendingPatterns:  AnalyzeSpendingPatterns(transactions),
		InvestmentSummary: SummarizeInvestments(transactions),
		TransactionCount:  len(transactions),
	}
	for _, tx := range transactions {
		if tx.IsExpense {
			report.ExpenseCount++
		} else {
			report.IncomeCount++
		}
	}

	// A zero-income month has no defined savings rate. Absent, not 0.
	if stats.Income.Total > 0 {
		rate := (stats.Income.Total - stats.Expenses.Total) / stats.Income.Total * 100
		rate = model.Finite(rate)
		report.SavingsRate = &rate
	}

	report.Sanitize()
	return report, nil
}
