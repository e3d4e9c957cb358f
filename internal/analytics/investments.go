package analytics

import (
	"strings"

	"github.com/pengeflyt/backend/internal/model"
)

// investmentPlatformKeywords marks descriptions routed to an investment
// platform even when the classifier filed them elsewhere.
var investmentPlatformKeywords = []string{"nordnet"}

// isInvestment reports whether a transaction belongs in the investment
// summary: either its description names a known platform or the classifier
// filed it under the investments main category.
func isInvestment(tx model.Transaction) bool {
	desc := strings.ToLower(tx.Description)
	for _, kw := range investmentPlatformKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return tx.MainCategory == model.MainInvestments
}

// SummarizeInvestments computes the investment summary over the matching
// subset of transactions. An empty subset yields an empty summary (a
// report without investment activity serializes it as {}).
func SummarizeInvestments(transactions []model.Transaction) *model.InvestmentSummary {
	var matched []model.Transaction
	for _, tx := range transactions {
		if isInvestment(tx) {
			matched = append(matched, tx)
		}
	}
	if len(matched) == 0 {
		return &model.InvestmentSummary{}
	}

	summary := &model.InvestmentSummary{
		MonthlyInvestments:     make(map[string]float64),
		TransactionsConsidered: len(matched),
	}
	for _, tx := range matched {
		summary.TotalInvested += tx.Amount
		if tx.InvestmentType != "" {
			if summary.InvestmentByType == nil {
				summary.InvestmentByType = make(map[string]float64)
			}
			summary.InvestmentByType[tx.InvestmentType] += tx.Amount
		}
		if day, ok := parseDay(tx.Date); ok {
			summary.MonthlyInvestments[day.Format("2006-01")] += tx.Amount
		}
	}
	summary.TotalInvested = model.Finite(summary.TotalInvested)
	summary.TotalInvestedDisplay = model.FormatCurrency(summary.TotalInvested)
	return summary
}
