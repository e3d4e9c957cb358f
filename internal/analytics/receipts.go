package analytics

import (
	"time"

	"github.com/pengeflyt/backend/internal/model"
	"github.com/pengeflyt/backend/internal/trumf"
)

// SummarizeReceipts aggregates already-fetched Trumf receipts in the
// investment-summary shape: total spend, per-store breakdown, and
// per-month totals. The receipts arrive decoded; fetching, auth, and
// retries happen in the trumf client.
func SummarizeReceipts(receipts []trumf.ReceiptDetail) *model.InvestmentSummary {
	if len(receipts) == 0 {
		return &model.InvestmentSummary{}
	}

	summary := &model.InvestmentSummary{
		InvestmentByType:       make(map[string]float64),
		MonthlyInvestments:     make(map[string]float64),
		TransactionsConsidered: len(receipts),
	}
	for _, r := range receipts {
		summary.TotalInvested += r.Total
		if r.Store != "" {
			summary.InvestmentByType[r.Store] += r.Total
		}
		if month, ok := receiptMonth(r.Date); ok {
			summary.MonthlyInvestments[month] += r.Total
		}
	}
	summary.TotalInvested = model.Finite(summary.TotalInvested)
	summary.TotalInvestedDisplay = model.FormatCurrency(summary.TotalInvested)
	return summary
}

// receiptMonth derives YYYY-MM from a receipt timestamp.
func receiptMonth(ts string) (string, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, ts); err == nil {
			return t.Format("2006-01"), true
		}
	}
	return "", false
}
