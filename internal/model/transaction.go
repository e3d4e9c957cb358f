// Package model defines the canonical transaction and report types shared
// by the ingestion pipeline, the analytics layer, and the HTTP surface.
package model

// Main category names. These are the four top-level buckets every
// classified transaction falls into.
const (
	MainExpenses    = "expenses"
	MainIncome      = "income"
	MainTransfers   = "transfers"
	MainInvestments = "investments"
)

// CategoryOther is the sentinel returned when no keyword matches.
const CategoryOther = "other"

// Transaction is the canonical unit produced by normalization. Amounts are
// signed: negative for expenses, positive for inflows. Date holds an ISO
// calendar date (YYYY-MM-DD), or the raw token when it could not be parsed;
// such rows are kept but excluded from daily/monthly aggregation.
type Transaction struct {
	ID              string  `json:"id,omitempty"`
	Date            string  `json:"date"`
	Description     string  `json:"description"`
	Amount          float64 `json:"amount"`
	IsExpense       bool    `json:"is_expense"`
	Category        string  `json:"category"`
	DisplayCategory string  `json:"display_category,omitempty"`
	MainCategory    string  `json:"main_category"`
	ParentCategory  string  `json:"parent_category,omitempty"`
	Subcategory     string  `json:"subcategory,omitempty"`

	// InvestmentType is only present on records the caller enriched with a
	// platform-specific type (e.g. fund vs. stock); the ingest pipeline
	// never sets it.
	InvestmentType string `json:"investment_type,omitempty"`
}
