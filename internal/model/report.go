package model

// MainCategoryStats accumulates totals for one main category. Categories
// holds parent-level buckets and is only populated for expenses, matching
// the response shape the frontend consumes.
type MainCategoryStats struct {
	Total         float64            `json:"total"`
	Subcategories map[string]float64 `json:"subcategories"`
	Categories    map[string]float64 `json:"categories,omitempty"`
}

// MonthlySummary is one month's income/expense pair, keyed by YYYY-MM in Stats.
type MonthlySummary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// Stats is the fold output of the aggregator. DailyExpenses is keyed by
// weekday name; the calendar-day grouping lives in SpendingPatterns, which
// is a separate aggregation on purpose.
type Stats struct {
	Expenses       *MainCategoryStats         `json:"expenses"`
	Income         *MainCategoryStats         `json:"income"`
	DailyExpenses  map[string]float64         `json:"daily_expenses"`
	MonthlySummary map[string]*MonthlySummary `json:"monthly_summary"`
	Transfers      float64                    `json:"transfers"`
	Investments    float64                    `json:"investments"`
}

// NewStats returns an empty accumulator with all maps allocated.
func NewStats() *Stats {
	return &Stats{
		Expenses: &MainCategoryStats{
			Subcategories: make(map[string]float64),
			Categories:    make(map[string]float64),
		},
		Income: &MainCategoryStats{
			Subcategories: make(map[string]float64),
		},
		DailyExpenses:  make(map[string]float64),
		MonthlySummary: make(map[string]*MonthlySummary),
	}
}

// RecurringExpense describes one description seen more than once among
// expense transactions.
type RecurringExpense struct {
	Description   string  `json:"description"`
	Count         int     `json:"count"`
	AverageAmount float64 `json:"average_amount"`
	Category      string  `json:"category"`
}

// SpendingPatterns is the second-pass analysis over the full transaction
// set. Error is set instead of the numeric fields when the input is empty
// or contains no expense transactions.
type SpendingPatterns struct {
	Error                 string             `json:"error,omitempty"`
	AverageDailySpend     float64            `json:"average_daily_spend"`
	HighestSpendDay       string             `json:"highest_spend_day"`
	TopSpendingCategories map[string]float64 `json:"top_spending_categories,omitempty"`
	RecurringExpenses     []RecurringExpense `json:"recurring_expenses,omitempty"`
}

// InvestmentSummary covers the subset of transactions routed to investment
// platforms. All fields are omitted when empty so a report without any
// investment activity serializes as {}.
type InvestmentSummary struct {
	Error                  string             `json:"error,omitempty"`
	TotalInvested          float64            `json:"total_invested,omitempty"`
	TotalInvestedDisplay   string             `json:"total_invested_display,omitempty"`
	InvestmentByType       map[string]float64 `json:"investment_by_type,omitempty"`
	MonthlyInvestments     map[string]float64 `json:"monthly_investments,omitempty"`
	TransactionsConsidered int                `json:"transactions_considered,omitempty"`
}

// Report is the comprehensive analysis result. SavingsRate is nil when
// total income is zero: an undefined rate is serialized as null, never 0.
type Report struct {
	Stats             *Stats             `json:"stats"`
	SpendingPatterns  *SpendingPatterns  `json:"spending_patterns"`
	InvestmentSummary *InvestmentSummary `json:"investment_summary"`
	SavingsRate       *float64           `json:"savings_rate"`
	TransactionCount  int                `json:"transaction_count"`
	ExpenseCount      int                `json:"expense_count"`
	IncomeCount       int                `json:"income_count"`
}
