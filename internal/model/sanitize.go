package model

import "math"

// Finite coerces NaN and infinite values to 0.0. The JSON encoder rejects
// such values and the frontend is not trusted to handle them, so every
// float crossing the API boundary passes through here.
func Finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0.0
	}
	return f
}

func finiteMap(m map[string]float64) {
	for k, v := range m {
		m[k] = Finite(v)
	}
}

// Sanitize scrubs every float in the stats tree in place.
func (s *Stats) Sanitize() {
	if s == nil {
		return
	}
	if s.Expenses != nil {
		s.Expenses.Total = Finite(s.Expenses.Total)
		finiteMap(s.Expenses.Subcategories)
		finiteMap(s.Expenses.Categories)
	}
	if s.Income != nil {
		s.Income.Total = Finite(s.Income.Total)
		finiteMap(s.Income.Subcategories)
		finiteMap(s.Income.Categories)
	}
	finiteMap(s.DailyExpenses)
	for _, m := range s.MonthlySummary {
		m.Income = Finite(m.Income)
		m.Expenses = Finite(m.Expenses)
	}
	s.Transfers = Finite(s.Transfers)
	s.Investments = Finite(s.Investments)
}

// Sanitize scrubs every float in the report in place.
func (r *Report) Sanitize() {
	if r == nil {
		return
	}
	r.Stats.Sanitize()
	if p := r.SpendingPatterns; p != nil {
		p.AverageDailySpend = Finite(p.AverageDailySpend)
		finiteMap(p.TopSpendingCategories)
		for i := range p.RecurringExpenses {
			p.RecurringExpenses[i].AverageAmount = Finite(p.RecurringExpenses[i].AverageAmount)
		}
	}
	if inv := r.InvestmentSummary; inv != nil {
		inv.TotalInvested = Finite(inv.TotalInvested)
		finiteMap(inv.InvestmentByType)
		finiteMap(inv.MonthlyInvestments)
	}
	if r.SavingsRate != nil {
		v := Finite(*r.SavingsRate)
		r.SavingsRate = &v
	}
}
