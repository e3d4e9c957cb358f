package ingest

import "strings"

// ColumnMapping holds the resolved column roles for one uploaded table.
// Indexes refer to source column order; -1 means unset. Exactly one amount
// strategy is active: either Amount, or the Debit/Credit pair.
type ColumnMapping struct {
	Date        int
	Description int
	Amount      int
	Debit       int
	Credit      int
}

// DualAmount reports whether the debit/credit pair strategy is active.
func (m ColumnMapping) DualAmount() bool {
	return m.Debit >= 0 && m.Credit >= 0
}

// Role token lists. Bank exports vary in language and layout, so roles are
// inferred by substring match rather than per-bank configuration.
var (
	dateTokens   = []string{"dato", "date"}
	descTokens   = []string{"forklaring", "description", "tekst", "text"}
	outTokens    = []string{"ut", "out", "debit", "debet"}
	inTokens     = []string{"inn", "in", "kredit", "credit"}
	amountTokens = []string{"beløp", "amount"}
)

func matchesAny(name string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(name, tok) {
			return true
		}
	}
	return false
}

// ResolveColumns infers which columns carry the date, description, and
// amount roles. For each role the first matching unclaimed column wins
// (source column order is the tie-break). Two fallbacks apply, in order:
// positional date/description assignment for tables of three or more
// columns, then assignment of leftover columns to the amount strategy.
func ResolveColumns(columns []string) (ColumnMapping, error) {
	m := ColumnMapping{Date: -1, Description: -1, Amount: -1, Debit: -1, Credit: -1}
	used := make([]bool, len(columns))

	claim := func(tokens []string) int {
		for i, name := range columns {
			if !used[i] && matchesAny(name, tokens) {
				used[i] = true
				return i
			}
		}
		return -1
	}

	m.Date = claim(dateTokens)
	m.Description = claim(descTokens)
	m.Debit = claim(outTokens)
	m.Credit = claim(inTokens)
	m.Amount = claim(amountTokens)

	// Fallback (a): headerless-looking tables put the date first and the
	// description second.
	if len(columns) >= 3 {
		if m.Date < 0 && !used[0] {
			m.Date = 0
			used[0] = true
		}
		if m.Description < 0 && len(columns) > 1 && !used[1] {
			m.Description = 1
			used[1] = true
		}
	}

	// Fallback (b): no amount strategy resolved yet; assume the leftover
	// columns are [debit, credit] or a single signed amount.
	if !m.DualAmount() && m.Amount < 0 {
		var remaining []int
		for i := range columns {
			if !used[i] {
				remaining = append(remaining, i)
			}
		}
		switch {
		case len(remaining) >= 2:
			m.Debit, m.Credit = remaining[0], remaining[1]
		case len(remaining) == 1:
			m.Amount = remaining[0]
		}
	}

	var missing []string
	if m.Date < 0 {
		missing = append(missing, "date")
	}
	if m.Description < 0 {
		missing = append(missing, "description")
	}
	if !m.DualAmount() && m.Amount < 0 {
		missing = append(missing, "amount")
	}
	if len(missing) > 0 {
		return m, newError(ErrUnresolvableColumns, "could not resolve required columns: %s", strings.Join(missing, ", "))
	}

	// A half-matched debit/credit pair with a single-amount column present
	// resolves to the single column.
	if !m.DualAmount() {
		m.Debit, m.Credit = -1, -1
	}

	return m, nil
}
