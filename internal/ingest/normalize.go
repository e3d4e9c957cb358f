package ingest

import (
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pengeflyt/backend/internal/category"
	"github.com/pengeflyt/backend/internal/model"
)

// ProcessFile decodes an uploaded statement and normalizes every row into
// a transaction. A row-local failure is logged and skipped; it never
// aborts the file. Structural failures (unsupported extension,
// undecodable bytes, unresolvable columns) are returned as *Error.
func ProcessFile(filename string, data []byte, taxonomy *category.Taxonomy, log zerolog.Logger) ([]model.Transaction, error) {
	table, err := DecodeFile(filename, data)
	if err != nil {
		return nil, err
	}

	mapping, err := ResolveColumns(table.Columns)
	if err != nil {
		return nil, err
	}

	transactions := make([]model.Transaction, 0, len(table.Rows))
	for i, row := range table.Rows {
		tx, ok := normalizeRow(table, mapping, row, taxonomy, log, i)
		if ok {
			transactions = append(transactions, tx)
		}
	}
	return transactions, nil
}

// normalizeRow converts one raw row into a transaction. Returns ok=false
// for rows that are dropped: zero resolved amount, empty date token, or a
// row-local panic.
func normalizeRow(table *Table, m ColumnMapping, row []string, taxonomy *category.Taxonomy, log zerolog.Logger, rowIdx int) (tx model.Transaction, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Int("row", rowIdx).Interface("panic", r).Msg("skipping unprocessable row")
			ok = false
		}
	}()

	description := strings.TrimSpace(table.Cell(row, m.Description))

	var amount float64
	var isExpense bool
	if m.DualAmount() {
		out, _ := ParseAmount(table.Cell(row, m.Debit))
		in, _ := ParseAmount(table.Cell(row, m.Credit))
		isExpense = out > 0
		if isExpense {
			amount = -out
		} else {
			amount = in
		}
	} else {
		amount, _ = ParseAmount(table.Cell(row, m.Amount))
		isExpense = amount < 0
	}

	// Zero-amount rows carry no information; drop silently.
	if amount == 0 {
		return tx, false
	}

	rawDate := strings.TrimSpace(table.Cell(row, m.Date))
	if rawDate == "" {
		return tx, false
	}
	date := NormalizeDate(rawDate)

	tx = buildTransaction(description, amount, isExpense, date, taxonomy)
	return tx, true
}

// buildTransaction classifies the description and applies the
// income-consistency invariant: an inflow whose keyword verdict is not an
// income category is forced into the uncategorized-income bucket. A refund
// matching a merchant keyword must not be counted as an expense.
func buildTransaction(description string, amount float64, isExpense bool, date NormalizedDate, taxonomy *category.Taxonomy) model.Transaction {
	tx := model.Transaction{
		ID:          uuid.New().String(),
		Date:        date.ISO,
		Description: description,
		Amount:      round2(amount),
		IsExpense:   isExpense,
	}

	c := taxonomy.Classify(description)
	switch {
	case c.IsSpecial() && c.Special != model.CategoryOther:
		tx.Category = c.Special
		tx.MainCategory = c.Special
		tx.DisplayCategory = specialDisplayName(taxonomy, c.Special)
	case c.IsSpecial():
		tx.Category = model.CategoryOther
		tx.DisplayCategory = "Other"
		if isExpense {
			tx.MainCategory = model.MainExpenses
		} else {
			// Left non-income so the consistency override below
			// routes it to the uncategorized-income bucket.
			tx.MainCategory = model.CategoryOther
		}
	default:
		tx.Category = c.Category + "." + c.Subcategory
		tx.MainCategory = c.MainCategory
		tx.ParentCategory = c.Category
		tx.Subcategory = c.Subcategory
		tx.DisplayCategory = c.DisplayName
	}

	if !tx.IsExpense && tx.MainCategory != model.MainIncome {
		tx.MainCategory = model.MainIncome
		tx.ParentCategory = "other_income"
		tx.Subcategory = "uncategorized_income"
		tx.Category = "other_income.uncategorized_income"
		tx.DisplayCategory = "Uncategorized Income"
	}

	return tx
}

func specialDisplayName(taxonomy *category.Taxonomy, key string) string {
	for _, sp := range taxonomy.Specials {
		if sp.Key == key {
			return sp.Name
		}
	}
	return key
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
