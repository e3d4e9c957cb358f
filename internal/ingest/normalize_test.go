package ingest

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pengeflyt/backend/internal/category"
	"github.com/pengeflyt/backend/internal/model"
)

func processCSV(t *testing.T, data string) []model.Transaction {
	t.Helper()
	transactions, err := ProcessFile("statement.csv", []byte(data), category.Default, zerolog.Nop())
	if err != nil {
		t.Fatalf("ProcessFile: %v", err)
	}
	return transactions
}

func TestProcessFileDualColumns(t *testing.T) {
	data := "Dato;Forklaring;Ut av konto;Inn på konto\n" +
		"15.03.2024;KIWI OSLO;150,00;\n" +
		"25.03.2024;LØNN MARS;;25000,00\n"

	transactions := processCSV(t, data)
	if len(transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(transactions))
	}

	kiwi := transactions[0]
	if kiwi.Date != "2024-03-15" {
		t.Errorf("Date = %q, want 2024-03-15", kiwi.Date)
	}
	if kiwi.Amount != -150.0 {
		t.Errorf("Amount = %v, want -150", kiwi.Amount)
	}
	if !kiwi.IsExpense {
		t.Error("IsExpense = false, want true")
	}
	if kiwi.MainCategory != model.MainExpenses {
		t.Errorf("MainCategory = %q, want expenses", kiwi.MainCategory)
	}
	if kiwi.Category != "daily_living.groceries" {
		t.Errorf("Category = %q, want daily_living.groceries", kiwi.Category)
	}
	if kiwi.ParentCategory != "daily_living" || kiwi.Subcategory != "groceries" {
		t.Errorf("parent/sub = %q/%q", kiwi.ParentCategory, kiwi.Subcategory)
	}
	if kiwi.DisplayCategory != "Groceries" {
		t.Errorf("DisplayCategory = %q", kiwi.DisplayCategory)
	}
	if kiwi.ID == "" {
		t.Error("ID not assigned")
	}

	salary := transactions[1]
	if salary.Amount != 25000.0 {
		t.Errorf("Amount = %v, want 25000", salary.Amount)
	}
	if salary.IsExpense {
		t.Error("IsExpense = true, want false")
	}
	if salary.MainCategory != model.MainIncome {
		t.Errorf("MainCategory = %q, want income", salary.MainCategory)
	}
	if salary.Category != "earnings.salary" {
		t.Errorf("Category = %q, want earnings.salary", salary.Category)
	}
	if salary.ID == kiwi.ID {
		t.Error("transaction IDs not unique")
	}
}

func TestProcessFileSingleAmountColumn(t *testing.T) {
	data := "Dato;Forklaring;Beløp\n" +
		"15.03.2024;KIWI OSLO;-150,00\n" +
		"25.03.2024;LØNN MARS;25000,00\n"

	transactions := processCSV(t, data)
	if len(transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(transactions))
	}
	if !transactions[0].IsExpense || transactions[0].Amount != -150.0 {
		t.Errorf("expense row = %+v", transactions[0])
	}
	if transactions[1].IsExpense || transactions[1].Amount != 25000.0 {
		t.Errorf("income row = %+v", transactions[1])
	}
}

func TestProcessFileDropsZeroAmountRows(t *testing.T) {
	data := "Dato;Forklaring;Ut av konto;Inn på konto\n" +
		"15.03.2024;KIWI OSLO;150,00;\n" +
		"16.03.2024;GEBYR;;\n" +
		"17.03.2024;NULLSALDO;0,00;0,00\n"

	transactions := processCSV(t, data)
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}
	if transactions[0].Description != "KIWI OSLO" {
		t.Errorf("kept row = %q", transactions[0].Description)
	}
}

func TestProcessFileDropsEmptyDateRows(t *testing.T) {
	data := "Dato;Forklaring;Beløp\n" +
		";KIWI OSLO;-150,00\n" +
		"15.03.2024;REMA;-80,00\n"

	transactions := processCSV(t, data)
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}
	if transactions[0].Description != "REMA" {
		t.Errorf("kept row = %q", transactions[0].Description)
	}
}

func TestProcessFileKeepsUnparseableDates(t *testing.T) {
	data := "Dato;Forklaring;Beløp\n" +
		"not-a-date;KIWI OSLO;-150,00\n"

	transactions := processCSV(t, data)
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}
	if transactions[0].Date != "not-a-date" {
		t.Errorf("Date = %q, want raw token", transactions[0].Date)
	}
}

func TestIncomeConsistencyOverride(t *testing.T) {
	// An inflow whose description matches a merchant keyword is a refund,
	// not an expense; it must land in the uncategorized-income bucket.
	data := "Dato;Forklaring;Ut av konto;Inn på konto\n" +
		"15.03.2024;KIWI OSLO;;150,00\n" +
		"16.03.2024;XYZZY;;500,00\n" +
		"17.03.2024;Overføring fra konto;;1000,00\n"

	transactions := processCSV(t, data)
	if len(transactions) != 3 {
		t.Fatalf("got %d transactions, want 3", len(transactions))
	}
	for _, tx := range transactions {
		if tx.IsExpense {
			t.Errorf("%s: IsExpense = true", tx.Description)
		}
		if tx.MainCategory != model.MainIncome {
			t.Errorf("%s: MainCategory = %q, want income", tx.Description, tx.MainCategory)
		}
		if tx.Category != "other_income.uncategorized_income" {
			t.Errorf("%s: Category = %q, want other_income.uncategorized_income", tx.Description, tx.Category)
		}
		if tx.DisplayCategory != "Uncategorized Income" {
			t.Errorf("%s: DisplayCategory = %q", tx.Description, tx.DisplayCategory)
		}
	}
}

func TestProcessFileSpecialCategories(t *testing.T) {
	data := "Dato;Forklaring;Ut av konto;Inn på konto\n" +
		"15.03.2024;Overføring til sparekonto;1000,00;\n" +
		"16.03.2024;NORDNET MÅNEDSSPAR;2000,00;\n"

	transactions := processCSV(t, data)
	if len(transactions) != 2 {
		t.Fatalf("got %d transactions, want 2", len(transactions))
	}

	transfer := transactions[0]
	if transfer.MainCategory != model.MainTransfers || transfer.Category != "transfers" {
		t.Errorf("transfer = %+v", transfer)
	}
	if transfer.DisplayCategory != "Transfers" {
		t.Errorf("transfer DisplayCategory = %q", transfer.DisplayCategory)
	}

	invest := transactions[1]
	if invest.MainCategory != model.MainInvestments || invest.Category != "investments" {
		t.Errorf("investment = %+v", invest)
	}
}

func TestProcessFileUnmatchedExpense(t *testing.T) {
	data := "Dato;Forklaring;Beløp\n" +
		"15.03.2024;XYZZY 42;-99,00\n"

	transactions := processCSV(t, data)
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}
	tx := transactions[0]
	if tx.Category != model.CategoryOther || tx.DisplayCategory != "Other" {
		t.Errorf("category = %q/%q", tx.Category, tx.DisplayCategory)
	}
	if tx.MainCategory != model.MainExpenses {
		t.Errorf("MainCategory = %q, want expenses", tx.MainCategory)
	}
	if tx.ParentCategory != "" || tx.Subcategory != "" {
		t.Errorf("parent/sub = %q/%q, want empty", tx.ParentCategory, tx.Subcategory)
	}
}

func TestProcessFileRoundsAmounts(t *testing.T) {
	data := "Dato;Forklaring;Beløp\n" +
		"15.03.2024;KIWI OSLO;-33,333\n"

	transactions := processCSV(t, data)
	if len(transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(transactions))
	}
	if transactions[0].Amount != -33.33 {
		t.Errorf("Amount = %v, want -33.33", transactions[0].Amount)
	}
}

func TestProcessFileStructuralErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     string
		wantCode ErrorCode
	}{
		{
			name:     "unsupported extension",
			filename: "statement.docx",
			data:     "whatever",
			wantCode: ErrUnsupportedFormat,
		},
		{
			name:     "unresolvable columns",
			filename: "statement.csv",
			data:     "foo;bar\n1;2\n",
			wantCode: ErrUnresolvableColumns,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ProcessFile(tt.filename, []byte(tt.data), category.Default, zerolog.Nop())
			var ingErr *Error
			if !errors.As(err, &ingErr) {
				t.Fatalf("error type = %T, want *Error", err)
			}
			if ingErr.Code != tt.wantCode {
				t.Fatalf("code = %s, want %s", ingErr.Code, tt.wantCode)
			}
		})
	}
}
