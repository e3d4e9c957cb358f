package analytics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pengeflyt/backend/internal/model"
)

func TestBuildReport(t *testing.T) {
	transactions := []model.Transaction{
		expense("2024-03-15", "KIWI OSLO", -150, "daily_living", "groceries"),
		expense("2024-03-16", "SPOTIFY", -129, "entertainment", "streaming"),
		income("2024-03-25", "LØNN MARS", 25000, "earnings", "salary"),
	}

	report, err := BuildReport(transactions)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TransactionCount)
	assert.Equal(t, 2, report.ExpenseCount)
	assert.Equal(t, 1, report.IncomeCount)

	require.NotNil(t, report.Stats)
	require.NotNil(t, report.SpendingPatterns)
	require.NotNil(t, report.InvestmentSummary)

	require.NotNil(t, report.SavingsRate)
	assert.InDelta(t, (25000.0-279.0)/25000.0*100, *report.SavingsRate, 1e-9)
}

func TestBuildReportEmptyInput(t *testing.T) {
	_, err := BuildReport(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = BuildReport([]model.Transaction{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestBuildReportSavingsRateAbsentWithoutIncome(t *testing.T) {
	report, err := BuildReport([]model.Transaction{
		expense("2024-03-15", "KIWI OSLO", -150, "daily_living", "groceries"),
	})
	require.NoError(t, err)
	assert.Nil(t, report.SavingsRate)

	// Absent means null on the wire, never 0.
	data, err := json.Marshal(report)
	require.NoError(t, err)
	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "null", string(decoded["savings_rate"]))
}

func TestBuildReportNegativeSavingsRateKept(t *testing.T) {
	report, err := BuildReport([]model.Transaction{
		expense("2024-03-15", "HUSLEIE", -15000, "housing", "rent"),
		income("2024-03-25", "VIPPS FRA OLA", 1000, "other_income", "gifts"),
	})
	require.NoError(t, err)
	require.NotNil(t, report.SavingsRate)
	assert.InDelta(t, (1000.0-15000.0)/1000.0*100, *report.SavingsRate, 1e-9)
}

func TestBuildReportSerializesWithoutNonFiniteValues(t *testing.T) {
	// Marshal the full report; any NaN or Inf left anywhere would fail.
	transactions := []model.Transaction{
		expense("2024-03-15", "KIWI OSLO", -150, "daily_living", "groceries"),
		expense("not-a-date", "REMA", -80, "daily_living", "groceries"),
		income("2024-03-25", "LØNN", 25000, "earnings", "salary"),
	}
	report, err := BuildReport(transactions)
	require.NoError(t, err)

	_, err = json.Marshal(report)
	assert.NoError(t, err)
}
