package snapshot

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miobudget/miobudget/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func tx(typ model.TransactionType, amount string) model.Transaction {
	return model.Transaction{Type: typ, Amount: dec(amount)}
}

func TestCompute_Empty(t *testing.T) {
	snap := Compute(dec("1000"), nil)

	assert.True(t, snap.Balance.Equal(dec("1000")))
	assert.True(t, snap.IncomeTotal.IsZero())
	assert.True(t, snap.ExpenseTotal.IsZero())
	assert.True(t, snap.SpendingPercent.IsZero())
}

func TestCompute_Scenario(t *testing.T) {
	// Budget 1000.00, one 250.00 expense, one 500.00 income.
	txs := []model.Transaction{
		tx(model.TypeIncome, "500.00"),
		tx(model.TypeExpense, "250.00"),
	}
	snap := Compute(dec("1000.00"), txs)

	assert.Equal(t, "1250.00", snap.Balance.StringFixed(2))
	assert.Equal(t, "500.00", snap.IncomeTotal.StringFixed(2))
	assert.Equal(t, "250.00", snap.ExpenseTotal.StringFixed(2))
	assert.True(t, snap.SpendingPercent.Equal(dec("25")))
}

func TestCompute_BalanceIdentity(t *testing.T) {
	tests := []struct {
		budget string
		txs    []model.Transaction
	}{
		{"0", nil},
		{"1000", []model.Transaction{tx(model.TypeExpense, "999.99")}},
		{"50.25", []model.Transaction{
			tx(model.TypeIncome, "0.01"),
			tx(model.TypeExpense, "100.10"),
			tx(model.TypeIncome, "3.33"),
		}},
		{"7500", []model.Transaction{
			tx(model.TypeExpense, "1250.50"),
			tx(model.TypeExpense, "0.99"),
			tx(model.TypeIncome, "2000.00"),
			tx(model.TypeExpense, "18.75"),
		}},
	}
	for _, tt := range tests {
		snap := Compute(dec(tt.budget), tt.txs)
		want := dec(tt.budget).Add(snap.IncomeTotal).Sub(snap.ExpenseTotal)
		assert.Equal(t, want.StringFixed(2), snap.Balance.StringFixed(2), "budget %s", tt.budget)
	}
}

func TestCompute_PercentClamped(t *testing.T) {
	// Spending far past the budget still reads 100%.
	txs := []model.Transaction{tx(model.TypeExpense, "1000.00")}
	snap := Compute(dec("100"), txs)
	assert.True(t, snap.SpendingPercent.Equal(dec("100")))

	// And never drops below zero.
	snap = Compute(dec("100"), []model.Transaction{tx(model.TypeIncome, "500")})
	assert.True(t, snap.SpendingPercent.GreaterThanOrEqual(decimal.Zero))
}

func TestCompute_ZeroBudgetGuard(t *testing.T) {
	// With budget 0 the divisor becomes 1, so a 10.00 expense clamps to 100,
	// not 1000.
	txs := []model.Transaction{tx(model.TypeExpense, "10.00")}
	snap := Compute(decimal.Zero, txs)

	require.True(t, snap.SpendingPercent.Equal(dec("100")))
	assert.Equal(t, "-10.00", snap.Balance.StringFixed(2))
}

func TestCompute_ZeroBudgetSmallExpense(t *testing.T) {
	// Below the clamp the guard yields expense*100.
	txs := []model.Transaction{tx(model.TypeExpense, "0.25")}
	snap := Compute(decimal.Zero, txs)
	assert.True(t, snap.SpendingPercent.Equal(dec("25")))
}

func TestCompute_NegativeBalance(t *testing.T) {
	txs := []model.Transaction{tx(model.TypeExpense, "1500.00")}
	snap := Compute(dec("1000.00"), txs)
	assert.Equal(t, "-500.00", snap.Balance.StringFixed(2))
	assert.True(t, snap.SpendingPercent.Equal(dec("100")))
}
