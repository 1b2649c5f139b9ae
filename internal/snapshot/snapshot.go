// Package snapshot derives the dashboard view from raw ledger state.
package snapshot

import (
	"github.com/shopspring/decimal"

	"github.com/miobudget/miobudget/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Snapshot is the derived read-only view of a ledger. Totals carry full
// precision; rounding happens at display time only.
type Snapshot struct {
	Balance         decimal.Decimal
	IncomeTotal     decimal.Decimal
	ExpenseTotal    decimal.Decimal
	SpendingPercent decimal.Decimal // clamped to [0, 100]
}

// Compute derives a Snapshot from the base budget and transaction list. Pure
// and recomputed on every call; nothing is cached.
func Compute(baseBudget decimal.Decimal, transactions []model.Transaction) Snapshot {
	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range transactions {
		switch tx.Type {
		case model.TypeIncome:
			income = income.Add(tx.Amount)
		case model.TypeExpense:
			expense = expense.Add(tx.Amount)
		}
	}

	// A zero budget divides by one instead. The resulting percentage is
	// degenerate but keeps the original guard behavior.
	effective := baseBudget
	if effective.IsZero() {
		effective = decimal.NewFromInt(1)
	}
	percent := expense.Div(effective).Mul(hundred)
	if percent.GreaterThan(hundred) {
		percent = hundred
	}

	return Snapshot{
		Balance:         baseBudget.Add(income).Sub(expense),
		IncomeTotal:     income,
		ExpenseTotal:    expense,
		SpendingPercent: percent,
	}
}
