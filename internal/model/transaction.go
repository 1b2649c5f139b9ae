package model

import "github.com/shopspring/decimal"

// TransactionType classifies a ledger entry as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two known types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single income or expense record. All fields are fixed at
// creation time; edits are delete-and-recreate.
type Transaction struct {
	ID          string
	Description string
	Amount      decimal.Decimal // always > 0, two fractional digits
	Type        TransactionType
	Category    Category
	Date        string // locale-formatted calendar date, captured at creation
}
