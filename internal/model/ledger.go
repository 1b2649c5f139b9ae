package model

import "github.com/shopspring/decimal"

// LedgerState is the root aggregate: everything the app persists. There is
// exactly one per installation.
type LedgerState struct {
	HasOnboarded bool
	BaseBudget   decimal.Decimal // >= 0
	Transactions []Transaction   // newest first
}

// Empty returns the first-run state.
func Empty() LedgerState {
	return LedgerState{BaseBudget: decimal.Zero}
}

// Clone returns a copy whose transaction list does not share backing storage
// with the original.
func (s LedgerState) Clone() LedgerState {
	out := s
	if s.Transactions != nil {
		out.Transactions = make([]Transaction, len(s.Transactions))
		copy(out.Transactions, s.Transactions)
	}
	return out
}
