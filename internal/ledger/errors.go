package ledger

import "errors"

// Validation failures leave both the in-memory and the persisted state
// untouched; callers keep their form open and let the user correct the input.
// Amount failures surface as the money package's errors.
var (
	// ErrNotLoaded means an operation ran before Load resolved.
	ErrNotLoaded = errors.New("ledger not loaded")
	// ErrEmptyDescription means a transaction was submitted without one.
	ErrEmptyDescription = errors.New("description is required")
	// ErrUnknownType means the transaction type was neither income nor expense.
	ErrUnknownType = errors.New("unknown transaction type")
	// ErrUnknownCategory means the category ID is not in the fixed table.
	ErrUnknownCategory = errors.New("unknown category")
)
