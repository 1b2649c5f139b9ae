package model

// Category is one entry of the fixed category table. Transactions carry a
// value copy, so later table changes never rewrite history.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
}
