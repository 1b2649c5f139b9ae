// Package money parses raw user input into exact decimal amounts.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotANumber means the input could not be parsed as a finite decimal.
	ErrNotANumber = errors.New("not a number")
	// ErrNotPositive means the amount parsed but was zero or negative.
	ErrNotPositive = errors.New("amount must be greater than zero")
	// ErrNegative means the amount parsed but was below zero.
	ErrNegative = errors.New("amount must not be negative")
)

// Parse converts raw input to a decimal. Both "." and "," are accepted as the
// decimal separator; when "," is used, "." is treated as thousands grouping,
// so "1.000,50" parses to 1000.50.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", raw, ErrNotANumber)
	}
	return d, nil
}

// ParsePositive parses an amount that must be strictly greater than zero
// (transaction amounts and the onboarding budget).
func ParsePositive(raw string) (decimal.Decimal, error) {
	d, err := Parse(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", raw, ErrNotPositive)
	}
	return d, nil
}

// ParseBudget parses a budget figure. Zero is allowed here; only negative
// values are rejected.
func ParseBudget(raw string) (decimal.Decimal, error) {
	d, err := Parse(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("parsing budget %q: %w", raw, ErrNegative)
	}
	return d, nil
}
