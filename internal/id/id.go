// Package id generates transaction identifiers.
package id

import "github.com/google/uuid"

// New returns a fresh transaction ID. IDs are unique for the lifetime of an
// installation and never reused.
func New() string {
	return uuid.NewString()
}

// IsValid reports whether s looks like an ID produced by New.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
