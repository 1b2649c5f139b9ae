// Package category provides lookup over the fixed category table.
package category

import "github.com/miobudget/miobudget/internal/model"

// All returns the categories in display order. The returned slice is a copy.
func All() []model.Category {
	out := make([]model.Category, len(table))
	copy(out, table)
	return out
}

// Get returns a category by ID.
func Get(id string) (model.Category, bool) {
	for _, c := range table {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}

// Exists reports whether a category ID exists.
func Exists(id string) bool {
	_, ok := Get(id)
	return ok
}

// Default returns the category the creation form starts on (food, the second
// entry).
func Default() model.Category {
	return table[1]
}
