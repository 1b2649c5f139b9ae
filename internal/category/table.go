package category

import "github.com/miobudget/miobudget/internal/model"

// The fixed, process-wide category table. Exactly six entries, never created
// or destroyed at runtime. Icon names and colors match the mobile app.
var table = []model.Category{
	{ID: "salary", Name: "Stipendio", Icon: "cash-outline", Color: "#34C759"},
	{ID: "food", Name: "Cibo", Icon: "restaurant-outline", Color: "#FF9500"},
	{ID: "transport", Name: "Trasporti", Icon: "bus-outline", Color: "#5856D6"},
	{ID: "shopping", Name: "Shopping", Icon: "cart-outline", Color: "#FF2D55"},
	{ID: "leisure", Name: "Svago", Icon: "game-controller-outline", Color: "#AF52DE"},
	{ID: "other", Name: "Altro", Icon: "ellipsis-horizontal-outline", Color: "#8E8E93"},
}
