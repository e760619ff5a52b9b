// Package core holds the domain model and the pure aggregation logic:
// expense summaries, budget evaluation and preference resolution.
// Nothing in this package performs I/O.
package core

// Category is a closed set of expense categories.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryUtilities     Category = "utilities"
	CategoryEntertainment Category = "entertainment"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryRent          Category = "rent"
	CategoryOther         Category = "other"

	// CategoryTotal is a pseudo-category valid only on budgets: a limit on
	// overall spending rather than on a single category.
	CategoryTotal Category = "total"
)

// CategoryInfo is static display metadata for a category.
type CategoryInfo struct {
	Label string
	Icon  string
	Color string
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryFood:          {Label: "Food & Dining", Icon: "restaurant", Color: "#ea580c"},
	CategoryTransport:     {Label: "Transportation", Icon: "directions_car", Color: "#2563eb"},
	CategoryUtilities:     {Label: "Utilities", Icon: "water_drop", Color: "#0891b2"},
	CategoryEntertainment: {Label: "Entertainment", Icon: "movie", Color: "#9333ea"},
	CategoryShopping:      {Label: "Shopping", Icon: "shopping_bag", Color: "#db2777"},
	CategoryHealth:        {Label: "Health", Icon: "local_hospital", Color: "#dc2626"},
	CategoryRent:          {Label: "Rent & Housing", Icon: "home", Color: "#4f46e5"},
	CategoryOther:         {Label: "Other", Icon: "more_horiz", Color: "#4b5563"},
}

var categoryOrder = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealth,
	CategoryRent,
	CategoryOther,
}

// Categories returns the expense categories in display order.
// The pseudo-category "total" is not included.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is one of the eight expense categories.
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// ValidForBudget reports whether c can appear on a budget record:
// any expense category, or "total".
func (c Category) ValidForBudget() bool {
	return c == CategoryTotal || c.Valid()
}

// Info returns the display metadata for c. Unknown categories fall back
// to the metadata for "other".
func (c Category) Info() CategoryInfo {
	if info, ok := categoryInfo[c]; ok {
		return info
	}
	return categoryInfo[CategoryOther]
}

func (c Category) String() string {
	return string(c)
}
