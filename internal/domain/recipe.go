package domain

import "github.com/shopspring/decimal"

// IngredientLine is one requirement of a recipe. ItemName is a lookup key
// into the catalog, not an owning reference.
type IngredientLine struct {
	ItemName string          `json:"item"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// Recipe is an ordered list of ingredient requirements plus presentation
// metadata. The metadata plays no part in cost computation.
type Recipe struct {
	Name        string           `json:"name"`
	Ingredients []IngredientLine `json:"ingredients"`
	Glassware   string           `json:"glassware,omitempty"`
	Garnish     string           `json:"garnish,omitempty"`
}
