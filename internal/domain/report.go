package domain

import "github.com/shopspring/decimal"

// LineStatus classifies the outcome of resolving one ingredient line.
type LineStatus string

const (
	StatusResolved     LineStatus = "RESOLVED"
	StatusUnitMismatch LineStatus = "UNIT_MISMATCH"
	StatusItemNotFound LineStatus = "ITEM_NOT_FOUND"
)

// LineResolution is the costed outcome of a single recipe line.
// Cost is zero unless Status is StatusResolved.
type LineResolution struct {
	Line   IngredientLine  `json:"line"`
	Status LineStatus      `json:"status"`
	Cost   decimal.Decimal `json:"cost"`
}

// RecipeCostReport is the fully-owned result of resolving one recipe against
// a catalog snapshot. Lines appear in the recipe's declared order. TotalCost
// sums resolved lines only; unresolved lines contribute zero.
type RecipeCostReport struct {
	Recipe     string           `json:"recipe"`
	Lines      []LineResolution `json:"lines"`
	TotalCost  decimal.Decimal  `json:"total_cost"`
	Unresolved int              `json:"unresolved"`
}

// Clean reports whether every line resolved.
func (r RecipeCostReport) Clean() bool {
	return r.Unresolved == 0
}
