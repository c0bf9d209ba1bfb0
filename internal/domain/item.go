package domain

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeName canonicalizes an item or recipe name for lookup:
// trimmed, lowercased, inner whitespace collapsed to single spaces.
// Display names keep their original spelling.
func NormalizeName(name string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(strings.ToLower(name)), " ")
}

// InventoryItem is a single stock item: one kind of package with its size,
// native unit and cost. Immutable after catalog load; a reload replaces the
// whole catalog snapshot.
type InventoryItem struct {
	Name        string          `json:"name"`
	PackageSize decimal.Decimal `json:"package_size"`
	PackageUnit string          `json:"package_unit"`
	PackageCost decimal.Decimal `json:"package_cost"`
	Vendor      string          `json:"vendor,omitempty"`
	Category    string          `json:"category,omitempty"`

	// Stock tracking fields, optional in the source and informational for
	// costing. OnHand counts whole packages; Leftover is the open-package
	// remainder in the item's native unit.
	OnHand       decimal.Decimal `json:"on_hand"`
	Leftover     decimal.Decimal `json:"leftover"`
	LowThreshold decimal.Decimal `json:"low_threshold"`
}

// UnitPrice returns the cost of one native unit of the item.
func (i InventoryItem) UnitPrice() decimal.Decimal {
	return i.PackageCost.Div(i.PackageSize)
}

// TotalOnHand returns the total stock in the item's native unit,
// counting full packages plus the open-package leftover.
func (i InventoryItem) TotalOnHand() decimal.Decimal {
	return i.OnHand.Mul(i.PackageSize).Add(i.Leftover)
}

// IsLowStock reports whether the item is at or below its low-stock threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.OnHand.Cmp(i.LowThreshold) <= 0
}
