package depletion

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/backbar/barcost/internal/catalog"
	"github.com/backbar/barcost/internal/domain"
	"github.com/backbar/barcost/internal/logger"
	"github.com/backbar/barcost/internal/metrics"
	"github.com/backbar/barcost/internal/recipebook"
	"github.com/backbar/barcost/internal/units"
)

// ItemDepletion records the stock movement of a single catalog item.
// Quantities are in the item's native unit; OnHand counts whole packages.
type ItemDepletion struct {
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	Demand         decimal.Decimal `json:"demand"`
	OnHandBefore   decimal.Decimal `json:"on_hand_before"`
	LeftoverBefore decimal.Decimal `json:"leftover_before"`
	OnHandAfter    decimal.Decimal `json:"on_hand_after"`
	LeftoverAfter  decimal.Decimal `json:"leftover_after"`
}

// Report is the outcome of one depletion run. Unknown drinks and
// unresolvable ingredients are collected, never fatal: the bar still wants
// the deductions that could be computed.
type Report struct {
	Items              []ItemDepletion `json:"items"`
	MissingRecipes     []string        `json:"missing_recipes,omitempty"`
	MissingIngredients []string        `json:"missing_ingredients,omitempty"`
	UnitMismatches     []string        `json:"unit_mismatches,omitempty"`
}

// Apply maps sold drinks through the recipe book to per-item demand and
// applies it to the catalog. It returns the report and a new catalog
// snapshot; the input snapshot is untouched.
func Apply(ctx context.Context, sales []SalesLine, book *recipebook.Book, cat *catalog.Catalog, table *units.Table) (*Report, *catalog.Catalog, error) {
	log := logger.FromContext(ctx)
	report := &Report{}

	demand := make(map[string]decimal.Decimal)
	missingRecipes := make(map[string]bool)
	missingIngredients := make(map[string]bool)
	mismatches := make(map[string]bool)

	for _, sale := range sales {
		recipe, ok := book.Lookup(sale.Name)
		if !ok {
			missingRecipes[sale.Name] = true
			continue
		}
		for _, line := range recipe.Ingredients {
			item, ok := cat.Lookup(line.ItemName)
			if !ok {
				missingIngredients[line.ItemName] = true
				continue
			}
			converted, err := table.Convert(line.Quantity, line.Unit, item.PackageUnit)
			if err != nil {
				mismatches[line.ItemName] = true
				continue
			}
			key := domain.NormalizeName(item.Name)
			demand[key] = demand[key].Add(converted.Mul(sale.Quantity))
		}
	}

	items := cat.Items()
	updated := make([]domain.InventoryItem, len(items))
	for i, item := range items {
		updated[i] = item
		need, ok := demand[domain.NormalizeName(item.Name)]
		if !ok || need.IsZero() {
			continue
		}

		dep := ItemDepletion{
			Name:           item.Name,
			Unit:           item.PackageUnit,
			Demand:         need,
			OnHandBefore:   item.OnHand,
			LeftoverBefore: item.Leftover,
		}

		// Stock never goes negative: a sale of more than is on hand just
		// empties the shelf.
		total := item.TotalOnHand().Sub(need)
		if total.IsNegative() {
			total = decimal.Zero
		}
		newOnHand := total.Div(item.PackageSize).Floor()
		newLeftover := total.Sub(newOnHand.Mul(item.PackageSize))

		updated[i].OnHand = newOnHand
		updated[i].Leftover = newLeftover
		dep.OnHandAfter = newOnHand
		dep.LeftoverAfter = newLeftover
		report.Items = append(report.Items, dep)
	}

	report.MissingRecipes = sortedKeys(missingRecipes)
	report.MissingIngredients = sortedKeys(missingIngredients)
	report.UnitMismatches = sortedKeys(mismatches)

	next, err := catalog.New(updated)
	if err != nil {
		return nil, nil, err
	}

	metrics.DepletionsApplied.Inc()
	log.Info("sales depletion applied",
		"items_depleted", len(report.Items),
		"missing_recipes", len(report.MissingRecipes),
		"missing_ingredients", len(report.MissingIngredients))

	return report, next, nil
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
