// Package costing implements the cost resolution engine: it resolves each
// recipe line against the inventory catalog, converting units as needed,
// and produces a per-line and aggregate cost report. A bad line degrades
// to a partial report; it never aborts the recipe.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/backbar/barcost/internal/catalog"
	"github.com/backbar/barcost/internal/domain"
	"github.com/backbar/barcost/internal/recipebook"
	"github.com/backbar/barcost/internal/units"
)

// ResolveRecipeCost resolves one recipe against a catalog snapshot and
// conversion table. It is a pure function of its inputs: identical inputs
// produce identical reports, and concurrent calls over shared snapshots
// need no coordination.
//
// All arithmetic stays in decimal form; rounding to currency precision is
// the renderer's job.
func ResolveRecipeCost(recipe domain.Recipe, cat *catalog.Catalog, table *units.Table) *domain.RecipeCostReport {
	report := &domain.RecipeCostReport{
		Recipe:    recipe.Name,
		Lines:     make([]domain.LineResolution, 0, len(recipe.Ingredients)),
		TotalCost: decimal.Zero,
	}

	for _, line := range recipe.Ingredients {
		res := resolveLine(line, cat, table)
		if res.Status == domain.StatusResolved {
			report.TotalCost = report.TotalCost.Add(res.Cost)
		} else {
			report.Unresolved++
		}
		report.Lines = append(report.Lines, res)
	}

	return report
}

func resolveLine(line domain.IngredientLine, cat *catalog.Catalog, table *units.Table) domain.LineResolution {
	res := domain.LineResolution{Line: line, Cost: decimal.Zero}

	item, ok := cat.Lookup(line.ItemName)
	if !ok {
		res.Status = domain.StatusItemNotFound
		return res
	}

	converted, err := table.Convert(line.Quantity, line.Unit, item.PackageUnit)
	if err != nil {
		res.Status = domain.StatusUnitMismatch
		return res
	}

	res.Status = domain.StatusResolved
	res.Cost = converted.Mul(item.UnitPrice())
	return res
}

// ResolveAll resolves every recipe in the book, in book order.
func ResolveAll(book *recipebook.Book, cat *catalog.Catalog, table *units.Table) []*domain.RecipeCostReport {
	reports := make([]*domain.RecipeCostReport, 0, book.Len())
	for _, recipe := range book.Recipes() {
		reports = append(reports, ResolveRecipeCost(recipe, cat, table))
	}
	return reports
}
