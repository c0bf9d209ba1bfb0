// Package report renders cost and depletion reports for humans. Rounding
// to currency precision happens here and only here; everything upstream
// stays in exact decimal form.
package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/backbar/barcost/internal/catalog"
	"github.com/backbar/barcost/internal/depletion"
	"github.com/backbar/barcost/internal/domain"
)

// Renderer formats reports for a locale.
type Renderer struct {
	printer *message.Printer
	title   cases.Caser
	symbol  string
}

// NewRenderer builds a renderer for the given BCP 47 locale tag, falling
// back to en-US when the tag does not parse.
func NewRenderer(locale, currencySymbol string) *Renderer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	if currencySymbol == "" {
		currencySymbol = "$"
	}
	return &Renderer{
		printer: message.NewPrinter(tag),
		title:   cases.Title(tag),
		symbol:  currencySymbol,
	}
}

// money renders a decimal amount at currency precision.
func (r *Renderer) money(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return r.printer.Sprintf("%s%v", r.symbol, number.Decimal(v, number.Scale(2)))
}

// CostReport writes one recipe's cost breakdown.
func (r *Renderer) CostReport(w io.Writer, rep *domain.RecipeCostReport) {
	fmt.Fprintf(w, "%s\n", r.title.String(rep.Recipe))
	for _, line := range rep.Lines {
		switch line.Status {
		case domain.StatusResolved:
			fmt.Fprintf(w, "  %-24s %8s %-5s %10s\n",
				line.Line.ItemName, line.Line.Quantity, line.Line.Unit, r.money(line.Cost))
		case domain.StatusItemNotFound:
			fmt.Fprintf(w, "  %-24s %8s %-5s %10s\n",
				line.Line.ItemName, line.Line.Quantity, line.Line.Unit, "not in catalog")
		case domain.StatusUnitMismatch:
			fmt.Fprintf(w, "  %-24s %8s %-5s %10s\n",
				line.Line.ItemName, line.Line.Quantity, line.Line.Unit, "unit mismatch")
		}
	}
	fmt.Fprintf(w, "  total: %s", r.money(rep.TotalCost))
	if rep.Unresolved > 0 {
		fmt.Fprintf(w, "  (%d unresolved)", rep.Unresolved)
	}
	fmt.Fprintln(w)
}

// CostReports writes a cost breakdown per recipe, in order.
func (r *Renderer) CostReports(w io.Writer, reps []*domain.RecipeCostReport) {
	for i, rep := range reps {
		if i > 0 {
			fmt.Fprintln(w)
		}
		r.CostReport(w, rep)
	}
}

// StockSummary writes the catalog overview and low-stock listing.
func (r *Renderer) StockSummary(w io.Writer, cat *catalog.Catalog) {
	s := cat.Summarize()
	r.printer.Fprintf(w, "items: %d  low stock: %d  categories: %d\n", s.Items, s.LowStock, s.Categories)
	low := cat.LowStock()
	if len(low) == 0 {
		return
	}
	fmt.Fprintln(w, "low stock:")
	for _, item := range low {
		fmt.Fprintf(w, "  %-24s on hand %s (threshold %s)\n",
			item.Name, item.OnHand, item.LowThreshold)
	}
}

// DepletionReport writes the outcome of a sales depletion run.
func (r *Renderer) DepletionReport(w io.Writer, rep *depletion.Report) {
	if len(rep.Items) > 0 {
		fmt.Fprintln(w, "deductions applied:")
		for _, d := range rep.Items {
			fmt.Fprintf(w, "  %-24s -%s %s  (on hand %s -> %s, leftover %s -> %s)\n",
				d.Name, d.Demand.Round(2), d.Unit,
				d.OnHandBefore, d.OnHandAfter,
				d.LeftoverBefore.Round(2), d.LeftoverAfter.Round(2))
		}
	}
	if len(rep.MissingRecipes) > 0 {
		fmt.Fprintln(w, "no recipe found for:")
		for _, name := range rep.MissingRecipes {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(rep.MissingIngredients) > 0 {
		fmt.Fprintln(w, "ingredients not in catalog:")
		for _, name := range rep.MissingIngredients {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(rep.UnitMismatches) > 0 {
		fmt.Fprintln(w, "ingredients with unconvertible units:")
		for _, name := range rep.UnitMismatches {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(rep.Items) == 0 && len(rep.MissingRecipes) == 0 && len(rep.MissingIngredients) == 0 {
		fmt.Fprintln(w, "no matching drinks or ingredients in this sales file")
	}
}
