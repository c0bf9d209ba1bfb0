package report

import (
	"encoding/csv"
	"io"

	"github.com/backbar/barcost/internal/domain"
)

// WriteCostCSV exports cost reports as one row per line plus a total row
// per recipe. Costs are rounded to currency precision on the way out.
func WriteCostCSV(w io.Writer, reports []*domain.RecipeCostReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"recipe", "ingredient", "quantity", "unit", "status", "cost"}); err != nil {
		return err
	}
	for _, rep := range reports {
		for _, line := range rep.Lines {
			record := []string{
				rep.Recipe,
				line.Line.ItemName,
				line.Line.Quantity.String(),
				line.Line.Unit,
				string(line.Status),
				line.Cost.StringFixed(2),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
		total := []string{rep.Recipe, "", "", "", "TOTAL", rep.TotalCost.StringFixed(2)}
		if err := cw.Write(total); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
