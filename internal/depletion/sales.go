// Package depletion turns a sales export into inventory draw-down: sold
// drinks are mapped through the recipe book to per-ingredient demand, and
// demand is applied to the catalog as whole packages plus an open-package
// remainder.
package depletion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/backbar/barcost/internal/domain"
)

// POS exports disagree on header names, so the reader accepts the common
// spellings for the drink and quantity columns.
var (
	nameHeaders = []string{"item", "menu item", "menu_item", "name", "cocktail", "product"}
	qtyHeaders  = []string{"qty", "quantity", "count", "sold", "units"}
)

// SalesLine is one sold drink with its aggregated quantity.
type SalesLine struct {
	Name     string
	Quantity decimal.Decimal
}

// ReadSalesFile reads a sales CSV from disk.
func ReadSalesFile(path string) ([]SalesLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales file: %w", err)
	}
	defer f.Close()
	return ReadSales(f)
}

// ReadSales reads a sales CSV, aggregating repeated drink names. The result
// preserves first-appearance order. Rows with unparsable quantities are
// skipped; a file without recognizable columns is an error.
func ReadSales(r io.Reader) ([]SalesLine, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read sales header: %w", err)
	}

	nameCol, qtyCol := -1, -1
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if nameCol < 0 && contains(nameHeaders, name) {
			nameCol = i
		}
		if qtyCol < 0 && contains(qtyHeaders, name) {
			qtyCol = i
		}
	}
	if nameCol < 0 || qtyCol < 0 {
		return nil, fmt.Errorf("sales file must have columns for drink name and quantity (e.g. 'Item' + 'Quantity')")
	}

	var order []string
	totals := make(map[string]*SalesLine)

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if nameCol >= len(record) || qtyCol >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[nameCol])
		if name == "" {
			continue
		}
		qty, err := decimal.NewFromString(strings.TrimSpace(record[qtyCol]))
		if err != nil || !qty.IsPositive() {
			continue
		}

		key := domain.NormalizeName(name)
		line, ok := totals[key]
		if !ok {
			line = &SalesLine{Name: name}
			totals[key] = line
			order = append(order, key)
		}
		line.Quantity = line.Quantity.Add(qty)
	}

	out := make([]SalesLine, len(order))
	for i, key := range order {
		out[i] = *totals[key]
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
