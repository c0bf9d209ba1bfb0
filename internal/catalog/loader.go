package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/backbar/barcost/internal/domain"
	"github.com/backbar/barcost/internal/units"
)

// Column aliases accepted in the catalog CSV header. Sheets exported from
// different tools disagree on header spelling; the loader meets them where
// they are.
var columnAliases = map[string][]string{
	"name":          {"name", "item", "item_name"},
	"package_size":  {"package_size", "size"},
	"package_unit":  {"package_unit", "unit"},
	"package_cost":  {"package_cost", "cost", "price"},
	"size_display":  {"size_display", "size_text", "bottle_size"},
	"vendor":        {"vendor", "supplier"},
	"category":      {"category"},
	"on_hand":       {"on_hand", "onhand", "stock"},
	"leftover":      {"leftover", "leftover_oz", "leftover_ml"},
	"low_threshold": {"low_threshold", "threshold"},
}

// RowError records one skipped source row.
type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// LoadReport describes the outcome of a catalog load. Skipped rows are
// reported, not fatal; only an unreadable source or an empty result fails
// the load.
type LoadReport struct {
	Loaded  int        `json:"loaded"`
	Skipped []RowError `json:"skipped,omitempty"`
}

// LoadFile loads a catalog snapshot from a CSV file.
func LoadFile(path string) (*Catalog, *LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads catalog CSV rows. Malformed rows are skipped and reported;
// duplicate names keep the first occurrence and reject the rest.
func Load(r io.Reader) (*Catalog, *LoadReport, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalog header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, nil, err
	}

	report := &LoadReport{}
	var items []domain.InventoryItem
	seen := make(map[string]bool)

	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Skipped = append(report.Skipped, RowError{Row: row, Reason: err.Error()})
			continue
		}

		item, err := parseItem(cols, record)
		if err != nil {
			report.Skipped = append(report.Skipped, RowError{Row: row, Reason: err.Error()})
			continue
		}

		key := domain.NormalizeName(item.Name)
		if seen[key] {
			report.Skipped = append(report.Skipped, RowError{
				Row:    row,
				Reason: fmt.Sprintf("%s: duplicate item name %q", domain.ErrMsgInvalidRecord, item.Name),
			})
			continue
		}
		seen[key] = true
		items = append(items, item)
		report.Loaded++
	}

	if len(items) == 0 {
		return nil, report, domain.ErrEmptyCatalog
	}

	cat, err := New(items)
	if err != nil {
		return nil, report, err
	}
	return cat, report, nil
}

type columns map[string]int

func mapColumns(header []string) (columns, error) {
	byAlias := make(map[string]string)
	for canonical, aliases := range columnAliases {
		for _, a := range aliases {
			byAlias[a] = canonical
		}
	}

	cols := make(columns)
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := byAlias[name]; ok {
			if _, dup := cols[canonical]; !dup {
				cols[canonical] = i
			}
		}
	}

	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("catalog is missing a name column")
	}
	if _, ok := cols["package_cost"]; !ok {
		return nil, fmt.Errorf("catalog is missing a package_cost column")
	}
	_, hasSize := cols["package_size"]
	_, hasUnit := cols["package_unit"]
	_, hasDisplay := cols["size_display"]
	if !(hasSize && hasUnit) && !hasDisplay {
		return nil, fmt.Errorf("catalog needs package_size and package_unit columns, or a size_display column")
	}
	return cols, nil
}

func (c columns) get(record []string, name string) (string, bool) {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[i]), true
}

func parseItem(cols columns, record []string) (domain.InventoryItem, error) {
	var zero domain.InventoryItem

	name, _ := cols.get(record, "name")
	if name == "" {
		return zero, fmt.Errorf("%s: empty name", domain.ErrMsgInvalidRecord)
	}

	size, unit, err := parseSize(cols, record)
	if err != nil {
		return zero, fmt.Errorf("%s: item %q: %v", domain.ErrMsgInvalidRecord, name, err)
	}

	costStr, _ := cols.get(record, "package_cost")
	cost, err := decimal.NewFromString(costStr)
	if err != nil {
		return zero, fmt.Errorf("%s: item %q has invalid package_cost %q", domain.ErrMsgInvalidRecord, name, costStr)
	}
	if cost.IsNegative() {
		return zero, fmt.Errorf("%s: item %q has negative package_cost %s", domain.ErrMsgInvalidRecord, name, cost)
	}

	item := domain.InventoryItem{
		Name:        name,
		PackageSize: size,
		PackageUnit: unit,
		PackageCost: cost,
	}
	item.Vendor, _ = cols.get(record, "vendor")
	item.Category, _ = cols.get(record, "category")

	if item.OnHand, err = optionalDecimal(cols, record, "on_hand"); err != nil {
		return zero, fmt.Errorf("%s: item %q: %v", domain.ErrMsgInvalidRecord, name, err)
	}
	if item.Leftover, err = optionalDecimal(cols, record, "leftover"); err != nil {
		return zero, fmt.Errorf("%s: item %q: %v", domain.ErrMsgInvalidRecord, name, err)
	}
	if item.LowThreshold, err = optionalDecimal(cols, record, "low_threshold"); err != nil {
		return zero, fmt.Errorf("%s: item %q: %v", domain.ErrMsgInvalidRecord, name, err)
	}
	if item.OnHand.IsNegative() || item.Leftover.IsNegative() {
		return zero, fmt.Errorf("%s: item %q has negative stock", domain.ErrMsgInvalidRecord, name)
	}

	return item, nil
}

// parseSize prefers explicit package_size/package_unit columns and falls
// back to parsing a size_display string like "750ml" or "6x750ml".
func parseSize(cols columns, record []string) (decimal.Decimal, string, error) {
	sizeStr, _ := cols.get(record, "package_size")
	unitStr, _ := cols.get(record, "package_unit")
	if sizeStr != "" && unitStr != "" {
		size, err := decimal.NewFromString(sizeStr)
		if err != nil {
			return decimal.Decimal{}, "", fmt.Errorf("invalid package_size %q", sizeStr)
		}
		if !size.IsPositive() {
			return decimal.Decimal{}, "", fmt.Errorf("package_size must be positive, got %s", size)
		}
		return size, strings.ToLower(unitStr), nil
	}

	display, _ := cols.get(record, "size_display")
	if display == "" {
		return decimal.Decimal{}, "", fmt.Errorf("no package size given")
	}
	return units.ParsePackageSize(display)
}

func optionalDecimal(cols columns, record []string, name string) (decimal.Decimal, error) {
	s, ok := cols.get(record, name)
	if !ok || s == "" {
		return decimal.Decimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q", name, s)
	}
	return d, nil
}
