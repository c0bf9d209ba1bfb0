package recipebook

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/backbar/barcost/internal/catalog"
	"github.com/backbar/barcost/internal/domain"
)

// Recipe CSVs are one row per ingredient line:
//
//	recipe,ingredient,quantity,unit,glassware,garnish
//	Martini,Gin,60,ml,coupe,olive
//	Martini,Dry Vermouth,10,ml,,
//
// Rows are grouped by recipe preserving file order of both recipes and
// lines. Repeated (recipe, ingredient) rows stay separate lines; a drink
// can genuinely use the same bottle twice (rinse and pour).
var columnAliases = map[string][]string{
	"recipe":     {"recipe", "cocktail", "recipe_name"},
	"ingredient": {"ingredient", "item", "item_name"},
	"quantity":   {"quantity", "qty", "amount"},
	"unit":       {"unit"},
	"glassware":  {"glassware", "glass"},
	"garnish":    {"garnish"},
}

// LoadFile loads a recipe book from a CSV file.
func LoadFile(path string) (*Book, *catalog.LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open recipe book: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads recipe CSV rows with the same skip-and-report semantics as
// the catalog loader.
func Load(r io.Reader) (*Book, *catalog.LoadReport, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read recipe header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, nil, err
	}

	report := &catalog.LoadReport{}
	var order []string
	byName := make(map[string]*domain.Recipe)

	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Skipped = append(report.Skipped, catalog.RowError{Row: row, Reason: err.Error()})
			continue
		}

		recipeName, line, meta, err := parseLine(cols, record)
		if err != nil {
			report.Skipped = append(report.Skipped, catalog.RowError{Row: row, Reason: err.Error()})
			continue
		}

		key := domain.NormalizeName(recipeName)
		rec, ok := byName[key]
		if !ok {
			rec = &domain.Recipe{Name: recipeName}
			byName[key] = rec
			order = append(order, key)
		}
		rec.Ingredients = append(rec.Ingredients, line)
		if rec.Glassware == "" {
			rec.Glassware = meta.glassware
		}
		if rec.Garnish == "" {
			rec.Garnish = meta.garnish
		}
		report.Loaded++
	}

	if len(order) == 0 {
		return nil, report, domain.ErrEmptyBook
	}

	recipes := make([]domain.Recipe, len(order))
	for i, key := range order {
		recipes[i] = *byName[key]
	}
	book, err := New(recipes)
	if err != nil {
		return nil, report, err
	}
	return book, report, nil
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

	for _, required := range []string{"recipe", "ingredient", "quantity", "unit"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("recipe book is missing a %s column", required)
		}
	}
	return cols, nil
}

type lineMeta struct {
	glassware string
	garnish   string
}

func parseLine(cols columns, record []string) (string, domain.IngredientLine, lineMeta, error) {
	var zero domain.IngredientLine

	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	recipeName := get("recipe")
	if recipeName == "" {
		return "", zero, lineMeta{}, fmt.Errorf("%s: empty recipe name", domain.ErrMsgInvalidRecord)
	}
	ingredient := get("ingredient")
	if ingredient == "" {
		return "", zero, lineMeta{}, fmt.Errorf("%s: recipe %q has a line with no ingredient", domain.ErrMsgInvalidRecord, recipeName)
	}

	qtyStr := get("quantity")
	qty, err := decimal.NewFromString(qtyStr)
	if err != nil {
		return "", zero, lineMeta{}, fmt.Errorf("%s: recipe %q ingredient %q has invalid quantity %q",
			domain.ErrMsgInvalidRecord, recipeName, ingredient, qtyStr)
	}
	if !qty.IsPositive() {
		return "", zero, lineMeta{}, fmt.Errorf("%s: recipe %q ingredient %q quantity must be positive, got %s",
			domain.ErrMsgInvalidRecord, recipeName, ingredient, qty)
	}

	unit := strings.ToLower(get("unit"))
	if unit == "" {
		return "", zero, lineMeta{}, fmt.Errorf("%s: recipe %q ingredient %q has no unit",
			domain.ErrMsgInvalidRecord, recipeName, ingredient)
	}

	line := domain.IngredientLine{ItemName: ingredient, Quantity: qty, Unit: unit}
	meta := lineMeta{glassware: get("glassware"), garnish: get("garnish")}
	return recipeName, line, meta, nil
}
