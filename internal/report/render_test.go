package report

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backbar/barcost/internal/catalog"
	"github.com/backbar/barcost/internal/depletion"
	"github.com/backbar/barcost/internal/domain"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func martiniReport() *domain.RecipeCostReport {
	return &domain.RecipeCostReport{
		Recipe: "martini",
		Lines: []domain.LineResolution{
			{
				Line:   domain.IngredientLine{ItemName: "Gin", Quantity: d("60"), Unit: "ml"},
				Status: domain.StatusResolved,
				Cost:   d("1.2"),
			},
			{
				Line:   domain.IngredientLine{ItemName: "Blanc Vermouth", Quantity: d("10"), Unit: "ml"},
				Status: domain.StatusItemNotFound,
			},
		},
		TotalCost:  d("1.2"),
		Unresolved: 1,
	}
}

func TestCostReport(t *testing.T) {
	r := NewRenderer("en-US", "$")

	var buf bytes.Buffer
	r.CostReport(&buf, martiniReport())
	out := buf.String()

	assert.Contains(t, out, "Martini")
	assert.Contains(t, out, "$1.20")
	assert.Contains(t, out, "not in catalog")
	assert.Contains(t, out, "total: $1.20")
	assert.Contains(t, out, "(1 unresolved)")
}

func TestCostReportUnitMismatch(t *testing.T) {
	r := NewRenderer("en-US", "$")
	rep := &domain.RecipeCostReport{
		Recipe: "Martini",
		Lines: []domain.LineResolution{{
			Line:   domain.IngredientLine{ItemName: "Gin", Quantity: d("2"), Unit: "oz"},
			Status: domain.StatusUnitMismatch,
		}},
		Unresolved: 1,
	}

	var buf bytes.Buffer
	r.CostReport(&buf, rep)
	assert.Contains(t, buf.String(), "unit mismatch")
}

func TestNewRendererFallbacks(t *testing.T) {
	r := NewRenderer("not-a-locale!", "")

	var buf bytes.Buffer
	r.CostReport(&buf, martiniReport())
	assert.Contains(t, buf.String(), "$1.20")
}

func TestStockSummary(t *testing.T) {
	cat, err := catalog.New([]domain.InventoryItem{
		{
			Name:         "Gin",
			PackageSize:  d("750"),
			PackageUnit:  "ml",
			PackageCost:  d("15.00"),
			Category:     "Spirits",
			OnHand:       d("1"),
			LowThreshold: d("2"),
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	NewRenderer("en-US", "$").StockSummary(&buf, cat)
	out := buf.String()

	assert.Contains(t, out, "items: 1")
	assert.Contains(t, out, "low stock: 1")
	assert.Contains(t, out, "Gin")
	assert.Contains(t, out, "threshold 2")
}

func TestDepletionReport(t *testing.T) {
	r := NewRenderer("en-US", "$")

	t.Run("renders movements and problems", func(t *testing.T) {
		rep := &depletion.Report{
			Items: []depletion.ItemDepletion{{
				Name:           "Gin",
				Unit:           "ml",
				Demand:         d("600"),
				OnHandBefore:   d("2"),
				LeftoverBefore: d("100"),
				OnHandAfter:    d("1"),
				LeftoverAfter:  d("250"),
			}},
			MissingRecipes: []string{"Mystery Drink"},
		}

		var buf bytes.Buffer
		r.DepletionReport(&buf, rep)
		out := buf.String()

		assert.Contains(t, out, "deductions applied:")
		assert.Contains(t, out, "Gin")
		assert.Contains(t, out, "-600 ml")
		assert.Contains(t, out, "no recipe found for:")
		assert.Contains(t, out, "Mystery Drink")
	})

	t.Run("empty run says so", func(t *testing.T) {
		var buf bytes.Buffer
		r.DepletionReport(&buf, &depletion.Report{})
		assert.Contains(t, buf.String(), "no matching drinks")
	})
}

func TestWriteCostCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCostCSV(&buf, []*domain.RecipeCostReport{martiniReport()}))
	out := buf.String()

	assert.Contains(t, out, "recipe,ingredient,quantity,unit,status,cost")
	assert.Contains(t, out, "martini,Gin,60,ml,RESOLVED,1.20")
	assert.Contains(t, out, "martini,Blanc Vermouth,10,ml,ITEM_NOT_FOUND,0.00")
	assert.Contains(t, out, "martini,,,,TOTAL,1.20")
}
