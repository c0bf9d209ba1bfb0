package depletion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backbar/barcost/internal/catalog"
	"github.com/backbar/barcost/internal/domain"
	"github.com/backbar/barcost/internal/recipebook"
	"github.com/backbar/barcost/internal/units"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]domain.InventoryItem{
		{
			Name:        "Gin",
			PackageSize: d("750"),
			PackageUnit: "ml",
			PackageCost: d("15.00"),
			OnHand:      d("2"),
			Leftover:    d("100"),
		},
		{
			Name:        "Dry Vermouth",
			PackageSize: d("1000"),
			PackageUnit: "ml",
			PackageCost: d("9.00"),
			OnHand:      d("1"),
		},
	})
	require.NoError(t, err)
	return cat
}

func testBook(t *testing.T) *recipebook.Book {
	t.Helper()
	book, err := recipebook.New([]domain.Recipe{
		{Name: "Martini", Ingredients: []domain.IngredientLine{
			{ItemName: "Gin", Quantity: d("60"), Unit: "ml"},
			{ItemName: "Dry Vermouth", Quantity: d("10"), Unit: "ml"},
		}},
	})
	require.NoError(t, err)
	return book
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	table := units.DefaultTable()

	t.Run("draws down whole packages and leftover", func(t *testing.T) {
		cat := testCatalog(t)

		// 10 martinis need 600ml gin; 2 bottles + 100ml = 1600ml total,
		// leaving 1000ml = 1 bottle + 250ml open
		report, next, err := Apply(ctx, []SalesLine{{Name: "Martini", Quantity: d("10")}},
			testBook(t), cat, table)
		require.NoError(t, err)

		require.Len(t, report.Items, 2)
		gin := report.Items[0]
		assert.Equal(t, "Gin", gin.Name)
		assert.True(t, d("600").Equal(gin.Demand))
		assert.True(t, d("2").Equal(gin.OnHandBefore))
		assert.True(t, d("1").Equal(gin.OnHandAfter))
		assert.True(t, d("250").Equal(gin.LeftoverAfter), "got %s", gin.LeftoverAfter)

		item, ok := next.Lookup("gin")
		require.True(t, ok)
		assert.True(t, d("1").Equal(item.OnHand))
		assert.True(t, d("250").Equal(item.Leftover))

		// input snapshot is untouched
		before, _ := cat.Lookup("gin")
		assert.True(t, d("2").Equal(before.OnHand))
		assert.True(t, d("100").Equal(before.Leftover))
	})

	t.Run("overselling empties the shelf instead of going negative", func(t *testing.T) {
		// 100 martinis need 6000ml gin but only 1600ml exists
		report, next, err := Apply(ctx, []SalesLine{{Name: "Martini", Quantity: d("100")}},
			testBook(t), testCatalog(t), table)
		require.NoError(t, err)

		gin := report.Items[0]
		assert.True(t, gin.OnHandAfter.IsZero())
		assert.True(t, gin.LeftoverAfter.IsZero())

		item, _ := next.Lookup("gin")
		assert.True(t, item.OnHand.IsZero())
		assert.True(t, item.Leftover.IsZero())
	})

	t.Run("unknown drinks are reported and skipped", func(t *testing.T) {
		report, next, err := Apply(ctx, []SalesLine{
			{Name: "Martini", Quantity: d("1")},
			{Name: "Mystery Drink", Quantity: d("3")},
		}, testBook(t), testCatalog(t), table)
		require.NoError(t, err)

		assert.Equal(t, []string{"Mystery Drink"}, report.MissingRecipes)
		assert.Len(t, report.Items, 2)
		require.NotNil(t, next)
	})

	t.Run("recipe ingredients missing from the catalog are reported", func(t *testing.T) {
		book, err := recipebook.New([]domain.Recipe{
			{Name: "Martini", Ingredients: []domain.IngredientLine{
				{ItemName: "Gin", Quantity: d("60"), Unit: "ml"},
				{ItemName: "Orange Bitters", Quantity: d("1"), Unit: "dash"},
			}},
		})
		require.NoError(t, err)

		report, _, err := Apply(ctx, []SalesLine{{Name: "Martini", Quantity: d("1")}},
			book, testCatalog(t), table)
		require.NoError(t, err)
		assert.Equal(t, []string{"Orange Bitters"}, report.MissingIngredients)
	})

	t.Run("inconvertible lines are reported and skipped", func(t *testing.T) {
		book, err := recipebook.New([]domain.Recipe{
			{Name: "Martini", Ingredients: []domain.IngredientLine{
				{ItemName: "Gin", Quantity: d("1"), Unit: "barspoon"},
			}},
		})
		require.NoError(t, err)

		report, next, err := Apply(ctx, []SalesLine{{Name: "Martini", Quantity: d("1")}},
			book, testCatalog(t), table)
		require.NoError(t, err)
		assert.Equal(t, []string{"Gin"}, report.UnitMismatches)
		assert.Empty(t, report.Items)

		// untouched stock carries into the new snapshot
		item, _ := next.Lookup("gin")
		assert.True(t, d("2").Equal(item.OnHand))
	})

	t.Run("no sales means no movement", func(t *testing.T) {
		cat := testCatalog(t)
		report, next, err := Apply(ctx, nil, testBook(t), cat, table)
		require.NoError(t, err)
		assert.Empty(t, report.Items)
		assert.Equal(t, cat.Fingerprint(), next.Fingerprint())
	})
}
