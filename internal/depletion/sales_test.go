package depletion

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReadSales(t *testing.T) {
	t.Run("aggregates repeated drinks preserving first appearance order", func(t *testing.T) {
		src := strings.Join([]string{
			"Item,Quantity",
			"Martini,2",
			"Negroni,1",
			"MARTINI,3",
		}, "\n")

		sales, err := ReadSales(strings.NewReader(src))
		require.NoError(t, err)
		require.Len(t, sales, 2)
		assert.Equal(t, "Martini", sales[0].Name)
		assert.True(t, d("5").Equal(sales[0].Quantity))
		assert.Equal(t, "Negroni", sales[1].Name)
		assert.True(t, d("1").Equal(sales[1].Quantity))
	})

	t.Run("recognizes alternate POS headers", func(t *testing.T) {
		src := strings.Join([]string{
			"date,menu item,sold,total",
			"2026-08-29,Martini,4,56.00",
		}, "\n")

		sales, err := ReadSales(strings.NewReader(src))
		require.NoError(t, err)
		require.Len(t, sales, 1)
		assert.Equal(t, "Martini", sales[0].Name)
		assert.True(t, d("4").Equal(sales[0].Quantity))
	})

	t.Run("skips rows with bad quantities", func(t *testing.T) {
		src := strings.Join([]string{
			"item,qty",
			"Martini,2",
			"Negroni,comped",
			"Sazerac,0",
			"Boulevardier,-1",
			",3",
		}, "\n")

		sales, err := ReadSales(strings.NewReader(src))
		require.NoError(t, err)
		require.Len(t, sales, 1)
		assert.Equal(t, "Martini", sales[0].Name)
	})

	t.Run("fractional quantities are allowed", func(t *testing.T) {
		sales, err := ReadSales(strings.NewReader("item,qty\nHalf Pour,0.5\n"))
		require.NoError(t, err)
		require.Len(t, sales, 1)
		assert.True(t, d("0.5").Equal(sales[0].Quantity))
	})

	t.Run("unrecognizable columns are an error", func(t *testing.T) {
		_, err := ReadSales(strings.NewReader("drink,number\nMartini,2\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "columns")
	})

	t.Run("empty body yields no sales", func(t *testing.T) {
		sales, err := ReadSales(strings.NewReader("item,qty\n"))
		require.NoError(t, err)
		assert.Empty(t, sales)
	})
}
