package units

import "github.com/shopspring/decimal"

// MlPerOz is the US fluid ounce in millilitres, matching the constant the
// bar has always used on its recipe cards.
var MlPerOz = decimal.RequireFromString("29.5735")

// DefaultPairs covers the volume and mass units that show up on bar
// inventory sheets and recipe cards. Volume pairs are expressed against ml,
// mass pairs against g; reciprocals are derived by the table.
func DefaultPairs() []Pair {
	d := decimal.RequireFromString
	return []Pair{
		// volume
		{From: "l", To: "ml", Ratio: d("1000")},
		{From: "cl", To: "ml", Ratio: d("10")},
		{From: "oz", To: "ml", Ratio: MlPerOz},
		{From: "tsp", To: "ml", Ratio: d("4.92892")},
		{From: "tbsp", To: "ml", Ratio: d("14.78676")},
		{From: "cup", To: "ml", Ratio: d("236.588")},
		{From: "dash", To: "ml", Ratio: d("0.92")},

		// mass
		{From: "kg", To: "g", Ratio: d("1000")},
		{From: "lb", To: "g", Ratio: d("453.59237")},
	}
}

// DefaultTable builds the built-in conversion table. The default pairs are
// known consistent, so construction cannot fail.
func DefaultTable() *Table {
	t, err := NewTable(DefaultPairs())
	if err != nil {
		panic(err)
	}
	return t
}
