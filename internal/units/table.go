// Package units implements the static unit conversion table used by the
// cost resolution engine. Each convertible pair is stored exactly once;
// the reciprocal direction is derived at lookup time so the forward and
// reverse entries can never disagree. Transitive multi-hop conversion
// (e.g. oz -> ml -> l when only oz/ml and ml/l are known) is deliberately
// not attempted; callers get ErrUnitMismatch for pairs without a direct
// or reverse entry.
package units

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/backbar/barcost/internal/domain"
)

// consistencyTolerance bounds the relative disagreement allowed between a
// composed ratio and a direct entry for the same pair.
var consistencyTolerance = decimal.New(1, -9)

// Pair is one conversion rule: quantity_in_To = quantity_in_From * Ratio.
type Pair struct {
	From  string
	To    string
	Ratio decimal.Decimal
}

// Table is a read-only set of conversion pairs. Build it with NewTable or
// Load; there is no mutation API after construction.
type Table struct {
	ratios      map[string]map[string]decimal.Decimal
	fingerprint string
}

// NewTable builds a table from the given pairs. It rejects duplicate pairs
// (in either direction), non-positive ratios, and pairs whose composed ratio
// through a shared unit contradicts an existing entry.
func NewTable(pairs []Pair) (*Table, error) {
	t := &Table{ratios: make(map[string]map[string]decimal.Decimal)}
	for _, p := range pairs {
		if err := t.add(p); err != nil {
			return nil, err
		}
	}
	t.fingerprint = fingerprint(t.ratios)
	return t, nil
}

func fingerprint(ratios map[string]map[string]decimal.Decimal) string {
	froms := make([]string, 0, len(ratios))
	for from := range ratios {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	h := sha256.New()
	for _, from := range froms {
		tos := make([]string, 0, len(ratios[from]))
		for to := range ratios[from] {
			tos = append(tos, to)
		}
		sort.Strings(tos)
		for _, to := range tos {
			fmt.Fprintf(h, "%s|%s|%s\n", from, to, ratios[from][to])
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func canonicalUnit(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

func (t *Table) add(p Pair) error {
	from := canonicalUnit(p.From)
	to := canonicalUnit(p.To)
	if from == "" || to == "" {
		return fmt.Errorf("conversion pair has empty unit: %q -> %q", p.From, p.To)
	}
	if from == to {
		return fmt.Errorf("conversion pair maps unit %q to itself", from)
	}
	if !p.Ratio.IsPositive() {
		return fmt.Errorf("conversion ratio for %s -> %s must be positive, got %s", from, to, p.Ratio)
	}
	if _, ok := t.lookup(from, to); ok {
		return fmt.Errorf("duplicate conversion pair %s -> %s", from, to)
	}
	if err := t.checkConsistency(from, to, p.Ratio); err != nil {
		return err
	}
	if t.ratios[from] == nil {
		t.ratios[from] = make(map[string]decimal.Decimal)
	}
	t.ratios[from][to] = p.Ratio
	return nil
}

// checkConsistency verifies that adding (from, to, ratio) cannot produce a
// composed path that disagrees with an existing direct entry. For every unit
// x reachable from both ends, ratio(from->x) must equal ratio * ratio(to->x).
func (t *Table) checkConsistency(from, to string, ratio decimal.Decimal) error {
	for _, x := range t.units() {
		if x == from || x == to {
			continue
		}
		toX, ok := t.lookup(to, x)
		if !ok {
			continue
		}
		fromX, ok := t.lookup(from, x)
		if !ok {
			continue
		}
		composed := ratio.Mul(toX)
		diff := composed.Sub(fromX).Abs()
		if diff.Cmp(fromX.Mul(consistencyTolerance)) > 0 {
			return fmt.Errorf("conversion %s -> %s (ratio %s) contradicts existing path via %s (%s vs %s)",
				from, to, ratio, x, composed, fromX)
		}
	}
	return nil
}

func (t *Table) units() []string {
	seen := make(map[string]bool)
	var out []string
	for from, m := range t.ratios {
		if !seen[from] {
			seen[from] = true
			out = append(out, from)
		}
		for to := range m {
			if !seen[to] {
				seen[to] = true
				out = append(out, to)
			}
		}
	}
	return out
}

// lookup returns the effective ratio from -> to using the stored entry or
// the derived reciprocal of the reverse entry.
func (t *Table) lookup(from, to string) (decimal.Decimal, bool) {
	if r, ok := t.ratios[from][to]; ok {
		return r, true
	}
	if r, ok := t.ratios[to][from]; ok {
		return decimal.NewFromInt(1).Div(r), true
	}
	return decimal.Decimal{}, false
}

// Convert converts quantity from fromUnit into toUnit. Identical units are
// an identity conversion with no table lookup. Unknown pairs fail with
// domain.ErrUnitMismatch.
func (t *Table) Convert(quantity decimal.Decimal, fromUnit, toUnit string) (decimal.Decimal, error) {
	from := canonicalUnit(fromUnit)
	to := canonicalUnit(toUnit)
	if from == to {
		return quantity, nil
	}
	ratio, ok := t.lookup(from, to)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: %s -> %s", domain.ErrUnitMismatch, from, to)
	}
	return quantity.Mul(ratio), nil
}

// CanConvert reports whether a direct or reverse entry exists for the pair.
func (t *Table) CanConvert(fromUnit, toUnit string) bool {
	from := canonicalUnit(fromUnit)
	to := canonicalUnit(toUnit)
	if from == to {
		return true
	}
	_, ok := t.lookup(from, to)
	return ok
}

// Fingerprint identifies the table's content; tables with the same pairs
// have the same fingerprint. Used as a cache key by the costing engine.
func (t *Table) Fingerprint() string {
	return t.fingerprint
}

// Len returns the number of stored pairs (derived reciprocals not counted).
func (t *Table) Len() int {
	n := 0
	for _, m := range t.ratios {
		n += len(m)
	}
	return n
}
