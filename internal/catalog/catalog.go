// Package catalog loads and holds the inventory catalog: every stock item
// with its packaging, cost and stock level. A Catalog is an immutable
// snapshot; reloading or depleting stock builds a new snapshot rather than
// patching the old one, so a resolution pass never sees a torn catalog.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/backbar/barcost/internal/domain"
)

// Catalog is a read-only, ordered, name-indexed set of inventory items.
type Catalog struct {
	items       []domain.InventoryItem
	index       map[string]int
	fingerprint string
}

// New builds a catalog snapshot from items, indexing them by normalized
// name. Items with names already present are rejected; the loader enforces
// the first-occurrence-wins policy before calling this.
func New(items []domain.InventoryItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]domain.InventoryItem, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(c.items, items)
	for i, item := range c.items {
		key := domain.NormalizeName(item.Name)
		if key == "" {
			return nil, fmt.Errorf("%w: item %d has an empty name", domain.ErrInvalidRecord, i)
		}
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate item name %q", domain.ErrInvalidRecord, item.Name)
		}
		c.index[key] = i
	}
	c.fingerprint = fingerprint(c.items)
	return c, nil
}

// Lookup finds an item by name. Lookup is case- and whitespace-insensitive.
func (c *Catalog) Lookup(name string) (domain.InventoryItem, bool) {
	i, ok := c.index[domain.NormalizeName(name)]
	if !ok {
		return domain.InventoryItem{}, false
	}
	return c.items[i], true
}

// Items returns the items in load order. Callers must not mutate the slice.
func (c *Catalog) Items() []domain.InventoryItem {
	return c.items
}

// Len returns the number of items in the snapshot.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Fingerprint identifies the snapshot's content; two catalogs with the same
// items have the same fingerprint. Used as a cache key by the costing engine.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// LowStock returns the items at or below their low-stock threshold,
// in load order.
func (c *Catalog) LowStock() []domain.InventoryItem {
	var out []domain.InventoryItem
	for _, item := range c.items {
		if item.IsLowStock() {
			out = append(out, item)
		}
	}
	return out
}

// Summary holds headline counts for the stock overview.
type Summary struct {
	Items      int `json:"items"`
	LowStock   int `json:"low_stock"`
	Categories int `json:"categories"`
}

// Summarize computes the stock overview counts.
func (c *Catalog) Summarize() Summary {
	s := Summary{Items: len(c.items)}
	categories := make(map[string]bool)
	for _, item := range c.items {
		if item.IsLowStock() {
			s.LowStock++
		}
		if item.Category != "" {
			categories[item.Category] = true
		}
	}
	s.Categories = len(categories)
	return s
}

func fingerprint(items []domain.InventoryItem) string {
	h := sha256.New()
	for _, item := range items {
		fmt.Fprintf(h, "%s|%s|%s|%s|%s|%s|%s|%s|%s\n",
			strings.ToLower(item.Name),
			item.PackageSize, item.PackageUnit, item.PackageCost,
			item.Vendor, item.Category,
			item.OnHand, item.Leftover, item.LowThreshold)
	}
	return hex.EncodeToString(h.Sum(nil))
}
