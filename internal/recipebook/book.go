// Package recipebook loads and holds the recipe book. Like the catalog,
// a Book is an immutable snapshot keyed by normalized recipe name.
package recipebook

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/backbar/barcost/internal/domain"
)

// Book is a read-only, ordered, name-indexed set of recipes.
type Book struct {
	recipes     []domain.Recipe
	index       map[string]int
	fingerprint string
}

// New builds a book snapshot from recipes in first-appearance order.
func New(recipes []domain.Recipe) (*Book, error) {
	b := &Book{
		recipes: make([]domain.Recipe, len(recipes)),
		index:   make(map[string]int, len(recipes)),
	}
	copy(b.recipes, recipes)
	for i, r := range b.recipes {
		key := domain.NormalizeName(r.Name)
		if key == "" {
			return nil, fmt.Errorf("%w: recipe %d has an empty name", domain.ErrInvalidRecord, i)
		}
		if _, dup := b.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate recipe name %q", domain.ErrInvalidRecord, r.Name)
		}
		b.index[key] = i
	}
	b.fingerprint = fingerprint(b.recipes)
	return b, nil
}

// Lookup finds a recipe by name, case- and whitespace-insensitively.
func (b *Book) Lookup(name string) (domain.Recipe, bool) {
	i, ok := b.index[domain.NormalizeName(name)]
	if !ok {
		return domain.Recipe{}, false
	}
	return b.recipes[i], true
}

// Recipes returns the recipes in book order. Callers must not mutate it.
func (b *Book) Recipes() []domain.Recipe {
	return b.recipes
}

// Names returns the recipe names in book order.
func (b *Book) Names() []string {
	names := make([]string, len(b.recipes))
	for i, r := range b.recipes {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of recipes in the snapshot.
func (b *Book) Len() int {
	return len(b.recipes)
}

// Fingerprint identifies the snapshot's content for caching.
func (b *Book) Fingerprint() string {
	return b.fingerprint
}

func fingerprint(recipes []domain.Recipe) string {
	h := sha256.New()
	for _, r := range recipes {
		fmt.Fprintf(h, "%s|%s|%s\n", strings.ToLower(r.Name), r.Glassware, r.Garnish)
		for _, line := range r.Ingredients {
			fmt.Fprintf(h, "  %s|%s|%s\n", strings.ToLower(line.ItemName), line.Quantity, line.Unit)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
