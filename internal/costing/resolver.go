package costing

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/backbar/barcost/internal/catalog"
	"github.com/backbar/barcost/internal/domain"
	"github.com/backbar/barcost/internal/logger"
	"github.com/backbar/barcost/internal/metrics"
	"github.com/backbar/barcost/internal/recipebook"
	"github.com/backbar/barcost/internal/units"
)

// Resolver wraps the engine with a report cache. The HTTP surface recomputes
// per request while snapshots change rarely, so reports are memoized per
// (catalog, recipe, book, conversion table) fingerprint until a reload swaps
// any part of the snapshot in.
type Resolver struct {
	cache *lru.Cache[string, *domain.RecipeCostReport]
}

// NewResolver creates a resolver with room for size cached reports.
func NewResolver(size int) (*Resolver, error) {
	cache, err := lru.New[string, *domain.RecipeCostReport](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create report cache: %w", err)
	}
	return &Resolver{cache: cache}, nil
}

// RecipeCost returns the cost report for the named recipe, from cache when
// the snapshot has not changed. Missing recipes fail with
// domain.ErrRecipeNotFound.
func (r *Resolver) RecipeCost(ctx context.Context, name string, book *recipebook.Book, cat *catalog.Catalog, table *units.Table) (*domain.RecipeCostReport, error) {
	log := logger.FromContext(ctx)

	recipe, ok := book.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRecipeNotFound, name)
	}

	key := cat.Fingerprint() + "|" + domain.NormalizeName(recipe.Name) + "|" + book.Fingerprint() + "|" + table.Fingerprint()
	if report, ok := r.cache.Get(key); ok {
		metrics.ReportCacheHits.Inc()
		return report, nil
	}

	report := ResolveRecipeCost(recipe, cat, table)
	r.cache.Add(key, report)

	metrics.RecipesResolved.Inc()
	for _, line := range report.Lines {
		if line.Status != domain.StatusResolved {
			metrics.UnresolvedLines.WithLabelValues(string(line.Status)).Inc()
		}
	}
	if report.Unresolved > 0 {
		log.Warn("recipe resolved with unresolved lines",
			"recipe", recipe.Name, "unresolved", report.Unresolved)
	}

	return report, nil
}

// AllCosts resolves every recipe in the book through the cache.
func (r *Resolver) AllCosts(ctx context.Context, book *recipebook.Book, cat *catalog.Catalog, table *units.Table) ([]*domain.RecipeCostReport, error) {
	reports := make([]*domain.RecipeCostReport, 0, book.Len())
	for _, name := range book.Names() {
		report, err := r.RecipeCost(ctx, name, book, cat, table)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
