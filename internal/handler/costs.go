package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/backbar/barcost/internal/costing"
	"github.com/backbar/barcost/internal/logger"
	"github.com/backbar/barcost/internal/snapshot"
)

// HandleGetRecipes lists recipe names in book order
func HandleGetRecipes(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := store.Get()
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"recipes": snap.Book.Names(),
		})
	}
}

// HandleGetRecipeCost resolves one recipe's cost against the current snapshot
func HandleGetRecipeCost(store *snapshot.Store, resolver *costing.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		name := chi.URLParam(r, "name")
		snap := store.Get()

		report, err := resolver.RecipeCost(ctx, name, snap.Book, snap.Catalog, snap.Table)
		if err != nil {
			log.Warn("Failed to resolve recipe cost", "recipe", name, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// HandleGetAllCosts resolves every recipe in the book
func HandleGetAllCosts(store *snapshot.Store, resolver *costing.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		snap := store.Get()
		reports, err := resolver.AllCosts(ctx, snap.Book, snap.Catalog, snap.Table)
		if err != nil {
			log.Error("Failed to resolve recipe costs", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, map[string]interface{}{
			"reports": reports,
		})
	}
}
