package handler

import (
	"net/http"

	"github.com/backbar/barcost/internal/depletion"
	"github.com/backbar/barcost/internal/logger"
	"github.com/backbar/barcost/internal/snapshot"
)

// HandleDepletion accepts a sales CSV in the request body, applies the
// resulting draw-down and swaps in the updated catalog snapshot. The CSV
// source files on disk are not touched; persistence is the operator's call
// via the CLI.
func HandleDepletion(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		sales, err := depletion.ReadSales(r.Body)
		if err != nil {
			log.Warn("Failed to read sales upload", "error", err)
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		// Recompute against the current snapshot until the swap lands, so a
		// concurrent reload or depletion is never silently overwritten.
		for {
			snap := store.Get()
			report, next, err := depletion.Apply(ctx, sales, snap.Book, snap.Catalog, snap.Table)
			if err != nil {
				log.Error("Failed to apply depletion", "error", err)
				status, msg := mapServiceErrorToUserMessage(err)
				respondError(w, status, msg)
				return
			}

			updated := *snap
			updated.Catalog = next
			if store.CompareAndSwap(snap, &updated) {
				respondJSON(w, http.StatusOK, report)
				return
			}
		}
	}
}
