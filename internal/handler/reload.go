package handler

import (
	"net/http"

	"github.com/backbar/barcost/internal/catalog"
	"github.com/backbar/barcost/internal/logger"
	"github.com/backbar/barcost/internal/metrics"
	"github.com/backbar/barcost/internal/snapshot"
)

// SnapshotLoader rebuilds a snapshot from the configured sources.
type SnapshotLoader func() (*snapshot.Snapshot, error)

// ReloadResponse summarizes a snapshot reload
type ReloadResponse struct {
	Message        string `json:"message"`
	Items          int    `json:"items"`
	Recipes        int    `json:"recipes"`
	CatalogSkipped int    `json:"catalog_skipped"`
	BookSkipped    int    `json:"book_skipped"`
}

// HandleReload re-reads the source files and swaps in the new snapshot.
// A failed reload leaves the current snapshot serving.
func HandleReload(store *snapshot.Store, load SnapshotLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromContext(ctx)

		snap, err := load()
		if err != nil {
			log.Error("Snapshot reload failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to reload data sources")
			return
		}

		store.Set(snap)
		metrics.SnapshotReloads.Inc()
		log.Info("Snapshot reloaded",
			"items", snap.Catalog.Len(),
			"recipes", snap.Book.Len())

		respondJSON(w, http.StatusOK, ReloadResponse{
			Message:        "Data sources reloaded",
			Items:          snap.Catalog.Len(),
			Recipes:        snap.Book.Len(),
			CatalogSkipped: skippedCount(snap.CatalogReport),
			BookSkipped:    skippedCount(snap.BookReport),
		})
	}
}

// skippedCount tolerates snapshots built without load reports.
func skippedCount(r *catalog.LoadReport) int {
	if r == nil {
		return 0
	}
	return len(r.Skipped)
}
