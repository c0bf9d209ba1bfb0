package handler

import (
	"net/http"

	"github.com/backbar/barcost/internal/snapshot"
)

// HandleGetCatalog lists catalog items in load order
func HandleGetCatalog(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := store.Get()
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"items":   snap.Catalog.Items(),
			"summary": snap.Catalog.Summarize(),
		})
	}
}

// HandleGetLowStock lists items at or below their low-stock threshold
func HandleGetLowStock(store *snapshot.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := store.Get()
		low := snap.Catalog.LowStock()
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"items": low,
			"count": len(low),
		})
	}
}
