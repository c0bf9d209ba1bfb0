package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backbar/barcost/internal/catalog"
	"github.com/backbar/barcost/internal/costing"
	"github.com/backbar/barcost/internal/domain"
	"github.com/backbar/barcost/internal/recipebook"
	"github.com/backbar/barcost/internal/snapshot"
	"github.com/backbar/barcost/internal/units"
)

func testServer(t *testing.T) *Server {
	t.Helper()

	d := decimal.RequireFromString
	cat, err := catalog.New([]domain.InventoryItem{
		{Name: "Gin", PackageSize: d("750"), PackageUnit: "ml", PackageCost: d("15.00")},
	})
	require.NoError(t, err)

	book, err := recipebook.New([]domain.Recipe{
		{Name: "Martini", Ingredients: []domain.IngredientLine{
			{ItemName: "Gin", Quantity: d("60"), Unit: "ml"},
		}},
	})
	require.NoError(t, err)

	snap := &snapshot.Snapshot{Catalog: cat, Book: book, Table: units.DefaultTable()}
	store := snapshot.NewStore(snap)

	resolver, err := costing.NewResolver(16)
	require.NoError(t, err)

	return New(0, store, resolver, func() (*snapshot.Snapshot, error) {
		return snap, nil
	})
}

func TestRouting(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "readyz", method: http.MethodGet, path: "/readyz", wantStatus: http.StatusOK},
		{name: "version", method: http.MethodGet, path: "/version", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "recipes", method: http.MethodGet, path: "/api/v1/recipes", wantStatus: http.StatusOK},
		{name: "recipe cost", method: http.MethodGet, path: "/api/v1/recipes/Martini/cost", wantStatus: http.StatusOK},
		{name: "unknown recipe cost", method: http.MethodGet, path: "/api/v1/recipes/Sazerac/cost", wantStatus: http.StatusNotFound},
		{name: "all costs", method: http.MethodGet, path: "/api/v1/costs", wantStatus: http.StatusOK},
		{name: "catalog", method: http.MethodGet, path: "/api/v1/catalog", wantStatus: http.StatusOK},
		{name: "low stock", method: http.MethodGet, path: "/api/v1/catalog/low-stock", wantStatus: http.StatusOK},
		{name: "reload", method: http.MethodPost, path: "/api/v1/reload", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nope", wantStatus: http.StatusNotFound},
		{name: "wrong method", method: http.MethodGet, path: "/api/v1/reload", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()
			srv.httpServer.Handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code, "body: %s", rec.Body.String())
		})
	}
}
