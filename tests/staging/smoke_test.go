//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

type RecipesResponse struct {
	Recipes []string `json:"recipes"`
}

type CostsResponse struct {
	Reports []struct {
		Recipe     string `json:"recipe"`
		TotalCost  string `json:"total_cost"`
		Unresolved int    `json:"unresolved"`
	} `json:"reports"`
}

type CatalogResponse struct {
	Summary struct {
		Items int `json:"items"`
	} `json:"summary"`
}

func TestRecipeListing(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/recipes", "")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var recipes RecipesResponse
	if err := json.Unmarshal(body, &recipes); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(recipes.Recipes) == 0 {
		t.Error("Expected at least one recipe in the book")
	}
}

func TestAllCosts(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/costs", "")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var costs CostsResponse
	if err := json.Unmarshal(body, &costs); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if len(costs.Reports) == 0 {
		t.Error("Expected at least one cost report")
	}
	for _, rep := range costs.Reports {
		if rep.Recipe == "" {
			t.Error("Expected every report to name its recipe")
		}
	}
}

func TestCatalogSummary(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/catalog", "")

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}

	var cat CatalogResponse
	if err := json.Unmarshal(body, &cat); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if cat.Summary.Items == 0 {
		t.Error("Expected the catalog to hold at least one item")
	}
}

func TestUnknownRecipeCost(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/api/v1/recipes/definitely-not-a-drink/cost", "")

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}
