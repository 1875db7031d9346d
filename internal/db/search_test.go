package db

import (
	"testing"

	"github.com/marcus/shopdesk/internal/models"
)

func TestSearchProductsRankedScoring(t *testing.T) {
	db := testDB(t)

	mk := func(sku, name, desc string) models.Product {
		p := models.Product{SKU: sku, Name: name, Description: desc}
		if err := db.CreateProduct(&p); err != nil {
			t.Fatalf("CreateProduct failed: %v", err)
		}
		return p
	}

	mk("MUG-0001", "Stoneware Mug", "a mug for coffee")
	mk("TEE-0001", "Logo Tee", "mentions mug in description")
	exact := mk("MUG-0002", "mug", "")

	results, err := db.SearchProductsRanked("mug", ListProductsOptions{})
	if err != nil {
		t.Fatalf("SearchProductsRanked failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	// Exact name match outranks prefix and description matches
	if results[0].Product.ID != exact.ID {
		t.Errorf("Expected exact name match first, got %s (%s)", results[0].Product.Name, results[0].MatchField)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("Results not sorted by score: %d before %d", results[i-1].Score, results[i].Score)
		}
	}
}

func TestSearchProductsRankedSKUMatch(t *testing.T) {
	db := testDB(t)

	p := models.Product{SKU: "CND-0012", Name: "Cedar Candle"}
	if err := db.CreateProduct(&p); err != nil {
		t.Fatalf("CreateProduct failed: %v", err)
	}

	results, err := db.SearchProductsRanked("CND-0012", ListProductsOptions{})
	if err != nil {
		t.Fatalf("SearchProductsRanked failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	if results[0].MatchField != "sku" {
		t.Errorf("Expected sku match, got %q", results[0].MatchField)
	}
	if results[0].Score != 85 {
		t.Errorf("Expected exact sku score 85, got %d", results[0].Score)
	}
}
