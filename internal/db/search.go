package db

import (
	"sort"
	"strings"

	"github.com/marcus/shopdesk/internal/models"
)

// ProductSearchResult holds a product with relevance scoring for ranked search
type ProductSearchResult struct {
	Product    models.Product
	Score      int    // Higher = better match (0-100)
	MatchField string // Primary field that matched: 'id', 'sku', 'name', 'description'
}

// SearchProducts performs substring search across products
func (db *DB) SearchProducts(query string, opts ListProductsOptions) ([]models.Product, error) {
	opts.Search = query
	return db.ListProducts(opts)
}

// SearchProductsRanked performs search with relevance scoring
func (db *DB) SearchProductsRanked(query string, opts ListProductsOptions) ([]ProductSearchResult, error) {
	products, err := db.SearchProducts(query, opts)
	if err != nil {
		return nil, err
	}

	queryLower := strings.ToLower(query)
	results := make([]ProductSearchResult, 0, len(products))

	for _, p := range products {
		score := 0
		matchField := ""

		idLower := strings.ToLower(p.ID)
		skuLower := strings.ToLower(p.SKU)
		nameLower := strings.ToLower(p.Name)
		descLower := strings.ToLower(p.Description)

		// Score by match quality (highest wins)
		if strings.EqualFold(p.ID, query) {
			score = 100
			matchField = "id"
		} else if strings.Contains(idLower, queryLower) {
			score = 90
			matchField = "id"
		} else if strings.EqualFold(p.SKU, query) {
			score = 85
			matchField = "sku"
		} else if strings.Contains(skuLower, queryLower) {
			score = 75
			matchField = "sku"
		} else if strings.EqualFold(p.Name, query) {
			score = 70
			matchField = "name"
		} else if strings.HasPrefix(nameLower, queryLower) {
			score = 60
			matchField = "name"
		} else if strings.Contains(nameLower, queryLower) {
			score = 50
			matchField = "name"
		} else if strings.Contains(descLower, queryLower) {
			score = 30
			matchField = "description"
		}

		results = append(results, ProductSearchResult{
			Product:    p,
			Score:      score,
			MatchField: matchField,
		})
	}

	// Sort by score DESC, then by name ASC
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Product.Name < results[j].Product.Name
	})

	return results, nil
}
