// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

// AmazonAdapter searches the Amazon marketplace dataset, the richest
// schema of the five: discounted and list prices, discount percentages,
// and rating counts.
type AmazonAdapter struct {
	path  string
	spec  cardSpec
	query queryConfig
}

// NewAmazonAdapter builds the adapter over datasetDir/amazon.csv.
func NewAmazonAdapter(datasetDir string) *AmazonAdapter {
	a := &AmazonAdapter{
		path: filepath.Join(datasetDir, "amazon.csv"),
		query: queryConfig{
			priceClause: priceClauseINR,
			stopWords:   stopWordSet("amazon", "product"),
		},
	}
	a.spec = cardSpec{
		dataset:        "Amazon Products",
		currency:       "₹",
		titleColumns:   []string{"product_name"},
		titleFallback:  "Amazon Product",
		priceColumns:   []string{"discounted_price"},
		ratingColumns:  []string{"rating"},
		composeReview:  amazonReview,
		reviewFallback: "Amazon product",
		extraColumns: map[string]string{
			"product_id":          "product_id",
			"category":            "category",
			"actual_price":        "actual_price",
			"discount_percentage": "discount_percentage",
			"rating_count":        "rating_count",
		},
	}
	return a
}

func (a *AmazonAdapter) Name() string        { return "amazon" }
func (a *AmazonAdapter) DatasetName() string { return a.spec.dataset }
func (a *AmazonAdapter) DatasetPath() string { return a.path }

func (a *AmazonAdapter) Capabilities() Capability {
	return CapCategory | CapPriceRange | CapDiscount | CapRated
}

// amazonReview summarizes the category and rating volume.
func amazonReview(r row) string {
	var parts []string
	if v := r.get("category"); v != "" {
		parts = append(parts, "Category: "+v)
	}
	if v := r.get("rating_count"); v != "" {
		parts = append(parts, "Rated by "+v+" users")
	}
	return strings.Join(parts, " | ")
}

// Search scans the Amazon dataset for keyword matches under an optional
// price ceiling.
func (a *AmazonAdapter) Search(query string, maxResults int) ([]types.ProductCard, error) {
	q := parseQuery(query, a.query)
	return keywordScan(scanSpec{
		path:          a.path,
		searchColumns: []string{"product_name", "category"},
		priceColumn:   "discounted_price",
		build:         a.spec.build,
	}, q, maxResults)
}

// SearchByCategory returns products whose category path contains category.
func (a *AmazonAdapter) SearchByCategory(category string, maxResults int) ([]types.ProductCard, error) {
	needle := strings.ToLower(category)
	return collectScan(a.path, maxResults, func(r row) bool {
		return strings.Contains(strings.ToLower(r.get("category")), needle)
	}, a.spec.build)
}

// SearchByPriceRange returns products whose discounted price falls inside
// the bounds.
func (a *AmazonAdapter) SearchByPriceRange(minPrice, maxPrice, maxResults int) ([]types.ProductCard, error) {
	return collectScan(a.path, maxResults, func(r row) bool {
		return inPriceRange(r.get("discounted_price"), minPrice, maxPrice)
	}, a.spec.build)
}

// SearchWithDiscount returns products discounted by at least minPercent.
func (a *AmazonAdapter) SearchWithDiscount(minPercent, maxResults int) ([]types.ProductCard, error) {
	return collectScan(a.path, maxResults, func(r row) bool {
		pct, ok := parsePrice(strings.TrimSuffix(r.get("discount_percentage"), "%"))
		return ok && pct >= minPercent
	}, a.spec.build)
}

// SearchHighlyRated returns products rated at or above minRating.
func (a *AmazonAdapter) SearchHighlyRated(minRating float64, maxResults int) ([]types.ProductCard, error) {
	return collectScan(a.path, maxResults, func(r row) bool {
		rating, err := strconv.ParseFloat(r.get("rating"), 64)
		return err == nil && rating >= minRating
	}, a.spec.build)
}
