// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

// generalCategoryColumns are the three category levels of the mixed
// marketplace dataset.
var generalCategoryColumns = []string{"category_1", "category_2", "category_3"}

// GeneralAdapter searches the mixed marketplace dataset: three category
// levels, seller metadata, and long free-text descriptions.
type GeneralAdapter struct {
	path  string
	spec  cardSpec
	query queryConfig
}

// NewGeneralAdapter builds the adapter over datasetDir/dataset.csv.
func NewGeneralAdapter(datasetDir string) *GeneralAdapter {
	a := &GeneralAdapter{
		path: filepath.Join(datasetDir, "dataset.csv"),
		query: queryConfig{
			priceClause: priceClauseINR,
			stopWords:   stopWordSet(),
		},
	}
	a.spec = cardSpec{
		dataset:        "General Dataset",
		currency:       "₹",
		titleColumns:   []string{"title"},
		titleFallback:  "Product",
		priceColumns:   []string{"selling_price"},
		ratingColumns:  []string{"product_rating"},
		composeReview:  generalReview,
		reviewFallback: "Product from general dataset",
		extraColumns: map[string]string{
			"category_1":    "category_1",
			"category_2":    "category_2",
			"category_3":    "category_3",
			"mrp":           "mrp",
			"seller_name":   "seller_name",
			"seller_rating": "seller_rating",
		},
	}
	return a
}

func (a *GeneralAdapter) Name() string        { return "general_dataset" }
func (a *GeneralAdapter) DatasetName() string { return a.spec.dataset }
func (a *GeneralAdapter) DatasetPath() string { return a.path }

func (a *GeneralAdapter) Capabilities() Capability {
	return CapCategory | CapPriceRange | CapSeller
}

// generalReview combines the category levels with a shortened description.
func generalReview(r row) string {
	var categories []string
	for _, col := range generalCategoryColumns {
		if v := r.get(col); v != "" {
			categories = append(categories, v)
		}
	}

	var parts []string
	if len(categories) > 0 {
		parts = append(parts, "Categories: "+strings.Join(categories, ", "))
	}
	if desc := r.get("description"); len(desc) > 10 {
		parts = append(parts, truncateText(desc, 80))
	}
	return strings.Join(parts, " | ")
}

// Search scans the general dataset for keyword matches under an optional
// price ceiling.
func (a *GeneralAdapter) Search(query string, maxResults int) ([]types.ProductCard, error) {
	q := parseQuery(query, a.query)
	return keywordScan(scanSpec{
		path:          a.path,
		searchColumns: []string{"title", "category_1", "category_2", "category_3", "description"},
		priceColumn:   "selling_price",
		build:         a.spec.build,
	}, q, maxResults)
}

// SearchByCategory returns products matching category in any of the three
// category levels.
func (a *GeneralAdapter) SearchByCategory(category string, maxResults int) ([]types.ProductCard, error) {
	needle := strings.ToLower(category)
	return collectScan(a.path, maxResults, func(r row) bool {
		for _, col := range generalCategoryColumns {
			if strings.Contains(strings.ToLower(r.get(col)), needle) {
				return true
			}
		}
		return false
	}, a.spec.build)
}

// SearchBySeller returns products sold by sellers whose name contains
// seller.
func (a *GeneralAdapter) SearchBySeller(seller string, maxResults int) ([]types.ProductCard, error) {
	needle := strings.ToLower(seller)
	return collectScan(a.path, maxResults, func(r row) bool {
		return strings.Contains(strings.ToLower(r.get("seller_name")), needle)
	}, a.spec.build)
}

// SearchByPriceRange returns products whose selling price falls inside the
// bounds.
func (a *GeneralAdapter) SearchByPriceRange(minPrice, maxPrice, maxResults int) ([]types.ProductCard, error) {
	return collectScan(a.path, maxResults, func(r row) bool {
		return inPriceRange(r.get("selling_price"), minPrice, maxPrice)
	}, a.spec.build)
}

// SearchHighlyRatedSellers returns products from sellers rated at or above
// minRating.
func (a *GeneralAdapter) SearchHighlyRatedSellers(minRating float64, maxResults int) ([]types.ProductCard, error) {
	return collectScan(a.path, maxResults, func(r row) bool {
		rating, err := strconv.ParseFloat(r.get("seller_rating"), 64)
		return err == nil && rating >= minRating
	}, a.spec.build)
}
