// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"path/filepath"
	"strings"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

// FashionAdapter searches the fashion dataset (sarees, clothing,
// accessories). The only dataset providing source image URLs, and the one
// whose price cells sometimes carry a mis-encoded rupee sign.
type FashionAdapter struct {
	path  string
	spec  cardSpec
	query queryConfig
}

// NewFashionAdapter builds the adapter over datasetDir/Data - Copy.csv.
func NewFashionAdapter(datasetDir string) *FashionAdapter {
	a := &FashionAdapter{
		path: filepath.Join(datasetDir, "Data - Copy.csv"),
		query: queryConfig{
			priceClause: priceClauseINR,
			stopWords:   stopWordSet("fashion", "clothing", "wear", "dress"),
		},
	}
	a.spec = cardSpec{
		dataset:       "Fashion Data",
		currency:      "₹",
		titleColumns:  []string{"title"},
		titleFallback: "Fashion Item",
		priceColumns:  []string{"sold_price"},
		composeReview: fashionReview,
		imageColumns:  []string{"img"},
		extraColumns: map[string]string{
			"brand":        "brand",
			"actual_price": "actual_price",
			"url":          "url",
			"id":           "id",
		},
	}
	return a
}

func (a *FashionAdapter) Name() string        { return "fashion" }
func (a *FashionAdapter) DatasetName() string { return a.spec.dataset }
func (a *FashionAdapter) DatasetPath() string { return a.path }

func (a *FashionAdapter) Capabilities() Capability {
	return CapCategory | CapBrand | CapPriceRange | CapDiscount
}

// fashionReview prefixes the title with the brand when present.
func fashionReview(r row) string {
	title := r.get("title")
	if title == "" {
		title = "Fashion Item"
	}
	if brand := r.get("brand"); brand != "" {
		return brand + " - " + title
	}
	return title
}

// Search scans the fashion dataset for keyword matches under an optional
// price ceiling.
func (a *FashionAdapter) Search(query string, maxResults int) ([]types.ProductCard, error) {
	q := parseQuery(query, a.query)
	return keywordScan(scanSpec{
		path:          a.path,
		searchColumns: []string{"title", "brand"},
		priceColumn:   "sold_price",
		build:         a.spec.build,
	}, q, maxResults)
}

// SearchByBrand returns items whose brand contains brand.
func (a *FashionAdapter) SearchByBrand(brand string, maxResults int) ([]types.ProductCard, error) {
	needle := strings.ToLower(brand)
	return collectScan(a.path, maxResults, func(r row) bool {
		return strings.Contains(strings.ToLower(r.get("brand")), needle)
	}, a.spec.build)
}

// SearchByCategory returns items whose title contains category. The
// dataset has no category column; titles carry the garment type ("saree",
// "kurta", ...).
func (a *FashionAdapter) SearchByCategory(category string, maxResults int) ([]types.ProductCard, error) {
	needle := strings.ToLower(category)
	return collectScan(a.path, maxResults, func(r row) bool {
		return strings.Contains(strings.ToLower(r.get("title")), needle)
	}, a.spec.build)
}

// SearchByFabricType returns items whose title mentions the fabric (silk,
// cotton, ...). Same title scan as category search, kept separate because
// callers treat fabric as its own facet.
func (a *FashionAdapter) SearchByFabricType(fabric string, maxResults int) ([]types.ProductCard, error) {
	return a.SearchByCategory(fabric, maxResults)
}

// SearchByPriceRange returns items whose sold price falls inside the
// bounds.
func (a *FashionAdapter) SearchByPriceRange(minPrice, maxPrice, maxResults int) ([]types.ProductCard, error) {
	return collectScan(a.path, maxResults, func(r row) bool {
		return inPriceRange(r.get("sold_price"), minPrice, maxPrice)
	}, a.spec.build)
}

// SearchWithDiscount returns items whose markdown from actual to sold
// price is at least minPercent. The dataset has no discount column, so
// the percentage is computed from the two prices.
func (a *FashionAdapter) SearchWithDiscount(minPercent, maxResults int) ([]types.ProductCard, error) {
	return collectScan(a.path, maxResults, func(r row) bool {
		sold, okSold := parsePrice(r.get("sold_price"))
		actual, okActual := parsePrice(r.get("actual_price"))
		if !okSold || !okActual || actual <= 0 {
			return false
		}
		pct := float64(actual-sold) / float64(actual) * 100
		return pct >= float64(minPercent)
	}, a.spec.build)
}
