// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"path/filepath"
	"strings"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

// ElectronicsAdapter searches the electronics dataset. The only USD-priced
// dataset; descriptions live in the Feature column.
type ElectronicsAdapter struct {
	path  string
	spec  cardSpec
	query queryConfig
}

// NewElectronicsAdapter builds the adapter over datasetDir/ElectronicsData.csv.
func NewElectronicsAdapter(datasetDir string) *ElectronicsAdapter {
	a := &ElectronicsAdapter{
		path: filepath.Join(datasetDir, "ElectronicsData.csv"),
		query: queryConfig{
			priceClause: priceClauseUSD,
			stopWords:   stopWordSet("electronics", "electronic", "device"),
		},
	}
	a.spec = cardSpec{
		dataset:        "Electronics Data",
		currency:       "$",
		titleColumns:   []string{"Title"},
		titleFallback:  "Electronics Product",
		priceColumns:   []string{"Price"},
		ratingColumns:  []string{"Rating"},
		reviewColumns:  []string{"Feature"},
		reviewFallback: "No description available",
		extraColumns: map[string]string{
			"sub_category": "Sub Category",
			"discount":     "Discount",
			"currency":     "Currency",
		},
	}
	return a
}

func (a *ElectronicsAdapter) Name() string        { return "electronics" }
func (a *ElectronicsAdapter) DatasetName() string { return a.spec.dataset }
func (a *ElectronicsAdapter) DatasetPath() string { return a.path }

func (a *ElectronicsAdapter) Capabilities() Capability {
	return CapCategory | CapPriceRange | CapDiscount
}

// Search scans the electronics dataset for keyword matches under an
// optional USD price ceiling.
func (a *ElectronicsAdapter) Search(query string, maxResults int) ([]types.ProductCard, error) {
	q := parseQuery(query, a.query)
	return keywordScan(scanSpec{
		path:          a.path,
		searchColumns: []string{"Title", "Sub Category", "Feature"},
		priceColumn:   "Price",
		build:         a.spec.build,
	}, q, maxResults)
}

// SearchByCategory returns products whose Sub Category contains category.
func (a *ElectronicsAdapter) SearchByCategory(category string, maxResults int) ([]types.ProductCard, error) {
	needle := strings.ToLower(category)
	return collectScan(a.path, maxResults, func(r row) bool {
		return strings.Contains(strings.ToLower(r.get("Sub Category")), needle)
	}, a.spec.build)
}

// SearchByPriceRange returns products whose price falls inside the bounds.
func (a *ElectronicsAdapter) SearchByPriceRange(minPrice, maxPrice, maxResults int) ([]types.ProductCard, error) {
	return collectScan(a.path, maxResults, func(r row) bool {
		return inPriceRange(r.get("Price"), minPrice, maxPrice)
	}, a.spec.build)
}

// SearchWithDiscount returns discounted products. The Discount column
// holds either a percentage label or the literal "No Discount"; rows whose
// label parses to a percentage below minPercent, or not at all, are
// skipped.
func (a *ElectronicsAdapter) SearchWithDiscount(minPercent, maxResults int) ([]types.ProductCard, error) {
	return collectScan(a.path, maxResults, func(r row) bool {
		label := r.get("Discount")
		if label == "" || strings.EqualFold(label, "no discount") {
			return false
		}
		pct, ok := parsePrice(label)
		return ok && pct >= minPercent
	}, a.spec.build)
}
