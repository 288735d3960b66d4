// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"path/filepath"
	"strings"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

// MobilesAdapter searches the Flipkart mobiles dataset. Titles are the
// Brand and Model concatenation; Color, Memory and Storage are secondary
// search fields.
type MobilesAdapter struct {
	path  string
	spec  cardSpec
	query queryConfig
}

// NewMobilesAdapter builds the adapter over datasetDir/Flipkart_Mobiles.csv.
func NewMobilesAdapter(datasetDir string) *MobilesAdapter {
	a := &MobilesAdapter{
		path: filepath.Join(datasetDir, "Flipkart_Mobiles.csv"),
		query: queryConfig{
			priceClause: priceClauseINR,
			stopWords:   stopWordSet("mobile", "phone", "smartphone"),
		},
	}
	a.spec = cardSpec{
		dataset:       "Flipkart Mobiles",
		currency:      "₹",
		titleFallback: "Mobile Phone",
		composeTitle:  mobileTitle,
		priceColumns:  []string{"Selling Price"},
		ratingColumns: []string{"Rating"},
		composeReview: mobileReview,
		extraColumns: map[string]string{
			"brand":   "Brand",
			"model":   "Model",
			"color":   "Color",
			"memory":  "Memory",
			"storage": "Storage",
		},
	}
	return a
}

func (a *MobilesAdapter) Name() string        { return "flipkart_mobiles" }
func (a *MobilesAdapter) DatasetName() string { return a.spec.dataset }
func (a *MobilesAdapter) DatasetPath() string { return a.path }

func (a *MobilesAdapter) Capabilities() Capability {
	return CapBrand | CapPriceRange
}

// mobileTitle concatenates Brand and Model. Rows missing either fall back
// to the generic label.
func mobileTitle(r row) string {
	brand, model := r.get("Brand"), r.get("Model")
	if brand == "" || model == "" {
		return ""
	}
	return brand + " " + model
}

// mobileReview summarizes the handset specifications.
func mobileReview(r row) string {
	base := strings.TrimSpace(r.get("Brand") + " " + r.get("Model"))
	var specs []string
	for _, col := range []string{"Color", "Memory", "Storage"} {
		if v := r.get(col); v != "" {
			specs = append(specs, v)
		}
	}
	if len(specs) == 0 {
		return base
	}
	return base + " - " + strings.Join(specs, ", ")
}

// Search scans the mobiles dataset for keyword matches under an optional
// price ceiling.
func (a *MobilesAdapter) Search(query string, maxResults int) ([]types.ProductCard, error) {
	q := parseQuery(query, a.query)
	return keywordScan(scanSpec{
		path:          a.path,
		searchColumns: []string{"Brand", "Model", "Color", "Memory", "Storage"},
		priceColumn:   "Selling Price",
		build:         a.spec.build,
	}, q, maxResults)
}

// SearchByBrand returns handsets whose Brand column contains brand.
func (a *MobilesAdapter) SearchByBrand(brand string, maxResults int) ([]types.ProductCard, error) {
	needle := strings.ToLower(brand)
	return collectScan(a.path, maxResults, func(r row) bool {
		return strings.Contains(strings.ToLower(r.get("Brand")), needle)
	}, a.spec.build)
}

// SearchByPriceRange returns handsets whose selling price falls inside the
// bounds.
func (a *MobilesAdapter) SearchByPriceRange(minPrice, maxPrice, maxResults int) ([]types.ProductCard, error) {
	return collectScan(a.path, maxResults, func(r row) bool {
		return inPriceRange(r.get("Selling Price"), minPrice, maxPrice)
	}, a.spec.build)
}
