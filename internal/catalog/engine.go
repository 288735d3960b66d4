// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

// Default result caps, matching the historical engine behavior.
const (
	DefaultPerSourceResults = 3
	DefaultMaxTotalResults  = 15
)

// datasetDescriptions labels each registered dataset for discovery
// endpoints and stats output.
var datasetDescriptions = map[string]string{
	"flipkart_mobiles": "Mobile phones and smartphones from Flipkart",
	"electronics":      "Electronics and gadgets from various categories",
	"amazon":           "General products from Amazon marketplace",
	"general_dataset":  "Mixed products from various categories",
	"fashion":          "Fashion items including sarees, clothing, and accessories",
}

// categoryRoutes maps category keywords to the dataset subset worth
// querying. Matched by substring against the lowercased category; entries
// are checked in order and their targets accumulated.
var categoryRoutes = []struct {
	keyword  string
	datasets []string
}{
	{"mobile", []string{"flipkart_mobiles"}},
	{"phone", []string{"flipkart_mobiles"}},
	{"smartphone", []string{"flipkart_mobiles"}},
	{"electronics", []string{"electronics", "amazon", "general_dataset"}},
	{"laptop", []string{"electronics", "amazon", "general_dataset"}},
	{"computer", []string{"electronics", "amazon", "general_dataset"}},
	{"fashion", []string{"fashion"}},
	{"clothing", []string{"fashion"}},
	{"saree", []string{"fashion"}},
	{"dress", []string{"fashion"}},
	{"accessories", []string{"fashion", "amazon", "general_dataset"}},
}

// Engine federates search across all registered dataset adapters. It is
// stateless per request: adapters hold only their dataset location, so one
// Engine serves concurrent callers safely. Construct it once and share it.
type Engine struct {
	adapters  []Adapter
	byName    map[string]Adapter
	perSource int
	total     int
	w         io.Writer
}

// NewEngine registers the five dataset adapters over cfg.DatasetDir in
// fixed order. Recovered failures (unreadable datasets, failed adapters)
// are reported as warnings on w; pass nil to discard them.
func NewEngine(cfg types.SearchConfig, w io.Writer) *Engine {
	if w == nil {
		w = io.Discard
	}
	dir := cfg.DatasetDir
	if dir == "" {
		dir = "datasets"
	}
	perSource := cfg.PerSourceResults
	if perSource <= 0 {
		perSource = DefaultPerSourceResults
	}
	total := cfg.MaxTotalResults
	if total <= 0 {
		total = DefaultMaxTotalResults
	}

	adapters := []Adapter{
		NewMobilesAdapter(dir),
		NewElectronicsAdapter(dir),
		NewAmazonAdapter(dir),
		NewGeneralAdapter(dir),
		NewFashionAdapter(dir),
	}
	byName := make(map[string]Adapter, len(adapters))
	for _, a := range adapters {
		byName[a.Name()] = a
	}

	return &Engine{
		adapters:  adapters,
		byName:    byName,
		perSource: perSource,
		total:     total,
		w:         w,
	}
}

// DatasetNames returns the registry keys in registration order.
func (e *Engine) DatasetNames() []string {
	names := make([]string, len(e.adapters))
	for i, a := range e.adapters {
		names[i] = a.Name()
	}
	return names
}

// caps resolves per-call result caps, substituting configured defaults for
// non-positive values.
func (e *Engine) caps(perSource, total int) (int, int) {
	if perSource <= 0 {
		perSource = e.perSource
	}
	if total <= 0 {
		total = e.total
	}
	return perSource, total
}

// SearchAll fans the free-text query out to every adapter sequentially,
// merges the per-adapter results, re-ranks the union by match count
// (stable, so ties keep adapter-then-scan order), and truncates to total.
// A failing adapter is logged and skipped; the call still returns a
// best-effort list.
func (e *Engine) SearchAll(query string, perSource, total int) []types.ProductCard {
	perSource, total = e.caps(perSource, total)

	var all []types.ProductCard
	for _, a := range e.adapters {
		results, err := a.Search(query, perSource)
		if err != nil {
			fmt.Fprintf(e.w, "warning: %s search failed: %v\n", a.Name(), err)
			continue
		}
		all = append(all, results...)
	}
	return rankByMatches(all, total)
}

// SearchDataset queries a single named adapter. An unknown name is caller
// misuse and returns an error; a dataset-read failure degrades to an empty
// list with a warning.
func (e *Engine) SearchDataset(name, query string, maxResults int) ([]types.ProductCard, error) {
	a, ok := e.byName[name]
	if !ok {
		return nil, fmt.Errorf("dataset %q not found: available datasets are %s",
			name, strings.Join(e.DatasetNames(), ", "))
	}
	if maxResults <= 0 {
		maxResults = e.perSource
	}

	results, err := a.Search(query, maxResults)
	if err != nil {
		fmt.Fprintf(e.w, "warning: %s search failed: %v\n", a.Name(), err)
		return nil, nil
	}
	return results, nil
}

// SearchByCategory routes a category to the dataset subset its keywords
// map to (all datasets when nothing matches), preferring each adapter's
// category search, then brand search, then plain keyword search. Results
// merge and rank like SearchAll.
func (e *Engine) SearchByCategory(category string, perSource, total int) []types.ProductCard {
	perSource, total = e.caps(perSource, total)
	lower := strings.ToLower(category)

	var targets []string
	seen := make(map[string]struct{})
	for _, route := range categoryRoutes {
		if !strings.Contains(lower, route.keyword) {
			continue
		}
		for _, name := range route.datasets {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			targets = append(targets, name)
		}
	}
	if len(targets) == 0 {
		targets = e.DatasetNames()
	}

	var all []types.ProductCard
	for _, name := range targets {
		a := e.byName[name]

		var results []types.ProductCard
		var err error
		switch {
		case a.Capabilities().Has(CapCategory):
			results, err = a.(CategorySearcher).SearchByCategory(category, perSource)
		case a.Capabilities().Has(CapBrand):
			results, err = a.(BrandSearcher).SearchByBrand(category, perSource)
		default:
			results, err = a.Search(category, perSource)
		}
		if err != nil {
			fmt.Fprintf(e.w, "warning: %s category search for %q failed: %v\n", name, category, err)
			continue
		}
		all = append(all, results...)
	}
	return rankByMatches(all, total)
}

// SearchByPriceRange fans out to the adapters that support price-range
// scans and sorts the merged list ascending by parsed price. Unparseable
// prices parse to 0 and sort first; preserved as observed behavior.
func (e *Engine) SearchByPriceRange(minPrice, maxPrice, perSource, total int) []types.ProductCard {
	perSource, total = e.caps(perSource, total)

	var all []types.ProductCard
	for _, a := range e.adapters {
		if !a.Capabilities().Has(CapPriceRange) {
			continue
		}
		results, err := a.(PriceRangeSearcher).SearchByPriceRange(minPrice, maxPrice, perSource)
		if err != nil {
			fmt.Fprintf(e.w, "warning: %s price range search failed: %v\n", a.Name(), err)
			continue
		}
		all = append(all, results...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return extractPriceValue(all[i].Price) < extractPriceValue(all[j].Price)
	})
	if len(all) > total {
		all = all[:total]
	}
	return all
}

// SearchWithDiscounts fans out to the adapters that support discount
// scans. No re-ranking: concatenation order, truncated to total.
func (e *Engine) SearchWithDiscounts(minPercent, perSource, total int) []types.ProductCard {
	perSource, total = e.caps(perSource, total)

	var all []types.ProductCard
	for _, a := range e.adapters {
		if !a.Capabilities().Has(CapDiscount) {
			continue
		}
		results, err := a.(DiscountSearcher).SearchWithDiscount(minPercent, perSource)
		if err != nil {
			fmt.Fprintf(e.w, "warning: %s discount search failed: %v\n", a.Name(), err)
			continue
		}
		all = append(all, results...)
	}
	if len(all) > total {
		all = all[:total]
	}
	return all
}

// AvailableDatasets returns the registry keys with their descriptions.
func (e *Engine) AvailableDatasets() map[string]string {
	out := make(map[string]string, len(datasetDescriptions))
	for k, v := range datasetDescriptions {
		out[k] = v
	}
	return out
}

// DatasetStats reports each dataset's file size and description. A missing
// file is noted, not an error: that adapter simply contributes no results.
func (e *Engine) DatasetStats() map[string]types.DatasetStat {
	stats := make(map[string]types.DatasetStat, len(e.adapters))
	for _, a := range e.adapters {
		info, err := os.Stat(a.DatasetPath())
		if err != nil {
			stats[a.Name()] = types.DatasetStat{
				Description: "File not found",
				Error:       "dataset file not found",
			}
			continue
		}
		sizeMB := math.Round(float64(info.Size())/(1024*1024)*100) / 100
		stats[a.Name()] = types.DatasetStat{
			FileSizeMB:  sizeMB,
			Description: datasetDescriptions[a.Name()],
		}
	}
	return stats
}

// rankByMatches sorts cards descending by match count (stable on input
// order) and truncates to total.
func rankByMatches(cards []types.ProductCard, total int) []types.ProductCard {
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].MatchCount > cards[j].MatchCount
	})
	if total > 0 && len(cards) > total {
		cards = cards[:total]
	}
	return cards
}

// extractPriceValue parses a card's display price for sorting, stripping
// currency symbols (including the fashion dataset's mis-encoded variant)
// and commas. Unparseable prices (including "N/A") yield 0.
func extractPriceValue(price string) float64 {
	clean := strings.NewReplacer("₹", "", "â‚¹", "", "$", "", ",", "", " ", "").Replace(price)
	if clean == "" || clean == naValue {
		return 0
	}
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return v
}
