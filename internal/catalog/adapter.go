// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog implements federated keyword search across the product
// CSV datasets. Each dataset sits behind an adapter that owns its column
// schema; the Engine fans queries out to the adapters and merges their
// scored, normalized product cards into one ranked list.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

// Capability flags the optional structural-search operations an adapter
// supports beyond plain keyword Search. The engine consults the set
// before asserting the corresponding narrow interface.
type Capability uint

const (
	CapCategory Capability = 1 << iota
	CapBrand
	CapPriceRange
	CapDiscount
	CapRated
	CapSeller
)

// Has reports whether c includes every flag in f.
func (c Capability) Has(f Capability) bool { return c&f == f }

// Adapter searches a single product dataset. Each adapter owns one CSV
// file and its schema-specific field priorities.
type Adapter interface {
	// Name is the registry key (e.g. "flipkart_mobiles").
	Name() string

	// DatasetName is the human-readable dataset label stamped on cards.
	DatasetName() string

	// DatasetPath is the dataset's CSV file location.
	DatasetPath() string

	// Capabilities reports which optional search operations the adapter
	// implements.
	Capabilities() Capability

	// Search parses the free-text query with the adapter's currency and
	// stop words, scans the dataset, and returns up to maxResults cards
	// ranked by distinct-keyword match count.
	Search(query string, maxResults int) ([]types.ProductCard, error)
}

// Optional operations, gated by the adapter's capability set.
type (
	// CategorySearcher filters by substring membership in a category column.
	CategorySearcher interface {
		SearchByCategory(category string, maxResults int) ([]types.ProductCard, error)
	}

	// BrandSearcher filters by substring membership in a brand column.
	BrandSearcher interface {
		SearchByBrand(brand string, maxResults int) ([]types.ProductCard, error)
	}

	// PriceRangeSearcher filters by numeric price bounds. A bound <= 0 is
	// open.
	PriceRangeSearcher interface {
		SearchByPriceRange(minPrice, maxPrice, maxResults int) ([]types.ProductCard, error)
	}

	// DiscountSearcher filters by a minimum discount percentage.
	DiscountSearcher interface {
		SearchWithDiscount(minPercent, maxResults int) ([]types.ProductCard, error)
	}

	// RatedSearcher filters by a minimum product rating.
	RatedSearcher interface {
		SearchHighlyRated(minRating float64, maxResults int) ([]types.ProductCard, error)
	}

	// SellerSearcher filters by substring membership in a seller column.
	SellerSearcher interface {
		SearchBySeller(seller string, maxResults int) ([]types.ProductCard, error)
	}
)

// row is one CSV record with access by column name.
type row struct {
	columns map[string]int
	fields  []string
}

// get returns the trimmed cell value for a column, or "" when the column
// is absent, out of range, or holds the literal "nan" (an artifact of the
// datasets' origin).
func (r row) get(name string) string {
	idx, ok := r.columns[name]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	v := strings.TrimSpace(r.fields[idx])
	if strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}

// forEachRow streams the CSV at path one record at a time, keeping peak
// memory bounded on large files. fn returns false to stop the scan early.
// Malformed records are skipped; only open/header failures surface as
// errors.
func forEachRow(path string, fn func(r row) bool) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("reading header of %s: %w", path, err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return fmt.Errorf("reading %s: %w", path, err)
		}
		if !fn(row{columns: columns, fields: record}) {
			return nil
		}
	}
}

// scanSpec parameterizes the shared keyword scan: where the dataset lives,
// which columns build the searchable text (title-like first, categories
// second, free text last), which column carries the price, and how to
// normalize a retained row.
type scanSpec struct {
	path          string
	searchColumns []string
	priceColumn   string
	build         func(r row) types.ProductCard
}

// keywordScan runs a parsed query over a dataset. Rows above the price
// ceiling, or without a parseable price when a ceiling is set, are
// discarded. A row is retained when at least one keyword matches or the
// keyword set is empty (a pure price query admits every row that passes
// the filter). Retained rows are ranked by match count, stable on scan
// order, and truncated to maxResults.
func keywordScan(spec scanSpec, q parsedQuery, maxResults int) ([]types.ProductCard, error) {
	var candidates []types.ProductCard

	err := forEachRow(spec.path, func(r row) bool {
		var b strings.Builder
		for _, col := range spec.searchColumns {
			if v := r.get(col); v != "" {
				b.WriteString(strings.ToLower(v))
				b.WriteByte(' ')
			}
		}
		searchable := b.String()

		if q.hasLimit {
			price, ok := parsePrice(r.get(spec.priceColumn))
			if !ok || price > q.priceLimit {
				return true
			}
		}

		count := matchCount(q.keywords, searchable)
		if count > 0 || len(q.keywords) == 0 {
			card := spec.build(r)
			card.MatchCount = count
			candidates = append(candidates, card)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchCount > candidates[j].MatchCount
	})
	if maxResults > 0 && len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}
	return candidates, nil
}

// collectScan gathers rows matching a structural predicate in scan order,
// stopping once maxResults rows are collected. No match count is attached.
func collectScan(path string, maxResults int, match func(r row) bool, build func(r row) types.ProductCard) ([]types.ProductCard, error) {
	var results []types.ProductCard

	err := forEachRow(path, func(r row) bool {
		if match(r) {
			results = append(results, build(r))
		}
		return maxResults <= 0 || len(results) < maxResults
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// inPriceRange reports whether a raw price cell parses and falls inside
// the bounds. A bound <= 0 is open.
func inPriceRange(raw string, minPrice, maxPrice int) bool {
	price, ok := parsePrice(raw)
	if !ok {
		return false
	}
	if minPrice > 0 && price < minPrice {
		return false
	}
	if maxPrice > 0 && price > maxPrice {
		return false
	}
	return true
}
