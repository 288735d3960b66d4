package catalog

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

func testEngine(w *bytes.Buffer) *Engine {
	return NewEngine(types.SearchConfig{DatasetDir: testDataDir}, w)
}

func TestEngineDatasetNames(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	want := []string{"flipkart_mobiles", "electronics", "amazon", "general_dataset", "fashion"}
	if got := e.DatasetNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("DatasetNames() = %v, want %v", got, want)
	}
}

func TestSearchAllMergesAcrossDatasets(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	results := e.SearchAll("laptop", 3, 15)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want one laptop per dataset", len(results))
	}

	datasets := make(map[string]bool)
	for _, c := range results {
		datasets[c.Dataset] = true
	}
	for _, want := range []string{"Electronics Data", "Amazon Products", "General Dataset"} {
		if !datasets[want] {
			t.Errorf("missing results from %s", want)
		}
	}
}

func TestSearchAllRanksByMatchCount(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	results := e.SearchAll("gaming laptop", 3, 15)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].MatchCount > results[i-1].MatchCount {
			t.Errorf("results not sorted: [%d].MatchCount=%d > [%d].MatchCount=%d",
				i, results[i].MatchCount, i-1, results[i-1].MatchCount)
		}
	}
	if results[0].MatchCount != 2 || results[2].MatchCount != 1 {
		t.Errorf("unexpected match counts: %d, %d", results[0].MatchCount, results[2].MatchCount)
	}
}

func TestSearchAllTruncatesToTotal(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	results := e.SearchAll("laptop", 3, 2)
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}
}

func TestSearchAllDeterministic(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	first := e.SearchAll("gaming laptop", 3, 15)
	second := e.SearchAll("gaming laptop", 3, 15)
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated searches over unchanged datasets should agree")
	}
}

func TestSearchAllMissingDatasets(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(types.SearchConfig{DatasetDir: t.TempDir()}, &buf)
	results := e.SearchAll("laptop", 3, 15)
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
	if !strings.Contains(buf.String(), "warning:") {
		t.Error("missing datasets should be reported as warnings")
	}
}

func TestSearchDataset(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	results, err := e.SearchDataset("flipkart_mobiles", "samsung", 5)
	if err != nil {
		t.Fatalf("SearchDataset: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("len(results) = %d, want 2", len(results))
	}

	_, err = e.SearchDataset("nosuch", "samsung", 5)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected unknown-dataset error, got: %v", err)
	}
}

func TestSearchDatasetSmallerCapIsPrefix(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	one, err := e.SearchDataset("flipkart_mobiles", "samsung", 1)
	if err != nil {
		t.Fatalf("SearchDataset: %v", err)
	}
	two, err := e.SearchDataset("flipkart_mobiles", "samsung", 2)
	if err != nil {
		t.Fatalf("SearchDataset: %v", err)
	}
	if len(one) != 1 || len(two) != 2 {
		t.Fatalf("lens = %d, %d", len(one), len(two))
	}
	if !reflect.DeepEqual(one[0], two[0]) {
		t.Error("smaller cap should be a prefix of the larger")
	}
}

func TestSearchByCategoryRouting(t *testing.T) {
	e := testEngine(&bytes.Buffer{})

	// "saree" routes to the fashion dataset only.
	results := e.SearchByCategory("saree", 3, 15)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Dataset != "Fashion Data" {
		t.Errorf("Dataset = %q, want Fashion Data", results[0].Dataset)
	}

	// "laptop" routes to three datasets; none from mobiles or fashion.
	results = e.SearchByCategory("laptop", 3, 15)
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for _, c := range results {
		if c.Dataset == "Flipkart Mobiles" || c.Dataset == "Fashion Data" {
			t.Errorf("unexpected dataset %q in routed results", c.Dataset)
		}
	}
}

func TestSearchByCategoryFallsBackToAllDatasets(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	// "bedsheet" maps to no route, so every dataset is consulted.
	results := e.SearchByCategory("bedsheet", 3, 15)
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].Dataset != "General Dataset" {
		t.Errorf("Dataset = %q, want General Dataset", results[0].Dataset)
	}
}

func TestSearchByPriceRangeSortsAscending(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	results := e.SearchByPriceRange(300, 500, 3, 15)
	if len(results) != 6 {
		t.Fatalf("len(results) = %d, want 6", len(results))
	}

	// A price cell the display parser cannot read sorts as zero, ahead
	// of every real price.
	want := []string{"$Price on request 450", "₹349", "₹379", "₹399", "$400", "₹499"}
	for i, c := range results {
		if c.Price != want[i] {
			t.Errorf("results[%d].Price = %q, want %q", i, c.Price, want[i])
		}
	}
}

func TestSearchWithDiscountsConcatenationOrder(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	results := e.SearchWithDiscounts(50, 3, 15)
	if len(results) != 5 {
		t.Fatalf("len(results) = %d, want 5", len(results))
	}
	// Adapter registration order, not discount magnitude: the three
	// Amazon rows precede the two fashion rows.
	for i := 0; i < 3; i++ {
		if results[i].Dataset != "Amazon Products" {
			t.Errorf("results[%d].Dataset = %q, want Amazon Products", i, results[i].Dataset)
		}
	}
	for i := 3; i < 5; i++ {
		if results[i].Dataset != "Fashion Data" {
			t.Errorf("results[%d].Dataset = %q, want Fashion Data", i, results[i].Dataset)
		}
	}
}

func TestAvailableDatasets(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	datasets := e.AvailableDatasets()
	if len(datasets) != 5 {
		t.Errorf("len(datasets) = %d, want 5", len(datasets))
	}
	if !strings.Contains(datasets["fashion"], "sarees") {
		t.Errorf("fashion description = %q", datasets["fashion"])
	}
}

func TestDatasetStats(t *testing.T) {
	e := testEngine(&bytes.Buffer{})
	stats := e.DatasetStats()
	if len(stats) != 5 {
		t.Fatalf("len(stats) = %d, want 5", len(stats))
	}
	for name, st := range stats {
		if st.Error != "" {
			t.Errorf("%s: unexpected error %q", name, st.Error)
		}
		if st.Description == "" {
			t.Errorf("%s: missing description", name)
		}
	}
}

func TestDatasetStatsMissingFiles(t *testing.T) {
	e := NewEngine(types.SearchConfig{DatasetDir: t.TempDir()}, nil)
	stats := e.DatasetStats()
	for name, st := range stats {
		if st.Error != "dataset file not found" {
			t.Errorf("%s: Error = %q", name, st.Error)
		}
		if st.Description != "File not found" {
			t.Errorf("%s: Description = %q", name, st.Description)
		}
	}
}

func TestExtractPriceValue(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"₹15999", 15999},
		{"₹1,299", 1299},
		{"$400", 400},
		{"â‚¹799", 799},
		{"N/A", 0},
		{"", 0},
		{"$Price on request 450", 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := extractPriceValue(tt.input); got != tt.want {
				t.Errorf("extractPriceValue(%q) = %f, want %f", tt.input, got, tt.want)
			}
		})
	}
}
