package catalog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

func TestFormatTable(t *testing.T) {
	cards := []types.ProductCard{
		{Title: "Samsung Galaxy M31", Price: "₹15999", Rating: "4.4", MatchCount: 2, Dataset: "Flipkart Mobiles"},
		{Title: "Banarasi Silk Saree", Price: "₹1299", Rating: "N/A", MatchCount: 1, Dataset: "Fashion Data"},
	}

	var buf bytes.Buffer
	FormatTable(cards, &buf)
	s := buf.String()

	if !strings.Contains(s, "Samsung Galaxy M31") {
		t.Error("table should contain the first title")
	}
	if !strings.Contains(s, "Fashion Data") {
		t.Error("table should contain the dataset label")
	}
	if !strings.Contains(s, "2 results") {
		t.Error("table should report the result count")
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No results found.") {
		t.Errorf("empty output = %q", buf.String())
	}
}

func TestFormatTableClipsLongTitles(t *testing.T) {
	cards := []types.ProductCard{
		{Title: strings.Repeat("x", 80), Price: "₹99", Dataset: "General Dataset"},
	}
	var buf bytes.Buffer
	FormatTable(cards, &buf)
	if strings.Contains(buf.String(), strings.Repeat("x", 50)) {
		t.Error("long titles should be clipped to the column width")
	}
}

func TestFormatJSON(t *testing.T) {
	cards := []types.ProductCard{
		{Title: "Samsung Galaxy M31", Price: "₹15999", Rating: "4.4", Review: "r", Image: "i", Dataset: "Flipkart Mobiles", MatchCount: 1},
	}

	var buf bytes.Buffer
	if err := FormatJSON(cards, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var parsed []types.ProductCard
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(parsed) != 1 || parsed[0].Title != "Samsung Galaxy M31" {
		t.Errorf("parsed = %+v", parsed)
	}
}
