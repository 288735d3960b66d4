// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

// FormatTable writes cards as a human-readable table to w.
func FormatTable(cards []types.ProductCard, w io.Writer) {
	if len(cards) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-45s  %-12s  %-6s  %-7s  %s\n",
		"Rank", "Title", "Price", "Rating", "Matches", "Dataset")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, c := range cards {
		fmt.Fprintf(w, "%-4d  %-45s  %-12s  %-6s  %-7d  %s\n",
			i+1, clip(c.Title, 45), clip(c.Price, 12), clip(c.Rating, 6), c.MatchCount, c.Dataset)
	}

	fmt.Fprintf(w, "\n%d results\n", len(cards))
}

// FormatJSON writes cards as indented JSON to w.
func FormatJSON(cards []types.ProductCard, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cards)
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
