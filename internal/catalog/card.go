// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

const (
	// naValue marks a field no source column could populate.
	naValue = "N/A"

	// reviewMaxLen caps the review blurb on every card.
	reviewMaxLen = 100
)

// cardSpec declares how one dataset's columns map onto a ProductCard: an
// ordered candidate-column list per semantic field, fixed fallbacks, and
// optional compose hooks for fields built from several columns. One
// generic builder consumes the mapping, so the five adapters differ only
// in their tables.
type cardSpec struct {
	dataset  string
	currency string

	titleColumns  []string
	titleFallback string
	composeTitle  func(r row) string

	priceColumns []string

	ratingColumns []string

	reviewColumns  []string
	reviewFallback string
	composeReview  func(r row) string

	imageColumns []string

	// extraColumns maps pass-through card keys to source columns.
	extraColumns map[string]string
}

// build constructs a normalized ProductCard from a raw row. It is total:
// every semantic field falls back to a fixed default when no candidate
// column yields a usable value.
func (s cardSpec) build(r row) types.ProductCard {
	title := ""
	if s.composeTitle != nil {
		title = s.composeTitle(r)
	} else {
		title = firstValue(r, s.titleColumns)
	}
	if title == "" {
		title = s.titleFallback
	}

	price := naValue
	for _, col := range s.priceColumns {
		if v := cleanPriceValue(r.get(col)); v != "" {
			price = s.currency + v
			break
		}
	}

	rating := firstValue(r, s.ratingColumns)
	if rating == "" {
		rating = naValue
	}

	review := ""
	if s.composeReview != nil {
		review = s.composeReview(r)
	} else {
		review = firstValue(r, s.reviewColumns)
	}
	if review == "" {
		review = s.reviewFallback
	}
	review = truncateText(review, reviewMaxLen)

	image := ""
	for _, col := range s.imageColumns {
		if v := r.get(col); strings.HasPrefix(v, "http") {
			image = v
			break
		}
	}
	if image == "" {
		image = placeholderImage(title)
	}

	card := types.ProductCard{
		Title:   title,
		Price:   price,
		Rating:  rating,
		Review:  review,
		Image:   image,
		Dataset: s.dataset,
	}
	for key, col := range s.extraColumns {
		if v := r.get(col); v != "" {
			if card.Extra == nil {
				card.Extra = make(map[string]string)
			}
			card.Extra[key] = v
		}
	}
	return card
}

// firstValue returns the first present, non-empty value among the columns.
func firstValue(r row, columns []string) string {
	for _, col := range columns {
		if v := r.get(col); v != "" {
			return v
		}
	}
	return ""
}

// cleanPriceValue strips currency symbols and thousands separators from a
// raw price cell. The fashion dataset carries a mis-encoded rupee sign
// ("â‚¹") which is stripped alongside the real one.
func cleanPriceValue(s string) string {
	s = strings.NewReplacer("â‚¹", "", "₹", "", "$", "", ",", "").Replace(s)
	return strings.TrimSpace(s)
}

// digitsOnly keeps only the decimal digits of s.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// parsePrice extracts a numeric price from a raw cell by keeping its
// digits. Reports false when the cell holds no digits at all.
func parsePrice(s string) (int, bool) {
	digits := digitsOnly(s)
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

// truncateText caps s at max runes, appending an ellipsis when truncated.
func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// placeholderImage returns a deterministic placeholder URL for a title.
// FNV-1a is fixed across runs and processes, so the same title always maps
// to the same image ID in 0-999.
func placeholderImage(title string) string {
	h := fnv.New32a()
	h.Write([]byte(title))
	return fmt.Sprintf("https://picsum.photos/400/400?random=%d", h.Sum32()%1000)
}
