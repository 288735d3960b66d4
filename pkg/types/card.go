// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the catalog engine.
package types

// ProductCard is the normalized, schema-agnostic result record every
// adapter produces and the federated engine merges. Fields that could not
// be extracted from the source row carry the literal "N/A" or a fixed
// default phrase, never the empty string.
type ProductCard struct {
	// Title is the product title. Never empty; a generic label is used
	// when no source column yields one.
	Title string `json:"title" yaml:"title"`

	// Price is the currency-prefixed textual price (e.g. "₹12999" or
	// "$499"), or "N/A" when the row has no usable price.
	Price string `json:"price" yaml:"price"`

	// Rating is the source rating as text, or "N/A".
	Rating string `json:"rating" yaml:"rating"`

	// Review is a human-readable blurb built from descriptive columns,
	// capped at 100 characters with an ellipsis.
	Review string `json:"review" yaml:"review"`

	// Image is an absolute http URL from the source, or a deterministic
	// placeholder derived from the title.
	Image string `json:"image" yaml:"image"`

	// Dataset is the human-readable name of the originating adapter.
	Dataset string `json:"dataset,omitempty" yaml:"dataset,omitempty"`

	// MatchCount is the number of distinct query keywords found in the
	// row's searchable text. It ranks results within a single query and
	// is meaningless across queries.
	MatchCount int `json:"match_count" yaml:"match_count"`

	// Extra carries adapter-specific pass-through fields (brand, category,
	// discount percentage, seller rating, ...). The engine never reads it.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}
