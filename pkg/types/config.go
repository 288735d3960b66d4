// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SearchConfig holds settings for the federated search engine.
type SearchConfig struct {
	// DatasetDir is the directory containing the product CSV files.
	DatasetDir string `json:"dataset_dir" yaml:"dataset_dir"`

	// PerSourceResults is the maximum number of results each adapter
	// contributes before merging (default 3).
	PerSourceResults int `json:"per_source_results" yaml:"per_source_results"`

	// MaxTotalResults is the maximum size of the merged result list
	// (default 15).
	MaxTotalResults int `json:"max_total_results" yaml:"max_total_results"`
}

// DatasetStat describes one registered dataset file.
type DatasetStat struct {
	// FileSizeMB is the dataset file size in megabytes, rounded to two
	// decimals. Zero when the file is missing.
	FileSizeMB float64 `json:"file_size_mb" yaml:"file_size_mb"`

	// Description is the dataset's human-readable description.
	Description string `json:"description" yaml:"description"`

	// Error notes an access problem (e.g. "dataset file not found").
	// Empty when the file is readable.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// CacheConfig holds settings for the scrape cache.
type CacheConfig struct {
	// Path is the SQLite database file (default "cache/products.db").
	Path string `json:"path" yaml:"path"`

	// TTL is how long cached rows stay fresh (default 6h).
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}
