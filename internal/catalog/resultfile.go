// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/catalog-engine/pkg/types"
)

// ResultFile is the on-disk representation of a search and its results.
// A search can be saved to a file and reloaded later without re-scanning
// the datasets.
type ResultFile struct {
	Query   ResultQuery         `yaml:"query"`
	Config  ResultFileConfig    `yaml:"config"`
	Results []types.ProductCard `yaml:"results"`
	Summary ResultSummary       `yaml:"summary"`
}

// ResultQuery stores what was asked.
type ResultQuery struct {
	Text    string `yaml:"text"`
	Dataset string `yaml:"dataset,omitempty"`
}

// ResultFileConfig stores the caps that produced the results.
type ResultFileConfig struct {
	PerSourceResults int `yaml:"per_source_results"`
	MaxTotalResults  int `yaml:"max_total_results"`
}

// ResultSummary stores result statistics and a timestamp.
type ResultSummary struct {
	Total     int            `yaml:"total"`
	ByDataset map[string]int `yaml:"by_dataset,omitempty"`
	Timestamp time.Time      `yaml:"timestamp"`
}

// WriteResultFile saves a query and its result cards to a YAML file.
func WriteResultFile(path string, query ResultQuery, cfg ResultFileConfig, cards []types.ProductCard) error {
	byDataset := make(map[string]int)
	for _, c := range cards {
		if c.Dataset != "" {
			byDataset[c.Dataset]++
		}
	}

	rf := ResultFile{
		Query:   query,
		Config:  cfg,
		Results: cards,
		Summary: ResultSummary{
			Total:     len(cards),
			ByDataset: byDataset,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file: %w", err)
	}
	return &rf, nil
}
