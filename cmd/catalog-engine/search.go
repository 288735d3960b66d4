// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-engine/internal/catalog"
	"github.com/pdiddy/catalog-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search all product datasets with a free-text query",
	Long: `Search runs a free-text query against every dataset (or one dataset
with --dataset) and prints the merged, ranked result list. The query may
embed a price ceiling, e.g. "laptop under 50000".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	dataset, _ := cmd.Flags().GetString("dataset")
	perDataset, _ := cmd.Flags().GetInt("per-dataset")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	engine := newEngine(cmd)

	var cards []types.ProductCard
	if dataset != "" {
		var err error
		cards, err = engine.SearchDataset(dataset, query, maxResults)
		if err != nil {
			return err
		}
	} else {
		cards = engine.SearchAll(query, perDataset, maxResults)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		rq := catalog.ResultQuery{Text: query, Dataset: dataset}
		rc := catalog.ResultFileConfig{PerSourceResults: perDataset, MaxTotalResults: maxResults}
		if err := catalog.WriteResultFile(out, rq, rc, cards); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved results to %s\n", out)
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return catalog.FormatJSON(cards, os.Stdout)
	}
	catalog.FormatTable(cards, os.Stdout)
	return nil
}

var loadCmd = &cobra.Command{
	Use:   "load <file.yaml>",
	Short: "Display a previously saved result file",
	Long: `Load reads a result file written by 'search --out' and prints it
without re-scanning the datasets.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	rf, err := catalog.ReadResultFile(args[0])
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return catalog.FormatJSON(rf.Results, os.Stdout)
	}
	fmt.Fprintf(os.Stderr, "Query: %q (saved %s)\n", rf.Query.Text,
		rf.Summary.Timestamp.Format("2006-01-02 15:04"))
	catalog.FormatTable(rf.Results, os.Stdout)
	return nil
}

func init() {
	searchCmd.Flags().String("dataset", "", "query a single dataset by key (see 'datasets')")
	searchCmd.Flags().Int("per-dataset", 0, "maximum results per dataset (0 = configured default)")
	searchCmd.Flags().Int("max-results", 0, "maximum merged results (0 = configured default)")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("out", "", "save results to a YAML file")

	loadCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(loadCmd)
}
