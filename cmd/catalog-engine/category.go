// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-engine/internal/catalog"
)

var categoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "Search products by semantic category",
	Long: `Category routes a category name to the datasets it maps to ("saree"
queries only the fashion dataset, "laptop" the electronics-flavored ones)
and merges the results. Unmapped categories query every dataset.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCategory,
}

func runCategory(cmd *cobra.Command, args []string) error {
	category := strings.Join(args, " ")
	perDataset, _ := cmd.Flags().GetInt("per-dataset")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	engine := newEngine(cmd)
	cards := engine.SearchByCategory(category, perDataset, maxResults)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return catalog.FormatJSON(cards, os.Stdout)
	}
	catalog.FormatTable(cards, os.Stdout)
	return nil
}

func init() {
	categoryCmd.Flags().Int("per-dataset", 0, "maximum results per dataset (0 = configured default)")
	categoryCmd.Flags().Int("max-results", 0, "maximum merged results (0 = configured default)")
	categoryCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(categoryCmd)
}
