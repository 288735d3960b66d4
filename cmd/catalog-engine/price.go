// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-engine/internal/catalog"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Search products by price range",
	Long: `Price fans out to the datasets that support range scans and sorts the
merged result ascending by price. Bounds are in each dataset's native
currency; omit a bound to leave it open.`,
	RunE: runPrice,
}

func runPrice(cmd *cobra.Command, args []string) error {
	minPrice, _ := cmd.Flags().GetInt("min")
	maxPrice, _ := cmd.Flags().GetInt("max")
	perDataset, _ := cmd.Flags().GetInt("per-dataset")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	engine := newEngine(cmd)
	cards := engine.SearchByPriceRange(minPrice, maxPrice, perDataset, maxResults)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return catalog.FormatJSON(cards, os.Stdout)
	}
	catalog.FormatTable(cards, os.Stdout)
	return nil
}

var discountsCmd = &cobra.Command{
	Use:   "discounts",
	Short: "Search products with significant discounts",
	Long: `Discounts fans out to the datasets that track markdowns and returns
products discounted by at least --min-discount percent.`,
	RunE: runDiscounts,
}

func runDiscounts(cmd *cobra.Command, args []string) error {
	minDiscount, _ := cmd.Flags().GetInt("min-discount")
	perDataset, _ := cmd.Flags().GetInt("per-dataset")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	engine := newEngine(cmd)
	cards := engine.SearchWithDiscounts(minDiscount, perDataset, maxResults)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return catalog.FormatJSON(cards, os.Stdout)
	}
	catalog.FormatTable(cards, os.Stdout)
	return nil
}

func init() {
	priceCmd.Flags().Int("min", 0, "minimum price (0 = open)")
	priceCmd.Flags().Int("max", 0, "maximum price (0 = open)")
	priceCmd.Flags().Int("per-dataset", 0, "maximum results per dataset (0 = configured default)")
	priceCmd.Flags().Int("max-results", 0, "maximum merged results (0 = configured default)")
	priceCmd.Flags().Bool("json", false, "output results as JSON")

	discountsCmd.Flags().Int("min-discount", 10, "minimum discount percentage")
	discountsCmd.Flags().Int("per-dataset", 0, "maximum results per dataset (0 = configured default)")
	discountsCmd.Flags().Int("max-results", 0, "maximum merged results (0 = configured default)")
	discountsCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(discountsCmd)
}
