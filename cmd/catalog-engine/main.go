// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the catalog-engine CLI, the
// command-line surface over the federated product search engine.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/catalog-engine/internal/catalog"
	"github.com/pdiddy/catalog-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the catalog-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "catalog-engine",
	Short: "Federated keyword search across local product datasets",
	Long: `catalog-engine searches five independently-schematized product datasets
(mobiles, electronics, Amazon marketplace, a general catalogue, fashion)
and returns one ranked, schema-normalized result list.

Queries are free text with an optional embedded price ceiling, e.g.
"samsung mobile under 20000". Each dataset adapter parses the query with
its own currency and stop words, scores rows by keyword matches, and the
engine merges everything into a single ordered list.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./catalog-engine.yaml or ~/.config/catalog-engine/config.yaml)")
	rootCmd.PersistentFlags().String("dataset-dir", "", "directory containing the dataset CSV files (default: ./datasets)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("catalog-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "catalog-engine"))
		}
	}

	viper.SetEnvPrefix("CATALOG_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// searchConfig resolves the engine configuration: flags win over the
// config file, which wins over engine defaults.
func searchConfig(cmd *cobra.Command) types.SearchConfig {
	dir, _ := cmd.Flags().GetString("dataset-dir")
	if dir == "" {
		dir = viper.GetString("dataset_dir")
	}
	return types.SearchConfig{
		DatasetDir:       dir,
		PerSourceResults: viper.GetInt("per_source_results"),
		MaxTotalResults:  viper.GetInt("max_total_results"),
	}
}

// newEngine builds the federated engine with warnings going to stderr.
func newEngine(cmd *cobra.Command) *catalog.Engine {
	return catalog.NewEngine(searchConfig(cmd), os.Stderr)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
