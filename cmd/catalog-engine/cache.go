// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/catalog-engine/internal/cache"
	"github.com/pdiddy/catalog-engine/pkg/types"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and maintain the scrape cache",
	Long: `Cache manages the SQLite database that memoizes live-scrape output.
Rows are keyed by platform and query and expire after the configured TTL
(default 6h).`,
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache row and query counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		st, err := store.Stats(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("rows: %d\nqueries: %d\nexpired: %d\n", st.Rows, st.Queries, st.Expired)
		return nil
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete expired cache rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCache(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		removed, err := store.Purge(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("purged %d expired row(s)\n", removed)
		return nil
	},
}

func openCache(cmd *cobra.Command) (*cache.Store, error) {
	path, _ := cmd.Flags().GetString("cache-path")
	if path == "" {
		path = viper.GetString("cache.path")
	}
	ttl, _ := cmd.Flags().GetDuration("cache-ttl")
	if ttl == 0 {
		ttl = viper.GetDuration("cache.ttl")
	}
	return cache.NewStore(types.CacheConfig{Path: path, TTL: ttl})
}

func init() {
	cacheCmd.PersistentFlags().String("cache-path", "", "cache database file (default: cache/products.db)")
	cacheCmd.PersistentFlags().Duration("cache-ttl", 0, "cache row TTL (default: 6h)")

	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cachePurgeCmd)

	rootCmd.AddCommand(cacheCmd)
}
