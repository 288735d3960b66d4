// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the registered datasets",
	Long: `Datasets lists the registered dataset keys with their descriptions.
With --stats it also reports each dataset file's size; a missing file is
noted but not an error, since its adapter simply returns no results.`,
	RunE: runDatasets,
}

func runDatasets(cmd *cobra.Command, args []string) error {
	engine := newEngine(cmd)
	withStats, _ := cmd.Flags().GetBool("stats")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if withStats {
		stats := engine.DatasetStats()
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}
		for _, name := range engine.DatasetNames() {
			st := stats[name]
			if st.Error != "" {
				fmt.Printf("%-18s  %8s  %s\n", name, "-", st.Error)
				continue
			}
			fmt.Printf("%-18s  %6.2fMB  %s\n", name, st.FileSizeMB, st.Description)
		}
		return nil
	}

	available := engine.AvailableDatasets()
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(available)
	}

	names := make([]string, 0, len(available))
	for name := range available {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-18s  %s\n", name, available[name])
	}
	return nil
}

func init() {
	datasetsCmd.Flags().Bool("stats", false, "include dataset file sizes")
	datasetsCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(datasetsCmd)
}
