package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/PattemChaitanya/custom-gateway/pkg/config"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage/tiered"
)

// storageStatsCmd represents the storage stats command
var storageStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show entity counts on the active tier",
	Long: `Show the number of stored entities per kind on the active tier.

Example:
  gatewayctl storage stats`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := showStorageStats(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get storage stats: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	storageCmd.AddCommand(storageStatsCmd)
}

func showStorageStats() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := context.Background()
	manager := tiered.NewManager(cfg)
	if err := manager.Initialize(ctx); err != nil {
		return err
	}
	defer func() { _ = manager.Shutdown() }()

	stats, err := manager.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Active tier: %s\n\n", manager.ActiveTier())

	names := make([]string, 0, len(stats))
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("%-25s %s\n", "KIND", "COUNT")
	for _, name := range names {
		fmt.Printf("%-25s %d\n", name, stats[name])
	}
	return nil
}
