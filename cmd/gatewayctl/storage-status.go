package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PattemChaitanya/custom-gateway/pkg/config"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage/tiered"
)

// storageStatusCmd represents the storage status command
var storageStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which tier serves sessions and its health",
	Long: `Show which storage tier serves sessions and its health.

Runs tier selection with the current configuration, reports the result,
and releases the tier again.

Example:
  gatewayctl storage status
  gatewayctl storage status --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")

		if err := showStorageStatus(output); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get storage status: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	storageCmd.AddCommand(storageStatusCmd)
	storageStatusCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}

func showStorageStatus(output string) error {
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

	health := manager.HealthCheck(ctx)

	if output == "json" {
		data, err := json.MarshalIndent(health, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Tier:    %s\n", health.Tier)
	fmt.Printf("Status:  %s\n", health.Status)
	if health.Message != "" {
		fmt.Printf("Message: %s\n", health.Message)
	}
	return nil
}
