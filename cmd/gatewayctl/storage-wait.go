package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/PattemChaitanya/custom-gateway/pkg/config"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage/postgres"
)

// storageWaitCmd represents the storage wait command
var storageWaitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the primary database to be ready",
	Long: `Wait for the primary database to be ready by probing it.

This command repeatedly probes the configured PostgreSQL server until it
answers or the maximum number of retries is reached.

Example:
  gatewayctl storage wait
  gatewayctl storage wait --retries 60`,
	Run: func(cmd *cobra.Command, args []string) {
		retries, _ := cmd.Flags().GetInt("retries")

		if err := waitForPrimary(retries); err != nil {
			fmt.Fprintf(os.Stderr, "Primary database did not become ready: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	storageCmd.AddCommand(storageWaitCmd)
	storageWaitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
}

func waitForPrimary(retries int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("no database URL configured")
	}

	fmt.Println("Waiting for the primary database to be ready...")

	for i := 0; i < retries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := postgres.Probe(ctx, cfg.DatabaseURL)
		cancel()
		if err == nil {
			fmt.Println()
			fmt.Println("Primary database is ready!")
			return nil
		}

		fmt.Print(".")
		time.Sleep(1 * time.Second)
	}

	fmt.Println()
	return fmt.Errorf("primary database is not ready after %d seconds", retries)
}
