package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gatewayctl",
	Short: "Control the gateway's storage layer",
	Long: `gatewayctl manages the gateway's tiered storage layer.

Storage prefers the networked PostgreSQL database, falls back to an
embedded SQLite file, and finally to an in-memory store. Use the storage
subcommands to inspect and drive tier selection, and the db subcommands
to manage the PostgreSQL schema.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
