package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// storageCmd represents the storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Inspect and drive storage tier selection",
	Long:  `Inspect and drive the tiered storage layer.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'storage' requires a subcommand (status, stats, wait, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(storageCmd)
}
