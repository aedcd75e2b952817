package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/PattemChaitanya/custom-gateway/pkg/config"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage"
	"github.com/PattemChaitanya/custom-gateway/pkg/storage/tiered"
)

// storageWatchCmd represents the storage watch command
var storageWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a trigger file and reinitialize storage when it changes",
	Long: `Watch a trigger file and rerun tier selection when it changes.

To trigger reinitialization, write to the watched file. Writing a tier
name (primary, secondary, tertiary) forces selection to start at that
tier; an empty file means the full sweep.

Example:
  gatewayctl storage watch /run/gateway/storage/reinit`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]

		if err := watchStorage(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch storage trigger: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	storageCmd.AddCommand(storageWatchCmd)
}

func watchStorage(filename string) error {
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

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for reinitialization triggers (active tier: %s)\n", filename, manager.ActiveTier())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] Trigger modified, reinitializing storage...\n", time.Now().Format(time.RFC3339))

				forceTier, err := readForceTier(filename)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error reading trigger: %v\n", err)
					continue
				}

				if err := manager.Reinitialize(ctx, forceTier); err != nil {
					fmt.Fprintf(os.Stderr, "Error reinitializing storage: %v\n", err)
				} else {
					fmt.Printf("Storage reinitialized, active tier: %s\n", manager.ActiveTier())
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}

func readForceTier(filename string) (storage.Tier, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return storage.TierNone, err
	}
	name := strings.TrimSpace(string(content))
	if name == "" {
		return storage.TierNone, nil
	}
	tier, err := storage.TierString(name)
	if err != nil {
		return storage.TierNone, fmt.Errorf("unknown tier %q", name)
	}
	return tier, nil
}
