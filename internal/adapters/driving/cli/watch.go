package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and ingest new documents",
	Long: `Watches a directory and ingests supported files as they are created
or modified. Press Ctrl-C to stop.

Writes are debounced: a file is ingested once after it stops changing,
not once per write event. Unsupported file types are ignored.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "settle time before a changed file is ingested")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return notConfigured("ingestion not configured: set an embedding provider with 'kvault settings'")
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	w, err := watcher.New(watcher.Config{
		Dir:      dir,
		Ingestor: ingestService,
		Debounce: watchDebounce,
	})
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for documents. Press Ctrl-C to stop.\n", dir)
	return w.Run(ctx)
}
