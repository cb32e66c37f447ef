package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kvault-labs/kvault-cli/internal/loaders/pdf"
)

const statusPingTimeout = 5 * time.Second

// pinger is the slice of the provider interfaces the status display needs.
type pinger interface {
	ModelName() string
	Ping(ctx context.Context) error
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show vault health and storage details",
	Long: `Reports index size, storage locations and provider connectivity.
Provider checks ping the configured endpoints with a short timeout, so
an unreachable provider slows this command down rather than failing it.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	ctx := context.Background()
	count := indexService.Count(ctx)
	sources := indexService.Sources(ctx)

	if storageRoot != "" {
		cmd.Println("Storage:")
		cmd.Printf("  Root:    %s\n", storageRoot)
		cmd.Printf("  Index:   %s\n", filepath.Join(storageRoot, "index"))
		cmd.Printf("  History: %s\n", filepath.Join(storageRoot, "chat_history.json"))
		cmd.Printf("  Config:  %s\n", filepath.Join(storageRoot, "config.toml"))
		cmd.Println()
	}

	cmd.Println("Index:")
	cmd.Printf("  %d chunk(s) from %d document(s)\n", count, len(sources))
	cmd.Println()

	cmd.Println("Providers:")
	cmd.Printf("  Embedding: %s\n", providerStatus(ctx, embeddingService))
	cmd.Printf("  LLM:       %s\n", providerStatus(ctx, llmService))
	cmd.Println()

	cmd.Println("Tools:")
	if err := pdf.CheckAvailable(); err != nil {
		cmd.Println("  pdftotext: missing (PDF ingestion unavailable)")
		cmd.Println()
		cmd.Println(pdf.InstallInstructions())
	} else {
		cmd.Println("  pdftotext: ok")
	}

	return nil
}

func providerStatus(ctx context.Context, svc pinger) string {
	if svc == nil {
		return "not configured"
	}

	pingCtx, cancel := context.WithTimeout(ctx, statusPingTimeout)
	defer cancel()

	if err := svc.Ping(pingCtx); err != nil {
		return fmt.Sprintf("%s (unreachable: %v)", svc.ModelName(), err)
	}
	return fmt.Sprintf("%s (ok)", svc.ModelName())
}
