package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [file]...",
	Short: "Add documents to the vault",
	Long: `Loads, splits, embeds and indexes the given files.
Supported formats: PDF (.pdf), plain text (.txt), Word (.docx, .doc)
and Markdown (.md).

Per-file failures never abort the batch; the remaining files are still
ingested and the failures reported at the end.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return notConfigured("ingestion not configured: set an embedding provider with 'kvault settings'")
	}

	ctx := context.Background()
	report, err := ingestService.AddDocuments(ctx, args)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Processed %d file(s), %d failed.\n", report.Processed, report.Failed)
	for _, msg := range report.Errors {
		cmd.Printf("  %s\n", msg)
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d file(s) failed", report.Failed)
	}
	return nil
}
