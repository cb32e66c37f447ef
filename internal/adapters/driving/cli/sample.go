package cli

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed sample_document.md
var sampleDocument []byte

const sampleFileName = "getting_started.md"

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Create and ingest a sample document",
	Long: `Writes a bundled getting-started document into the vault's storage
root and ingests it, so a fresh vault has something to ask questions about.`,
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return notConfigured("ingestion not configured: set an embedding provider with 'kvault settings'")
	}
	if storageRoot == "" {
		return errors.New("storage root not configured")
	}

	dir := filepath.Join(storageRoot, "sample")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create sample directory: %w", err)
	}

	path := filepath.Join(dir, sampleFileName)
	if err := os.WriteFile(path, sampleDocument, 0600); err != nil {
		return fmt.Errorf("write sample document: %w", err)
	}

	cmd.Printf("Sample document written to %s\n", path)

	report, err := ingestService.AddDocuments(context.Background(), []string{path})
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}
	if report.Failed > 0 {
		return fmt.Errorf("sample ingest failed: %s", strings.Join(report.Errors, "; "))
	}

	cmd.Println(`Sample document ingested. Try: kvault ask "How do I use this system?"`)
	return nil
}
