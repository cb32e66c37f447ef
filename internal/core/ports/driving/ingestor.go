package driving

import (
	"context"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// Ingestor adds documents to the vault.
type Ingestor interface {
	// AddDocuments loads, splits, embeds and indexes the given files.
	// Per-file failures never abort the batch; they are collected in the
	// report in submission order. The error return covers context
	// cancellation only.
	AddDocuments(ctx context.Context, paths []string) (*domain.IngestReport, error)
}
