package driven

import (
	"context"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// VectorStore persists (chunk, embedding) entries and serves similarity
// search over them. It is the narrow contract behind which the index
// engine lives; callers never see engine-specific types.
type VectorStore interface {
	// Add persists the given entries. Append-only from the caller's
	// perspective: existing entries are never overwritten implicitly.
	Add(ctx context.Context, entries []domain.IndexEntry) error

	// Search returns up to k chunks ranked by similarity to the query
	// vector, most relevant first.
	Search(ctx context.Context, query []float32, k int) ([]domain.Chunk, error)

	// Count returns the total number of stored entries.
	Count(ctx context.Context) (int, error)

	// Sources returns the distinct source names across all entries,
	// alphabetically sorted.
	Sources(ctx context.Context) ([]string, error)

	// Close releases resources.
	Close() error
}
