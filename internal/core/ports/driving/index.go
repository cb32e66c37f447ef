package driving

import "context"

// IndexReader exposes read-only index statistics to external actors.
// Both methods degrade rather than fail: storage errors are logged and
// reported as zero / empty so status displays never crash the CLI.
type IndexReader interface {
	// Count returns the number of indexed chunks, 0 on storage failure.
	Count(ctx context.Context) int

	// Sources returns the distinct source document names alphabetically,
	// empty on storage failure.
	Sources(ctx context.Context) []string
}
