package driven

import "github.com/kvault-labs/kvault-cli/internal/core/domain"

// Splitter cuts document text into overlapping chunks ready for embedding.
// Splitting is deterministic: the same document and configuration always
// produce the same chunk sequence and offsets.
type Splitter interface {
	// Split returns the chunks for the given document in text order.
	// Empty or whitespace-only text yields no chunks.
	Split(doc domain.Document) []domain.Chunk
}
