package services

import (
	"context"
	"fmt"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driving"
	"github.com/kvault-labs/kvault-cli/internal/logger"
)

// Ensure IndexService implements the interfaces.
var (
	_ driving.IndexReader = (*IndexService)(nil)
	_ Indexer             = (*IndexService)(nil)
)

// Indexer is the write/search surface of the vector index consumed by
// the ingestion and query pipelines.
type Indexer interface {
	// Add embeds the chunks and persists the resulting entries.
	Add(ctx context.Context, chunks []domain.Chunk) error

	// Search returns up to k chunks most relevant to the query text,
	// most relevant first.
	Search(ctx context.Context, query string, k int) ([]domain.Chunk, error)
}

// IndexService is the vector index: it pairs the embedding provider with
// the vector store so callers never handle raw vectors. Insertion is
// append-only; fresh chunk IDs mean a re-ingested file adds new entries
// rather than overwriting old ones.
type IndexService struct {
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewIndexService creates a new vector index service.
func NewIndexService(embedder driven.EmbeddingService, store driven.VectorStore) *IndexService {
	return &IndexService{
		embedder: embedder,
		store:    store,
	}
}

// Add embeds every chunk text in one batch and persists the entries.
func (s *IndexService) Add(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	logger.Debug("Embedding %d chunks", len(chunks))
	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEmbeddingProvider, err)
	}
	if len(embeddings) != len(chunks) {
		return fmt.Errorf("%w: got %d embeddings for %d chunks",
			domain.ErrEmbeddingProvider, len(embeddings), len(chunks))
	}

	entries := make([]domain.IndexEntry, len(chunks))
	for i, c := range chunks {
		entries[i] = domain.IndexEntry{Chunk: c, Embedding: embeddings[i]}
	}

	if err := s.store.Add(ctx, entries); err != nil {
		return fmt.Errorf("store index entries: %w", err)
	}

	logger.Debug("Indexed %d entries", len(entries))
	return nil
}

// Search embeds the query text and returns up to k most similar chunks,
// most relevant first. k <= 0 falls back to the default.
func (s *IndexService) Search(ctx context.Context, query string, k int) ([]domain.Chunk, error) {
	if k <= 0 {
		k = domain.DefaultTopK
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingProvider, err)
	}

	chunks, err := s.store.Search(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("search index: %w", err)
	}

	logger.Debug("Retrieved %d chunks for query", len(chunks))
	return chunks, nil
}

// Count returns the number of indexed chunks. Storage failures degrade
// to zero with a logged warning; status displays never crash the CLI.
func (s *IndexService) Count(ctx context.Context) int {
	n, err := s.store.Count(ctx)
	if err != nil {
		logger.Warn("Index count unavailable: %v", err)
		return 0
	}
	return n
}

// Sources returns the distinct source document names alphabetically.
// Storage failures degrade to an empty list with a logged warning.
func (s *IndexService) Sources(ctx context.Context) []string {
	sources, err := s.store.Sources(ctx)
	if err != nil {
		logger.Warn("Source listing unavailable: %v", err)
		return []string{}
	}
	return sources
}
