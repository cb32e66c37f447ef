// Package memory provides an in-memory VectorStore for testing.
package memory

import (
	"context"
	"math"
	"sort"
	"sync"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

// VectorStore is an in-memory implementation of driven.VectorStore for
// testing. Ranking mirrors the SQLite adapter: brute-force cosine
// similarity over all entries.
type VectorStore struct {
	mu      sync.RWMutex
	entries []domain.IndexEntry
}

// NewVectorStore creates a new in-memory vector store.
func NewVectorStore() *VectorStore {
	return &VectorStore{}
}

// Add appends the entries.
func (s *VectorStore) Add(_ context.Context, entries []domain.IndexEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	return nil
}

// Search returns up to k chunks ranked by cosine similarity to the query
// vector, most similar first.
func (s *VectorStore) Search(_ context.Context, query []float32, k int) ([]domain.Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		chunk domain.Chunk
		score float32
	}

	results := make([]scored, 0, len(s.entries))
	for _, entry := range s.entries {
		results = append(results, scored{
			chunk: entry.Chunk,
			score: cosineSimilarity(query, entry.Embedding),
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})

	if k > len(results) {
		k = len(results)
	}

	chunks := make([]domain.Chunk, k)
	for i := 0; i < k; i++ {
		chunks[i] = results[i].chunk
	}
	return chunks, nil
}

// Count returns the number of stored entries.
func (s *VectorStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// Sources returns the distinct source names in alphabetical order.
func (s *VectorStore) Sources(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	for _, entry := range s.entries {
		seen[entry.Chunk.Source] = true
	}

	sources := make([]string, 0, len(seen))
	for source := range seen {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources, nil
}

// Close releases resources (no-op for memory store).
func (s *VectorStore) Close() error {
	return nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 when either vector has zero magnitude or lengths differ.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float32
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (sqrt32(normA) * sqrt32(normB))
}

func sqrt32(f float32) float32 {
	return float32(math.Sqrt(float64(f)))
}
