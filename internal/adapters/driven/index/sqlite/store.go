// Package sqlite provides a SQLite-backed vector store. Entries live in
// a single table with the embedding serialised as a float32 blob;
// similarity search is brute-force cosine over all rows, which is fast
// enough for a personal vault and keeps the index dependency-free.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kvault-labs/kvault-cli/internal/adapters/driven/index/sqlite/migrations"
	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store is a SQLite-backed implementation of driven.VectorStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite vector store at the specified index
// directory. If indexDir is empty, defaults to ~/.kvault/index/vault.db.
func NewStore(indexDir string) (*Store, error) {
	if indexDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		indexDir = filepath.Join(home, ".kvault", "index")
	}

	// Ensure directory exists
	if err := os.MkdirAll(indexDir, 0700); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(indexDir, "vault.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// Add persists the given entries. Inserts are plain: the caller mints
// fresh chunk IDs, so re-ingesting a file appends new rows rather than
// replacing old ones.
func (s *Store) Add(ctx context.Context, entries []domain.IndexEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (id, text, start_offset, position, source, file_type, page, added_at, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		c := entry.Chunk
		var page sql.NullInt64
		if c.Page != nil {
			page = sql.NullInt64{Int64: int64(*c.Page), Valid: true}
		}

		if _, err := stmt.ExecContext(ctx, c.ID, c.Text, c.StartOffset, c.Position,
			c.Source, c.FileType.String(), page, c.AddedAt.UTC(),
			float32SliceToBytes(entry.Embedding)); err != nil {
			return fmt.Errorf("inserting entry %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing entries: %w", err)
	}
	return nil
}

// Search returns up to k chunks ranked by cosine similarity to the query
// vector, most similar first. All rows are scanned; for a single user's
// document collection that is a few thousand rows at most.
func (s *Store) Search(ctx context.Context, query []float32, k int) ([]domain.Chunk, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, start_offset, position, source, file_type, page, added_at, embedding
		FROM entries
	`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	type scored struct {
		chunk domain.Chunk
		score float32
	}

	var results []scored //nolint:prealloc // size unknown from query
	for rows.Next() {
		chunk, embedding, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, scored{
			chunk: chunk,
			score: cosineSimilarity(query, embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
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

// Count returns the total number of stored entries.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return count, nil
}

// Sources returns the distinct source names in alphabetical order.
func (s *Store) Sources(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT DISTINCT source FROM entries ORDER BY source")
	if err != nil {
		return nil, fmt.Errorf("querying sources: %w", err)
	}
	defer rows.Close()

	sources := []string{}
	for rows.Next() {
		var source string
		if err := rows.Scan(&source); err != nil {
			return nil, fmt.Errorf("scanning source: %w", err)
		}
		sources = append(sources, source)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sources: %w", err)
	}
	return sources, nil
}

// scanEntry scans one entry row into a chunk and its embedding.
func scanEntry(rows *sql.Rows) (domain.Chunk, []float32, error) {
	var chunk domain.Chunk
	var fileType string
	var page sql.NullInt64
	var addedAt sql.NullTime
	var embeddingBlob []byte

	if err := rows.Scan(&chunk.ID, &chunk.Text, &chunk.StartOffset, &chunk.Position,
		&chunk.Source, &fileType, &page, &addedAt, &embeddingBlob); err != nil {
		return domain.Chunk{}, nil, fmt.Errorf("scanning entry: %w", err)
	}

	chunk.FileType = domain.FileType(fileType)
	if page.Valid {
		p := int(page.Int64)
		chunk.Page = &p
	}
	if addedAt.Valid {
		chunk.AddedAt = addedAt.Time
	}

	return chunk, bytesToFloat32Slice(embeddingBlob), nil
}

// ==================== Helper Functions ====================

// float32SliceToBytes converts a []float32 to a byte slice for storage.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
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

	return dot / (float32(math.Sqrt(float64(normA))) * float32(math.Sqrt(float64(normB))))
}
