// Package splitter cuts document text into fixed-size overlapping chunks.
package splitter

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters.
const DefaultChunkOverlap = 200

// boundaries lists cut preferences in order: paragraph, line, sentence,
// word. A chunk that would end mid-text is cut just after the latest
// boundary found in the tail half of the chunk instead.
var boundaries = []string{"\n\n", "\n", ". ", " "}

// Splitter splits document text into overlapping chunks.
// All sizes and offsets are measured in runes, not bytes.
// It implements the driven.Splitter interface.
type Splitter struct {
	chunkSize int
	overlap   int
}

// Option configures the splitter.
type Option func(*Splitter)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		if size > 0 {
			s.chunkSize = size
		}
	}
}

// WithOverlap sets the overlap between consecutive chunks in characters.
func WithOverlap(overlap int) Option {
	return func(s *Splitter) {
		if overlap >= 0 {
			s.overlap = overlap
		}
	}
}

// New creates a splitter with the given options.
func New(opts ...Option) *Splitter {
	s := &Splitter{
		chunkSize: DefaultChunkSize,
		overlap:   DefaultChunkOverlap,
	}

	for _, opt := range opts {
		opt(s)
	}

	// Ensure overlap doesn't exceed chunk size
	if s.overlap >= s.chunkSize {
		s.overlap = s.chunkSize / 4
	}

	return s
}

// Split cuts the document text into chunks. Splitting is deterministic:
// the same text and configuration always produce the same chunk sequence
// and offsets. Empty or whitespace-only text yields no chunks.
func (s *Splitter) Split(doc domain.Document) []domain.Chunk {
	if strings.TrimSpace(doc.Text) == "" {
		return nil
	}

	runes := []rune(doc.Text)
	total := len(runes)

	estimated := (total / (s.chunkSize - s.overlap)) + 1
	chunks := make([]domain.Chunk, 0, estimated)

	position := 0
	start := 0

	for start < total {
		end := start + s.chunkSize
		if end >= total {
			end = total
		} else {
			end = s.cut(runes, start, end)
		}

		chunks = append(chunks, domain.Chunk{
			ID:          uuid.New().String(),
			Text:        string(runes[start:end]),
			StartOffset: start,
			Position:    position,
			Source:      doc.Name,
			FileType:    doc.FileType,
			Page:        doc.Page,
			AddedAt:     doc.AddedAt,
		})
		position++

		if end == total {
			break
		}

		next := end - s.overlap
		if next <= start {
			// Overlap would rewind to or before the previous start;
			// step forward without overlap to guarantee progress.
			next = end
		}
		start = next
	}

	return chunks
}

// cut returns the end position for a chunk spanning [start, end).
// It prefers to cut just after the latest boundary in the tail half of the
// chunk, falling back to the hard limit when no boundary is found there.
func (s *Splitter) cut(runes []rune, start, end int) int {
	minEnd := start + s.chunkSize/2
	window := string(runes[minEnd:end])

	for _, sep := range boundaries {
		if i := strings.LastIndex(window, sep); i >= 0 {
			return minEnd + utf8.RuneCountInString(window[:i]) + len(sep)
		}
	}

	return end
}
