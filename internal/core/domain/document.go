package domain

import "time"

// Document is one unit of loaded text with its ingestion metadata.
// Loaders emit one Document per file, except the PDF loader which emits
// one per page (Page set, 1-based). A Document is immutable once loaded;
// re-ingesting the same file produces new Documents rather than mutating
// old ones.
type Document struct {
	// Name is the base name of the originating file.
	Name string

	// Text is the full extracted text of this unit.
	Text string

	// FileType is the closed format variant parsed from the extension.
	FileType FileType

	// Page is the 1-based page number for paginated formats, nil otherwise.
	Page *int

	// AddedAt is when the document was ingested.
	AddedAt time.Time
}

// Chunk is a bounded contiguous slice of a Document's text, the unit of
// embedding and retrieval. Chunks are derived deterministically by the
// splitter and are immutable; the vector index owns them after insertion.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Text is the chunk content.
	Text string

	// StartOffset is the rune offset of the chunk's first character
	// within the originating Document's text.
	StartOffset int

	// Position is the ordinal position within the document.
	Position int

	// Source is the originating Document's Name.
	Source string

	// FileType is inherited from the originating Document.
	FileType FileType

	// Page is inherited from the originating Document, nil when absent.
	Page *int

	// AddedAt is inherited from the originating Document.
	AddedAt time.Time
}

// IndexEntry pairs a chunk with its embedding vector. It is the unit of
// persistence in the vector index: the embedding is computed once at
// insertion time and never recomputed unless the chunk is re-inserted.
type IndexEntry struct {
	Chunk Chunk

	// Embedding is the vector representation of Chunk.Text.
	Embedding []float32
}
