// Package domain defines the core business entities for kvault.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: One unit of loaded text with ingestion metadata
//   - Chunk: A bounded slice of a document, the unit of retrieval
//   - IndexEntry: A chunk paired with its embedding
//   - ChatTurn / SourceSnippet: One recorded question/answer exchange
//   - IngestReport / QueryResult: Structured operation outcomes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
