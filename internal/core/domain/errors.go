package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// Ingestion errors. Each is isolated to its file within a batch.

	// ErrUnsupportedFileType indicates a file extension outside the
	// supported set {.pdf, .txt, .docx, .doc, .md}.
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrFileTooLarge indicates a file over the ingestion size cap.
	// Oversized files are rejected before any load is attempted.
	ErrFileTooLarge = errors.New("file too large")

	// ErrDocumentLoad indicates a malformed or unreadable file.
	ErrDocumentLoad = errors.New("document load failed")

	// Provider errors.

	// ErrEmbeddingProvider indicates the embedding provider call failed.
	// During ingestion this fails the file; during a query it fails the
	// query with a structured result.
	ErrEmbeddingProvider = errors.New("embedding provider failed")

	// ErrGenerationProvider indicates the generation (LLM) call failed.
	ErrGenerationProvider = errors.New("generation provider failed")

	// ErrIndexUnavailable indicates the vector index could not serve a
	// request. Read-only introspection (count, source listing) degrades
	// to zero/empty instead of surfacing this to the caller.
	ErrIndexUnavailable = errors.New("vector index unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured or not reachable. Ingestion and querying both need it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the LLM service is not configured or
	// not reachable. Answer generation needs it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrStorageCorruption indicates the persisted chat history could
	// not be parsed. Recovered by treating the history as empty; never
	// fatal at startup.
	ErrStorageCorruption = errors.New("storage corrupted")
)
