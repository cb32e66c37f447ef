package driven

import "context"

// EmbeddingService turns chunk and question text into vectors. It only
// generates vectors; VectorStore persists and searches them.
//
// Providers: Ollama (nomic-embed-text, mxbai-embed-large) and OpenAI
// (text-embedding-3-small, text-embedding-3-large).
type EmbeddingService interface {
	// Embed returns the vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch returns vectors for several texts in one provider call.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions reports the vector size the model produces. All entries
	// in a vault index must share it.
	Dimensions() int

	// ModelName reports which model produced the vectors.
	ModelName() string

	// Ping makes a lightweight request to confirm the provider is reachable.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
