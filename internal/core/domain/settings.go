package domain

import "fmt"

const unknownDescription = "Unknown"

// AIProvider identifies an AI service provider for embeddings or
// generation.
type AIProvider string

// Available AI providers.
const (
	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"

	// AIProviderOpenAI is the OpenAI cloud API.
	AIProviderOpenAI AIProvider = "openai"

	// AIProviderAnthropic is the Anthropic cloud API.
	AIProviderAnthropic AIProvider = "anthropic"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderOllama, AIProviderOpenAI, AIProviderAnthropic:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderOpenAI || p == AIProviderAnthropic
}

// IsLocal returns true if this provider runs locally.
func (p AIProvider) IsLocal() bool {
	return p == AIProviderOllama
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderOllama:
		return "Ollama (local)"
	case AIProviderOpenAI:
		return "OpenAI (cloud)"
	case AIProviderAnthropic:
		return "Anthropic (cloud)"
	default:
		return unknownDescription
	}
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider.
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI).
	APIKey string
}

// IsConfigured returns true if the embedding provider is set up.
func (e EmbeddingSettings) IsConfigured() bool {
	if !e.Provider.IsValid() {
		return false
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return false
	}
	return true
}

// LLMSettings holds generation provider configuration.
type LLMSettings struct {
	// Provider is the generation service provider.
	Provider AIProvider

	// Model is the model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for OpenAI/Anthropic).
	APIKey string
}

// IsConfigured returns true if the generation provider is set up.
func (l LLMSettings) IsConfigured() bool {
	if !l.Provider.IsValid() {
		return false
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return false
	}
	return true
}

// Ingestion defaults.
const (
	// DefaultChunkSize is the target maximum characters per chunk.
	DefaultChunkSize = 1000

	// DefaultChunkOverlap is how many characters consecutive chunks share.
	DefaultChunkOverlap = 200

	// DefaultMaxFileMB is the per-file ingestion size cap in megabytes.
	DefaultMaxFileMB = 10
)

// Query defaults.
const (
	// DefaultTopK is how many chunks retrieval returns per question.
	DefaultTopK = 4

	// DefaultHistoryWindow is how many recent turns are injected into
	// the prompt as conversation context.
	DefaultHistoryWindow = 5
)

// IngestSettings holds ingestion pipeline configuration.
type IngestSettings struct {
	// ChunkSize is the target maximum characters per chunk.
	ChunkSize int

	// ChunkOverlap is how many characters consecutive chunks share.
	// Must be smaller than ChunkSize.
	ChunkOverlap int

	// MaxFileMB is the per-file size cap in megabytes.
	MaxFileMB int
}

// Validate checks the ingestion configuration for contradictions.
func (s IngestSettings) Validate() error {
	if s.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size must be positive", ErrInvalidInput)
	}
	if s.ChunkOverlap < 0 {
		return fmt.Errorf("%w: chunk overlap must not be negative", ErrInvalidInput)
	}
	if s.ChunkOverlap >= s.ChunkSize {
		return fmt.Errorf("%w: chunk overlap must be smaller than chunk size", ErrInvalidInput)
	}
	if s.MaxFileMB <= 0 {
		return fmt.Errorf("%w: max file size must be positive", ErrInvalidInput)
	}
	return nil
}

// MaxFileBytes returns the size cap in bytes.
func (s IngestSettings) MaxFileBytes() int64 {
	return int64(s.MaxFileMB) * 1024 * 1024
}

// QuerySettings holds retrieval and prompt configuration.
type QuerySettings struct {
	// TopK is how many chunks retrieval returns per question.
	TopK int

	// HistoryWindow is how many recent turns the prompt includes.
	HistoryWindow int
}

// Validate checks the query configuration for contradictions.
func (s QuerySettings) Validate() error {
	if s.TopK <= 0 {
		return fmt.Errorf("%w: top_k must be positive", ErrInvalidInput)
	}
	if s.HistoryWindow < 0 {
		return fmt.Errorf("%w: history window must not be negative", ErrInvalidInput)
	}
	return nil
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Embedding holds embedding provider settings.
	Embedding EmbeddingSettings

	// LLM holds generation provider settings.
	LLM LLMSettings

	// Ingest holds ingestion pipeline settings.
	Ingest IngestSettings

	// Query holds retrieval and prompt settings.
	Query QuerySettings
}

// DefaultAppSettings returns settings with local-first defaults: both
// providers point at a local Ollama instance so a fresh vault works
// without any cloud key.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Embedding: EmbeddingSettings{
			Provider: AIProviderOllama,
			Model:    "nomic-embed-text",
		},
		LLM: LLMSettings{
			Provider: AIProviderOllama,
			Model:    "llama3.2",
		},
		Ingest: IngestSettings{
			ChunkSize:    DefaultChunkSize,
			ChunkOverlap: DefaultChunkOverlap,
			MaxFileMB:    DefaultMaxFileMB,
		},
		Query: QuerySettings{
			TopK:          DefaultTopK,
			HistoryWindow: DefaultHistoryWindow,
		},
	}
}

// AllEmbeddingProviders returns providers that support embeddings.
func AllEmbeddingProviders() []AIProvider {
	return []AIProvider{
		AIProviderOllama,
		AIProviderOpenAI,
	}
}

// AllLLMProviders returns providers that support generation.
func AllLLMProviders() []AIProvider {
	return []AIProvider{
		AIProviderOllama,
		AIProviderOpenAI,
		AIProviderAnthropic,
	}
}

// DefaultEmbeddingModels returns default models for each embedding provider.
func DefaultEmbeddingModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama: "nomic-embed-text",
		AIProviderOpenAI: "text-embedding-3-small",
	}
}

// DefaultLLMModels returns default models for each generation provider.
func DefaultLLMModels() map[AIProvider]string {
	return map[AIProvider]string{
		AIProviderOllama:    "llama3.2",
		AIProviderOpenAI:    "gpt-4o-mini",
		AIProviderAnthropic: "claude-3-5-sonnet-latest",
	}
}

// EmbeddingDimensions returns the vector dimensions for known models.
func EmbeddingDimensions() map[string]int {
	return map[string]int{
		// Ollama models
		"nomic-embed-text":  768,
		"mxbai-embed-large": 1024,
		"all-minilm":        384,
		// OpenAI models
		"text-embedding-3-small": 1536,
		"text-embedding-3-large": 3072,
		"text-embedding-ada-002": 1536,
	}
}
