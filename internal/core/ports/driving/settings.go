package driving

import "github.com/kvault-labs/kvault-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetEmbeddingProvider configures the embedding provider.
	SetEmbeddingProvider(provider domain.AIProvider, model, apiKey string) error

	// SetLLMProvider configures the generation provider.
	SetLLMProvider(provider domain.AIProvider, model, apiKey string) error

	// SetIngestOptions updates chunking and file-size limits.
	SetIngestOptions(chunkSize, chunkOverlap, maxFileMB int) error

	// SetQueryOptions updates retrieval and prompt-window limits.
	SetQueryOptions(topK, historyWindow int) error

	// Validate checks that current settings are complete and consistent.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateEmbeddingConfig validates the current embedding configuration by pinging the provider.
	ValidateEmbeddingConfig() error

	// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
	ValidateLLMConfig() error
}
