package driven

import "github.com/kvault-labs/kvault-cli/internal/core/domain"

// AIConfigValidator checks provider settings against the live provider
// before the vault commits to them. Nil or unconfigured settings pass.
type AIConfigValidator interface {
	// ValidateEmbedding pings the embedding provider with the given settings.
	ValidateEmbedding(settings *domain.EmbeddingSettings) error

	// ValidateLLM pings the answer-model provider with the given settings.
	ValidateLLM(settings *domain.LLMSettings) error
}
