package ai

import (
	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
)

var _ driven.AIConfigValidator = (*ConfigValidator)(nil)

// ConfigValidator checks provider settings by connecting to the provider.
// It exposes the package-level validation functions through the driven
// port used by the settings service.
type ConfigValidator struct{}

// NewConfigValidator returns a validator backed by live provider pings.
func NewConfigValidator() *ConfigValidator {
	return &ConfigValidator{}
}

// ValidateEmbedding pings the configured embedding provider. Nil or
// unconfigured settings pass without a network call.
func (v *ConfigValidator) ValidateEmbedding(settings *domain.EmbeddingSettings) error {
	return ValidateEmbeddingConfig(settings)
}

// ValidateLLM pings the configured answer-model provider. Nil or
// unconfigured settings pass without a network call.
func (v *ConfigValidator) ValidateLLM(settings *domain.LLMSettings) error {
	return ValidateLLMConfig(settings)
}
