package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvault-labs/kvault-cli/internal/adapters/driven/config/memory"
	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockAIConfigValidator implements driven.AIConfigValidator for testing.
type mockAIConfigValidator struct {
	embedErr error
	llmErr   error
	embedCfg *domain.EmbeddingSettings
	llmCfg   *domain.LLMSettings
}

func (m *mockAIConfigValidator) ValidateEmbedding(config *domain.EmbeddingSettings) error {
	m.embedCfg = config
	return m.embedErr
}

func (m *mockAIConfigValidator) ValidateLLM(config *domain.LLMSettings) error {
	m.llmCfg = config
	return m.llmErr
}

// --- Test helpers ---

func newTestSettingsService() (*SettingsService, *memory.ConfigStore) {
	store := memory.NewConfigStore()
	return NewSettingsService(store, nil), store
}

// --- Tests ---

func TestSettingsService_Get_Defaults(t *testing.T) {
	service, _ := newTestSettingsService()

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOllama, settings.Embedding.Provider)
	assert.Equal(t, "nomic-embed-text", settings.Embedding.Model)
	assert.Empty(t, settings.Embedding.BaseURL)
	assert.Empty(t, settings.Embedding.APIKey)
	assert.Equal(t, domain.AIProviderOllama, settings.LLM.Provider)
	assert.Equal(t, "llama3.2", settings.LLM.Model)
	assert.Equal(t, domain.DefaultChunkSize, settings.Ingest.ChunkSize)
	assert.Equal(t, domain.DefaultChunkOverlap, settings.Ingest.ChunkOverlap)
	assert.Equal(t, domain.DefaultMaxFileMB, settings.Ingest.MaxFileMB)
	assert.Equal(t, domain.DefaultTopK, settings.Query.TopK)
	assert.Equal(t, domain.DefaultHistoryWindow, settings.Query.HistoryWindow)
}

func TestSettingsService_Get_InvalidStoredProviderFallsBack(t *testing.T) {
	service, store := newTestSettingsService()
	require.NoError(t, store.Set("embedding.provider", "gemini"))

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOllama, settings.Embedding.Provider)
}

func TestSettingsService_SaveAndGet_RoundTrip(t *testing.T) {
	service, _ := newTestSettingsService()

	saved := &domain.AppSettings{
		Embedding: domain.EmbeddingSettings{
			Provider: domain.AIProviderOpenAI,
			Model:    "text-embedding-3-small",
			APIKey:   "sk-test",
		},
		LLM: domain.LLMSettings{
			Provider: domain.AIProviderAnthropic,
			Model:    "claude-3-5-sonnet-latest",
			APIKey:   "sk-ant-test",
		},
		Ingest: domain.IngestSettings{ChunkSize: 800, ChunkOverlap: 100, MaxFileMB: 5},
		Query:  domain.QuerySettings{TopK: 6, HistoryWindow: 3},
	}
	require.NoError(t, service.Save(saved))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, saved.Embedding, got.Embedding)
	assert.Equal(t, saved.LLM, got.LLM)
	assert.Equal(t, saved.Ingest, got.Ingest)
	assert.Equal(t, saved.Query, got.Query)
}

func TestSettingsService_Save_KeepsExistingAPIKeyWhenEmpty(t *testing.T) {
	service, store := newTestSettingsService()
	require.NoError(t, store.Set("embedding.api_key", "sk-existing"))

	settings, err := service.Get()
	require.NoError(t, err)
	settings.Embedding.APIKey = ""
	require.NoError(t, service.Save(settings))

	assert.Equal(t, "sk-existing", store.GetString("embedding.api_key"))
}

func TestSettingsService_SetEmbeddingProvider_OllamaDefaults(t *testing.T) {
	service, _ := newTestSettingsService()

	require.NoError(t, service.SetEmbeddingProvider(domain.AIProviderOllama, "", ""))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOllama, settings.Embedding.Provider)
	assert.Equal(t, "nomic-embed-text", settings.Embedding.Model)
	assert.Equal(t, "http://localhost:11434", settings.Embedding.BaseURL)
}

func TestSettingsService_SetEmbeddingProvider_OpenAI(t *testing.T) {
	service, _ := newTestSettingsService()

	require.NoError(t, service.SetEmbeddingProvider(domain.AIProviderOpenAI, "", "sk-test"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderOpenAI, settings.Embedding.Provider)
	assert.Equal(t, "text-embedding-3-small", settings.Embedding.Model)
	assert.Empty(t, settings.Embedding.BaseURL)
	assert.Equal(t, "sk-test", settings.Embedding.APIKey)
}

func TestSettingsService_SetEmbeddingProvider_CustomModelKept(t *testing.T) {
	service, _ := newTestSettingsService()

	require.NoError(t, service.SetEmbeddingProvider(domain.AIProviderOllama, "mxbai-embed-large", ""))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "mxbai-embed-large", settings.Embedding.Model)
}

func TestSettingsService_SetEmbeddingProvider_RequiresAPIKey(t *testing.T) {
	service, _ := newTestSettingsService()

	err := service.SetEmbeddingProvider(domain.AIProviderOpenAI, "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key required")
}

func TestSettingsService_SetEmbeddingProvider_Invalid(t *testing.T) {
	service, _ := newTestSettingsService()

	err := service.SetEmbeddingProvider("gemini", "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid embedding provider")
}

func TestSettingsService_SetEmbeddingProvider_NoEmbeddingSupport(t *testing.T) {
	service, _ := newTestSettingsService()

	err := service.SetEmbeddingProvider(domain.AIProviderAnthropic, "", "sk-ant-test")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not support embeddings")
}

func TestSettingsService_SetLLMProvider_AnthropicDefaults(t *testing.T) {
	service, _ := newTestSettingsService()

	require.NoError(t, service.SetLLMProvider(domain.AIProviderAnthropic, "", "sk-ant-test"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.AIProviderAnthropic, settings.LLM.Provider)
	assert.Equal(t, "claude-3-5-sonnet-latest", settings.LLM.Model)
	assert.Empty(t, settings.LLM.BaseURL)
	assert.Equal(t, "sk-ant-test", settings.LLM.APIKey)
}

func TestSettingsService_SetLLMProvider_OllamaBaseURL(t *testing.T) {
	service, _ := newTestSettingsService()

	require.NoError(t, service.SetLLMProvider(domain.AIProviderOllama, "llama3.2", ""))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:11434", settings.LLM.BaseURL)
}

func TestSettingsService_SetLLMProvider_RequiresAPIKey(t *testing.T) {
	service, _ := newTestSettingsService()

	err := service.SetLLMProvider(domain.AIProviderOpenAI, "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key required")
}

func TestSettingsService_SetIngestOptions(t *testing.T) {
	service, _ := newTestSettingsService()

	require.NoError(t, service.SetIngestOptions(800, 100, 5))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 800, settings.Ingest.ChunkSize)
	assert.Equal(t, 100, settings.Ingest.ChunkOverlap)
	assert.Equal(t, 5, settings.Ingest.MaxFileMB)
}

func TestSettingsService_SetIngestOptions_Invalid(t *testing.T) {
	service, _ := newTestSettingsService()

	tests := []struct {
		name      string
		size      int
		overlap   int
		maxFileMB int
	}{
		{"zero chunk size", 0, 100, 10},
		{"negative overlap", 1000, -1, 10},
		{"overlap not smaller than size", 500, 500, 10},
		{"zero max file size", 1000, 200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.SetIngestOptions(tt.size, tt.overlap, tt.maxFileMB)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_SetQueryOptions(t *testing.T) {
	service, _ := newTestSettingsService()

	require.NoError(t, service.SetQueryOptions(6, 3))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 6, settings.Query.TopK)
	assert.Equal(t, 3, settings.Query.HistoryWindow)
}

func TestSettingsService_SetQueryOptions_Invalid(t *testing.T) {
	service, _ := newTestSettingsService()

	require.Error(t, service.SetQueryOptions(0, 5))
	require.Error(t, service.SetQueryOptions(4, -1))
}

func TestSettingsService_Validate_DefaultsAreUsable(t *testing.T) {
	service, _ := newTestSettingsService()

	// Local-first defaults need no API key, so a fresh vault validates.
	assert.NoError(t, service.Validate())
}

func TestSettingsService_Validate_CloudProviderWithoutKey(t *testing.T) {
	service, store := newTestSettingsService()
	require.NoError(t, store.Set("embedding.provider", "openai"))

	err := service.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding provider is not configured")
	assert.Contains(t, err.Error(), "kvault settings")
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service, _ := newTestSettingsService()

	defaults := service.GetDefaults()

	assert.Equal(t, domain.DefaultAppSettings(), defaults)
}

func TestSettingsService_ValidateEmbeddingConfig(t *testing.T) {
	store := memory.NewConfigStore()
	validator := &mockAIConfigValidator{}
	service := NewSettingsService(store, validator)

	require.NoError(t, service.ValidateEmbeddingConfig())
	require.NotNil(t, validator.embedCfg)
	assert.Equal(t, domain.AIProviderOllama, validator.embedCfg.Provider)
}

func TestSettingsService_ValidateEmbeddingConfig_ProviderDown(t *testing.T) {
	store := memory.NewConfigStore()
	validator := &mockAIConfigValidator{embedErr: errors.New("connection refused")}
	service := NewSettingsService(store, validator)

	err := service.ValidateEmbeddingConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSettingsService_ValidateLLMConfig(t *testing.T) {
	store := memory.NewConfigStore()
	validator := &mockAIConfigValidator{llmErr: errors.New("model not found")}
	service := NewSettingsService(store, validator)

	err := service.ValidateLLMConfig()

	require.Error(t, err)
	require.NotNil(t, validator.llmCfg)
	assert.Contains(t, err.Error(), "model not found")
}

func TestSettingsService_ValidateConfigs_NilValidator(t *testing.T) {
	service, _ := newTestSettingsService()

	assert.NoError(t, service.ValidateEmbeddingConfig())
	assert.NoError(t, service.ValidateLLMConfig())
}
