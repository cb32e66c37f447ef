// Command kvault is a personal knowledge vault: it ingests documents,
// indexes them locally, and answers questions grounded in their content.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kvault-labs/kvault-cli/internal/adapters/driven/ai"
	configfile "github.com/kvault-labs/kvault-cli/internal/adapters/driven/config/file"
	historyfile "github.com/kvault-labs/kvault-cli/internal/adapters/driven/history/file"
	"github.com/kvault-labs/kvault-cli/internal/adapters/driven/index/sqlite"
	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/cli"
	"github.com/kvault-labs/kvault-cli/internal/core/services"
	"github.com/kvault-labs/kvault-cli/internal/loaders"
	"github.com/kvault-labs/kvault-cli/internal/logger"
	"github.com/kvault-labs/kvault-cli/internal/splitter"
)

func main() {
	cli.SetServicesBuilder(buildServices)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildServices assembles the application around the vault directory.
// Unconfigured or misconfigured providers leave the dependent services
// nil rather than failing construction: the commands report what is
// missing, and 'kvault settings' stays reachable to fix it.
func buildServices(home string) (*cli.Services, error) {
	root, err := resolveRoot(home)
	if err != nil {
		return nil, fmt.Errorf("resolve vault directory: %w", err)
	}

	configStore, err := configfile.NewConfigStore(root)
	if err != nil {
		return nil, fmt.Errorf("open config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())

	app, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	embedder, err := ai.CreateEmbeddingService(&app.Embedding)
	if err != nil {
		logger.Warn("Embedding provider unavailable: %v", err)
	}

	llm, err := ai.CreateLLMService(&app.LLM)
	if err != nil {
		logger.Warn("LLM provider unavailable: %v", err)
	}

	store, err := sqlite.NewStore(filepath.Join(root, "index"))
	if err != nil {
		return nil, fmt.Errorf("open vector store: %w", err)
	}

	historyStore, err := historyfile.NewHistoryStore(root)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	memory := services.NewConversationMemory(historyStore)

	index := services.NewIndexService(embedder, store)

	svcs := &cli.Services{
		Index:       index,
		History:     memory,
		Settings:    settingsService,
		Embedding:   embedder,
		LLM:         llm,
		StorageRoot: root,
	}

	// Ingestion needs an embedder; querying needs an LLM on top of it.
	if embedder != nil {
		split := splitter.New(
			splitter.WithChunkSize(app.Ingest.ChunkSize),
			splitter.WithOverlap(app.Ingest.ChunkOverlap),
		)
		svcs.Ingestor = services.NewIngestService(loaders.DefaultRegistry(), split, index, app.Ingest)

		if llm != nil {
			querier := services.NewQueryService(index, llm, memory, app.Query)

			promptStore, err := configfile.NewPromptStore(filepath.Join(root, "prompts"))
			if err != nil {
				logger.Warn("Prompt store unavailable, using built-in prompts: %v", err)
			} else {
				querier.SetPromptStore(promptStore)
			}

			svcs.Querier = querier
		}
	}

	return svcs, nil
}

// resolveRoot expands the vault directory, defaulting to ~/.kvault.
func resolveRoot(home string) (string, error) {
	if home != "" {
		return home, nil
	}

	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, ".kvault"), nil
}
