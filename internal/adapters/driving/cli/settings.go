package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// settingsKeys lists every configurable key in display order.
var settingsKeys = []string{
	"embedding.provider",
	"embedding.model",
	"embedding.base_url",
	"embedding.api_key",
	"llm.provider",
	"llm.model",
	"llm.base_url",
	"llm.api_key",
	"ingest.chunk_size",
	"ingest.chunk_overlap",
	"ingest.max_file_mb",
	"query.top_k",
	"query.history_window",
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage vault settings",
	Long: `View and configure AI providers, chunking and retrieval options.

Use subcommands to read or write individual keys, or run the
interactive wizard to configure the providers step by step.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings as key = value pairs",
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a single setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a single setting",
	Long: `Changes one setting by key. Run 'kvault settings list' for the
available keys.

API keys may be set without a value on the command line; the key is
then prompted for with echo disabled:

  kvault settings set llm.api_key

Switching a provider resets its model to the provider default. Cloud
providers need their API key stored before the switch.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure both AI providers step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsListCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Embedding]")
	cmd.Printf("  Provider: %s\n", settings.Embedding.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.Embedding.Model)
	if settings.Embedding.Provider.IsLocal() {
		cmd.Printf("  Base URL: %s\n", settings.Embedding.BaseURL)
	}
	if settings.Embedding.Provider.RequiresAPIKey() {
		if settings.Embedding.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.Embedding.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	status := "configured"
	if !settings.Embedding.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", settings.LLM.Provider.Description())
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	if settings.LLM.Provider.IsLocal() {
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	}
	if settings.LLM.Provider.RequiresAPIKey() {
		if settings.LLM.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
		} else {
			cmd.Printf("  API Key: (not set)\n")
		}
	}
	status = "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Ingestion]")
	cmd.Printf("  Chunk size: %d\n", settings.Ingest.ChunkSize)
	cmd.Printf("  Chunk overlap: %d\n", settings.Ingest.ChunkOverlap)
	cmd.Printf("  Max file size: %d MB\n", settings.Ingest.MaxFileMB)
	cmd.Println()

	cmd.Println("[Query]")
	cmd.Printf("  Top K: %d\n", settings.Query.TopK)
	cmd.Printf("  History window: %d\n", settings.Query.HistoryWindow)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'kvault settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	for _, key := range settingsKeys {
		value, err := settingValue(settings, key)
		if err != nil {
			return err
		}
		cmd.Printf("%s = %s\n", key, value)
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	value, err := settingValue(settings, args[0])
	if err != nil {
		return err
	}
	cmd.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	var value string
	switch {
	case len(args) == 2:
		value = args[1]
	case strings.HasSuffix(key, ".api_key"):
		cmd.Print("Enter API key: ")
		value = readPassword()
		cmd.Println()
		if value == "" {
			return errors.New("API key must not be empty")
		}
	default:
		return fmt.Errorf("value required for %s", key)
	}

	if err := setSetting(key, value); err != nil {
		return err
	}

	if strings.HasSuffix(key, ".api_key") {
		cmd.Printf("%s = %s\n", key, maskAPIKey(value))
	} else {
		cmd.Printf("%s = %s\n", key, value)
	}
	return nil
}

// setSetting routes one key change through the settings service so every
// write passes its validation.
func setSetting(key, value string) error {
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	switch key {
	case "embedding.provider":
		return settingsService.SetEmbeddingProvider(domain.AIProvider(value), "", settings.Embedding.APIKey)
	case "embedding.model":
		settings.Embedding.Model = value
	case "embedding.base_url":
		settings.Embedding.BaseURL = value
	case "embedding.api_key":
		settings.Embedding.APIKey = value
	case "llm.provider":
		return settingsService.SetLLMProvider(domain.AIProvider(value), "", settings.LLM.APIKey)
	case "llm.model":
		settings.LLM.Model = value
	case "llm.base_url":
		settings.LLM.BaseURL = value
	case "llm.api_key":
		settings.LLM.APIKey = value
	case "ingest.chunk_size", "ingest.chunk_overlap", "ingest.max_file_mb":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q", key, value)
		}
		ingest := settings.Ingest
		switch key {
		case "ingest.chunk_size":
			ingest.ChunkSize = n
		case "ingest.chunk_overlap":
			ingest.ChunkOverlap = n
		case "ingest.max_file_mb":
			ingest.MaxFileMB = n
		}
		return settingsService.SetIngestOptions(ingest.ChunkSize, ingest.ChunkOverlap, ingest.MaxFileMB)
	case "query.top_k", "query.history_window":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %q", key, value)
		}
		query := settings.Query
		if key == "query.top_k" {
			query.TopK = n
		} else {
			query.HistoryWindow = n
		}
		return settingsService.SetQueryOptions(query.TopK, query.HistoryWindow)
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}

	return settingsService.Save(settings)
}

// settingValue renders one key for display. API keys come back masked.
func settingValue(settings *domain.AppSettings, key string) (string, error) {
	switch key {
	case "embedding.provider":
		return settings.Embedding.Provider.String(), nil
	case "embedding.model":
		return settings.Embedding.Model, nil
	case "embedding.base_url":
		return settings.Embedding.BaseURL, nil
	case "embedding.api_key":
		if settings.Embedding.APIKey == "" {
			return "", nil
		}
		return maskAPIKey(settings.Embedding.APIKey), nil
	case "llm.provider":
		return settings.LLM.Provider.String(), nil
	case "llm.model":
		return settings.LLM.Model, nil
	case "llm.base_url":
		return settings.LLM.BaseURL, nil
	case "llm.api_key":
		if settings.LLM.APIKey == "" {
			return "", nil
		}
		return maskAPIKey(settings.LLM.APIKey), nil
	case "ingest.chunk_size":
		return strconv.Itoa(settings.Ingest.ChunkSize), nil
	case "ingest.chunk_overlap":
		return strconv.Itoa(settings.Ingest.ChunkOverlap), nil
	case "ingest.max_file_mb":
		return strconv.Itoa(settings.Ingest.MaxFileMB), nil
	case "query.top_k":
		return strconv.Itoa(settings.Query.TopK), nil
	case "query.history_window":
		return strconv.Itoa(settings.Query.HistoryWindow), nil
	default:
		return "", fmt.Errorf("unknown setting: %s", key)
	}
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("kvault Settings Wizard")
	cmd.Println("======================")
	cmd.Println()

	reader := bufio.NewReader(os.Stdin)

	cmd.Println("Step 1: Configure Embedding Provider")
	cmd.Println("------------------------------------")
	cmd.Println("Documents are embedded into vectors for retrieval. Pick the provider that generates them.")
	cmd.Println()
	if err := configureEmbeddingProvider(cmd, reader); err != nil {
		return err
	}

	cmd.Println("Step 2: Configure LLM Provider")
	cmd.Println("------------------------------")
	cmd.Println("Answers are generated by a language model. Pick the provider that runs it.")
	cmd.Println()
	if err := configureLLMProvider(cmd, reader); err != nil {
		return err
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

//nolint:dupl // Similar to configureLLMProvider but for embeddings - intentional for CLI flow clarity
func configureEmbeddingProvider(cmd *cobra.Command, reader *bufio.Reader) error {
	cmd.Println("Select Embedding Provider")
	providers := domain.AllEmbeddingProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selectedProvider := providers[idx-1]

	defaults := domain.DefaultEmbeddingModels()
	defaultModel := defaults[selectedProvider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetEmbeddingProvider(selectedProvider, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure embedding provider: %w", err)
	}

	cmd.Print("Validating configuration... ")
	if err := settingsService.ValidateEmbeddingConfig(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("embedding configuration validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Printf("Embedding provider configured: %s (%s)\n\n", selectedProvider.Description(), model)
	return nil
}

//nolint:dupl // Similar to configureEmbeddingProvider but for LLM - intentional for CLI flow clarity
func configureLLMProvider(cmd *cobra.Command, reader *bufio.Reader) error {
	cmd.Println("Select LLM Provider")
	providers := domain.AllLLMProviders()
	for i, p := range providers {
		cmd.Printf("  %d. %s\n", i+1, p.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	input := readLine(reader)
	idx := parseChoice(input, len(providers), 1)
	selectedProvider := providers[idx-1]

	defaults := domain.DefaultLLMModels()
	defaultModel := defaults[selectedProvider]
	cmd.Printf("Enter model name [%s]: ", defaultModel)
	model := readLine(reader)
	if model == "" {
		model = defaultModel
	}

	var apiKey string
	if selectedProvider.RequiresAPIKey() {
		cmd.Print("Enter API key: ")
		apiKey = readPassword()
		cmd.Println()
		if apiKey == "" {
			return errors.New("API key is required for this provider")
		}
	}

	if err := settingsService.SetLLMProvider(selectedProvider, model, apiKey); err != nil {
		return fmt.Errorf("failed to configure LLM provider: %w", err)
	}

	cmd.Print("Validating configuration... ")
	if err := settingsService.ValidateLLMConfig(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		return fmt.Errorf("LLM configuration validation failed: %w", err)
	}
	cmd.Println("OK")

	cmd.Printf("LLM provider configured: %s (%s)\n\n", selectedProvider.Description(), model)
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
