// Package cli implements the kvault command-line interface.
//
// Commands are package-level cobra vars registered in init and dispatch to
// package-level service vars. main wires the services through
// SetServicesBuilder so the --home flag can move the storage root before
// anything touches disk; tests install mocks with SetServices directly.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driving"
	"github.com/kvault-labs/kvault-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Wired services. Commands nil-check before use so a partially configured
// vault fails with guidance instead of panicking.
var (
	ingestService   driving.Ingestor
	queryService    driving.Querier
	indexService    driving.IndexReader
	historyService  driving.History
	settingsService driving.SettingsService

	embeddingService driven.EmbeddingService
	llmService       driven.LLMService

	storageRoot string
)

var (
	verbose   bool
	vaultHome string

	servicesBuilder func(home string) (*Services, error)
	servicesWired   bool
)

// Services bundles everything the commands dispatch to.
type Services struct {
	Ingestor driving.Ingestor
	Querier  driving.Querier
	Index    driving.IndexReader
	History  driving.History
	Settings driving.SettingsService

	// Providers are optional here; status pings them when present.
	Embedding driven.EmbeddingService
	LLM       driven.LLMService

	// StorageRoot is the resolved vault directory.
	StorageRoot string
}

var rootCmd = &cobra.Command{
	Use:   "kvault",
	Short: "Personal knowledge vault with grounded answers",
	Long: `kvault ingests your documents (PDF, Word, Markdown, plain text),
indexes them locally, and answers questions grounded in their content.

Everything stays on your machine: documents are split into chunks, embedded
into a local vector index, and answers cite the source files they came from.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&vaultHome, "home", "", "vault storage root (default ~/.kvault, env KVAULT_HOME)")
}

// initServices wires the application once flags are parsed.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if servicesBuilder == nil || servicesWired {
		return nil
	}

	home := vaultHome
	if home == "" {
		home = os.Getenv("KVAULT_HOME")
	}

	svcs, err := servicesBuilder(home)
	if err != nil {
		return err
	}

	SetServices(svcs)
	servicesWired = true
	return nil
}

// SetServicesBuilder installs the wiring function invoked after flag parsing.
func SetServicesBuilder(build func(home string) (*Services, error)) {
	servicesBuilder = build
}

// SetServices installs wired services for all commands.
func SetServices(s *Services) {
	ingestService = s.Ingestor
	queryService = s.Querier
	indexService = s.Index
	historyService = s.History
	settingsService = s.Settings
	embeddingService = s.Embedding
	llmService = s.LLM
	storageRoot = s.StorageRoot
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// notConfigured builds the error for a command whose service is missing.
// Settings validation runs first so the user gets provider-specific
// guidance when that is the actual cause.
func notConfigured(fallback string) error {
	if settingsService != nil {
		if err := settingsService.Validate(); err != nil {
			return err
		}
	}
	return errors.New(fallback)
}
