package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

var askShowSources bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about your documents",
	Long: `Answers a single question grounded in the indexed documents.
The answer lists the source files it drew from; pass --sources to
include a content preview for each citation.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askShowSources, "sources", false, "show content previews for each source")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return notConfigured("query not configured: set embedding and LLM providers with 'kvault settings'")
	}

	result := queryService.Ask(context.Background(), args[0])
	if !result.Success {
		return errors.New(result.Error)
	}

	cmd.Println(result.Answer)
	printSources(cmd, result.Sources, askShowSources)
	return nil
}

func printSources(cmd *cobra.Command, sources []domain.SourceSnippet, previews bool) {
	if len(sources) == 0 {
		return
	}

	cmd.Println()
	cmd.Println("Sources:")
	for i, src := range sources {
		cmd.Printf("  [%d] %s\n", i+1, formatSourceRef(src))
		if previews {
			cmd.Printf("      %s\n", src.ContentPreview)
		}
	}
}

func formatSourceRef(src domain.SourceSnippet) string {
	if src.Page != nil {
		return fmt.Sprintf("%s (page %d)", src.Source, *src.Page)
	}
	return src.Source
}
