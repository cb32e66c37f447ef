package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

var (
	historyLimit int
	historyOut   string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent conversation turns",
	Long: `Prints the most recent question/answer turns in chronological order.
Use --limit to change how many are shown; 0 shows the full history.`,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all conversation history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if historyService == nil {
			return errors.New("history service not configured")
		}
		if err := historyService.Clear(); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		cmd.Println("History cleared.")
		return nil
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the conversation as a text transcript",
	RunE:  runHistoryExport,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of turns to show (0 for all)")
	historyExportCmd.Flags().StringVarP(&historyOut, "out", "o", "", "write the transcript to a file instead of stdout")
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	turns := historyService.Turns(historyLimit)
	if len(turns) == 0 {
		cmd.Println("No conversation history.")
		return nil
	}

	for _, turn := range turns {
		cmd.Printf("[%s] Q: %s\n", turn.Timestamp.Format("2006-01-02 15:04"), turn.Question)
		cmd.Printf("A: %s\n", turn.Answer)
		if names := sourceNames(turn.Sources); len(names) > 0 {
			cmd.Printf("Sources: %s\n", strings.Join(names, ", "))
		}
		cmd.Println()
	}
	return nil
}

func runHistoryExport(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	text := historyService.ExportText()
	if historyOut == "" {
		cmd.Print(text)
		return nil
	}

	if err := os.WriteFile(historyOut, []byte(text), 0600); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	cmd.Printf("Transcript written to %s\n", historyOut)
	return nil
}

// sourceNames returns the distinct document names in first-seen order.
func sourceNames(sources []domain.SourceSnippet) []string {
	seen := make(map[string]bool, len(sources))
	names := make([]string, 0, len(sources))
	for _, src := range sources {
		if seen[src.Source] {
			continue
		}
		seen[src.Source] = true
		names = append(names, src.Source)
	}
	return names
}
