package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive conversation with your documents",
	Long: `Launch the interactive chat interface. Questions are answered from
the indexed documents and the conversation carries across turns.

Controls:
  Enter     - Send question
  ↑/↓, PgUp - Scroll the conversation
  Ctrl+C    - Quit`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return notConfigured("query not configured: set embedding and LLM providers with 'kvault settings'")
	}

	// Panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in chat UI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Querier: queryService,
		History: historyService,
		Index:   indexService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create chat UI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("chat UI error: %w", err)
	}

	return nil
}
