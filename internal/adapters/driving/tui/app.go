package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/tui/messages"
	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/tui/styles"
	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/tui/views/chat"
	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// chatView is the conversational question-answer view.
	chatView *chat.View

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	chatView := chat.NewView(s, nil, ports.Querier, ports.History, ports.Index)

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   s,
		chatView: chatView,
	}, nil
}

// WithContext sets the context for the app and its view.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.chatView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("kvault - Knowledge Vault"),
		a.chatView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.chatView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.chatView, cmd = a.chatView.Update(msg)
		a.err = a.chatView.Err()
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward everything else to the chat view
	a.chatView, cmd = a.chatView.Update(msg)
	a.err = a.chatView.Err()
	return a, cmd
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.chatView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Question returns the current question input.
func (a *App) Question() string {
	return a.chatView.Question()
}

// Turns returns the transcript in chronological order.
func (a *App) Turns() []domain.ChatTurn {
	return a.chatView.Turns()
}

// Waiting returns whether an answer is pending.
func (a *App) Waiting() bool {
	return a.chatView.Waiting()
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.chatView.SetDimensions(width, height)
}
