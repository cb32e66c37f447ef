// Package chat provides the conversational view for the TUI.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/tui/components/input"
	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/tui/components/status"
	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/tui/keymap"
	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/tui/messages"
	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/tui/styles"
	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driving"
)

// recentTurns is how many previously recorded turns are preloaded into
// the transcript when the view starts.
const recentTurns = 20

// View represents the chat view with a scrolling transcript, a question
// input, and a status bar.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QuestionInput
	viewport  viewport.Model
	statusbar *status.Bar

	querier driving.Querier
	history driving.History
	index   driving.IndexReader
	ctx     context.Context

	turns      []domain.ChatTurn
	pending    string // question awaiting an answer, empty when idle
	chunkCount int
	docCount   int

	width   int
	height  int
	ready   bool
	waiting bool
	err     error
}

// NewView creates a new chat view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	querier driving.Querier,
	history driving.History,
	index driving.IndexReader,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewQuestionInput(s),
		viewport:  viewport.New(80, 14),
		statusbar: status.NewBar(s, km),
		querier:   querier,
		history:   history,
		index:     index,
		ctx:       context.Background(),
		width:     80,
		height:    24,
		ready:     false,
		waiting:   false,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view: input cursor blink, transcript preload, and
// index statistics for the header.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Init(), v.loadHistory(), v.loadIndexStats())
}

// Update handles messages for the chat view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AnswerReceived:
		v.handleAnswer(msg)
		return v, nil

	case messages.HistoryLoaded:
		v.handleHistoryLoaded(msg)
		return v, nil

	case messages.IndexStatsLoaded:
		v.chunkCount = msg.Chunks
		v.docCount = msg.Documents
		return v, nil

	case messages.ErrorOccurred:
		v.waiting = false
		v.pending = ""
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	// Forward remaining messages to the input component
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// handleKeyMsg processes keyboard input. Arrow and page keys scroll the
// transcript; everything else edits the question.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	//nolint:exhaustive // handling only relevant key types
	switch msg.Type {
	case tea.KeyEnter:
		return v, v.submit()
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// submit sends the typed question to the querier. Empty questions and
// submissions while an answer is pending are ignored.
func (v *View) submit() tea.Cmd {
	if v.waiting {
		return nil
	}
	question := strings.TrimSpace(v.input.Value())
	if question == "" {
		return nil
	}

	v.waiting = true
	v.pending = question
	v.err = nil
	v.input.SetValue("")
	v.statusbar.SetState(status.StateThinking)
	v.statusbar.SetMessage("")
	v.refreshTranscript()

	return v.performAsk(question)
}

// performAsk runs the question through the query service.
func (v *View) performAsk(question string) tea.Cmd {
	return func() tea.Msg {
		if v.querier == nil {
			return messages.ErrorOccurred{Err: ErrNoQueryService}
		}
		return messages.AnswerReceived{Result: v.querier.Ask(v.ctx, question)}
	}
}

// loadHistory preloads the most recent recorded turns.
func (v *View) loadHistory() tea.Cmd {
	return func() tea.Msg {
		if v.history == nil {
			return messages.HistoryLoaded{}
		}
		return messages.HistoryLoaded{Turns: v.history.Turns(recentTurns)}
	}
}

// loadIndexStats fetches chunk and document counts for the header.
func (v *View) loadIndexStats() tea.Cmd {
	return func() tea.Msg {
		if v.index == nil {
			return messages.IndexStatsLoaded{}
		}
		return messages.IndexStatsLoaded{
			Chunks:    v.index.Count(v.ctx),
			Documents: len(v.index.Sources(v.ctx)),
		}
	}
}

// handleAnswer folds a query result into the transcript.
func (v *View) handleAnswer(msg messages.AnswerReceived) {
	question := v.pending
	v.waiting = false
	v.pending = ""

	result := msg.Result
	if !result.Success {
		v.err = errors.New(result.Error)
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(result.Error)
		// Restore the question so it can be edited and retried.
		v.input.SetValue(question)
		v.refreshTranscript()
		return
	}

	v.err = nil
	v.turns = append(v.turns, domain.ChatTurn{
		ID:        result.ChatID,
		Timestamp: time.Now(),
		Question:  question,
		Answer:    result.Answer,
		Sources:   result.Sources,
	})
	v.statusbar.SetState(status.StateAnswered)
	v.statusbar.SetTurnCount(len(v.turns))
	v.refreshTranscript()
}

// handleHistoryLoaded seeds the transcript with previous turns.
func (v *View) handleHistoryLoaded(msg messages.HistoryLoaded) {
	if len(msg.Turns) == 0 {
		return
	}
	v.turns = msg.Turns
	v.statusbar.SetTurnCount(len(v.turns))
	v.refreshTranscript()
}

// refreshTranscript re-renders the viewport content and scrolls to the
// latest turn.
func (v *View) refreshTranscript() {
	v.viewport.SetContent(v.renderTranscript())
	v.viewport.GotoBottom()
}

// renderTranscript renders all turns plus the pending question, if any.
func (v *View) renderTranscript() string {
	if len(v.turns) == 0 && v.pending == "" {
		return v.styles.Muted.Render("No questions yet. Type one below and press Enter.")
	}

	blocks := make([]string, 0, len(v.turns)+1)
	for i := range v.turns {
		blocks = append(blocks, v.renderTurn(&v.turns[i]))
	}
	if v.pending != "" {
		block := v.styles.Question.Render("You: ") + v.styles.Normal.Render(v.pending) +
			"\n" + v.styles.Muted.Render("Thinking...")
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n")
}

// renderTurn renders one question-answer pair with its sources.
func (v *View) renderTurn(turn *domain.ChatTurn) string {
	lines := make([]string, 0, 3)
	lines = append(lines, v.styles.Question.Render("You: ")+v.styles.Normal.Render(turn.Question))
	lines = append(lines, v.styles.Answer.Render(turn.Answer))
	if names := sourceNames(turn.Sources); len(names) > 0 {
		lines = append(lines, v.styles.Muted.Render("Sources: "+strings.Join(names, ", ")))
	}
	return strings.Join(lines, "\n")
}

// sourceNames returns the distinct source names in first-seen order.
func sourceNames(sources []domain.SourceSnippet) []string {
	seen := make(map[string]struct{}, len(sources))
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		if _, ok := seen[s.Source]; ok {
			continue
		}
		seen[s.Source] = struct{}{}
		names = append(names, s.Source)
	}
	return names
}

// View renders the chat view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 8)

	// Header with index statistics
	header := v.styles.Title.Render("kvault")
	if v.docCount > 0 {
		stats := fmt.Sprintf("%d document(s), %d chunk(s) indexed", v.docCount, v.chunkCount)
		header += "  " + v.styles.Muted.Render(stats)
	}
	sections = append(sections, header, "")

	// Transcript
	sections = append(sections, v.styles.Border.Render(v.viewport.View()), "")

	// Error display
	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}

	// Question input
	sections = append(sections, v.input.View(), "")

	// Status bar at bottom
	sections = append(sections, v.statusbar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)

	// Reserve space for the header, input, status bar and transcript frame.
	vh := height - 10
	if vh < 3 {
		vh = 3
	}
	vw := width - 2
	if vw < 20 {
		vw = 20
	}
	v.viewport.Width = vw
	v.viewport.Height = vh
	v.viewport.SetContent(v.renderTranscript())
}

// Width returns the current width.
func (v *View) Width() int {
	return v.width
}

// Height returns the current height.
func (v *View) Height() int {
	return v.height
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Question returns the current question input.
func (v *View) Question() string {
	return v.input.Value()
}

// SetQuestion sets the question input.
func (v *View) SetQuestion(question string) {
	v.input.SetValue(question)
}

// Turns returns the transcript in chronological order.
func (v *View) Turns() []domain.ChatTurn {
	return v.turns
}

// Pending returns the question awaiting an answer, if any.
func (v *View) Pending() string {
	return v.pending
}

// Waiting returns whether an answer is pending.
func (v *View) Waiting() bool {
	return v.waiting
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// ClearError clears the current error.
func (v *View) ClearError() {
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Reset clears the transcript and the input.
func (v *View) Reset() {
	v.turns = nil
	v.pending = ""
	v.waiting = false
	v.err = nil
	v.input.SetValue("")
	v.statusbar.Clear()
	v.refreshTranscript()
}
