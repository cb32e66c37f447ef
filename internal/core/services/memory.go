package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driven"
	"github.com/kvault-labs/kvault-cli/internal/core/ports/driving"
	"github.com/kvault-labs/kvault-cli/internal/logger"
)

// Ensure ConversationMemory implements the interface.
var _ driving.History = (*ConversationMemory)(nil)

// NoConversation is the literal FormatRecent returns when there is
// nothing to show.
const NoConversation = "No previous conversation."

// exportRule separates turns in the exported transcript.
const exportRule = "--------------------------------------------------"

// ConversationMemory owns the ordered conversation history for the vault
// session. Every mutation synchronously rewrites the durable store before
// returning, so the store always matches the in-memory sequence.
type ConversationMemory struct {
	store driven.HistoryStore

	mu    sync.RWMutex
	turns []domain.ChatTurn
}

// NewConversationMemory creates a memory backed by the given store and
// loads the persisted history once. A corrupt store degrades to an empty
// history with a logged warning; construction never fails.
func NewConversationMemory(store driven.HistoryStore) *ConversationMemory {
	m := &ConversationMemory{store: store}

	turns, err := store.Load()
	if err != nil {
		logger.Warn("Conversation history unreadable, starting empty: %v", err)
		return m
	}

	m.turns = turns
	logger.Debug("Loaded %d conversation turns", len(turns))
	return m
}

// Append adds a turn and flushes the full history to the store. If the
// flush fails the turn is rolled back so memory and store stay in sync.
func (m *ConversationMemory) Append(turn domain.ChatTurn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = append(m.turns, turn)
	if err := m.store.Replace(m.turns); err != nil {
		m.turns = m.turns[:len(m.turns)-1]
		return fmt.Errorf("persist conversation history: %w", err)
	}
	return nil
}

// Recent returns the last limit turns in chronological order.
// limit <= 0 returns the full history.
func (m *ConversationMemory) Recent(limit int) []domain.ChatTurn {
	m.mu.RLock()
	defer m.mu.RUnlock()

	start := 0
	if limit > 0 && len(m.turns) > limit {
		start = len(m.turns) - limit
	}

	out := make([]domain.ChatTurn, len(m.turns)-start)
	copy(out, m.turns[start:])
	return out
}

// Turns returns the last limit turns in chronological order.
// limit <= 0 returns the full history.
func (m *ConversationMemory) Turns(limit int) []domain.ChatTurn {
	return m.Recent(limit)
}

// FormatRecent renders the last maxTurns turns as alternating
// "Q: ..." / "A: ..." lines for prompt injection. Returns the literal
// "No previous conversation." when the history is empty or maxTurns <= 0.
func (m *ConversationMemory) FormatRecent(maxTurns int) string {
	if maxTurns <= 0 {
		return NoConversation
	}

	turns := m.Recent(maxTurns)
	if len(turns) == 0 {
		return NoConversation
	}

	lines := make([]string, 0, len(turns)*2)
	for _, turn := range turns {
		lines = append(lines, "Q: "+turn.Question, "A: "+turn.Answer)
	}
	return strings.Join(lines, "\n")
}

// Clear empties the history and flushes the empty sequence immediately.
func (m *ConversationMemory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous := m.turns
	m.turns = []domain.ChatTurn{}
	if err := m.store.Replace(m.turns); err != nil {
		m.turns = previous
		return fmt.Errorf("persist conversation history: %w", err)
	}
	return nil
}

// ExportText renders the full history as a human-readable transcript:
// question, answer, the cited sources, then a rule line per turn.
func (m *ConversationMemory) ExportText() string {
	turns := m.Recent(0)

	blocks := make([]string, 0, len(turns))
	for _, turn := range turns {
		lines := []string{
			"Q: " + turn.Question,
			"A: " + turn.Answer,
		}
		if len(turn.Sources) > 0 {
			lines = append(lines, "Sources:")
			for _, src := range turn.Sources {
				lines = append(lines, "  - "+src.Source)
			}
		}
		lines = append(lines, exportRule)
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n")
}

// Len returns the number of recorded turns.
func (m *ConversationMemory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.turns)
}
