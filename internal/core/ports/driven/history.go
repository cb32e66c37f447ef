package driven

import "github.com/kvault-labs/kvault-cli/internal/core/domain"

// HistoryStore persists the conversation memory.
// Implementations own the storage format; the core treats the history as an
// ordered sequence that is replaced wholesale on every mutation.
type HistoryStore interface {
	// Load reads the full conversation history in chronological order.
	// A missing store yields an empty history and no error.
	// Returns domain.ErrStorageCorruption when the stored data cannot be parsed.
	Load() ([]domain.ChatTurn, error)

	// Replace overwrites the stored history with the given sequence.
	// The write is durable before Replace returns.
	Replace(turns []domain.ChatTurn) error
}
