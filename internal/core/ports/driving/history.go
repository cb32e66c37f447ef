package driving

import "github.com/kvault-labs/kvault-cli/internal/core/domain"

// History exposes the conversation memory to external actors.
type History interface {
	// Turns returns the last limit turns in chronological order.
	// limit <= 0 returns the full history.
	Turns(limit int) []domain.ChatTurn

	// Clear empties the conversation memory and flushes immediately.
	Clear() error

	// ExportText renders the full history as a human-readable transcript.
	ExportText() string
}
