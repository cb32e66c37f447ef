// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// AnswerReceived carries the result of a question back to the model.
type AnswerReceived struct {
	Result domain.QueryResult
}

// HistoryLoaded carries previously recorded turns into the transcript.
type HistoryLoaded struct {
	Turns []domain.ChatTurn
}

// IndexStatsLoaded carries index statistics for the header.
type IndexStatsLoaded struct {
	Chunks    int
	Documents int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
