package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// TestAnswerReceived tests the AnswerReceived message type
func TestAnswerReceived_Success(t *testing.T) {
	msg := AnswerReceived{
		Result: domain.QueryResult{
			Answer: "Chunks are overlapping pieces of a document.",
			Sources: []domain.SourceSnippet{
				{Source: "guide.pdf", ContentPreview: "Chunking splits..."},
			},
			ChatID:  "turn-1",
			Success: true,
		},
	}

	assert.True(t, msg.Result.Success)
	assert.Equal(t, "turn-1", msg.Result.ChatID)
	require.Len(t, msg.Result.Sources, 1)
	assert.Equal(t, "guide.pdf", msg.Result.Sources[0].Source)
}

func TestAnswerReceived_Failure(t *testing.T) {
	msg := AnswerReceived{
		Result: domain.QueryResult{Success: false, Error: "generation failed"},
	}

	assert.False(t, msg.Result.Success)
	assert.Equal(t, "generation failed", msg.Result.Error)
	assert.Empty(t, msg.Result.Sources)
}

// TestHistoryLoaded tests the HistoryLoaded message type
func TestHistoryLoaded(t *testing.T) {
	t.Run("with turns", func(t *testing.T) {
		msg := HistoryLoaded{
			Turns: []domain.ChatTurn{
				{Question: "q1", Answer: "a1"},
				{Question: "q2", Answer: "a2"},
			},
		}

		assert.Len(t, msg.Turns, 2)
		assert.Equal(t, "q1", msg.Turns[0].Question)
	})

	t.Run("empty", func(t *testing.T) {
		msg := HistoryLoaded{}

		assert.Empty(t, msg.Turns)
	})
}

// TestIndexStatsLoaded tests the IndexStatsLoaded message type
func TestIndexStatsLoaded(t *testing.T) {
	msg := IndexStatsLoaded{Chunks: 42, Documents: 3}

	assert.Equal(t, 42, msg.Chunks)
	assert.Equal(t, 3, msg.Documents)
}

// TestErrorOccurred tests the ErrorOccurred message type
func TestErrorOccurred(t *testing.T) {
	err := errors.New("something broke")
	msg := ErrorOccurred{Err: err}

	require.Error(t, msg.Err)
	assert.Equal(t, "something broke", msg.Err.Error())
}

// TestQuit tests the Quit message type
func TestQuit(t *testing.T) {
	msg := Quit{}

	assert.NotNil(t, msg)
}
