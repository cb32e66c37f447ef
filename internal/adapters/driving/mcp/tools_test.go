package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns answer with sources", func(t *testing.T) {
		page := 2
		querier := &mockQuerier{
			result: domain.QueryResult{
				Answer:  "The answer.",
				Success: true,
				ChatID:  "turn-1",
				Sources: []domain.SourceSnippet{
					{Source: "guide.pdf", Page: &page, ContentPreview: "relevant text..."},
				},
			},
		}

		server, err := NewServer(&Ports{Querier: querier})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "what?"})

		require.NoError(t, err)
		assert.True(t, output.Success)
		assert.Equal(t, "The answer.", output.Answer)
		assert.Equal(t, "turn-1", output.ChatID)
		assert.Equal(t, "what?", querier.gotQuestion)
		require.Len(t, output.Sources, 1)
		assert.Equal(t, "guide.pdf", output.Sources[0].Source)
		require.NotNil(t, output.Sources[0].Page)
		assert.Equal(t, 2, *output.Sources[0].Page)
		assert.Equal(t, "relevant text...", output.Sources[0].Preview)
	})

	t.Run("failure result is structured, not a tool error", func(t *testing.T) {
		querier := &mockQuerier{
			result: domain.QueryResult{
				Answer:  "I encountered an error processing your question: generation failed",
				Success: false,
				Error:   "generation failed",
			},
		}

		server, err := NewServer(&Ports{Querier: querier})
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "what?"})

		require.NoError(t, err)
		assert.False(t, output.Success)
		assert.Equal(t, "generation failed", output.Error)
		assert.Empty(t, output.ChatID)
		assert.Empty(t, output.Sources)
	})
}

func TestServer_handleAddDocuments(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ingest report", func(t *testing.T) {
		ingestor := &mockIngestor{
			report: &domain.IngestReport{
				Processed: 2,
				Failed:    1,
				Errors:    []string{"bad.xyz: unsupported file type"},
			},
		}

		server, err := NewServer(&Ports{Querier: &mockQuerier{}, Ingestor: ingestor})
		require.NoError(t, err)

		input := AddDocumentsInput{Paths: []string{"a.md", "b.pdf", "bad.xyz"}}
		_, output, err := server.handleAddDocuments(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 2, output.Processed)
		assert.Equal(t, 1, output.Failed)
		assert.Equal(t, []string{"bad.xyz: unsupported file type"}, output.Errors)
		assert.Equal(t, input.Paths, ingestor.gotPaths)
	})

	t.Run("nil ingestor returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Querier: &mockQuerier{}})
		require.NoError(t, err)

		_, _, err = server.handleAddDocuments(ctx, nil, AddDocumentsInput{Paths: []string{"a.md"}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ingestion is not available")
	})

	t.Run("propagates batch error", func(t *testing.T) {
		ingestor := &mockIngestor{err: errors.New("context canceled")}

		server, err := NewServer(&Ports{Querier: &mockQuerier{}, Ingestor: ingestor})
		require.NoError(t, err)

		_, _, err = server.handleAddDocuments(ctx, nil, AddDocumentsInput{Paths: []string{"a.md"}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "context canceled")
	})
}

func TestServer_handleListSources(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sources", func(t *testing.T) {
		index := &mockIndexReader{sources: []string{"a.md", "b.pdf"}}

		server, err := NewServer(&Ports{Querier: &mockQuerier{}, Index: index})
		require.NoError(t, err)

		_, output, err := server.handleListSources(ctx, nil, ListSourcesInput{})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, []string{"a.md", "b.pdf"}, output.Sources)
	})

	t.Run("nil index returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Querier: &mockQuerier{}})
		require.NoError(t, err)

		_, output, err := server.handleListSources(ctx, nil, ListSourcesInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Sources)
		assert.Empty(t, output.Sources)
	})
}

func TestServer_handleHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("returns turns", func(t *testing.T) {
		history := &mockHistory{
			turns: []domain.ChatTurn{
				{
					ID:        "turn-1",
					Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
					Question:  "q1",
					Answer:    "a1",
					Sources:   []domain.SourceSnippet{{Source: "doc.md", ContentPreview: "text..."}},
				},
				{
					ID:        "turn-2",
					Timestamp: time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC),
					Question:  "q2",
					Answer:    "a2",
				},
			},
		}

		server, err := NewServer(&Ports{Querier: &mockQuerier{}, History: history})
		require.NoError(t, err)

		_, output, err := server.handleHistory(ctx, nil, HistoryInput{Limit: 0})

		require.NoError(t, err)
		assert.Equal(t, 2, output.Count)
		assert.Equal(t, "turn-1", output.Turns[0].ID)
		assert.Equal(t, "2025-06-01T12:00:00Z", output.Turns[0].Timestamp)
		assert.Equal(t, "q1", output.Turns[0].Question)
		require.Len(t, output.Turns[0].Sources, 1)
		assert.Equal(t, "doc.md", output.Turns[0].Sources[0].Source)
	})

	t.Run("passes limit through", func(t *testing.T) {
		history := &mockHistory{}

		server, err := NewServer(&Ports{Querier: &mockQuerier{}, History: history})
		require.NoError(t, err)

		_, _, err = server.handleHistory(ctx, nil, HistoryInput{Limit: 5})

		require.NoError(t, err)
		assert.Equal(t, 5, history.gotLimit)
	})

	t.Run("nil history returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Querier: &mockQuerier{}})
		require.NoError(t, err)

		_, output, err := server.handleHistory(ctx, nil, HistoryInput{})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.NotNil(t, output.Turns)
		assert.Empty(t, output.Turns)
	})
}
