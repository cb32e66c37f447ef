package mcp

import (
	"context"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// mockQuerier is a mock implementation of driving.Querier.
type mockQuerier struct {
	result      domain.QueryResult
	gotQuestion string
}

func (m *mockQuerier) Ask(_ context.Context, question string) domain.QueryResult {
	m.gotQuestion = question
	return m.result
}

// mockIngestor is a mock implementation of driving.Ingestor.
type mockIngestor struct {
	report   *domain.IngestReport
	err      error
	gotPaths []string
}

func (m *mockIngestor) AddDocuments(_ context.Context, paths []string) (*domain.IngestReport, error) {
	m.gotPaths = paths
	if m.err != nil {
		return nil, m.err
	}
	if m.report != nil {
		return m.report, nil
	}
	return &domain.IngestReport{Processed: len(paths)}, nil
}

// mockIndexReader is a mock implementation of driving.IndexReader.
type mockIndexReader struct {
	count   int
	sources []string
}

func (m *mockIndexReader) Count(_ context.Context) int        { return m.count }
func (m *mockIndexReader) Sources(_ context.Context) []string { return m.sources }

// mockHistory is a mock implementation of driving.History.
type mockHistory struct {
	turns      []domain.ChatTurn
	exportText string
	gotLimit   int
}

func (m *mockHistory) Turns(limit int) []domain.ChatTurn {
	m.gotLimit = limit
	if limit > 0 && limit < len(m.turns) {
		return m.turns[len(m.turns)-limit:]
	}
	return m.turns
}

func (m *mockHistory) Clear() error { return nil }

func (m *mockHistory) ExportText() string { return m.exportText }
