package mcp

import (
	"context"
	"errors"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kvault-labs/kvault-cli/internal/core/domain"
)

// AskInput is the input schema for the vault_ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the vault's documents"`
}

// AskOutput is the output schema for the vault_ask tool.
type AskOutput struct {
	Answer  string         `json:"answer"`
	Sources []SourceOutput `json:"sources"`
	ChatID  string         `json:"chat_id,omitempty"`
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
}

// SourceOutput is one source citation.
type SourceOutput struct {
	Source  string `json:"source"`
	Page    *int   `json:"page,omitempty"`
	Preview string `json:"preview"`
}

// AddDocumentsInput is the input schema for the vault_add_documents tool.
type AddDocumentsInput struct {
	Paths []string `json:"paths" jsonschema:"file paths to ingest into the vault"`
}

// AddDocumentsOutput is the output schema for the vault_add_documents tool.
type AddDocumentsOutput struct {
	Processed int      `json:"processed"`
	Failed    int      `json:"failed"`
	Errors    []string `json:"errors,omitempty"`
}

// ListSourcesInput is the input schema for the vault_list_sources tool.
type ListSourcesInput struct{}

// ListSourcesOutput is the output schema for the vault_list_sources tool.
type ListSourcesOutput struct {
	Sources []string `json:"sources"`
	Count   int      `json:"count"`
}

// HistoryInput is the input schema for the vault_history tool.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of most recent turns to return (0 for all)"`
}

// HistoryOutput is the output schema for the vault_history tool.
type HistoryOutput struct {
	Turns []TurnOutput `json:"turns"`
	Count int          `json:"count"`
}

// TurnOutput is one recorded question/answer exchange.
type TurnOutput struct {
	ID        string         `json:"id"`
	Timestamp string         `json:"timestamp"`
	Question  string         `json:"question"`
	Answer    string         `json:"answer"`
	Sources   []SourceOutput `json:"sources,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "vault_ask",
		Description: "Ask a question answered from the vault's indexed documents",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "vault_add_documents",
		Description: "Ingest local files (pdf, txt, docx, md) into the vault",
	}, s.handleAddDocuments)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "vault_list_sources",
		Description: "List the source documents indexed in the vault",
	}, s.handleListSources)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "vault_history",
		Description: "Return recent conversation turns with their citations",
	}, s.handleHistory)
}

// handleAsk handles the vault_ask tool invocation. Query failures come
// back as a structured result, never as a tool error.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	result := s.ports.Querier.Ask(ctx, input.Question)

	output := AskOutput{
		Answer:  result.Answer,
		Sources: sourcesToOutput(result.Sources),
		ChatID:  result.ChatID,
		Success: result.Success,
		Error:   result.Error,
	}

	return nil, output, nil
}

// handleAddDocuments handles the vault_add_documents tool invocation.
func (s *Server) handleAddDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AddDocumentsInput,
) (*mcp.CallToolResult, AddDocumentsOutput, error) {
	if s.ports.Ingestor == nil {
		return nil, AddDocumentsOutput{}, errors.New("ingestion is not available: no embedding provider configured")
	}

	report, err := s.ports.Ingestor.AddDocuments(ctx, input.Paths)
	if err != nil {
		return nil, AddDocumentsOutput{}, err
	}

	output := AddDocumentsOutput{
		Processed: report.Processed,
		Failed:    report.Failed,
		Errors:    report.Errors,
	}

	return nil, output, nil
}

// handleListSources handles the vault_list_sources tool invocation.
func (s *Server) handleListSources(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListSourcesInput,
) (*mcp.CallToolResult, ListSourcesOutput, error) {
	output := ListSourcesOutput{Sources: []string{}}

	if s.ports.Index != nil {
		sources := s.ports.Index.Sources(ctx)
		if sources != nil {
			output.Sources = sources
		}
		output.Count = len(sources)
	}

	return nil, output, nil
}

// handleHistory handles the vault_history tool invocation.
func (s *Server) handleHistory(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	output := HistoryOutput{Turns: []TurnOutput{}}

	if s.ports.History == nil {
		return nil, output, nil
	}

	turns := s.ports.History.Turns(input.Limit)
	for _, turn := range turns {
		output.Turns = append(output.Turns, TurnOutput{
			ID:        turn.ID,
			Timestamp: turn.Timestamp.Format(time.RFC3339),
			Question:  turn.Question,
			Answer:    turn.Answer,
			Sources:   sourcesToOutput(turn.Sources),
		})
	}
	output.Count = len(output.Turns)

	return nil, output, nil
}

// sourcesToOutput maps domain snippets to the wire shape, preserving
// retrieval order.
func sourcesToOutput(snippets []domain.SourceSnippet) []SourceOutput {
	out := make([]SourceOutput, len(snippets))
	for i, snip := range snippets {
		out[i] = SourceOutput{
			Source:  snip.Source,
			Page:    snip.Page,
			Preview: snip.ContentPreview,
		}
	}
	return out
}
