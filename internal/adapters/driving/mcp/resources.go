package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for kvault resources.
const uriScheme = "vault://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sources",
		Name:        "sources",
		Description: "List of all indexed source documents",
		MIMEType:    "application/json",
	}, s.handleSourcesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "history",
		Name:        "history",
		Description: "Full conversation history as a readable transcript",
		MIMEType:    "text/plain",
	}, s.handleHistoryResource)
}

// handleSourcesResource returns the indexed source document names.
func (s *Server) handleSourcesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	sources := []string{}
	if s.ports.Index != nil {
		if got := s.ports.Index.Sources(ctx); got != nil {
			sources = got
		}
	}

	data, err := json.MarshalIndent(sources, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling sources: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleHistoryResource returns the conversation transcript.
func (s *Server) handleHistoryResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	transcript := ""
	if s.ports.History != nil {
		transcript = s.ports.History.ExportText()
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     transcript,
		}},
	}, nil
}
