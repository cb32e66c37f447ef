package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleSourcesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil index returns empty list", func(t *testing.T) {
		server, err := NewServer(&Ports{Querier: &mockQuerier{}})
		require.NoError(t, err)

		req := makeReadResourceRequest("vault://sources")
		result, err := server.handleSourcesResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	})

	t.Run("returns sources as JSON", func(t *testing.T) {
		index := &mockIndexReader{sources: []string{"guide.md", "notes.pdf"}}

		server, err := NewServer(&Ports{Querier: &mockQuerier{}, Index: index})
		require.NoError(t, err)

		req := makeReadResourceRequest("vault://sources")
		result, err := server.handleSourcesResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "guide.md")
		assert.Contains(t, result.Contents[0].Text, "notes.pdf")
		assert.Equal(t, "vault://sources", result.Contents[0].URI)
	})
}

func TestServer_handleHistoryResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil history returns empty transcript", func(t *testing.T) {
		server, err := NewServer(&Ports{Querier: &mockQuerier{}})
		require.NoError(t, err)

		req := makeReadResourceRequest("vault://history")
		result, err := server.handleHistoryResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Empty(t, result.Contents[0].Text)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
	})

	t.Run("returns transcript", func(t *testing.T) {
		history := &mockHistory{exportText: "Q: hello\nA: world\n"}

		server, err := NewServer(&Ports{Querier: &mockQuerier{}, History: history})
		require.NoError(t, err)

		req := makeReadResourceRequest("vault://history")
		result, err := server.handleHistoryResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "Q: hello\nA: world\n", result.Contents[0].Text)
	})
}
