package cli

import (
	"github.com/spf13/cobra"

	"github.com/kvault-labs/kvault-cli/internal/adapters/driving/mcp"
)

var mcpHTTPAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the vault over the Model Context Protocol",
	Long: `Start the Model Context Protocol server so AI assistants can query
and extend the vault.

By default the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --http to serve over HTTP instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  kvault mcp

  # HTTP mode (for MCP Inspector, remote access)
  kvault mcp --http :8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "kvault": {
        "command": "/path/to/kvault",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: runMCPServe,
}

// mcpServeCmd keeps `kvault mcp serve` working as an alias.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	RunE:  runMCPServe,
}

func init() {
	mcpCmd.PersistentFlags().StringVar(&mcpHTTPAddr, "http", "", "HTTP listen address (empty = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	ports := &mcp.Ports{
		Querier:  queryService,
		Ingestor: ingestService,
		Index:    indexService,
		History:  historyService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if mcpHTTPAddr != "" {
		cmd.Printf("MCP server listening on %s\n", mcpHTTPAddr)
		return server.RunHTTP(cmd.Context(), mcpHTTPAddr)
	}

	return server.Run(cmd.Context())
}
