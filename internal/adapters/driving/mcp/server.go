package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

// serverInstructions is surfaced to connecting assistants during the MCP
// handshake so they know when to reach for the vault.
const serverInstructions = `kvault is the user's personal document vault.
Use vault_ask for questions their documents might answer, and
vault_add_documents to ingest files they point you at. Answers cite the
source documents they were grounded in.`

// shutdownTimeout bounds how long an HTTP shutdown waits for in-flight
// requests.
const shutdownTimeout = 5 * time.Second

// Server exposes the vault over the Model Context Protocol.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates an MCP server serving the given ports. Tools and
// resources for nil ports report their absence instead of failing the
// whole server, so a partially configured vault still serves what it can.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "kvault",
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, &mcp.ServerOptions{Instructions: serverInstructions}),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run serves MCP over stdio, the transport Claude Desktop and most MCP
// clients launch subprocess servers with. Blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves MCP over streamable HTTP on addr. Blocks until ctx is
// cancelled or the listener fails.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		httpServer.Shutdown(shutdownCtx) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
