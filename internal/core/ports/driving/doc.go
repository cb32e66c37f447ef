// Package driving holds the interfaces the CLI, TUI, MCP server, and
// watcher call into the vault through. The services package implements
// them; adapters depend on the interface, never the service type.
package driving
