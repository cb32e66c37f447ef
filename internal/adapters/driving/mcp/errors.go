// Package mcp provides an MCP (Model Context Protocol) server adapter for
// kvault. It enables AI assistants like Claude to query and extend the vault.
package mcp

import "errors"

// ErrMissingQuerier is returned when the query service is not provided.
var ErrMissingQuerier = errors.New("mcp: query service is required")
