// Package mcp provides the MCP (Model Context Protocol) server adapter.
// It exposes the Parliament search and member directory capabilities as
// tools for AI assistants.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
