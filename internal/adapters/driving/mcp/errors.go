// Package mcp provides an MCP (Model Context Protocol) server adapter for gearscan.
// It lets AI assistants scan schematics and ask for both totals.
package mcp

import "errors"

// ErrMissingSchematicService is returned when the schematic service is not provided.
var ErrMissingSchematicService = errors.New("mcp: schematic service is required")

// ErrStdinPath is returned when a tool call names standard input, which
// carries the protocol stream in stdio mode.
var ErrStdinPath = errors.New("mcp: reading a schematic from standard input is not supported")

// ErrMissingInput is returned when a tool call carries neither lines nor a path.
var ErrMissingInput = errors.New("mcp: either lines or path is required")
