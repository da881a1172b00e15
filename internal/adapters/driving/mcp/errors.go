// Package mcp provides an MCP (Model Context Protocol) server adapter.
// It lets AI assistants ask questions about stored notes and extract
// facts from text.
package mcp

import "errors"

// ErrMissingNoteService is returned when the note service is not provided.
var ErrMissingNoteService = errors.New("mcp: note service is required")

// ErrMissingAssistant is returned when the assistant is not provided.
var ErrMissingAssistant = errors.New("mcp: assistant is required")
