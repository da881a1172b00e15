package mcp

import (
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the MCP server.
type Ports struct {
	// Notes answers queries against stored notes.
	Notes driving.NoteService

	// Assistant extracts facts from ad-hoc text.
	Assistant driving.AssistantService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Notes == nil {
		return ErrMissingNoteService
	}
	if p.Assistant == nil {
		return ErrMissingAssistant
	}
	return nil
}
