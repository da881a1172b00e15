// Package tui provides an interactive terminal user interface for asking
// questions about stored notes.
package tui

import (
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driving"
)

// Ports aggregates the driving ports required by the TUI.
type Ports struct {
	// Notes answers questions and loads matched notes.
	Notes driving.NoteService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Notes == nil {
		return ErrMissingNoteService
	}
	return nil
}
