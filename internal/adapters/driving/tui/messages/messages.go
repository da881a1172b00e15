// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// AskCompleted carries an answer back to the ask view. Notes holds the
// matched notes in match order; a match whose note vanished has a zero
// Note with only the ID set.
type AskCompleted struct {
	Query  string
	Result domain.AskResult
	Notes  []domain.Note
	Err    error
}

// NoteSelected is sent when a match is opened.
type NoteSelected struct {
	Note domain.Note
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewAsk is the question input and matches view.
	ViewAsk ViewType = iota
	// ViewNote shows a single note with its facts.
	ViewNote
	// ViewHelp lists keybindings.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewAsk:
		return "ask"
	case ViewNote:
		return "note"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
