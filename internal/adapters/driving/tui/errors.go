package tui

import "errors"

// ErrMissingNoteService is returned when the note service is not provided.
var ErrMissingNoteService = errors.New("tui: note service is required")
