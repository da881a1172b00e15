package domain

import "time"

// NoteType identifies how a note's text was captured.
type NoteType string

// Available note types.
const (
	// NoteTypeText is a typed note.
	NoteTypeText NoteType = "text"

	// NoteTypeAudio is a voice memo; Text holds the transcription.
	NoteTypeAudio NoteType = "audio"

	// NoteTypePhoto is a photo; Text holds the OCR output.
	NoteTypePhoto NoteType = "photo"

	// NoteTypeVideo is a video; Text holds the transcription.
	NoteTypeVideo NoteType = "video"
)

// IsValid returns true if the note type is recognised.
func (t NoteType) IsValid() bool {
	switch t {
	case NoteTypeText, NoteTypeAudio, NoteTypePhoto, NoteTypeVideo:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (t NoteType) String() string {
	return string(t)
}

// Note is a single user note.
// Text is the sole input to extraction and search; Title is a secondary signal.
type Note struct {
	// ID is unique and stable for the note's lifetime.
	ID string `json:"id"`

	// Type records how the note was captured.
	Type NoteType `json:"type"`

	// Title is the user-visible title, possibly empty.
	Title string `json:"title"`

	// Text is the note body (typed, transcribed or OCR'd), possibly empty.
	Text string `json:"text"`

	// CreatedAt orders notes with equal relevance (newer first).
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is when the note was last changed.
	UpdatedAt time.Time `json:"updatedAt"`

	// Tags are optional user labels.
	Tags []string `json:"tags,omitempty"`

	// AI holds derived data attached by the extractor.
	AI *NoteAI `json:"ai,omitempty"`
}

// NoteAI holds data derived from a note's text.
type NoteAI struct {
	// Facts extracted from the note's current text.
	Facts []Fact `json:"facts,omitempty"`
}

// Facts returns the facts attached to the note, or nil.
func (n *Note) Facts() []Fact {
	if n.AI == nil {
		return nil
	}
	return n.AI.Facts
}

// SetFacts replaces the note's facts wholesale.
func (n *Note) SetFacts(facts []Fact) {
	if n.AI == nil {
		n.AI = &NoteAI{}
	}
	n.AI.Facts = facts
}

// ChangeType describes a change reported by a note source.
type ChangeType string

// Available change types.
const (
	// ChangeCreated indicates a new note.
	ChangeCreated ChangeType = "created"

	// ChangeUpdated indicates modified note text.
	ChangeUpdated ChangeType = "updated"

	// ChangeDeleted indicates a removed note.
	ChangeDeleted ChangeType = "deleted"
)

// NoteChange is a single change emitted by a watched note source.
type NoteChange struct {
	// Type is the kind of change.
	Type ChangeType

	// Note carries the new state; only ID is set for deletions.
	Note Note
}
