package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteType_IsValid(t *testing.T) {
	tests := []struct {
		noteType NoteType
		expected bool
	}{
		{NoteTypeText, true},
		{NoteTypeAudio, true},
		{NoteTypePhoto, true},
		{NoteTypeVideo, true},
		{NoteType(""), false},
		{NoteType("sketch"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.noteType), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.noteType.IsValid())
		})
	}
}

func TestNote_Facts(t *testing.T) {
	var n Note
	assert.Nil(t, n.Facts())

	n.SetFacts([]Fact{{ID: "f1", Predicate: PredicateTopic}})
	assert.Len(t, n.Facts(), 1)

	n.SetFacts(nil)
	assert.Empty(t, n.Facts())
}
