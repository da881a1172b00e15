package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("q", km.Quit))
	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("down", km.Down))
	assert.False(t, Matches("x", km.Quit))
}

func TestHelpSets(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.InputHelp(), 2)
	assert.Len(t, km.ResultsHelp(), 5)
}
