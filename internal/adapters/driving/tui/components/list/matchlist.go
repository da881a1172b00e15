// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// Item is one ranked match with the note it points at.
type Item struct {
	Match domain.Match
	Note  domain.Note
}

// MatchList displays ranked matches with their reasons.
type MatchList struct {
	items    []Item
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewMatchList creates an empty match list.
func NewMatchList(s *styles.Styles) *MatchList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &MatchList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// View renders the visible window of matches.
func (m *MatchList) View() string {
	if len(m.items) == 0 {
		return m.styles.Muted.Render("No matches")
	}

	lines := make([]string, 0, len(m.items)+2)
	lines = append(lines, m.styles.Subtitle.Render(fmt.Sprintf("Matches (%d)", len(m.items))), "")

	// Each match takes two lines.
	visible := (m.height - 4) / 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	end := start + visible
	if end > len(m.items) {
		end = len(m.items)
	}

	for i := start; i < end; i++ {
		lines = append(lines, m.renderItem(i, &m.items[i]))
	}

	return strings.Join(lines, "\n")
}

func (m *MatchList) renderItem(index int, item *Item) string {
	indicator := "  "
	if index == m.selected {
		indicator = "> "
	}

	maxTitle := m.width - 16
	if maxTitle < 10 {
		maxTitle = 10
	}
	title := truncate(Title(&item.Note), maxTitle)
	score := fmt.Sprintf("%.1f", item.Match.Score)

	var titleLine string
	if index == m.selected {
		titleLine = m.styles.Selected.Render(fmt.Sprintf("%s%-*s  %s", indicator, maxTitle, title, score))
	} else {
		titleLine = m.styles.Normal.Render(fmt.Sprintf("%s%-*s  ", indicator, maxTitle, title)) +
			m.styles.Muted.Render(score)
	}

	why := truncate(strings.Join(item.Match.Why, ", "), m.width-6)
	return titleLine + "\n" + m.styles.Muted.Render("    "+why)
}

// Title returns the note title, or a placeholder built from its ID.
func Title(n *domain.Note) string {
	if n.Title != "" {
		return n.Title
	}
	if n.ID != "" {
		return "(untitled " + n.ID + ")"
	}
	return "(untitled)"
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// SetItems replaces the matches and resets the selection.
func (m *MatchList) SetItems(items []Item) {
	m.items = items
	m.selected = 0
}

// Items returns the current matches.
func (m *MatchList) Items() []Item {
	return m.items
}

// Selected returns the index of the selected match.
func (m *MatchList) Selected() int {
	return m.selected
}

// SelectedItem returns the selected match, or nil if the list is empty.
func (m *MatchList) SelectedItem() *Item {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}

// MoveUp moves the selection up.
func (m *MatchList) MoveUp() {
	if m.selected > 0 {
		m.selected--
	}
}

// MoveDown moves the selection down.
func (m *MatchList) MoveDown() {
	if m.selected < len(m.items)-1 {
		m.selected++
	}
}

// SetDimensions sets the component dimensions.
func (m *MatchList) SetDimensions(width, height int) {
	m.width = width
	m.height = height
}

// Count returns the number of matches.
func (m *MatchList) Count() int {
	return len(m.items)
}
