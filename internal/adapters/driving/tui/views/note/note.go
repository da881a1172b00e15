// Package note provides the read-only view of a single note and its facts.
package note

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// View shows one note.
type View struct {
	styles *styles.Styles
	note   *domain.Note
	width  int
	height int
}

// NewView creates an empty note view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, width: 80, height: 24}
}

// SetNote selects the note to display.
func (v *View) SetNote(n domain.Note) {
	v.note = &n
}

// Note returns the displayed note, or nil.
func (v *View) Note() *domain.Note {
	return v.note
}

// Update handles key presses; esc and q return to the ask view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.Type == tea.KeyEsc || msg.String() == "q" {
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewAsk} }
		}
	}
	return v, nil
}

// View renders the note.
func (v *View) View() string {
	if v.note == nil {
		return v.styles.Muted.Render("No note selected")
	}
	n := v.note

	meta := fmt.Sprintf("%s | %s", n.Type, n.CreatedAt.Local().Format("2006-01-02 15:04"))
	if len(n.Tags) > 0 {
		meta += " | #" + strings.Join(n.Tags, " #")
	}

	sections := []string{
		v.styles.Title.Render(list.Title(n)),
		v.styles.Muted.Render(meta),
		"",
		lipgloss.NewStyle().Width(v.width - 2).Render(n.Text),
		"",
		v.styles.Subtitle.Render(fmt.Sprintf("Facts (%d)", len(n.Facts()))),
	}
	for _, f := range n.Facts() {
		sections = append(sections, "  "+v.renderFact(f))
	}
	sections = append(sections, "", v.styles.Muted.Render("esc: back"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) renderFact(f domain.Fact) string {
	line := fmt.Sprintf("%s/%s %s", f.Domain, f.Subject, f.Predicate)
	if f.Object != "" {
		line += " " + v.styles.Fact.Render(f.Object)
	}
	if f.Trigger != nil {
		line += v.styles.Muted.Render(" [" + f.Trigger.String() + "]")
	}
	return line
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}
