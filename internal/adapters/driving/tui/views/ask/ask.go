// Package ask provides the question view: a query input, the
// synthesised answer and the ranked matches with their reasons.
package ask

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driving"
)

// ErrNoNoteService indicates that no note service was provided.
var ErrNoNoteService = errors.New("note service is required")

// View is the ask view.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.QueryInput
	list      *list.MatchList
	statusbar *status.Bar

	notes driving.NoteService
	ctx   context.Context

	answer     string
	width      int
	height     int
	ready      bool
	err        error
	focusInput bool
}

// NewView creates a new ask view.
func NewView(s *styles.Styles, km *keymap.KeyMap, notes driving.NoteService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewQueryInput(s),
		list:       list.NewMatchList(s),
		statusbar:  status.NewBar(s, km),
		notes:      notes,
		ctx:        context.Background(),
		width:      80,
		height:     24,
		focusInput: true,
	}
}

// WithContext sets the context used for queries.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the ask view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.AskCompleted:
		v.handleAskCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.focusInput {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyEnter:
			return v, v.Submit()
		case tea.KeyEsc:
			if v.list.Count() > 0 {
				v.focusInput = false
				v.input.Blur()
				v.statusbar.SetState(status.StateResults)
			}
			return v, nil
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch {
	case msg.Type == tea.KeyEnter:
		if item := v.list.SelectedItem(); item != nil {
			note := item.Note
			return v, func() tea.Msg { return messages.NoteSelected{Note: note} }
		}
	case keymap.Matches(msg.String(), v.keymap.Up):
		v.list.MoveUp()
	case keymap.Matches(msg.String(), v.keymap.Down):
		v.list.MoveDown()
	case keymap.Matches(msg.String(), v.keymap.NewQuery), msg.Type == tea.KeyEsc:
		v.focusInput = true
		v.input.SetValue("")
		v.statusbar.SetState(status.StateReady)
		return v, v.input.Focus()
	case keymap.Matches(msg.String(), v.keymap.Help):
		return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewHelp} }
	case keymap.Matches(msg.String(), v.keymap.Quit):
		return v, func() tea.Msg { return messages.Quit{} }
	}
	return v, nil
}

// Submit asks the current question. It returns nil when the input is
// empty.
func (v *View) Submit() tea.Cmd {
	query := strings.TrimSpace(v.input.Value())
	if query == "" {
		return nil
	}
	v.statusbar.SetState(status.StateAsking)
	v.input.Blur()
	v.focusInput = false
	return v.ask(query)
}

// ask runs the query and resolves each match to its note.
func (v *View) ask(query string) tea.Cmd {
	notes := v.notes
	ctx := v.ctx
	return func() tea.Msg {
		if notes == nil {
			return messages.ErrorOccurred{Err: ErrNoNoteService}
		}

		result, err := notes.Ask(ctx, query)
		if err != nil {
			return messages.AskCompleted{Query: query, Err: err}
		}

		matched := make([]domain.Note, len(result.Matches))
		for i, m := range result.Matches {
			note, err := notes.Get(ctx, m.NoteID)
			if err != nil {
				matched[i] = domain.Note{ID: m.NoteID}
				continue
			}
			matched[i] = *note
		}
		return messages.AskCompleted{Query: query, Result: result, Notes: matched}
	}
}

func (v *View) handleAskCompleted(msg messages.AskCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}

	items := make([]list.Item, len(msg.Result.Matches))
	for i, m := range msg.Result.Matches {
		items[i] = list.Item{Match: m}
		if i < len(msg.Notes) {
			items[i].Note = msg.Notes[i]
		}
	}

	v.err = nil
	v.answer = msg.Result.Answer
	v.list.SetItems(items)
	v.statusbar.SetMessage("")
	v.statusbar.SetMatchCount(len(items))
	v.statusbar.SetState(status.StateResults)
	v.focusInput = false
	v.input.Blur()
}

func (v *View) setError(err error) {
	v.err = err
	v.statusbar.SetState(status.StateError)
	v.statusbar.SetMessage(err.Error())
	v.focusInput = true
	v.input.Focus()
}

// View renders the ask view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, 10)
	sections = append(sections, v.styles.Title.Render("sercha-notes"), "", v.input.View(), "")

	if v.err != nil {
		sections = append(sections, v.styles.Error.Render("Error: "+v.err.Error()), "")
	}
	if v.answer != "" {
		sections = append(sections, v.styles.Answer.Render(v.answer), "")
	}

	sections = append(sections, v.list.View(), "", v.statusbar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.input.SetWidth(width)
	v.list.SetDimensions(width, height-12)
	v.statusbar.SetWidth(width)
}

// Ready returns whether the view is ready to render.
func (v *View) Ready() bool {
	return v.ready
}

// Query returns the current question.
func (v *View) Query() string {
	return v.input.Value()
}

// SetQuery sets the question text.
func (v *View) SetQuery(query string) {
	v.input.SetValue(query)
}

// Answer returns the last synthesised answer.
func (v *View) Answer() string {
	return v.answer
}

// Items returns the current matches.
func (v *View) Items() []list.Item {
	return v.list.Items()
}

// SelectedIndex returns the index of the selected match.
func (v *View) SelectedIndex() int {
	return v.list.Selected()
}

// Err returns the current error, if any.
func (v *View) Err() error {
	return v.err
}

// InputFocused returns whether the input has focus.
func (v *View) InputFocused() bool {
	return v.focusInput
}
