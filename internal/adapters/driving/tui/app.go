package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/views/ask"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/tui/views/note"
)

// App is the TUI application model.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	askView  *ask.View
	noteView *note.View

	currentView messages.ViewType
	err         error
	initial     string

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		askView:     ask.NewView(s, keymap.DefaultKeyMap(), ports.Notes),
		noteView:    note.NewView(s),
		currentView: messages.ViewAsk,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.askView.WithContext(ctx)
	return a
}

// WithQuery asks query as soon as the program starts.
func (a *App) WithQuery(query string) *App {
	a.initial = query
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("sercha-notes"),
		a.askView.Init(),
	}
	if a.initial != "" {
		a.askView.SetQuery(a.initial)
		cmds = append(cmds, a.askView.Submit())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.currentView {
		case messages.ViewAsk:
			a.askView, cmd = a.askView.Update(msg)
			a.err = a.askView.Err()
		case messages.ViewNote:
			a.noteView, cmd = a.noteView.Update(msg)
		case messages.ViewHelp:
			if msg.Type == tea.KeyEsc || msg.String() == "q" || msg.String() == "?" {
				a.currentView = messages.ViewAsk
			}
		}
		return a, cmd

	case messages.AskCompleted:
		a.askView, cmd = a.askView.Update(msg)
		a.err = a.askView.Err()
		return a, cmd

	case messages.NoteSelected:
		a.noteView.SetNote(msg.Note)
		a.currentView = messages.ViewNote
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.currentView = messages.ViewAsk
		a.askView, cmd = a.askView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	if a.currentView == messages.ViewAsk {
		a.askView, cmd = a.askView.Update(msg)
	}
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewNote:
		return a.noteView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.askView.View()
	}
}

func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Question:
  (type)      Enter a question
  enter       Ask
  esc         Back to matches

Matches:
  j/k, ↑/↓    Navigate matches
  enter       Open note
  n, esc      New question
  q           Quit

Note:
  esc         Back to matches

ctrl+c quits from anywhere. [esc] back`
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.askView.SetDimensions(width, height)
	a.noteView.SetDimensions(width, height)
}
