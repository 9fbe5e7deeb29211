package ui

import (
	"chromamem/internal/dispatch"
	"chromamem/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Title is shown at the top of the screen and as the terminal window title.
const Title = "Chromatic Memory"

// defaultWidth is used until the first WindowSizeMsg arrives (and in tests).
const defaultWidth = 80

// Options tunes AppModel behavior.
type Options struct {
	// ConfirmReset asks for confirmation before clearing the result list.
	ConfirmReset bool
}

// AppModel is the root model. It owns no selection state itself: every pick,
// removal and reset goes through Session, and keyboard color keys go through
// Dispatcher so they hit the same Append as pointer clicks.
type AppModel struct {
	Session    *session.Session
	Dispatcher *dispatch.Dispatcher
	KeyHandler *KeyHandler
	Keys       *KeyMap
	Focus      *FocusManager
	Overlays   OverlayStack
	Options    Options

	PaletteCursor int // focused swatch, index into palette.All()
	ResultCursor  int // focused chip, an ordinal into Session.Entries()

	Status        string
	StatusIsError bool

	Width  int
	Height int

	zones   Hitmap
	release []func()
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model for sess. The dispatcher is attached and
// a change listener subscribed until Close is called.
func NewAppModel(sess *session.Session, km dispatch.Keymap, opts Options) *AppModel {
	reg := newRegistry()
	m := &AppModel{
		Session:    sess,
		Dispatcher: dispatch.New(km),
		KeyHandler: NewKeyHandler(reg),
		Keys:       NewKeyMap(km, reg),
		Focus:      NewFocusManager(),
		Options:    opts,
	}
	m.Focus.OnChange = func(_, to Panel) {
		if to == PanelResults {
			m.clampResultCursor(m.Session.Len())
		}
	}
	m.release = append(m.release,
		m.Dispatcher.Attach(sess),
		sess.Subscribe(m.onChange),
	)
	return m
}

// newRegistry binds the non-color keys. Color keys live in the dispatcher.
func newRegistry() *KeybindRegistry {
	reset := func() tea.Msg { return RequestResetMsg{} }
	toggleHelp := func() tea.Msg { return ToggleHelpMsg{} }

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("R", reset, "reset")
	reg.BindWithDesc("?", toggleHelp, "help")
	reg.BindWithDescForMode("SPC r", reset, "reset", []AppMode{ModeTracker})
	reg.BindWithDesc("SPC ?", toggleHelp, "help")
	reg.BindWithDesc("SPC q", tea.Quit, "quit")
	return reg
}

// Close detaches the dispatcher, drops the change listener and closes the
// session. Safe to call more than once.
func (m *AppModel) Close() {
	for i := len(m.release) - 1; i >= 0; i-- {
		m.release[i]()
	}
	m.release = nil
	m.Session.Close()
}

// Mode reports what currently receives keyboard input.
func (m *AppModel) Mode() AppMode {
	top, ok := m.Overlays.Peek()
	if !ok {
		return ModeTracker
	}
	if _, isConfirm := top.View.(*ConfirmModal); isConfirm {
		return ModeConfirm
	}
	return ModeHelp
}

// Zones returns the clickable regions of the last rendered frame.
func (m *AppModel) Zones() []Zone {
	return m.zones.Zones()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.SetWindowTitle(Title)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}
	return a, a.apply(msg)
}

// View implements tea.Model. Rendering also rebuilds the hit zones used by
// the next mouse click.
func (a *appModelAdapter) View() string {
	a.zones.Reset()
	if top, ok := a.Overlays.Peek(); ok {
		return top.View.View()
	}
	return a.render()
}
