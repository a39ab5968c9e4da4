package ui

import (
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tty-pick/internal/render"
	"github.com/atomicstack/tty-pick/internal/selector"
	"github.com/atomicstack/tty-pick/internal/theme"
)

type msgHandler func(tea.Msg) tea.Cmd

// Model implements tea.Model over a selector.State.
type Model[T any] struct {
	state  *selector.State[T]
	input  textinput.Model
	styles *theme.Styles
	width  int
	height int

	handlers map[reflect.Type]msgHandler
}

// NewModel validates opts and builds a model. A nil styles uses the default
// theme.
func NewModel[T any](items []selector.Item[T], opts selector.Options, styles *theme.Styles) (*Model[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if styles == nil {
		styles = theme.Default()
	}
	state := selector.NewState(items, opts)
	effective := state.Options()

	ti := textinput.New()
	ti.Prompt = effective.Prompt
	ti.Placeholder = effective.Placeholder
	ti.PromptStyle = *styles.Prompt
	ti.TextStyle = *styles.Query
	ti.PlaceholderStyle = *styles.Placeholder
	// A blinking cursor keeps scheduling ticks; the picker redraws on input
	// only.
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.SetValue(effective.Query)
	ti.Focus()

	m := &Model[T]{
		state:  state,
		input:  ti,
		styles: styles,
	}
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Done() {
		return m, nil
	}
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model[T]) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil {
		return nil
	}
	return m.handlers[reflect.TypeOf(msg)]
}

func (m *Model[T]) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.width = size.Width
	m.height = size.Height
	return nil
}

// View draws the picker, or nothing once it has resolved.
func (m *Model[T]) View() string {
	if m.state.Done() {
		return ""
	}
	lines := render.Compose(m.state.Frame(), m.styles, m.width, m.input.View())
	if m.height > 0 && len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

// State exposes the selector state.
func (m *Model[T]) State() *selector.State[T] { return m.state }

// Result returns the resolution, Pending while the picker is still open.
func (m *Model[T]) Result() selector.Result[T] { return m.state.Result() }
