package ui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/tty-pick/internal/logging/events"
	"github.com/atomicstack/tty-pick/internal/selector"
	"github.com/atomicstack/tty-pick/internal/theme"
)

// Run shows the picker as an inline Bubble Tea program reading keys from in
// and drawing to out. A program that exits without resolving counts as a
// cancel.
func Run[T any](ctx context.Context, items []selector.Item[T], opts selector.Options, styles *theme.Styles, in io.Reader, out io.Writer) (selector.Result[T], error) {
	m, err := NewModel(items, opts, styles)
	if err != nil {
		return selector.Result[T]{}, err
	}
	effective := m.state.Options()
	events.Session.Start(len(items), effective.Multi, effective.Limit)

	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	if _, err := p.Run(); err != nil {
		m.state.Cancel()
		return m.Result(), fmt.Errorf("tea program: %w", err)
	}
	if !m.state.Done() {
		m.state.Cancel()
	}
	return m.Result(), nil
}
