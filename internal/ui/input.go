package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model[T]) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	st := m.state
	switch keyMsg.String() {
	case "up", "shift+tab", "ctrl+p":
		st.MovePrev()
	case "down", "tab", "ctrl+n":
		st.MoveNext()
	case "home":
		st.MoveFirst()
	case "end":
		st.MoveLast()
	case "pgup":
		st.PageUp()
	case "pgdown":
		st.PageDown()
	case "enter":
		st.Submit()
		return tea.Quit
	case "esc", "ctrl+c":
		st.Cancel()
		return tea.Quit
	case "ctrl+u":
		m.input.SetValue("")
		st.ClearQuery()
	case "ctrl+t":
		if st.Options().Multi {
			st.Toggle()
		}
	case "+", "-":
		if st.Options().Multi {
			if keyMsg.String() == "+" {
				st.Mark()
			} else {
				st.Unmark()
			}
			return nil
		}
		return m.updateInput(keyMsg)
	default:
		return m.updateInput(keyMsg)
	}
	return nil
}

// updateInput lets the text input edit the query and refilters when its value
// changed.
func (m *Model[T]) updateInput(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.state.Query() {
		m.state.SetQuery(value)
	}
	return cmd
}
