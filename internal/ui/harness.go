package ui

import tea "github.com/charmbracelet/bubbletea"

// maxCommandSteps bounds how many chained commands one Send may run, so a
// command that keeps rescheduling itself cannot hang a test.
const maxCommandSteps = 64

// Harness drives a Model programmatically for tests.
type Harness[T any] struct {
	model *Model[T]
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness[T any](model *Model[T]) *Harness[T] {
	return &Harness[T]{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness[T]) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	_, cmd := h.model.Update(msg)
	h.processCmd(cmd)
}

// Type sends one key message per rune of text.
func (h *Harness[T]) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Press sends a special key such as tea.KeyEnter.
func (h *Harness[T]) Press(key tea.KeyType) {
	h.Send(tea.KeyMsg{Type: key})
}

func (h *Harness[T]) processCmd(cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < maxCommandSteps; steps++ {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		switch msg := next().(type) {
		case nil:
		case tea.QuitMsg:
			h.quit = true
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			_, follow := h.model.Update(msg)
			queue = append(queue, follow)
		}
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness[T]) Quit() bool { return h.quit }

// View returns the current view string.
func (h *Harness[T]) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness[T]) Model() *Model[T] {
	return h.model
}
