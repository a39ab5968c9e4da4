package selector

import (
	"github.com/atomicstack/tty-pick/internal/logging/events"
)

// State is the live state of one session. It is not safe for concurrent use;
// the key loop owns it.
type State[T any] struct {
	opts    Options
	items   []Item[T]
	labels  []string
	query   string
	visible []int
	cursor  int
	offset  int

	selected map[string]struct{}
	outcome  Outcome
	result   []Item[T]
}

// NewState copies items and applies the initial query. Options are assumed to
// have passed Validate.
func NewState[T any](items []Item[T], opts Options) *State[T] {
	s := &State[T]{
		opts:     opts.withDefaults(),
		items:    make([]Item[T], len(items)),
		labels:   make([]string, len(items)),
		selected: make(map[string]struct{}),
	}
	copy(s.items, items)
	for i, item := range s.items {
		s.labels[i] = item.Label
	}
	s.SetQuery(s.opts.Query)
	return s
}

// Options returns the options in effect, defaults included.
func (s *State[T]) Options() Options { return s.opts }

// Query returns the current filter text.
func (s *State[T]) Query() string { return s.query }

// Len returns the number of items in the session.
func (s *State[T]) Len() int { return len(s.items) }

// Visible returns the labels currently eligible for navigation, in item order.
func (s *State[T]) Visible() []string {
	out := make([]string, len(s.visible))
	for i, idx := range s.visible {
		out[i] = s.labels[idx]
	}
	return out
}

// Cursor returns the index into Visible, or -1 when nothing is visible.
func (s *State[T]) Cursor() int {
	if len(s.visible) == 0 {
		return -1
	}
	return s.cursor
}

// Current returns the item under the cursor.
func (s *State[T]) Current() (Item[T], bool) {
	if len(s.visible) == 0 {
		return Item[T]{}, false
	}
	return s.items[s.visible[s.cursor]], true
}

// Outcome reports whether and how the session has resolved.
func (s *State[T]) Outcome() Outcome { return s.outcome }

// Done reports whether Submit or Cancel has run.
func (s *State[T]) Done() bool { return s.outcome != Pending }

// Result returns the resolution. Before Submit or Cancel it is Pending.
func (s *State[T]) Result() Result[T] {
	return Result[T]{Outcome: s.outcome, Items: s.result}
}

// Submit resolves the session with the marked items in item order, or with
// the item under the cursor when nothing is marked. It returns false when
// the session had already resolved.
func (s *State[T]) Submit() bool {
	if s.Done() {
		return false
	}
	s.outcome = Submitted
	if len(s.selected) > 0 {
		for _, item := range s.items {
			if _, ok := s.selected[item.Label]; ok {
				s.result = append(s.result, item)
			}
		}
	} else if item, ok := s.Current(); ok {
		s.result = []Item[T]{item}
	}
	events.Session.Resolve(s.outcome.String(), len(s.result))
	return true
}

// Cancel resolves the session without a selection.
func (s *State[T]) Cancel() bool {
	if s.Done() {
		return false
	}
	s.outcome = Cancelled
	s.result = nil
	events.Session.Resolve(s.outcome.String(), 0)
	return true
}
