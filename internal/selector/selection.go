package selector

import "github.com/atomicstack/tty-pick/internal/logging/events"

// Mark adds the label under the cursor to the selection and advances. When
// the limit is already reached nothing changes, not even the cursor.
func (s *State[T]) Mark() bool {
	item, ok := s.Current()
	if !ok {
		return false
	}
	if limit := s.opts.Limit; limit > 0 && len(s.selected) >= limit {
		events.Selection.LimitReached(limit)
		return false
	}
	s.selected[item.Label] = struct{}{}
	events.Selection.Mark(item.Label, len(s.selected))
	s.MoveNext()
	return true
}

// Unmark removes the label under the cursor from the selection and advances.
// An unmarked label leaves the state untouched.
func (s *State[T]) Unmark() bool {
	item, ok := s.Current()
	if !ok {
		return false
	}
	if _, marked := s.selected[item.Label]; !marked {
		return false
	}
	delete(s.selected, item.Label)
	events.Selection.Unmark(item.Label, len(s.selected))
	s.MoveNext()
	return true
}

// Toggle unmarks a marked label and marks an unmarked one.
func (s *State[T]) Toggle() bool {
	item, ok := s.Current()
	if !ok {
		return false
	}
	if s.IsSelected(item.Label) {
		return s.Unmark()
	}
	return s.Mark()
}

// IsSelected reports whether label is marked.
func (s *State[T]) IsSelected(label string) bool {
	_, ok := s.selected[label]
	return ok
}

// SelectedCount returns the number of marked labels, including ones the
// current query hides.
func (s *State[T]) SelectedCount() int {
	return len(s.selected)
}
