package selector

import (
	"unicode/utf8"

	"github.com/atomicstack/tty-pick/internal/logging/events"
)

// SetQuery replaces the query and recomputes the visible set. The cursor
// returns to the first match.
func (s *State[T]) SetQuery(query string) bool {
	prev := s.visible
	changed := query != s.query || prev == nil || s.cursor != 0
	s.query = query
	s.visible = FilterLabels(s.labels, s.opts.Match, query)
	s.cursor = 0
	s.offset = 0
	events.Filter.Query(query, len(s.visible), len(s.items))
	return changed || !sameIndices(prev, s.visible)
}

// AppendText adds text to the end of the query.
func (s *State[T]) AppendText(text string) bool {
	if text == "" {
		return false
	}
	return s.SetQuery(s.query + text)
}

// Backspace removes the last rune of the query. An empty query stays empty.
func (s *State[T]) Backspace() bool {
	if s.query == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(s.query)
	return s.SetQuery(s.query[:len(s.query)-size])
}

// ClearQuery empties the query.
func (s *State[T]) ClearQuery() bool {
	if s.query == "" {
		return false
	}
	return s.SetQuery("")
}

func sameIndices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
