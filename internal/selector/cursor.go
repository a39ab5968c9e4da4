package selector

// MoveNext advances the cursor, wrapping from the last row to the first.
func (s *State[T]) MoveNext() bool {
	n := len(s.visible)
	if n == 0 {
		return false
	}
	s.cursor = (s.cursor + 1) % n
	s.ensureCursorVisible()
	return n > 1
}

// MovePrev retreats the cursor, wrapping from the first row to the last.
func (s *State[T]) MovePrev() bool {
	n := len(s.visible)
	if n == 0 {
		return false
	}
	s.cursor = (s.cursor - 1 + n) % n
	s.ensureCursorVisible()
	return n > 1
}

// MoveFirst moves the cursor to the first visible row.
func (s *State[T]) MoveFirst() bool {
	if len(s.visible) == 0 {
		return false
	}
	return s.moveTo(0)
}

// MoveLast moves the cursor to the last visible row.
func (s *State[T]) MoveLast() bool {
	if len(s.visible) == 0 {
		return false
	}
	return s.moveTo(len(s.visible) - 1)
}

// PageDown moves the cursor down by one page without wrapping.
func (s *State[T]) PageDown() bool {
	return s.moveBy(s.pageSize())
}

// PageUp moves the cursor up by one page without wrapping.
func (s *State[T]) PageUp() bool {
	return s.moveBy(-s.pageSize())
}

func (s *State[T]) moveBy(delta int) bool {
	n := len(s.visible)
	if n == 0 {
		return false
	}
	target := s.cursor + delta
	if target < 0 {
		target = 0
	}
	if target >= n {
		target = n - 1
	}
	return s.moveTo(target)
}

func (s *State[T]) moveTo(idx int) bool {
	old := s.cursor
	s.cursor = idx
	s.ensureCursorVisible()
	return old != s.cursor
}

func (s *State[T]) pageSize() int {
	size := s.opts.Height
	if size <= 0 || size > len(s.visible) {
		size = len(s.visible)
	}
	if size < 1 {
		size = 1
	}
	return size
}

// ensureCursorVisible slides the viewport so the cursor row is inside it.
func (s *State[T]) ensureCursorVisible() {
	n := len(s.visible)
	height := s.opts.Height
	if n == 0 || height <= 0 || height >= n {
		s.offset = 0
		return
	}
	maxOffset := n - height
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor > s.offset+height-1 {
		s.offset = s.cursor - height + 1
	}
}
