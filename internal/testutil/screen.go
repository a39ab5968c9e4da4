// Package testutil holds helpers shared by tests that look at what ended up
// on the terminal.
package testutil

import (
	"strconv"
	"strings"
)

// Replay interprets raw terminal output and returns the text left on screen,
// one line per row. It understands carriage returns, line feeds, cursor up
// and erase below, which is everything the renderer emits. Colours and other
// sequences are dropped.
func Replay(raw string) string {
	s := &screen{rows: [][]rune{nil}}
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '\r':
			s.col = 0
		case '\n':
			s.row++
			if s.row == len(s.rows) {
				s.rows = append(s.rows, nil)
			}
		case '\x1b':
			i = s.escape(runes, i)
		default:
			s.put(r)
		}
	}
	return s.String()
}

type screen struct {
	rows     [][]rune
	row, col int
}

func (s *screen) put(r rune) {
	line := s.rows[s.row]
	for len(line) < s.col {
		line = append(line, ' ')
	}
	if s.col < len(line) {
		line[s.col] = r
	} else {
		line = append(line, r)
	}
	s.rows[s.row] = line
	s.col++
}

// escape consumes the sequence starting at runes[i] and returns the index of
// its last rune.
func (s *screen) escape(runes []rune, i int) int {
	if i+1 >= len(runes) {
		return i
	}
	if runes[i+1] != '[' {
		return i + 1
	}
	j := i + 2
	for j < len(runes) && (runes[j] < 0x40 || runes[j] > 0x7e) {
		j++
	}
	if j >= len(runes) {
		return len(runes) - 1
	}
	param := string(runes[i+2 : j])
	switch runes[j] {
	case 'A':
		n, err := strconv.Atoi(param)
		if err != nil || n < 1 {
			n = 1
		}
		s.row -= n
		if s.row < 0 {
			s.row = 0
		}
	case 'J':
		if s.col < len(s.rows[s.row]) {
			s.rows[s.row] = s.rows[s.row][:s.col]
		}
		s.rows = s.rows[:s.row+1]
	case 'K':
		if s.col < len(s.rows[s.row]) {
			s.rows[s.row] = s.rows[s.row][:s.col]
		}
	}
	return j
}

func (s *screen) String() string {
	lines := make([]string, len(s.rows))
	for i, row := range s.rows {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
