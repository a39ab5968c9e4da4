package selector

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row is one visible item as the renderer sees it.
type Row struct {
	Label    string
	Cursor   bool
	Selected bool
}

// Frame is a snapshot of everything a redraw needs.
type Frame struct {
	Header string
	Prompt string
	// Query is the filter text, or the placeholder when Placeholder is set.
	Query       string
	Placeholder bool
	Rows        []Row
	// Offset is the index of Rows[0] within the visible set.
	Offset   int
	Matched  int
	Total    int
	Selected int
	Limit    int
	Multi    bool
	Glyphs   Glyphs
}

// Frame snapshots the state for drawing. Only the viewport window of the
// visible set is included when a height is configured.
func (s *State[T]) Frame() Frame {
	f := Frame{
		Header:   s.opts.Header,
		Prompt:   s.opts.Prompt,
		Query:    s.query,
		Offset:   s.offset,
		Matched:  len(s.visible),
		Total:    len(s.items),
		Selected: s.SelectedCount(),
		Limit:    s.opts.Limit,
		Multi:    s.opts.Multi,
		Glyphs:   s.opts.Glyphs,
	}
	if s.query == "" {
		f.Query = s.opts.Placeholder
		f.Placeholder = true
	}
	end := len(s.visible)
	if h := s.opts.Height; h > 0 && s.offset+h < end {
		end = s.offset + h
	}
	f.Rows = make([]Row, 0, end-s.offset)
	for i := s.offset; i < end; i++ {
		label := s.labels[s.visible[i]]
		f.Rows = append(f.Rows, Row{
			Label:    label,
			Cursor:   i == s.cursor,
			Selected: s.IsSelected(label),
		})
	}
	return f
}

// Decorate returns the display text for a row. The label itself is never
// altered, so a row can always be traced back to its item.
func Decorate(r Row, g Glyphs, multi bool) string {
	var b strings.Builder
	if r.Cursor {
		b.WriteString(g.Indicator)
	} else {
		b.WriteString(strings.Repeat(" ", runewidth.StringWidth(g.Indicator)))
	}
	if multi {
		if r.Selected {
			b.WriteString(g.Selected)
		} else {
			b.WriteString(g.Unselected)
		}
	}
	b.WriteString(r.Label)
	return b.String()
}

// Lines renders the frame as plain text: header (when set), prompt line,
// then one decorated line per row.
func (f Frame) Lines() []string {
	lines := make([]string, 0, len(f.Rows)+2)
	if f.Header != "" {
		lines = append(lines, f.Header)
	}
	lines = append(lines, f.Prompt+f.Query)
	for _, r := range f.Rows {
		lines = append(lines, Decorate(r, f.Glyphs, f.Multi))
	}
	return lines
}
