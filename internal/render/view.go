package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/tty-pick/internal/selector"
	"github.com/atomicstack/tty-pick/internal/theme"
)

const ellipsis = "…"

type segment struct {
	text  string
	style *lipgloss.Style
	raw   bool // text already carries escape sequences
}

func (s segment) width() int {
	if s.raw {
		return lipgloss.Width(s.text)
	}
	return runewidth.StringWidth(s.text)
}

func (s segment) truncate(width int) segment {
	if s.raw {
		s.text = truncateStyled(s.text, width)
		return s
	}
	s.text = runewidth.Truncate(s.text, width, ellipsis)
	return s
}

type styledLine []segment

func (l styledLine) width() int {
	w := 0
	for _, seg := range l {
		w += seg.width()
	}
	return w
}

// fit cuts the line to width columns, shortening the last segments first.
func (l styledLine) fit(width int) styledLine {
	if width <= 0 || l.width() <= width {
		return l
	}
	out := make(styledLine, 0, len(l))
	room := width
	for _, seg := range l {
		w := seg.width()
		if w < room {
			out = append(out, seg)
			room -= w
			continue
		}
		out = append(out, seg.truncate(room))
		break
	}
	return out
}

func (l styledLine) render() string {
	var b strings.Builder
	for _, seg := range l {
		if seg.style != nil && seg.text != "" && !seg.raw {
			b.WriteString(seg.style.Render(seg.text))
			continue
		}
		b.WriteString(seg.text)
	}
	return b.String()
}

// View draws a frame as styled lines no wider than width columns. A width of
// zero disables truncation.
func View(f selector.Frame, styles *theme.Styles, width int) []string {
	return Compose(f, styles, width, "")
}

// Compose is View with the prompt and query replaced by an already styled
// input line, such as the one a text input widget draws.
func Compose(f selector.Frame, styles *theme.Styles, width int, input string) []string {
	lines := make([]styledLine, 0, len(f.Rows)+2)
	if f.Header != "" {
		lines = append(lines, styledLine{{text: f.Header, style: styles.Header}})
	}
	if input != "" {
		lines = append(lines, styledLine{
			{text: input, raw: true},
			{text: "  " + counter(f), style: styles.Counter},
		})
	} else {
		lines = append(lines, promptLine(f, styles))
	}
	for _, row := range f.Rows {
		lines = append(lines, rowLine(row, f, styles))
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = line.fit(width).render()
	}
	return out
}

func promptLine(f selector.Frame, styles *theme.Styles) styledLine {
	query := segment{text: f.Query, style: styles.Query}
	if f.Placeholder {
		query.style = styles.Placeholder
	}
	return styledLine{
		{text: f.Prompt, style: styles.Prompt},
		query,
		{text: "  " + counter(f), style: styles.Counter},
	}
}

func counter(f selector.Frame) string {
	text := fmt.Sprintf("%d/%d", f.Matched, f.Total)
	if !f.Multi {
		return text
	}
	if f.Limit > 0 {
		return fmt.Sprintf("%s (%d/%d selected)", text, f.Selected, f.Limit)
	}
	return fmt.Sprintf("%s (%d selected)", text, f.Selected)
}

func rowLine(row selector.Row, f selector.Frame, styles *theme.Styles) styledLine {
	line := make(styledLine, 0, 3)
	if row.Cursor {
		line = append(line, segment{text: f.Glyphs.Indicator, style: styles.Indicator})
	} else {
		line = append(line, segment{text: strings.Repeat(" ", runewidth.StringWidth(f.Glyphs.Indicator))})
	}
	if f.Multi {
		if row.Selected {
			line = append(line, segment{text: f.Glyphs.Selected, style: styles.Marker})
		} else {
			line = append(line, segment{text: f.Glyphs.Unselected, style: styles.Unmarked})
		}
	}
	labelStyle := styles.Item
	if row.Cursor {
		labelStyle = styles.CursorItem
	}
	return append(line, segment{text: row.Label, style: labelStyle})
}

// truncateStyled shortens text that may already carry escape sequences.
func truncateStyled(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(width-1), ellipsis)
}
