// Package render redraws a picker frame in place on a raw-mode terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/tty-pick/internal/selector"
	"github.com/atomicstack/tty-pick/internal/theme"
)

// Renderer owns the lines it last drew and replaces them on every call.
type Renderer struct {
	out    io.Writer
	styles *theme.Styles
	width  func() int
	drawn  int
}

// Option adjusts a Renderer.
type Option func(*Renderer)

// WithStyles sets the style set. The default is theme.Default.
func WithStyles(s *theme.Styles) Option {
	return func(r *Renderer) {
		if s != nil {
			r.styles = s
		}
	}
}

// WithWidth supplies the terminal width, queried on every redraw so resizes
// are picked up.
func WithWidth(fn func() int) Option {
	return func(r *Renderer) {
		if fn != nil {
			r.width = fn
		}
	}
}

// New returns a renderer writing to out.
func New(out io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:    out,
		styles: theme.Default(),
		width:  func() int { return 0 },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render erases the previous frame and draws f. Raw mode turns off output
// post-processing, so lines are joined with an explicit carriage return.
func (r *Renderer) Render(f selector.Frame) error {
	width := r.width()
	lines := View(f, r.styles, width)
	for i, line := range lines {
		lines[i] = truncateStyled(line, width)
	}
	var b strings.Builder
	b.WriteString(r.rewind())
	b.WriteString(strings.Join(lines, "\r\n"))
	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	r.drawn = len(lines)
	return nil
}

// Clear erases whatever was drawn and leaves the cursor where the first line
// started.
func (r *Renderer) Clear() error {
	if r.drawn == 0 {
		return nil
	}
	if _, err := io.WriteString(r.out, r.rewind()); err != nil {
		return fmt.Errorf("clear frame: %w", err)
	}
	r.drawn = 0
	return nil
}

// rewind moves to the start of the first drawn line and erases downwards.
func (r *Renderer) rewind() string {
	if r.drawn == 0 {
		return ""
	}
	seq := "\r"
	if r.drawn > 1 {
		seq += ansi.CursorUp(r.drawn - 1)
	}
	return seq + ansi.EraseScreenBelow
}
