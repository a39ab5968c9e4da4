// Package selector holds the state of one interactive list session: the
// items, the filter query, the visible subset, the cursor and the marked
// labels. Every operation is a pure state transition; drawing and reading
// keys belong to the caller.
package selector

import (
	"errors"
	"fmt"
)

// Item pairs a display label with the caller's value. Filtering and display
// only ever look at Label.
type Item[T any] struct {
	Label string
	Value T
}

// Outcome records how a session ended.
type Outcome int

const (
	Pending Outcome = iota
	Submitted
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Submitted:
		return "submitted"
	case Cancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// Result is the resolved value of a session. A submitted session with no
// items means nothing was visible; a cancelled one means the user aborted.
type Result[T any] struct {
	Outcome Outcome
	Items   []Item[T]
}

// MatchMode selects how the query is tested against labels.
type MatchMode string

const (
	MatchRegex MatchMode = "regex"
	MatchFuzzy MatchMode = "fuzzy"
)

// Glyphs are the decorations drawn in front of each row.
type Glyphs struct {
	Indicator  string
	Selected   string
	Unselected string
}

const (
	DefaultIndicator   = "▌ "
	DefaultSelected    = "[✓] "
	DefaultUnselected  = "[ ] "
	DefaultPrompt      = "» "
	DefaultPlaceholder = "(type to search)"
)

// Options configure a single session.
type Options struct {
	Header      string
	Placeholder string
	Query       string
	Prompt      string
	// Limit caps the number of marked labels. Zero means no cap.
	Limit  int
	Multi  bool
	Glyphs Glyphs
	Match  MatchMode
	// Height caps the number of rows shown at once. Zero shows all of them.
	Height int
}

var (
	ErrNegativeLimit  = errors.New("selector: limit must not be negative")
	ErrNegativeHeight = errors.New("selector: height must not be negative")
)

// Validate reports malformed options before a session starts.
func (o Options) Validate() error {
	if o.Limit < 0 {
		return ErrNegativeLimit
	}
	if o.Height < 0 {
		return ErrNegativeHeight
	}
	switch o.Match {
	case "", MatchRegex, MatchFuzzy:
	default:
		return fmt.Errorf("selector: unknown match mode %q", o.Match)
	}
	return nil
}

// withDefaults fills unset fields. A positive limit implies multi-select.
func (o Options) withDefaults() Options {
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	if o.Prompt == "" {
		o.Prompt = DefaultPrompt
	}
	if o.Glyphs.Indicator == "" {
		o.Glyphs.Indicator = DefaultIndicator
	}
	if o.Glyphs.Selected == "" {
		o.Glyphs.Selected = DefaultSelected
	}
	if o.Glyphs.Unselected == "" {
		o.Glyphs.Unselected = DefaultUnselected
	}
	if o.Match == "" {
		o.Match = MatchRegex
	}
	if o.Limit > 0 {
		o.Multi = true
	}
	return o
}
