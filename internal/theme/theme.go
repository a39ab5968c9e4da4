package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the Lip Gloss styles used to draw a picker.
type Styles struct {
	Header      *lipgloss.Style
	Prompt      *lipgloss.Style
	Query       *lipgloss.Style
	Placeholder *lipgloss.Style
	Indicator   *lipgloss.Style
	Item        *lipgloss.Style
	CursorItem  *lipgloss.Style
	Marker      *lipgloss.Style
	Unmarked    *lipgloss.Style
	Counter     *lipgloss.Style
	Error       *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Prompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Query: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Indicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	CursorItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Marker: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Unmarked: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	Counter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set. Callers must not modify it; use
// Clone first.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns styles that add no escape sequences at all.
func Plain() *Styles {
	s := lipgloss.NewStyle()
	return &Styles{
		Header:      ptr(s),
		Prompt:      ptr(s),
		Query:       ptr(s),
		Placeholder: ptr(s),
		Indicator:   ptr(s),
		Item:        ptr(s),
		CursorItem:  ptr(s),
		Marker:      ptr(s),
		Unmarked:    ptr(s),
		Counter:     ptr(s),
		Error:       ptr(s),
	}
}

// Clone returns a deep copy whose styles can be changed independently.
func (s *Styles) Clone() *Styles {
	return &Styles{
		Header:      ptr(*s.Header),
		Prompt:      ptr(*s.Prompt),
		Query:       ptr(*s.Query),
		Placeholder: ptr(*s.Placeholder),
		Indicator:   ptr(*s.Indicator),
		Item:        ptr(*s.Item),
		CursorItem:  ptr(*s.CursorItem),
		Marker:      ptr(*s.Marker),
		Unmarked:    ptr(*s.Unmarked),
		Counter:     ptr(*s.Counter),
		Error:       ptr(*s.Error),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
