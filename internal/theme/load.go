package theme

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// styleEntry is one entry of a theme file. Unset fields keep the default.
type styleEntry struct {
	Foreground *string `yaml:"foreground"`
	Background *string `yaml:"background"`
	Bold       *bool   `yaml:"bold"`
	Italic     *bool   `yaml:"italic"`
	Underline  *bool   `yaml:"underline"`
	Faint      *bool   `yaml:"faint"`
}

type themeFile struct {
	Header      *styleEntry `yaml:"header"`
	Prompt      *styleEntry `yaml:"prompt"`
	Query       *styleEntry `yaml:"query"`
	Placeholder *styleEntry `yaml:"placeholder"`
	Indicator   *styleEntry `yaml:"indicator"`
	Item        *styleEntry `yaml:"item"`
	CursorItem  *styleEntry `yaml:"cursor_item"`
	Marker      *styleEntry `yaml:"marker"`
	Unmarked    *styleEntry `yaml:"unmarked"`
	Counter     *styleEntry `yaml:"counter"`
	Error       *styleEntry `yaml:"error"`
}

// Load reads a YAML theme file and overlays it on the default styles.
func Load(path string) (*Styles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	styles, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return styles, nil
}

// Parse overlays YAML theme data on the default styles. Unknown keys are
// rejected so a typo does not silently fall back to the default.
//
//	header:
//	  foreground: "245"
//	  bold: true
//	cursor_item:
//	  background: "#303030"
func Parse(data []byte) (*Styles, error) {
	var file themeFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, err
	}
	styles := Default().Clone()
	pairs := []struct {
		entry *styleEntry
		style *lipgloss.Style
	}{
		{file.Header, styles.Header},
		{file.Prompt, styles.Prompt},
		{file.Query, styles.Query},
		{file.Placeholder, styles.Placeholder},
		{file.Indicator, styles.Indicator},
		{file.Item, styles.Item},
		{file.CursorItem, styles.CursorItem},
		{file.Marker, styles.Marker},
		{file.Unmarked, styles.Unmarked},
		{file.Counter, styles.Counter},
		{file.Error, styles.Error},
	}
	for _, p := range pairs {
		if p.entry != nil {
			*p.style = p.entry.apply(*p.style)
		}
	}
	return styles, nil
}

func (s *styleEntry) apply(style lipgloss.Style) lipgloss.Style {
	if s.Foreground != nil {
		style = style.Foreground(lipgloss.Color(*s.Foreground))
	}
	if s.Background != nil {
		style = style.Background(lipgloss.Color(*s.Background))
	}
	if s.Bold != nil {
		style = style.Bold(*s.Bold)
	}
	if s.Italic != nil {
		style = style.Italic(*s.Italic)
	}
	if s.Underline != nil {
		style = style.Underline(*s.Underline)
	}
	if s.Faint != nil {
		style = style.Faint(*s.Faint)
	}
	return style
}
