package selector

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFrameLines(t *testing.T) {
	s := newTestState(Options{
		Header: "Pick fruit",
		Multi:  true,
		Glyphs: Glyphs{Indicator: "> ", Selected: "[x] ", Unselected: "[ ] "},
		Prompt: "? ",
	}, "apple", "banana", "cherry")
	s.Mark()

	want := []string{
		"Pick fruit",
		"? " + DefaultPlaceholder,
		"  [x] apple",
		"> [ ] banana",
		"  [ ] cherry",
	}
	if diff := cmp.Diff(want, s.Frame().Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameSingleSelectHasNoMarkers(t *testing.T) {
	s := newTestState(Options{Query: "an"}, "apple", "banana")
	f := s.Frame()
	if f.Placeholder {
		t.Fatalf("expected query, not placeholder")
	}
	want := []string{DefaultPrompt + "an", DefaultIndicator + "banana"}
	if diff := cmp.Diff(want, f.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameViewportFollowsCursor(t *testing.T) {
	s := newTestState(Options{Height: 2}, "a", "b", "c", "d")
	s.MoveLast()
	f := s.Frame()
	if f.Offset != 2 || len(f.Rows) != 2 {
		t.Fatalf("expected window [2,4), got offset %d rows %d", f.Offset, len(f.Rows))
	}
	if f.Rows[0].Label != "c" || !f.Rows[1].Cursor {
		t.Fatalf("unexpected rows %+v", f.Rows)
	}
	s.MoveNext()
	f = s.Frame()
	if f.Offset != 0 || !f.Rows[0].Cursor || f.Rows[0].Label != "a" {
		t.Fatalf("expected wrap to scroll back to the top, got %+v", f)
	}
	if f.Matched != 4 || f.Total != 4 {
		t.Fatalf("unexpected counts %+v", f)
	}
}

func TestDecorateLeavesLabelIntact(t *testing.T) {
	g := Glyphs{Indicator: "▌ ", Selected: "[✓] ", Unselected: "[ ] "}
	label := "[✓] tricky"
	got := Decorate(Row{Label: label, Cursor: true, Selected: true}, g, true)
	if got != "▌ [✓] [✓] tricky" {
		t.Fatalf("unexpected decoration %q", got)
	}
	got = Decorate(Row{Label: label}, g, false)
	if got != "  "+label {
		t.Fatalf("unexpected decoration %q", got)
	}
}
