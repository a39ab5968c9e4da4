package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/atomicstack/tty-pick/internal/keys"
	"github.com/atomicstack/tty-pick/internal/logging"
	"github.com/atomicstack/tty-pick/internal/selector"
	"github.com/atomicstack/tty-pick/internal/session"
	"github.com/atomicstack/tty-pick/internal/testutil"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "tty-pick-app")
	if err != nil {
		panic(err)
	}
	logging.Configure(filepath.Join(dir, "test.log"))
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type fakeTerminal struct {
	keys     *strings.Reader
	screen   bytes.Buffer
	raw      bool
	rawCalls int
	closed   bool
	height   int
}

func (f *fakeTerminal) Read(p []byte) (int, error)  { return f.keys.Read(p) }
func (f *fakeTerminal) Write(p []byte) (int, error) { return f.screen.Write(p) }
func (f *fakeTerminal) MakeRaw() error              { f.raw = true; f.rawCalls++; return nil }
func (f *fakeTerminal) Restore() error              { f.raw = false; return nil }
func (f *fakeTerminal) Width() int                  { return 80 }
func (f *fakeTerminal) Height() int                 { return f.height }
func (f *fakeTerminal) Close() error                { f.closed = true; return nil }

func withFakeTerminal(t *testing.T, input string) *fakeTerminal {
	t.Helper()
	fake := &fakeTerminal{keys: strings.NewReader(input)}
	prev := OpenTerminal
	OpenTerminal = func() (Terminal, error) { return fake, nil }
	t.Cleanup(func() { OpenTerminal = prev })
	return fake
}

func TestRunPrintsSelection(t *testing.T) {
	fake := withFakeTerminal(t, "an\r")
	var out bytes.Buffer
	err := Run(context.Background(), Config{Frontend: FrontendRaw, NoColor: true}, strings.NewReader("apple\nbanana\ncherry\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if out.String() != "banana\n" {
		t.Fatalf("expected banana, got %q", out.String())
	}
	if fake.raw || !fake.closed || fake.rawCalls != 1 {
		t.Fatalf("expected terminal restored and closed, got %+v", fake)
	}
	if !strings.Contains(fake.screen.String(), "banana") {
		t.Fatalf("expected the picker drawn on the terminal")
	}
	if got := testutil.Replay(fake.screen.String()); got != "" {
		t.Fatalf("expected the picker erased on exit, got %q", got)
	}
}

func TestRunMultiSelect(t *testing.T) {
	withFakeTerminal(t, "++\r")
	var out bytes.Buffer
	err := Run(context.Background(), Config{Frontend: FrontendRaw, Multi: true, NoColor: true}, strings.NewReader("a\nb\nc\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if out.String() != "a\nb\n" {
		t.Fatalf("expected a and b, got %q", out.String())
	}
}

func TestRunCancelled(t *testing.T) {
	withFakeTerminal(t, string(keys.CtrlC))
	var out bytes.Buffer
	err := Run(context.Background(), Config{Frontend: FrontendRaw, NoColor: true}, strings.NewReader("a\n"), &out)
	if !errors.Is(err, session.ErrCancelled) {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected nothing printed, got %q", out.String())
	}
}

func TestRunNoMatch(t *testing.T) {
	withFakeTerminal(t, "zz\r")
	err := Run(context.Background(), Config{Frontend: FrontendRaw, NoColor: true}, strings.NewReader("a\n"), &bytes.Buffer{})
	if !errors.Is(err, session.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
}

func TestRunValidatesBeforeOpeningTerminal(t *testing.T) {
	opened := false
	prev := OpenTerminal
	OpenTerminal = func() (Terminal, error) { opened = true; return nil, errors.New("unused") }
	t.Cleanup(func() { OpenTerminal = prev })

	err := Run(context.Background(), Config{Frontend: FrontendRaw, Match: "glob"}, strings.NewReader("a\n"), &bytes.Buffer{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if opened {
		t.Fatalf("expected terminal untouched on invalid options")
	}
	err = Run(context.Background(), Config{Frontend: FrontendRaw}, strings.NewReader("\n\n"), &bytes.Buffer{})
	if !errors.Is(err, ErrNoInput) || opened {
		t.Fatalf("expected ErrNoInput without opening the terminal, got %v", err)
	}
}

func TestRunDelimiterKeepsOriginalLine(t *testing.T) {
	withFakeTerminal(t, string(keys.Down)+"\r")
	var out bytes.Buffer
	err := Run(context.Background(), Config{Frontend: FrontendRaw, Delimiter: ",", NoColor: true}, strings.NewReader("main,3\nscratch,12\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if out.String() != "scratch,12\n" {
		t.Fatalf("expected original line, got %q", out.String())
	}
}

func TestReadItems(t *testing.T) {
	items, err := ReadItems(strings.NewReader("one | 1\r\n\n  \nthree | 333\n"), "|")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	var labels, values []string
	for _, item := range items {
		labels = append(labels, item.Label)
		values = append(values, item.Value)
	}
	if diff := cmp.Diff([]string{"one    1", "three  333"}, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"one | 1", "three | 333"}, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigOptions(t *testing.T) {
	opts := Config{Limit: 3, Indicator: ">", Match: "fuzzy"}.Options()
	if opts.Limit != 3 || opts.Glyphs.Indicator != ">" || opts.Match != "fuzzy" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestRunFitsFrameOnShortTerminal(t *testing.T) {
	fake := withFakeTerminal(t, strings.Repeat(string(keys.Down), 20)+"\r")
	fake.height = 10
	var lines strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&lines, "item%02d\n", i)
	}
	var out bytes.Buffer
	err := Run(context.Background(), Config{Frontend: FrontendRaw, Header: "Files", NoColor: true}, strings.NewReader(lines.String()), &out)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if out.String() != "item20\n" {
		t.Fatalf("expected item20, got %q", out.String())
	}

	screen := fake.screen.String()
	for i, frame := range strings.Split(screen, ansi.EraseScreenBelow) {
		if n := strings.Count(frame, "\r\n") + 1; n > fake.height {
			t.Fatalf("frame %d spans %d lines on a %d line terminal", i, n, fake.height)
		}
	}
	for _, m := range regexp.MustCompile(`\x1b\[(\d+)A`).FindAllStringSubmatch(screen, -1) {
		if n, _ := strconv.Atoi(m[1]); n >= fake.height {
			t.Fatalf("cursor moved up %d lines on a %d line terminal", n, fake.height)
		}
	}
}

func TestFitHeight(t *testing.T) {
	cases := []struct {
		opts selector.Options
		rows int
		want int
	}{
		{selector.Options{}, 0, 0},
		{selector.Options{}, 24, 23},
		{selector.Options{Header: "h"}, 24, 22},
		{selector.Options{Height: 5}, 24, 5},
		{selector.Options{Height: 40}, 24, 23},
		{selector.Options{Header: "h"}, 2, 1},
	}
	for _, tc := range cases {
		if got := fitHeight(tc.opts, tc.rows).Height; got != tc.want {
			t.Fatalf("fitHeight(%+v, %d): expected %d, got %d", tc.opts, tc.rows, tc.want, got)
		}
	}
}
