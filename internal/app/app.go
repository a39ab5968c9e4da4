package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/atomicstack/tty-pick/internal/logging"
	"github.com/atomicstack/tty-pick/internal/logging/events"
	"github.com/atomicstack/tty-pick/internal/render"
	"github.com/atomicstack/tty-pick/internal/selector"
	"github.com/atomicstack/tty-pick/internal/session"
	"github.com/atomicstack/tty-pick/internal/terminal"
	"github.com/atomicstack/tty-pick/internal/theme"
	"github.com/atomicstack/tty-pick/internal/ui"
)

const (
	FrontendRaw = "raw"
	FrontendTea = "tea"
)

// ErrNoInput is returned when stdin held no items to pick from.
var ErrNoInput = errors.New("no input items")

// Config describes user-provided application options.
type Config struct {
	Header           string
	Placeholder      string
	Query            string
	Prompt           string
	Limit            int
	Multi            bool
	Indicator        string
	SelectedMarker   string
	UnselectedMarker string
	Match            string
	Height           int
	Frontend         string
	Delimiter        string
	ThemePath        string
	NoColor          bool
}

// Options converts the configuration into session options.
func (c Config) Options() selector.Options {
	return selector.Options{
		Header:      c.Header,
		Placeholder: c.Placeholder,
		Query:       c.Query,
		Prompt:      c.Prompt,
		Limit:       c.Limit,
		Multi:       c.Multi,
		Glyphs: selector.Glyphs{
			Indicator:  c.Indicator,
			Selected:   c.SelectedMarker,
			Unselected: c.UnselectedMarker,
		},
		Match:  selector.MatchMode(c.Match),
		Height: c.Height,
	}
}

// Terminal is what a pick needs from the controlling terminal.
type Terminal interface {
	io.Reader
	io.Writer
	MakeRaw() error
	Restore() error
	Width() int
	Height() int
	Close() error
}

// OpenTerminal is replaced in tests.
var OpenTerminal = func() (Terminal, error) {
	t, err := terminal.Open()
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Run reads items from items, lets the user pick on the terminal and writes
// the chosen values to out, one per line.
func Run(ctx context.Context, cfg Config, items io.Reader, out io.Writer) error {
	opts := cfg.Options()
	if err := opts.Validate(); err != nil {
		return err
	}
	styles, err := loadStyles(cfg)
	if err != nil {
		return err
	}
	list, err := ReadItems(items, cfg.Delimiter)
	if err != nil {
		return err
	}
	events.App.Items("stdin", len(list))
	if len(list) == 0 {
		return ErrNoInput
	}

	tty, err := OpenTerminal()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer func() {
		if cerr := tty.Close(); cerr != nil {
			logging.Error(cerr)
		}
	}()
	if err := tty.MakeRaw(); err != nil {
		return err
	}
	opts = fitHeight(opts, tty.Height())

	var res selector.Result[string]
	if cfg.Frontend == FrontendTea {
		res, err = ui.Run(ctx, list, opts, styles, tty, tty)
	} else {
		res, err = runRaw(ctx, list, opts, styles, tty)
	}
	if rerr := tty.Restore(); rerr != nil {
		logging.Error(rerr)
	}
	if err != nil {
		return err
	}
	return writeResult(res, out)
}

func runRaw(ctx context.Context, list []selector.Item[string], opts selector.Options, styles *theme.Styles, tty Terminal) (selector.Result[string], error) {
	r := render.New(tty, render.WithStyles(styles), render.WithWidth(tty.Width))
	s, err := session.New(list, opts, r)
	if err != nil {
		return selector.Result[string]{}, err
	}
	res, err := s.Run(ctx, tty)
	if cerr := r.Clear(); cerr != nil && err == nil {
		err = cerr
	}
	return res, err
}

// fitHeight caps the number of item rows so the whole frame fits on a
// terminal of rows lines. The renderer can only climb back over lines that
// are still on screen.
func fitHeight(opts selector.Options, rows int) selector.Options {
	if rows <= 0 {
		return opts
	}
	avail := rows - 1
	if opts.Header != "" {
		avail--
	}
	if avail < 1 {
		avail = 1
	}
	if opts.Height == 0 || opts.Height > avail {
		opts.Height = avail
	}
	return opts
}

func writeResult(res selector.Result[string], out io.Writer) error {
	switch {
	case res.Outcome == selector.Cancelled:
		events.App.Exit(res.Outcome.String(), 0)
		return session.ErrCancelled
	case len(res.Items) == 0:
		events.App.Exit("no-match", 0)
		return session.ErrNoMatch
	}
	for _, item := range res.Items {
		if _, err := fmt.Fprintln(out, item.Value); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	events.App.Exit(res.Outcome.String(), len(res.Items))
	return nil
}

func loadStyles(cfg Config) (*theme.Styles, error) {
	switch {
	case cfg.NoColor:
		return theme.Plain(), nil
	case cfg.ThemePath != "":
		return theme.Load(cfg.ThemePath)
	default:
		return theme.Default(), nil
	}
}
