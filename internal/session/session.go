// Package session runs one interactive pick: it binds keys to selector
// operations, redraws after every event and returns once the user confirms
// or cancels.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/atomicstack/tty-pick/internal/keys"
	"github.com/atomicstack/tty-pick/internal/logging"
	"github.com/atomicstack/tty-pick/internal/logging/events"
	"github.com/atomicstack/tty-pick/internal/selector"
)

var (
	// ErrCancelled is returned by Select and MultiSelect when the user aborts.
	ErrCancelled = errors.New("selection cancelled")
	// ErrNoMatch is returned by Select when the user confirms with nothing
	// visible.
	ErrNoMatch = errors.New("no matching item")
	// ErrFinished is returned when Run is called on a resolved session.
	ErrFinished = errors.New("session already finished")
)

// Renderer draws a frame. It is called once before the first key and once
// after every handled key.
type Renderer interface {
	Render(selector.Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(selector.Frame) error

func (f RendererFunc) Render(frame selector.Frame) error { return f(frame) }

// Session is a single-use interactive pick over items of type T.
type Session[T any] struct {
	state    *selector.State[T]
	renderer Renderer
	registry *keys.Registry
}

// New validates opts and prepares a session. Nothing is drawn until Run.
func New[T any](items []selector.Item[T], opts selector.Options, r Renderer) (*Session[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		return nil, errors.New("session: renderer is required")
	}
	s := &Session[T]{
		state:    selector.NewState(items, opts),
		renderer: r,
	}
	s.registry = keys.NewRegistry(s.Bindings())
	return s, nil
}

// State exposes the underlying selector state.
func (s *Session[T]) State() *selector.State[T] { return s.state }

// Bindings returns the key table the session runs with.
func (s *Session[T]) Bindings() keys.Bindings {
	st := s.state
	resolve := func(fn func() bool) keys.Handler {
		return func(_ keys.Token, cancel keys.CancelFunc) {
			fn()
			cancel()
		}
	}

	b := keys.Bindings{
		keys.Up:       s.op(st.MovePrev),
		keys.ShiftTab: s.op(st.MovePrev),
		keys.CtrlP:    s.op(st.MovePrev),
		keys.Down:     s.op(st.MoveNext),
		keys.Tab:      s.op(st.MoveNext),
		keys.CtrlN:    s.op(st.MoveNext),
		keys.Home:     s.op(st.MoveFirst),
		keys.End:      s.op(st.MoveLast),
		keys.PageUp:   s.op(st.PageUp),
		keys.PageDown: s.op(st.PageDown),

		keys.Backspace: s.op(st.Backspace),
		keys.CtrlU:     s.op(st.ClearQuery),

		keys.Enter:  resolve(st.Submit),
		keys.Escape: resolve(st.Cancel),
		keys.CtrlC:  resolve(st.Cancel),

		keys.CapitalLetters: s.appendToken,
		keys.SmallLetters:   s.appendToken,
		keys.Numbers:        s.appendToken,
		keys.Default:        s.appendPrintable,
	}
	if st.Options().Multi {
		b["+"] = s.op(st.Mark)
		b["-"] = s.op(st.Unmark)
		b[keys.CtrlT] = s.op(st.Toggle)
	}
	return b
}

func (s *Session[T]) op(fn func() bool) keys.Handler {
	return func(_ keys.Token, _ keys.CancelFunc) { fn() }
}

func (s *Session[T]) appendToken(tok keys.Token, _ keys.CancelFunc) {
	s.state.AppendText(string(tok))
}

// appendPrintable types unmatched input into the query unless it contains
// control bytes, which are what stray escape sequences look like.
func (s *Session[T]) appendPrintable(tok keys.Token, _ keys.CancelFunc) {
	text := string(tok)
	if text == "" || strings.IndexFunc(text, func(r rune) bool { return !unicode.IsPrint(r) }) >= 0 {
		events.Key.Drop(text)
		return
	}
	s.state.AppendText(text)
}

// Run draws the initial frame and reads keys from in until the session
// resolves. End of input counts as a cancel. Read and render failures cancel
// the session and are returned alongside the cancelled result.
func (s *Session[T]) Run(ctx context.Context, in io.Reader) (selector.Result[T], error) {
	if s.state.Done() {
		return s.state.Result(), ErrFinished
	}
	opts := s.state.Options()
	events.Session.Start(s.state.Len(), opts.Multi, opts.Limit)

	if err := s.redraw(); err != nil {
		s.state.Cancel()
		logging.Error(err)
		return s.state.Result(), err
	}

	var renderErr error
	dec := keys.NewDecoder(in, s.registry)
	err := dec.Run(ctx, func() error {
		renderErr = s.redraw()
		return renderErr
	})
	if !s.state.Done() {
		s.state.Cancel()
	}

	var runErr error
	switch {
	case err == nil, errors.Is(err, io.EOF):
	case renderErr != nil:
		runErr = renderErr
	case ctx.Err() != nil && errors.Is(err, ctx.Err()):
		return s.state.Result(), err
	default:
		runErr = fmt.Errorf("reading keys: %w", err)
	}
	if runErr != nil {
		logging.Error(runErr)
	}
	return s.state.Result(), runErr
}

func (s *Session[T]) redraw() error {
	if err := s.renderer.Render(s.state.Frame()); err != nil {
		events.Session.RenderError(err)
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
