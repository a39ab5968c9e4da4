package session

import (
	"context"
	"io"

	"github.com/atomicstack/tty-pick/internal/selector"
)

// Select runs a single-select session and returns the chosen item.
func Select[T any](ctx context.Context, in io.Reader, items []selector.Item[T], opts selector.Options, r Renderer) (selector.Item[T], error) {
	opts.Multi = false
	opts.Limit = 0
	var zero selector.Item[T]
	s, err := New(items, opts, r)
	if err != nil {
		return zero, err
	}
	res, err := s.Run(ctx, in)
	if err != nil {
		return zero, err
	}
	switch {
	case res.Outcome == selector.Cancelled:
		return zero, ErrCancelled
	case len(res.Items) == 0:
		return zero, ErrNoMatch
	}
	return res.Items[0], nil
}

// MultiSelect runs a session with marking enabled. Confirming with nothing
// marked returns the item under the cursor; confirming with nothing visible
// returns no items and no error.
func MultiSelect[T any](ctx context.Context, in io.Reader, items []selector.Item[T], opts selector.Options, r Renderer) ([]selector.Item[T], error) {
	opts.Multi = true
	s, err := New(items, opts, r)
	if err != nil {
		return nil, err
	}
	res, err := s.Run(ctx, in)
	if err != nil {
		return nil, err
	}
	if res.Outcome == selector.Cancelled {
		return nil, ErrCancelled
	}
	return res.Items, nil
}
