// Package terminal opens the controlling terminal and switches it into raw
// mode for the duration of a pick.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when no usable terminal is attached.
var ErrNotTerminal = errors.New("not a terminal")

const ttyPath = "/dev/tty"

// Terminal is the input/output pair used for drawing and reading keys.
type Terminal struct {
	In  *os.File
	Out *os.File

	owned bool
	saved *term.State
}

// Open prefers /dev/tty so items can be piped on stdin. Without one it falls
// back to stdin for keys and stderr for drawing, which still leaves stdout
// free for the result.
func Open() (*Terminal, error) {
	if tty, err := os.OpenFile(ttyPath, os.O_RDWR, 0); err == nil {
		return &Terminal{In: tty, Out: tty, owned: true}, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("open %s: %w", ttyPath, ErrNotTerminal)
	}
	return &Terminal{In: os.Stdin, Out: os.Stderr}, nil
}

// Read reads key bytes from the input side.
func (t *Terminal) Read(p []byte) (int, error) { return t.In.Read(p) }

// Write draws on the output side.
func (t *Terminal) Write(p []byte) (int, error) { return t.Out.Write(p) }

// MakeRaw puts the input side into raw mode. Calling it twice is harmless.
func (t *Terminal) MakeRaw() error {
	if t.saved != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.In.Fd()))
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	t.saved = state
	return nil
}

// Restore returns the terminal to the mode it had before MakeRaw.
func (t *Terminal) Restore() error {
	if t.saved == nil {
		return nil
	}
	err := term.Restore(int(t.In.Fd()), t.saved)
	t.saved = nil
	if err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// Width returns the column count, or 0 when it cannot be determined.
func (t *Terminal) Width() int {
	w, _, err := t.Size()
	if err != nil {
		return 0
	}
	return w
}

// Height returns the row count, or 0 when it cannot be determined.
func (t *Terminal) Height() int {
	_, h, err := t.Size()
	if err != nil {
		return 0
	}
	return h
}

// Size reports the terminal dimensions.
func (t *Terminal) Size() (width, height int, err error) {
	return term.GetSize(int(t.Out.Fd()))
}

// Close restores the terminal and releases /dev/tty if this package opened
// it.
func (t *Terminal) Close() error {
	err := t.Restore()
	if t.owned {
		if cerr := t.In.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
