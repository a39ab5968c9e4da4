package keys

import (
	"bufio"
	"context"
	"io"
	"unicode/utf8"

	"github.com/atomicstack/tty-pick/internal/logging/events"
)

// EventKind classifies a resolved event.
type EventKind int

const (
	// KeyEvent carries a bound token.
	KeyEvent EventKind = iota
	// TextEvent carries unmatched bytes for the Default handler.
	TextEvent
	// DoubleEscapeEvent is two consecutive Escape bytes.
	DoubleEscapeEvent
)

// Event is one resolved key press.
type Event struct {
	Kind  EventKind
	Token Token
	Text  string
}

// Decoder reads one byte at a time and resolves the buffered bytes against a
// Registry. It never reads ahead of the byte it is deciding on, so handlers
// run before the next byte is consumed.
type Decoder struct {
	in  io.ByteReader
	reg *Registry
	buf []byte
}

// NewDecoder reads from r. Readers without ReadByte are buffered, which only
// changes how bytes are fetched from r, never the order of dispatch.
func NewDecoder(r io.Reader, reg *Registry) *Decoder {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{in: br, reg: reg, buf: make([]byte, 0, 8)}
}

// Buffered returns the bytes read since the last resolved event.
func (d *Decoder) Buffered() []byte {
	return d.buf
}

// Next blocks until the input resolves into an event. Unbound input with no
// Default handler is discarded and reading continues. The only errors are
// read errors from the underlying reader.
func (d *Decoder) Next() (Event, error) {
	d.buf = d.buf[:0]
	for {
		b, err := d.in.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if b == escByte && len(d.buf) > 0 && !d.reg.IsPrefix(string(d.buf)+"\x1b") {
			// A new Escape abandons whatever sequence was in progress.
			events.Key.Drop(string(d.buf))
			d.buf = d.buf[:0]
		}
		d.buf = append(d.buf, b)

		if len(d.buf) == 1 && b == escByte {
			next, err := d.in.ReadByte()
			if err != nil {
				return Event{}, err
			}
			if next == escByte {
				d.buf = d.buf[:0]
				return Event{Kind: DoubleEscapeEvent, Token: Escape}, nil
			}
			// A lone Escape and the start of a longer sequence look the
			// same until the second byte arrives; never match on it.
			d.buf = append(d.buf, next)
			continue
		}

		seq := string(d.buf)
		if tok, _, ok := d.reg.Lookup(seq); ok {
			d.buf = d.buf[:0]
			return Event{Kind: KeyEvent, Token: tok}, nil
		}
		if d.incomplete(seq) {
			continue
		}
		d.buf = d.buf[:0]
		if _, ok := d.reg.Default(); ok {
			return Event{Kind: TextEvent, Token: Default, Text: seq}, nil
		}
		events.Key.Drop(seq)
	}
}

// incomplete reports whether more bytes could still turn seq into something
// meaningful.
func (d *Decoder) incomplete(seq string) bool {
	if d.reg.IsPrefix(seq) {
		return true
	}
	if seq[0] == escByte {
		return unterminatedCSI(seq)
	}
	return !utf8.FullRuneInString(seq)
}

// unterminatedCSI reports whether seq is ESC [ followed by parameter bytes
// but no final byte yet. Bytes outside the 7-bit range end the wait.
func unterminatedCSI(seq string) bool {
	if len(seq) < 2 || seq[0] != escByte || seq[1] != '[' {
		return false
	}
	if len(seq) == 2 {
		return true
	}
	last := seq[len(seq)-1]
	if last >= 0x80 {
		return false
	}
	return last < 0x40 || last > 0x7e
}

// Run dispatches events until a handler calls cancel, ctx is done, or the
// reader fails. ctx is only consulted between events: a blocked read is not
// interrupted. after, when set, runs once each handler has returned; an error
// from it stops the loop and is returned as is.
func (d *Decoder) Run(ctx context.Context, after func() error) error {
	cancelled := false
	cancel := func() { cancelled = true }
	for !cancelled {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := d.Next()
		if err != nil {
			return err
		}
		d.Dispatch(ev, cancel)
		if after != nil {
			if err := after(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Dispatch invokes the handler for ev. A double Escape goes to the handler
// bound to Escape, or straight to cancel when there is none.
func (d *Decoder) Dispatch(ev Event, cancel CancelFunc) {
	switch ev.Kind {
	case KeyEvent:
		if _, h, ok := d.reg.Lookup(string(ev.Token)); ok {
			events.Key.Dispatch(ev.Token.String())
			h(ev.Token, cancel)
		}
	case TextEvent:
		if h, ok := d.reg.Default(); ok {
			events.Key.Text(ev.Text)
			h(Token(ev.Text), cancel)
		}
	case DoubleEscapeEvent:
		h, ok := d.reg.Handler(Escape)
		events.Key.DoubleEscape(ok)
		if ok {
			h(Escape, cancel)
			return
		}
		cancel()
	}
}
