// Package keys turns a raw terminal byte stream into logical key events.
//
// A Token is the exact byte sequence a terminal emits for a key, so a binding
// table can be matched against buffered input directly. The sequence table is
// fixed and covers common xterm/VT220 keys; there is no terminfo lookup.
package keys

import (
	"strconv"
	"strings"
)

// Token identifies a logical key: a literal character, a named multi-byte
// sequence, or a group token that only exists until registration expands it.
type Token string

const (
	CtrlA     Token = "\x01"
	CtrlC     Token = "\x03"
	CtrlD     Token = "\x04"
	CtrlE     Token = "\x05"
	CtrlN     Token = "\x0e"
	CtrlP     Token = "\x10"
	CtrlT     Token = "\x14"
	CtrlU     Token = "\x15"
	CtrlW     Token = "\x17"
	Tab       Token = "\t"
	Enter     Token = "\r"
	Escape    Token = "\x1b"
	Space     Token = " "
	Backspace Token = "\x7f"
	ShiftTab  Token = "\x1b[Z"

	Up       Token = "\x1b[A"
	Down     Token = "\x1b[B"
	Right    Token = "\x1b[C"
	Left     Token = "\x1b[D"
	Home     Token = "\x1b[H"
	End      Token = "\x1b[F"
	Insert   Token = "\x1b[2~"
	Delete   Token = "\x1b[3~"
	PageUp   Token = "\x1b[5~"
	PageDown Token = "\x1b[6~"

	F1  Token = "\x1bOP"
	F2  Token = "\x1bOQ"
	F3  Token = "\x1bOR"
	F4  Token = "\x1bOS"
	F5  Token = "\x1b[15~"
	F6  Token = "\x1b[17~"
	F7  Token = "\x1b[18~"
	F8  Token = "\x1b[19~"
	F9  Token = "\x1b[20~"
	F10 Token = "\x1b[21~"
	F11 Token = "\x1b[23~"
	F12 Token = "\x1b[24~"
)

// Group tokens expand to one literal binding per member character.
const (
	CapitalLetters Token = "capitalLetters"
	SmallLetters   Token = "smallLetters"
	Numbers        Token = "numbers"
)

// Default catches any byte sequence without a binding of its own.
const Default Token = "default"

const escByte = 0x1b

var names = map[Token]string{
	CtrlA:     "ctrl+a",
	CtrlC:     "ctrl+c",
	CtrlD:     "ctrl+d",
	CtrlE:     "ctrl+e",
	CtrlN:     "ctrl+n",
	CtrlP:     "ctrl+p",
	CtrlT:     "ctrl+t",
	CtrlU:     "ctrl+u",
	CtrlW:     "ctrl+w",
	Tab:       "tab",
	Enter:     "enter",
	Escape:    "esc",
	Space:     "space",
	Backspace: "backspace",
	ShiftTab:  "shift+tab",
	Up:        "up",
	Down:      "down",
	Right:     "right",
	Left:      "left",
	Home:      "home",
	End:       "end",
	Insert:    "insert",
	Delete:    "delete",
	PageUp:    "pgup",
	PageDown:  "pgdown",
	F1:        "f1",
	F2:        "f2",
	F3:        "f3",
	F4:        "f4",
	F5:        "f5",
	F6:        "f6",
	F7:        "f7",
	F8:        "f8",
	F9:        "f9",
	F10:       "f10",
	F11:       "f11",
	F12:       "f12",

	CapitalLetters: "capitalLetters",
	SmallLetters:   "smallLetters",
	Numbers:        "numbers",
	Default:        "default",
}

// aliases maps alternate encodings onto the canonical token. Terminals in
// application cursor mode send SS3 arrows, and several emit VT220 home/end.
var aliases = map[Token]Token{
	"\x1bOA":  Up,
	"\x1bOB":  Down,
	"\x1bOC":  Right,
	"\x1bOD":  Left,
	"\x1bOH":  Home,
	"\x1bOF":  End,
	"\x1b[1~": Home,
	"\x1b[4~": End,
	"\x1b[7~": Home,
	"\x1b[8~": End,
	"\b":      Backspace,
	"\n":      Enter,
}

// String returns a readable name for named keys and a quoted form for
// anything else that is not printable.
func (t Token) String() string {
	if name, ok := names[Canonical(t)]; ok {
		return name
	}
	s := string(t)
	if s != "" && strings.IndexFunc(s, func(r rune) bool { return !strconv.IsPrint(r) }) < 0 {
		return s
	}
	return strconv.Quote(s)
}

// Canonical resolves an alias to the token it stands for.
func Canonical(t Token) Token {
	if canonical, ok := aliases[t]; ok {
		return canonical
	}
	return t
}

// IsGroup reports whether t is one of the registration-only group tokens.
func IsGroup(t Token) bool {
	for _, g := range groups {
		if g.token == t {
			return true
		}
	}
	return false
}
