package testutil

import "testing"

func TestReplay(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "one\r\ntwo", "one\ntwo\n"},
		{"overwrite", "abc\rX", "Xbc\n"},
		{"colours dropped", "\x1b[1;32mok\x1b[0m", "ok\n"},
		{"redraw", "a\r\nb\r\nc\r\x1b[2A\x1b[Jz", "z\n"},
		{"up defaults to one", "a\r\nb\r\x1b[A\x1b[Jq", "q\n"},
		{"erase line", "abc\r\x1b[K", ""},
		{"cleared", "a\r\nb\r\x1b[A\x1b[J", ""},
	}
	for _, tc := range cases {
		if got := Replay(tc.raw); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
