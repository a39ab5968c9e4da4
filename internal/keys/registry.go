package keys

// CancelFunc ends the dispatch loop once the running handler returns.
type CancelFunc func()

// Handler receives the resolved token and the loop's cancel function. A
// handler bound to Default receives the unmatched bytes as its token.
type Handler func(token Token, cancel CancelFunc)

// Bindings maps tokens to handlers. Group tokens and Default are allowed.
type Bindings map[Token]Handler

var groups = []struct {
	token   Token
	members string
}{
	{CapitalLetters, "ABCDEFGHIJKLMNOPQRSTUVWXYZ"},
	{SmallLetters, "abcdefghijklmnopqrstuvwxyz"},
	{Numbers, "0123456789"},
}

// Expand returns a copy of b in which every group token has been replaced by
// one literal binding per member character.
//
// A group overwrites any explicit binding for one of its members, so binding
// "q" to quit alongside SmallLetters leaves "q" typing into the query. Bind
// literal overrides after expansion (on the returned table) when the literal
// must win.
func Expand(b Bindings) Bindings {
	out := make(Bindings, len(b))
	for tok, h := range b {
		if IsGroup(tok) || h == nil {
			continue
		}
		out[tok] = h
	}
	for _, g := range groups {
		h, ok := b[g.token]
		if !ok || h == nil {
			continue
		}
		for _, r := range g.members {
			out[Token(string(r))] = h
		}
	}
	return out
}

// Registry is an expanded, read-only binding table.
type Registry struct {
	bindings Bindings
	prefixes map[string]struct{}
}

// NewRegistry expands b and indexes every strict prefix of the sequences the
// decoder may need to wait for.
func NewRegistry(b Bindings) *Registry {
	r := &Registry{
		bindings: Expand(b),
		prefixes: make(map[string]struct{}),
	}
	addPrefixes := func(t Token) {
		s := string(t)
		for i := 1; i < len(s); i++ {
			r.prefixes[s[:i]] = struct{}{}
		}
	}
	for t := range r.bindings {
		if t != Default {
			addPrefixes(t)
		}
	}
	for t := range names {
		if !IsGroup(t) && t != Default {
			addPrefixes(t)
		}
	}
	for t := range aliases {
		addPrefixes(t)
	}
	return r
}

// Lookup resolves seq to a bound handler, following aliases. The returned
// token is the canonical one.
func (r *Registry) Lookup(seq string) (Token, Handler, bool) {
	tok := Token(seq)
	if tok == Default {
		return "", nil, false
	}
	if h, ok := r.bindings[tok]; ok {
		return tok, h, true
	}
	if canonical := Canonical(tok); canonical != tok {
		if h, ok := r.bindings[canonical]; ok {
			return canonical, h, true
		}
	}
	return "", nil, false
}

// Handler returns the handler bound to exactly t.
func (r *Registry) Handler(t Token) (Handler, bool) {
	h, ok := r.bindings[t]
	return h, ok
}

// Default returns the fallback handler, if one was registered.
func (r *Registry) Default() (Handler, bool) {
	return r.Handler(Default)
}

// IsPrefix reports whether seq is a strict prefix of a known sequence.
func (r *Registry) IsPrefix(seq string) bool {
	_, ok := r.prefixes[seq]
	return ok
}
