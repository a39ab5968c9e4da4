package selector

import (
	"time"

	"github.com/atomicstack/tty-pick/internal/logging/events"
	"github.com/dlclark/regexp2"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// matchTimeout bounds a single label test so a pathological pattern cannot
// stall the key loop.
const matchTimeout = 50 * time.Millisecond

type matcher func(label string) bool

func matchAll(string) bool { return true }

// compileMatcher builds the label test for query. An empty query matches
// everything.
func compileMatcher(mode MatchMode, query string) matcher {
	if query == "" {
		return matchAll
	}
	if mode == MatchFuzzy {
		return func(label string) bool {
			return fuzzy.MatchNormalizedFold(query, label)
		}
	}
	re, err := regexp2.Compile(query, regexp2.ECMAScript)
	if err != nil {
		// Half-typed patterns such as "(" are common; treat them as text.
		events.Filter.InvalidPattern(query, err)
		re = regexp2.MustCompile(regexp2.Escape(query), regexp2.None)
	}
	re.MatchTimeout = matchTimeout
	return func(label string) bool {
		ok, err := re.MatchString(label)
		return err == nil && ok
	}
}

// FilterLabels returns the indices of labels matched by query, in order.
func FilterLabels(labels []string, mode MatchMode, query string) []int {
	match := compileMatcher(mode, query)
	out := make([]int, 0, len(labels))
	for i, label := range labels {
		if match(label) {
			out = append(out, i)
		}
	}
	return out
}
