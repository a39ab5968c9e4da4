package events

import "github.com/atomicstack/tty-pick/internal/logging"

type FilterTracer struct{}

type SelectionTracer struct{}

type SessionTracer struct{}

var (
	Filter    = FilterTracer{}
	Selection = SelectionTracer{}
	Session   = SessionTracer{}
)

func (FilterTracer) Query(query string, matched, total int) {
	logging.Trace("filter.query", map[string]interface{}{"query": query, "matched": matched, "total": total})
}

func (FilterTracer) InvalidPattern(query string, err error) {
	logging.Trace("filter.invalid-pattern", map[string]interface{}{"query": query, "error": err.Error()})
}

func (SelectionTracer) Mark(label string, count int) {
	logging.Trace("selection.mark", map[string]interface{}{"label": label, "count": count})
}

func (SelectionTracer) Unmark(label string, count int) {
	logging.Trace("selection.unmark", map[string]interface{}{"label": label, "count": count})
}

func (SelectionTracer) LimitReached(limit int) {
	logging.Trace("selection.limit", map[string]interface{}{"limit": limit})
}

func (SessionTracer) Start(items int, multi bool, limit int) {
	logging.Trace("session.start", map[string]interface{}{"items": items, "multi": multi, "limit": limit})
}

func (SessionTracer) Resolve(outcome string, items int) {
	logging.Trace("session.resolve", map[string]interface{}{"outcome": outcome, "items": items})
}

func (SessionTracer) RenderError(err error) {
	if err == nil {
		return
	}
	logging.Trace("session.render-error", map[string]interface{}{"error": err.Error()})
}
