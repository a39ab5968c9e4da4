package events

import "github.com/atomicstack/tty-pick/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Items(source string, count int) {
	logging.Trace("app.items", map[string]interface{}{"source": source, "count": count})
}

func (AppTracer) Exit(outcome string, printed int) {
	logging.Trace("app.exit", map[string]interface{}{"outcome": outcome, "printed": printed})
}
