package events

import "github.com/atomicstack/tty-pick/internal/logging"

type KeyTracer struct{}

var Key = KeyTracer{}

func (KeyTracer) Dispatch(token string) {
	logging.Trace("key.dispatch", map[string]interface{}{"token": token})
}

func (KeyTracer) Text(text string) {
	logging.Trace("key.text", map[string]interface{}{"text": text})
}

func (KeyTracer) Drop(seq string) {
	logging.Trace("key.drop", map[string]interface{}{"bytes": []byte(seq)})
}

func (KeyTracer) DoubleEscape(bound bool) {
	logging.Trace("key.double-escape", map[string]interface{}{"bound": bound})
}
