package events

import "github.com/atomicstack/rsync-tui/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Panel(from, to string) {
	logging.Trace("session.panel", map[string]interface{}{"from": from, "to": to})
}

func (SessionTracer) Mode(panel, mode string) {
	logging.Trace("session.mode", map[string]interface{}{"panel": panel, "mode": mode})
}

func (SessionTracer) Toggle(label string, enabled bool) {
	logging.Trace("session.toggle", map[string]interface{}{"option": label, "enabled": enabled})
}

func (SessionTracer) Input(panel, value string) {
	logging.Trace("session.input", map[string]interface{}{"panel": panel, "value": value})
}

func (SessionTracer) Complete(panel, before, after string, ok bool) {
	logging.Trace("session.complete", map[string]interface{}{
		"panel":  panel,
		"before": before,
		"after":  after,
		"ok":     ok,
	})
}
