package events

import "github.com/atomicstack/rsync-tui/internal/logging"

type RunTracer struct{}

type CommandTracer struct{}

var (
	Run     = RunTracer{}
	Command = CommandTracer{}
)

func (RunTracer) Queue(argv []string, dryRun bool) {
	logging.Trace("run.queue", map[string]interface{}{"argv": argv, "dry_run": dryRun})
}

func (RunTracer) Reject(reason string) {
	logging.Trace("run.reject", map[string]interface{}{"reason": reason})
}

func (RunTracer) Start(id string) {
	logging.Trace("run.start", map[string]interface{}{"id": id})
}

func (RunTracer) Line(stream, text string) {
	logging.Trace("run.line", map[string]interface{}{"stream": stream, "text": text})
}

func (RunTracer) Exit(kind string, code int, millis int64) {
	logging.Trace("run.exit", map[string]interface{}{"kind": kind, "code": code, "duration_ms": millis})
}

func (RunTracer) Cancel() {
	logging.Trace("run.cancel", nil)
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
