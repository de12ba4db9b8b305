package dispatcher

import (
	"github.com/atomicstack/rsync-tui/internal/backend"
	"github.com/atomicstack/rsync-tui/internal/state"
)

// Result reports what an event changed. ProgressUpdated is set when a line
// moved the gauge; Finished when the run's outcome was recorded.
type Result struct {
	ProgressUpdated bool
	Finished        bool
}

type Dispatcher struct {
	session *state.Session
}

func New(s *state.Session) *Dispatcher {
	return &Dispatcher{session: s}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if d.session == nil {
		return res
	}
	switch evt.Kind {
	case backend.KindLine:
		res.ProgressUpdated = d.session.ApplyLine(evt.Line)
	case backend.KindDone:
		d.session.ApplyOutcome(evt.Outcome)
		res.Finished = true
	}
	return res
}
