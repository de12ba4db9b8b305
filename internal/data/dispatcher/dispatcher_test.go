package dispatcher

import (
	"testing"

	"github.com/atomicstack/rsync-tui/internal/backend"
	"github.com/atomicstack/rsync-tui/internal/rsync"
	"github.com/atomicstack/rsync-tui/internal/state"
)

func TestHandleAppliesLinesAndOutcome(t *testing.T) {
	s := state.New()
	s.Apply(state.Event{Kind: state.EventRun}, nil)
	d := New(s)

	res := d.Handle(backend.Event{Kind: backend.KindLine, Line: rsync.Line{Text: "sending incremental file list"}})
	if res.ProgressUpdated || res.Finished {
		t.Fatalf("unexpected result for plain line: %+v", res)
	}
	res = d.Handle(backend.Event{Kind: backend.KindLine, Line: rsync.Line{Text: "1,024 45% 1.0MB/s 0:00:01"}})
	if !res.ProgressUpdated || s.ProgressPercent != 45 {
		t.Fatalf("expected progress update, got %+v pct=%.1f", res, s.ProgressPercent)
	}
	res = d.Handle(backend.Event{Kind: backend.KindDone, Outcome: rsync.Outcome{Kind: rsync.OutcomeFailed, ExitCode: 23}})
	if !res.Finished || s.Running {
		t.Fatalf("expected finished run, got %+v running=%v", res, s.Running)
	}
	if got := s.RecentLog()[0]; got != "Sync failed with exit code: 23" {
		t.Fatalf("unexpected log %q", got)
	}
}

func TestHandleWithoutSession(t *testing.T) {
	res := New(nil).Handle(backend.Event{Kind: backend.KindDone})
	if res != (Result{}) {
		t.Fatalf("expected empty result, got %+v", res)
	}
}
