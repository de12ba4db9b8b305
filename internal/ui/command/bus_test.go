package command

import (
	"context"
	"reflect"
	"testing"

	"github.com/atomicstack/rsync-tui/internal/backend"
	"github.com/atomicstack/rsync-tui/internal/rsync"
	"github.com/atomicstack/rsync-tui/internal/state"
)

func TestStartWithoutRunner(t *testing.T) {
	if job := New(nil).Start(state.RunRequest{}); job != nil {
		t.Fatalf("expected nil job without a runner")
	}
}

func TestStartPassesArgs(t *testing.T) {
	seen := make(chan []string, 1)
	runner := backend.RunnerFunc(func(_ context.Context, argv []string, _ func(rsync.Line)) rsync.Outcome {
		seen <- argv
		return rsync.Outcome{Kind: rsync.OutcomeSuccess}
	})
	req := state.New().Request(true)
	req.Source, req.Destination = "/a", "/b"
	job := New(runner).Start(req)
	if job == nil {
		t.Fatalf("expected a job")
	}
	job.Wait()
	want := []string{"rsync", "-a", "-v", "-n", "--progress", "-h", "/a", "/b"}
	if got := <-seen; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
