package command

import (
	"strings"

	"github.com/atomicstack/rsync-tui/internal/backend"
	"github.com/atomicstack/rsync-tui/internal/logging/events"
	"github.com/atomicstack/rsync-tui/internal/state"
)

// Bus starts run requests on a runner while emitting trace logs.
type Bus struct {
	runner backend.Runner
}

// New initialises a command bus instance.
func New(runner backend.Runner) *Bus {
	return &Bus{runner: runner}
}

// Start launches req in the background. It returns nil when the bus has no
// runner.
func (b *Bus) Start(req state.RunRequest) *backend.Job {
	label := "run"
	if req.DryRun {
		label = "dry-run"
	}
	argv := req.Args()
	line := strings.Join(argv, " ")
	events.Command.Queue(label, line)
	if b == nil || b.runner == nil {
		events.Command.Skip(label, line)
		return nil
	}
	job := backend.Start(b.runner, argv)
	events.Command.Result(job.ID, label, "job")
	return job
}
