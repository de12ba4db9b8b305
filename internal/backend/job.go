package backend

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/atomicstack/rsync-tui/internal/logging/events"
	"github.com/atomicstack/rsync-tui/internal/rsync"
)

// Kind represents the type of data emitted by a run job.
type Kind int

const (
	KindLine Kind = iota
	KindDone
)

// Event conveys one output line or the final outcome of a run.
type Event struct {
	Kind    Kind
	Line    rsync.Line
	Outcome rsync.Outcome
}

// Runner executes a command and streams its output.
type Runner interface {
	Run(ctx context.Context, argv []string, onLine func(rsync.Line)) rsync.Outcome
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, argv []string, onLine func(rsync.Line)) rsync.Outcome

func (f RunnerFunc) Run(ctx context.Context, argv []string, onLine func(rsync.Line)) rsync.Outcome {
	return f(ctx, argv, onLine)
}

var jobSeq atomic.Int64

// Job runs one command in the background and publishes its output. The
// events channel ends with exactly one KindDone event and is then closed.
type Job struct {
	ID string

	ctx    context.Context
	cancel context.CancelFunc

	events  chan Event
	abandon chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// Start launches argv on runner.
func Start(runner Runner, argv []string) *Job {
	ctx, cancel := context.WithCancel(context.Background())
	j := &Job{
		ID:      fmt.Sprintf("run-%d", jobSeq.Add(1)),
		ctx:     ctx,
		cancel:  cancel,
		events:  make(chan Event, 64),
		abandon: make(chan struct{}),
	}
	events.Run.Start(j.ID)

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		defer cancel()
		outcome := runner.Run(ctx, argv, func(line rsync.Line) {
			events.Run.Line(line.Stream.String(), line.Text)
			j.send(Event{Kind: KindLine, Line: line})
		})
		j.send(Event{Kind: KindDone, Outcome: outcome})
	}()

	go func() {
		j.wg.Wait()
		close(j.events)
	}()

	return j
}

// Events returns the job's event stream.
func (j *Job) Events() <-chan Event {
	return j.events
}

// Cancel asks the running command to stop. Remaining output and the final
// outcome are still delivered.
func (j *Job) Cancel() {
	j.cancel()
}

// Stop cancels the job and discards any events nobody is reading.
func (j *Job) Stop() {
	j.cancel()
	j.once.Do(func() { close(j.abandon) })
}

// Wait blocks until the job goroutine has exited and the events channel is
// closed.
func (j *Job) Wait() {
	j.wg.Wait()
}

func (j *Job) send(evt Event) {
	select {
	case j.events <- evt:
	case <-j.abandon:
	}
}
