package state

import (
	"fmt"
	"strings"

	"github.com/atomicstack/rsync-tui/internal/logging/events"
	"github.com/atomicstack/rsync-tui/internal/rsync"
)

const (
	// LogDisplayLimit is how many log lines the view shows.
	LogDisplayLimit = 20
	// OutputDisplayLimit is how many raw output lines the view shows.
	OutputDisplayLimit = 10
)

const errPrefix = "[ERR] "

// Session holds everything the interface shows and edits. It is owned by the
// event loop and never shared with the run goroutine.
type Session struct {
	Source      string
	Destination string
	Options     rsync.Options

	ActivePanel Panel
	Mode        Mode

	Log            Buffer
	ProgressOutput Buffer

	Running         bool
	ProgressPercent float64
	TransferInfo    string
	ShouldQuit      bool
}

// New returns a session focused on the source field with default options.
func New() *Session {
	return &Session{Options: rsync.DefaultOptions()}
}

// RunRequest is an immutable snapshot of what to run.
type RunRequest struct {
	Source      string
	Destination string
	Options     rsync.Options
	DryRun      bool
}

// Args builds the argument vector for the request.
func (r RunRequest) Args() []string {
	return rsync.Build(r.Source, r.Destination, r.Options)
}

// Request snapshots the session. Dry-run forcing only touches the copy.
func (s *Session) Request(dryRun bool) RunRequest {
	opts := s.Options.Clone()
	if dryRun {
		opts.DryRun = true
	}
	return RunRequest{
		Source:      s.Source,
		Destination: s.Destination,
		Options:     opts,
		DryRun:      opts.DryRun,
	}
}

// CommandPreview formats the command a normal run would execute.
func (s *Session) CommandPreview() string {
	return rsync.Format(s.Source, s.Destination, s.Options)
}

// RecentLog returns the displayed log lines, newest first.
func (s *Session) RecentLog() []string {
	return s.Log.Recent(LogDisplayLimit)
}

// RecentOutput returns the displayed output lines, newest first.
func (s *Session) RecentOutput() []string {
	return s.ProgressOutput.Recent(OutputDisplayLimit)
}

// Field returns a pointer to the text field of the active panel, or nil.
func (s *Session) Field() *string {
	switch s.ActivePanel {
	case PanelSource:
		return &s.Source
	case PanelDestination:
		return &s.Destination
	}
	return nil
}

// BeginRun marks the session as running and returns the request to execute.
// A session that is already running logs the rejection and returns false.
func (s *Session) BeginRun(dryRun bool) (RunRequest, bool) {
	if s.Running {
		s.Log.Append("Run already in progress; ignoring request")
		events.Run.Reject("run in progress")
		return RunRequest{}, false
	}
	req := s.Request(dryRun)
	s.Running = true
	s.ProgressPercent = 0
	s.TransferInfo = ""
	args := req.Args()
	s.Log.Append("Running: " + strings.Join(args, " "))
	events.Run.Queue(args, req.DryRun)
	return req, true
}

// ApplyLine records one line of child output and reports whether the
// progress gauge moved.
func (s *Session) ApplyLine(line rsync.Line) bool {
	if line.Stream == rsync.StreamStderr {
		tagged := errPrefix + line.Text
		s.Log.Append(tagged)
		s.ProgressOutput.Append(tagged)
		return false
	}
	s.Log.Append(line.Text)
	s.ProgressOutput.Append(line.Text)
	p, ok := rsync.ParseProgress(line.Text)
	if !ok {
		return false
	}
	s.ProgressPercent = p.Percent
	s.TransferInfo = p.Info
	return true
}

// ApplyOutcome records how a run ended. Running is cleared on every path.
func (s *Session) ApplyOutcome(o rsync.Outcome) {
	s.Running = false
	switch o.Kind {
	case rsync.OutcomeSuccess:
		s.ProgressPercent = 100
		s.Log.Append("Sync completed successfully")
	case rsync.OutcomeFailed:
		code := "unknown"
		if o.ExitCode >= 0 {
			code = fmt.Sprint(o.ExitCode)
		}
		s.Log.Append("Sync failed with exit code: " + code)
	case rsync.OutcomeSpawnFailed:
		s.Log.Append(fmt.Sprintf("Failed to execute rsync: %v", o.Err))
	case rsync.OutcomeLocked:
		s.Log.Append(fmt.Sprintf("Run refused: %v", o.Err))
	case rsync.OutcomeCancelled:
		s.Log.Append("Sync cancelled")
	}
	events.Run.Exit(o.Kind.String(), o.ExitCode, o.Duration.Milliseconds())
}
