package rsync

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/atomicstack/rsync-tui/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Stream identifies which pipe a line was read from.
type Stream int

const (
	StreamStdout Stream = iota
	StreamStderr
)

func (s Stream) String() string {
	if s == StreamStderr {
		return "stderr"
	}
	return "stdout"
}

// Line is one line of child output.
type Line struct {
	Stream Stream
	Text   string
}

// OutcomeKind classifies how a run ended.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailed
	OutcomeSpawnFailed
	OutcomeLocked
	OutcomeCancelled
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailed:
		return "failed"
	case OutcomeSpawnFailed:
		return "spawn-failed"
	case OutcomeLocked:
		return "locked"
	case OutcomeCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Outcome is the final report of a run. ExitCode is -1 when unknown.
type Outcome struct {
	Kind     OutcomeKind
	ExitCode int
	Err      error
	Duration time.Duration
}

const (
	maxLineBytes = 256 * 1024
	killGrace    = 3 * time.Second
)

// Supervisor spawns rsync and streams its output.
type Supervisor struct {
	// Binary replaces argv[0] when set.
	Binary string
	// LockDir holds per-destination lock files. Empty disables locking.
	LockDir string
}

// Run executes argv, calling onLine for every stdout and stderr line in
// arrival order, and blocks until the child exits. onLine is only invoked
// from the calling goroutine. Cancelling ctx terminates the child.
func (s *Supervisor) Run(ctx context.Context, argv []string, onLine func(Line)) Outcome {
	start := time.Now()
	finish := func(o Outcome) Outcome {
		o.Duration = time.Since(start)
		return o
	}
	if len(argv) == 0 {
		return finish(Outcome{Kind: OutcomeSpawnFailed, ExitCode: -1, Err: errors.New("empty command")})
	}
	if onLine == nil {
		onLine = func(Line) {}
	}

	lock, err := acquireLock(s.LockDir, argv[len(argv)-1])
	switch {
	case errors.Is(err, ErrLocked):
		return finish(Outcome{Kind: OutcomeLocked, ExitCode: -1, Err: err})
	case err != nil:
		logging.Error(err)
	}
	defer lock.release()

	bin := argv[0]
	if s.Binary != "" {
		bin = s.Binary
	}
	cmd := exec.Command(bin, argv[1:]...)
	setProcessGroup(cmd)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return finish(Outcome{Kind: OutcomeSpawnFailed, ExitCode: -1, Err: err})
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return finish(Outcome{Kind: OutcomeSpawnFailed, ExitCode: -1, Err: err})
	}
	if err := cmd.Start(); err != nil {
		return finish(Outcome{Kind: OutcomeSpawnFailed, ExitCode: -1, Err: err})
	}

	exited := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		if err := terminate(cmd.Process); err != nil {
			logging.Error(fmt.Errorf("terminate rsync: %w", err))
		}
		select {
		case <-exited:
		case <-time.After(killGrace):
			_ = cmd.Process.Kill()
		}
	})
	defer stop()

	lines := make(chan Line, 64)
	var g errgroup.Group
	g.Go(func() error { return drain(stdout, StreamStdout, lines) })
	g.Go(func() error { return drain(stderr, StreamStderr, lines) })
	var drainErr error
	go func() {
		drainErr = g.Wait()
		close(lines)
	}()
	for line := range lines {
		onLine(line)
	}
	if drainErr != nil {
		logging.Error(drainErr)
	}

	waitErr := cmd.Wait()
	close(exited)
	code := -1
	if cmd.ProcessState != nil {
		code = cmd.ProcessState.ExitCode()
	}
	switch {
	case waitErr == nil && code == 0:
		return finish(Outcome{Kind: OutcomeSuccess, ExitCode: 0})
	case ctx.Err() != nil:
		return finish(Outcome{Kind: OutcomeCancelled, ExitCode: code, Err: ctx.Err()})
	default:
		return finish(Outcome{Kind: OutcomeFailed, ExitCode: code, Err: waitErr})
	}
}

// drain forwards every line of r. A read error is reported as a single line
// and the rest of the stream is discarded so the child never blocks on a full
// pipe.
func drain(r io.Reader, stream Stream, out chan<- Line) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	sc.Split(scanTerminalLines)
	for sc.Scan() {
		out <- Line{Stream: stream, Text: strings.ToValidUTF8(sc.Text(), "\uFFFD")}
	}
	if err := sc.Err(); err != nil {
		out <- Line{Stream: StreamStderr, Text: fmt.Sprintf("read %s: %v", stream, err)}
		_, _ = io.Copy(io.Discard, r)
		return fmt.Errorf("read rsync %s: %w", stream, err)
	}
	return nil
}

// scanTerminalLines splits on '\n' and on the bare '\r' rsync uses to redraw
// its progress line. Blank '\n'-terminated lines are kept; runs of '\r' and a
// "\r\n" closing a redrawn line are collapsed. Lines longer than the scanner
// buffer are cut into chunks.
func scanTerminalLines(data []byte, atEOF bool) (int, []byte, error) {
	start := 0
	for start < len(data) && data[start] == '\r' {
		start++
	}
	if start > 0 {
		switch {
		case start == len(data) && atEOF:
			return len(data), nil, nil
		case start == len(data):
			return 0, nil, nil
		case data[start] == '\n':
			return start + 1, nil, nil
		}
	}
	for i := start; i < len(data); i++ {
		switch data[i] {
		case '\n':
			return i + 1, data[start:i], nil
		case '\r':
			if i+1 < len(data) {
				if data[i+1] == '\n' {
					return i + 2, data[start:i], nil
				}
				return i + 1, data[start:i], nil
			}
			if atEOF || len(data) >= maxLineBytes {
				return i + 1, data[start:i], nil
			}
			return 0, nil, nil
		}
	}
	if len(data) > start && (atEOF || len(data) >= maxLineBytes) {
		return len(data), data[start:], nil
	}
	if atEOF {
		return len(data), nil, nil
	}
	return 0, nil, nil
}
