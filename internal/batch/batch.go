// Package batch runs a composed rsync command once without the interactive
// interface, rendering progress with an mpb bar.
package batch

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/atomicstack/rsync-tui/internal/backend"
	"github.com/atomicstack/rsync-tui/internal/data/dispatcher"
	"github.com/atomicstack/rsync-tui/internal/rsync"
	"github.com/atomicstack/rsync-tui/internal/state"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Exit codes for outcomes that carry no child status.
const (
	ExitFailure   = 1
	ExitCancelled = 130
)

// Output routes log lines and the progress bar. A nil Bar disables the bar.
type Output struct {
	Log io.Writer
	Bar io.Writer
}

// Run executes the session's command on runner and returns the process exit
// code to use.
func Run(ctx context.Context, runner backend.Runner, session *state.Session, dryRun bool, out Output) int {
	req, ok := session.BeginRun(dryRun)
	if !ok {
		return ExitFailure
	}
	logw := out.Log
	if logw == nil {
		logw = io.Discard
	}
	fmt.Fprintln(logw, session.RecentLog()[0])

	var (
		mu   sync.Mutex
		info string
	)
	p := mpb.NewWithContext(ctx, mpb.WithOutput(out.Bar), mpb.WithWidth(40), mpb.WithRefreshRate(100*time.Millisecond))
	bar := p.New(100, mpb.BarStyle().Lbound("|").Rbound("|"),
		mpb.PrependDecorators(decor.Name("rsync ", decor.WC{W: 6}), decor.Percentage(decor.WC{W: 5})),
		mpb.AppendDecorators(decor.Any(func(decor.Statistics) string {
			mu.Lock()
			defer mu.Unlock()
			return info
		})),
	)

	d := dispatcher.New(session)
	outcome := runner.Run(ctx, req.Args(), func(line rsync.Line) {
		res := d.Handle(backend.Event{Kind: backend.KindLine, Line: line})
		text := line.Text
		if line.Stream == rsync.StreamStderr {
			text = "[ERR] " + text
		}
		fmt.Fprintln(logw, text)
		if res.ProgressUpdated {
			mu.Lock()
			info = session.TransferInfo
			mu.Unlock()
			bar.SetCurrent(int64(session.ProgressPercent))
		}
	})
	d.Handle(backend.Event{Kind: backend.KindDone, Outcome: outcome})
	if outcome.Kind == rsync.OutcomeSuccess {
		bar.SetCurrent(100)
	} else {
		bar.Abort(false)
	}
	p.Wait()
	fmt.Fprintln(logw, session.RecentLog()[0])

	return ExitCode(outcome)
}

// ExitCode maps an outcome to a process exit status.
func ExitCode(o rsync.Outcome) int {
	switch o.Kind {
	case rsync.OutcomeSuccess:
		return 0
	case rsync.OutcomeFailed:
		if o.ExitCode > 0 {
			return o.ExitCode
		}
	case rsync.OutcomeCancelled:
		return ExitCancelled
	}
	return ExitFailure
}
