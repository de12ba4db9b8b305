package ui

import (
	"errors"
	"time"

	"github.com/atomicstack/rsync-tui/internal/backend"
	"github.com/atomicstack/rsync-tui/internal/logging"
	"github.com/atomicstack/rsync-tui/internal/rsync"
	"github.com/atomicstack/rsync-tui/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

const refreshInterval = 100 * time.Millisecond

var errNoRunner = errors.New("no runner configured")

type runEventMsg struct {
	job   *backend.Job
	event backend.Event
}

type runClosedMsg struct {
	job *backend.Job
}

type tickMsg struct {
	at time.Time
}

func waitForRunEvent(j *backend.Job) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-j.Events()
		if !ok {
			return runClosedMsg{job: j}
		}
		return runEventMsg{job: j, event: evt}
	}
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg{at: t}
	})
}

func (m *Model) startRun(req state.RunRequest) tea.Cmd {
	job := m.bus.Start(req)
	if job == nil {
		logging.Error(errNoRunner)
		m.session.ApplyOutcome(rsync.Outcome{Kind: rsync.OutcomeSpawnFailed, ExitCode: -1, Err: errNoRunner})
		return nil
	}
	m.job = job
	return tea.Batch(waitForRunEvent(job), m.ensureTick())
}

// ensureTick starts the refresh loop unless one is already pending.
func (m *Model) ensureTick() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tick()
}

func (m *Model) handleRunEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(runEventMsg)
	if !ok || eventMsg.job != m.job {
		return nil
	}
	res := m.dispatcher.Handle(eventMsg.event)
	if res.Finished {
		m.job = nil
		return nil
	}
	return waitForRunEvent(eventMsg.job)
}

func (m *Model) handleRunClosedMsg(msg tea.Msg) tea.Cmd {
	closed, ok := msg.(runClosedMsg)
	if !ok || closed.job != m.job {
		return nil
	}
	m.job = nil
	if m.session.Running {
		m.session.ApplyOutcome(rsync.Outcome{Kind: rsync.OutcomeFailed, ExitCode: -1})
	}
	return nil
}

func (m *Model) handleTickMsg(tea.Msg) tea.Cmd {
	if !m.session.Running {
		m.ticking = false
		return nil
	}
	return tick()
}
