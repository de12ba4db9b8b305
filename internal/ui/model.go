package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/rsync-tui/internal/backend"
	"github.com/atomicstack/rsync-tui/internal/data/dispatcher"
	"github.com/atomicstack/rsync-tui/internal/pathcomplete"
	"github.com/atomicstack/rsync-tui/internal/rsync"
	"github.com/atomicstack/rsync-tui/internal/state"
	"github.com/atomicstack/rsync-tui/internal/theme"
	"github.com/atomicstack/rsync-tui/internal/ui/command"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const suggestionLimit = 5

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the rsync front-end.
type Model struct {
	session    *state.Session
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	job        *backend.Job
	ticking    bool

	completer state.Completer
	suggest   func(string, int) []string

	keys  keyMap
	help  help.Model
	gauge progress.Model
	caret cursor.Model

	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wires a session to the runner that executes its runs. A nil
// session starts from defaults.
func NewModel(session *state.Session, runner backend.Runner, width, height int, showFooter bool) *Model {
	if session == nil {
		session = state.New()
	}
	m := &Model{
		session:    session,
		dispatcher: dispatcher.New(session),
		bus:        command.New(runner),
		completer:  state.CompleterFunc(pathcomplete.Complete),
		suggest:    pathcomplete.Suggest,
		keys:       defaultKeyMap(),
		help:       help.New(),
		gauge: progress.New(
			progress.WithSolidFill(theme.GaugeColor),
			progress.WithoutPercentage(),
		),
		showFooter: showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	if styles.Footer != nil && styles.OptionKey != nil {
		m.help.Styles.ShortKey = styles.OptionKey.Copy()
		m.help.Styles.ShortDesc = styles.Footer.Copy()
		m.help.Styles.ShortSeparator = styles.Footer.Copy()
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Field != nil {
		c.TextStyle = styles.Field.Copy()
	}
	c.SetChar(" ")
	m.caret = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.caret.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, finishUpdate(cmds)
}

// Session exposes the state rendered by the model.
func (m *Model) Session() *state.Session {
	return m.session
}

// Shutdown stops an in-flight run and blocks until its child has exited.
// Call after the program returns: nothing reads the job's events any more,
// so they are discarded rather than left to fill the channel.
func (m *Model) Shutdown() {
	if m.job == nil {
		return
	}
	m.job.Stop()
	m.job.Wait()
	m.job = nil
	if m.session.Running {
		m.session.ApplyOutcome(rsync.Outcome{Kind: rsync.OutcomeCancelled, ExitCode: -1, Err: context.Canceled})
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(runEventMsg{}):       m.handleRunEventMsg,
		reflect.TypeOf(runClosedMsg{}):      m.handleRunClosedMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func finishUpdate(cmds []tea.Cmd) tea.Cmd {
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
