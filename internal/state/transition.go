package state

import (
	"unicode/utf8"

	"github.com/atomicstack/rsync-tui/internal/logging/events"
	"github.com/atomicstack/rsync-tui/internal/rsync"
)

// EventKind enumerates the logical inputs the session understands.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventRun
	EventDryRun
	EventCancel
	EventNextPanel
	EventPrevPanel
	EventJumpPanel
	EventToggleOption
	EventEnterInsert
	EventExitInsert
	EventComplete
	EventBackspace
	EventInput
	EventSubmit
)

// Event is a logical input. Panel is used by EventJumpPanel, Option by
// EventToggleOption and Text by EventInput.
type Event struct {
	Kind   EventKind
	Panel  Panel
	Option int
	Text   string
}

// Effect is what the event loop must do after a transition.
type Effect struct {
	Run    *RunRequest
	Cancel bool
	Quit   bool
	// CompletionMissed is set when a completion request changed nothing.
	CompletionMissed bool
}

// Completer completes a partial path.
type Completer interface {
	Complete(partial string) (string, bool)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(string) (string, bool)

func (f CompleterFunc) Complete(partial string) (string, bool) {
	return f(partial)
}

// Apply runs one transition. It never panics and unknown or out-of-context
// events leave the session unchanged.
func (s *Session) Apply(ev Event, completer Completer) Effect {
	switch ev.Kind {
	case EventQuit:
		s.ShouldQuit = true
		return Effect{Quit: true, Cancel: s.Running}
	case EventRun, EventDryRun:
		req, ok := s.BeginRun(ev.Kind == EventDryRun)
		if !ok {
			return Effect{}
		}
		return Effect{Run: &req}
	case EventCancel:
		if !s.Running {
			return Effect{}
		}
		s.Log.Append("Cancelling run…")
		events.Run.Cancel()
		return Effect{Cancel: true}
	}
	if s.Mode == ModeInsert {
		return s.applyInsert(ev, completer)
	}
	return s.applyNormal(ev)
}

func (s *Session) applyNormal(ev Event) Effect {
	switch ev.Kind {
	case EventNextPanel:
		s.focus(s.ActivePanel.Next())
	case EventPrevPanel:
		s.focus(s.ActivePanel.Prev())
	case EventJumpPanel:
		if ev.Panel.valid() {
			s.focus(ev.Panel)
		}
	case EventToggleOption:
		if ev.Option < 0 || ev.Option >= rsync.OptionCount {
			return Effect{}
		}
		s.Options.Toggle(ev.Option)
		events.Session.Toggle(rsync.Catalog[ev.Option].Label, s.Options.Enabled(ev.Option))
	case EventEnterInsert:
		if s.ActivePanel.Editable() {
			s.setMode(ModeInsert)
		}
	case EventSubmit:
		if s.ActivePanel == PanelLogs {
			return s.Apply(Event{Kind: EventRun}, nil)
		}
	}
	return Effect{}
}

func (s *Session) applyInsert(ev Event, completer Completer) Effect {
	field := s.Field()
	if field == nil {
		// Insert outside an editable panel cannot be entered; recover.
		s.setMode(ModeNormal)
		return Effect{}
	}
	switch ev.Kind {
	case EventExitInsert:
		s.setMode(ModeNormal)
	case EventComplete:
		if completer == nil {
			return Effect{}
		}
		before := *field
		completed, ok := completer.Complete(before)
		events.Session.Complete(s.ActivePanel.String(), before, completed, ok)
		if !ok {
			return Effect{CompletionMissed: true}
		}
		*field = completed
	case EventInput:
		if ev.Text == "" {
			return Effect{}
		}
		*field += ev.Text
		events.Session.Input(s.ActivePanel.String(), *field)
	case EventBackspace:
		if *field == "" {
			return Effect{}
		}
		_, size := utf8.DecodeLastRuneInString(*field)
		*field = (*field)[:len(*field)-size]
		events.Session.Input(s.ActivePanel.String(), *field)
	case EventSubmit:
		if s.ActivePanel == PanelSource {
			s.focus(PanelDestination)
			return Effect{}
		}
		s.setMode(ModeNormal)
		s.focus(PanelOptions)
	}
	return Effect{}
}

func (s *Session) focus(p Panel) {
	if p == s.ActivePanel {
		return
	}
	events.Session.Panel(s.ActivePanel.String(), p.String())
	s.ActivePanel = p
	if !p.Editable() && s.Mode == ModeInsert {
		s.setMode(ModeNormal)
	}
}

func (s *Session) setMode(m Mode) {
	if m == s.Mode {
		return
	}
	s.Mode = m
	events.Session.Mode(s.ActivePanel.String(), m.String())
}
