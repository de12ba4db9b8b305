package ui

import (
	"github.com/atomicstack/rsync-tui/internal/rsync"
	"github.com/atomicstack/rsync-tui/internal/state"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	// Available in every mode.
	ForceQuit key.Binding
	Run       key.Binding
	DryRun    key.Binding
	Cancel    key.Binding

	// Normal mode.
	Quit      key.Binding
	NextPanel key.Binding
	PrevPanel key.Binding
	JumpPanel key.Binding
	Insert    key.Binding
	Toggle    key.Binding
	Submit    key.Binding

	// Insert mode.
	Leave     key.Binding
	Complete  key.Binding
	Backspace key.Binding
	Next      key.Binding
}

func defaultKeyMap() keyMap {
	toggleKeys := make([]string, 0, rsync.OptionCount)
	for _, info := range rsync.Catalog {
		toggleKeys = append(toggleKeys, info.Key)
	}
	return keyMap{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Run:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "sync")),
		DryRun:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "dry-run")),
		Cancel:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		NextPanel: key.NewBinding(key.WithKeys("tab", "j"), key.WithHelp("1-5/j/k", "panels")),
		PrevPanel: key.NewBinding(key.WithKeys("shift+tab", "k")),
		JumpPanel: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5")),
		Insert:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Toggle:    key.NewBinding(key.WithKeys(toggleKeys...), key.WithHelp("a/v/z/n/p/d/h/e/r/x/f", "options")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		Leave:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal")),
		Complete:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "autocomplete")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
		Next:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next")),
	}
}

// eventFor maps a key press to a session event. Unbound keys map to
// state.EventNone.
func (k keyMap) eventFor(msg tea.KeyMsg, mode state.Mode) state.Event {
	switch {
	case key.Matches(msg, k.ForceQuit):
		return state.Event{Kind: state.EventQuit}
	case key.Matches(msg, k.Run):
		return state.Event{Kind: state.EventRun}
	case key.Matches(msg, k.DryRun):
		return state.Event{Kind: state.EventDryRun}
	case key.Matches(msg, k.Cancel):
		return state.Event{Kind: state.EventCancel}
	}
	if mode == state.ModeInsert {
		return k.insertEvent(msg)
	}
	switch {
	case key.Matches(msg, k.Quit):
		return state.Event{Kind: state.EventQuit}
	case key.Matches(msg, k.NextPanel):
		return state.Event{Kind: state.EventNextPanel}
	case key.Matches(msg, k.PrevPanel):
		return state.Event{Kind: state.EventPrevPanel}
	case key.Matches(msg, k.JumpPanel):
		digit := msg.String()
		return state.Event{Kind: state.EventJumpPanel, Panel: state.Panel(digit[0] - '1')}
	case key.Matches(msg, k.Insert):
		return state.Event{Kind: state.EventEnterInsert}
	case key.Matches(msg, k.Toggle):
		return state.Event{Kind: state.EventToggleOption, Option: rsync.IndexForKey(msg.String())}
	case key.Matches(msg, k.Submit):
		return state.Event{Kind: state.EventSubmit}
	}
	return state.Event{}
}

func (k keyMap) insertEvent(msg tea.KeyMsg) state.Event {
	switch {
	case key.Matches(msg, k.Leave):
		return state.Event{Kind: state.EventExitInsert}
	case key.Matches(msg, k.Complete):
		return state.Event{Kind: state.EventComplete}
	case key.Matches(msg, k.Backspace):
		return state.Event{Kind: state.EventBackspace}
	case key.Matches(msg, k.Next):
		return state.Event{Kind: state.EventSubmit}
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return state.Event{}
		}
		return state.Event{Kind: state.EventInput, Text: string(msg.Runes)}
	case tea.KeySpace:
		if msg.Alt {
			return state.Event{}
		}
		return state.Event{Kind: state.EventInput, Text: " "}
	}
	return state.Event{}
}

// helpFor returns the bindings shown in the help bar for the current focus.
func (k keyMap) helpFor(mode state.Mode, panel state.Panel) help.KeyMap {
	if mode == state.ModeInsert {
		return bindingList{k.Leave, k.Next, k.Complete, k.Run, k.DryRun}
	}
	if panel == state.PanelLogs {
		return bindingList{k.NextPanel, k.Submit, k.Insert, k.Toggle, k.Quit}
	}
	return bindingList{k.NextPanel, k.Insert, k.Toggle, k.Run, k.Cancel, k.Quit}
}

type bindingList []key.Binding

func (b bindingList) ShortHelp() []key.Binding {
	return b
}

func (b bindingList) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}
