package ui

import (
	"strings"

	"github.com/atomicstack/rsync-tui/internal/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	ev := m.keys.eventFor(keyMsg, m.session.Mode)
	if ev.Kind == state.EventNone {
		return nil
	}
	var before string
	if field := m.session.Field(); field != nil {
		before = *field
	}
	effect := m.session.Apply(ev, m.completer)
	if field := m.session.Field(); field != nil && *field != before {
		m.caret.Blink = false
		m.clearInfo()
	}
	return m.applyEffect(effect)
}

func (m *Model) applyEffect(effect state.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, 2)
	if effect.CompletionMissed {
		m.showSuggestions()
	}
	if effect.Cancel && m.job != nil {
		m.job.Cancel()
	}
	if effect.Run != nil {
		m.clearInfo()
		if cmd := m.startRun(*effect.Run); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if effect.Quit {
		if m.job != nil {
			m.job.Stop()
		}
		cmds = append(cmds, tea.Quit)
	}
	return finishUpdate(cmds)
}

func (m *Model) showSuggestions() {
	field := m.session.Field()
	if field == nil || m.suggest == nil {
		return
	}
	candidates := m.suggest(*field, suggestionLimit)
	if len(candidates) == 0 {
		m.setInfo("No completions")
		return
	}
	m.setInfo("Matches: " + strings.Join(candidates, "  "))
}
