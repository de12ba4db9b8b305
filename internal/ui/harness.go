package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
// Commands run synchronously in the order they are produced; batches are
// flattened and quit requests stop processing.
type Harness struct {
	model *Model
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if batch, ok := next.(tea.BatchMsg); ok {
			for _, cmd := range batch {
				if cmd == nil {
					continue
				}
				queue = append(queue, cmdMsg{cmd})
			}
			continue
		}
		if pending, ok := next.(cmdMsg); ok {
			if h.quit {
				continue
			}
			if out := pending.cmd(); out != nil {
				queue = append(queue, out)
			}
			continue
		}
		if _, ok := next.(tea.QuitMsg); ok {
			h.quit = true
			continue
		}
		mdl, cmd := h.model.Update(next)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		if cmd != nil {
			queue = append(queue, cmdMsg{cmd})
		}
	}
}

// Quit reports whether the model asked the program to exit.
func (h *Harness) Quit() bool {
	return h.quit
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

type cmdMsg struct {
	cmd tea.Cmd
}
