package ui

import (
	"github.com/atomicstack/rsync-tui/internal/state"
	"github.com/charmbracelet/lipgloss"
)

var placeholders = map[state.Panel]string{
	state.PanelSource:      "<enter source path>",
	state.PanelDestination: "<enter destination path>",
}

// fieldLine renders a path field. The field being edited ends with the caret.
func (m *Model) fieldLine(p state.Panel, value string) string {
	editing := m.session.Mode == state.ModeInsert && m.session.ActivePanel == p
	if value == "" && !editing {
		return renderStyled(styles.Placeholder, placeholders[p])
	}
	text := renderStyled(styles.Field, value)
	if !editing {
		return text
	}
	if styles.Cursor != nil {
		m.caret.Style = styles.Cursor.Copy()
	}
	return text + m.caret.View()
}

func renderStyled(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
