package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atomicstack/rsync-tui/internal/format/table"
	"github.com/atomicstack/rsync-tui/internal/rsync"
	"github.com/atomicstack/rsync-tui/internal/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

const (
	defaultWidth   = 80
	infoTTL        = 5 * time.Second
	optionCellSize = 20
	panelChrome    = 3 // border rows plus the title row
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.viewWidth()
	inner := width - 4
	s := m.session

	preview := m.previewLines(inner)
	logBudget, outputBudget := m.bodyBudgets(len(preview))

	sections := []string{
		m.titleBar(),
		m.panel(state.PanelSource, "Source", []styledLine{{text: m.fieldLine(state.PanelSource, s.Source), raw: true}}, width),
		m.panel(state.PanelDestination, "Destination", []styledLine{{text: m.fieldLine(state.PanelDestination, s.Destination), raw: true}}, width),
		m.panel(state.PanelOptions, "Options", m.optionLines(inner), width),
		m.panel(state.PanelLogs, "Preview / Logs", append(preview, limitHeight(m.logLines(), logBudget, inner)...), width),
		m.panel(state.PanelProgress, "Progress", append(m.gaugeLines(inner), limitHeight(m.outputLines(), outputBudget, inner)...), width),
	}
	if info := m.currentInfo(); info != "" {
		sections = append(sections, renderLines(applyWidth([]styledLine{{text: info, style: styles.Info}}, width)))
	}
	if m.showFooter {
		m.help.Width = width
		sections = append(sections, m.help.View(m.keys.helpFor(s.Mode, s.ActivePanel)))
	}
	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.height > 0 {
		lines := strings.Split(out, "\n")
		if len(lines) > m.height {
			out = strings.Join(lines[:m.height], "\n")
		}
	}
	return out
}

func (m *Model) viewWidth() int {
	if m.width < 20 {
		return defaultWidth
	}
	return m.width
}

func (m *Model) titleBar() string {
	badge := styles.ModeNormal
	if m.session.Mode == state.ModeInsert {
		badge = styles.ModeInsert
	}
	parts := []string{
		renderStyled(styles.Title, "rsync TUI"),
		renderStyled(badge, m.session.Mode.String()),
	}
	if m.session.Running {
		parts = append(parts, renderStyled(styles.Info, "syncing…"))
	}
	return strings.Join(parts, " ")
}

func (m *Model) panel(p state.Panel, title string, lines []styledLine, width int) string {
	style := styles.Panel
	if p == m.session.ActivePanel {
		style = styles.ActivePanel
	}
	head := renderStyled(styles.PanelTitle, fmt.Sprintf("[%d] %s", int(p)+1, title))
	body := head
	if len(lines) > 0 {
		body += "\n" + renderLines(applyWidth(lines, width-4))
	}
	if style == nil {
		return body
	}
	return style.Copy().Width(width - 2).Render(body)
}

func (m *Model) optionLines(width int) []styledLine {
	cells := make([]string, 0, rsync.OptionCount)
	for i, info := range rsync.Catalog {
		check, style := " ", styles.OptionOff
		if m.session.Options.Enabled(i) {
			check, style = "x", styles.OptionOn
		}
		cells = append(cells, renderStyled(style, fmt.Sprintf("[%s]%s %s", check, info.Key, info.Label)))
	}
	rows := table.Format(table.Columns(cells, optionColumns(width)), nil)
	lines := make([]styledLine, len(rows))
	for i, row := range rows {
		lines[i] = styledLine{text: row, raw: true}
	}
	return lines
}

func optionColumns(width int) int {
	cols := (width + 2) / optionCellSize
	switch {
	case cols < 1:
		return 1
	case cols > 6:
		return 6
	}
	return cols
}

func optionRows(width int) int {
	cols := optionColumns(width)
	return (rsync.OptionCount + cols - 1) / cols
}

func (m *Model) previewLines(width int) []styledLine {
	wrapped := wrapCommand(m.session.CommandPreview(), width-2)
	lines := make([]styledLine, 0, len(wrapped)+1)
	for i, chunk := range wrapped {
		prefix := "  "
		if i == 0 {
			prefix = "> "
		}
		lines = append(lines, styledLine{text: prefix + chunk, style: styles.Command})
	}
	return append(lines, styledLine{})
}

// wrapCommand breaks cmd at spaces so each piece fits width, marking every
// piece but the last with a trailing " \".
func wrapCommand(cmd string, width int) []string {
	if width <= 4 || len([]rune(cmd)) <= width {
		return []string{cmd}
	}
	w := wordwrap.NewWriter(width - 2)
	w.Breakpoints = nil
	_, _ = w.Write([]byte(cmd))
	_ = w.Close()
	pieces := strings.Split(w.String(), "\n")
	out := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	for i := 0; i < len(out)-1; i++ {
		out[i] += " \\"
	}
	return out
}

func (m *Model) logLines() []styledLine {
	recent := m.session.RecentLog()
	lines := make([]styledLine, len(recent))
	for i, entry := range recent {
		style := styles.Log
		switch {
		case strings.HasPrefix(entry, "[ERR] "), strings.HasPrefix(entry, "Sync failed"), strings.HasPrefix(entry, "Failed to execute"), strings.HasPrefix(entry, "Run refused"):
			style = styles.LogError
		case entry == "Sync completed successfully":
			style = styles.LogStatus
		}
		lines[i] = styledLine{text: entry, style: style}
	}
	return lines
}

func (m *Model) gaugeLines(width int) []styledLine {
	s := m.session
	m.gauge.Width = width
	label := fmt.Sprintf("%.0f%%", s.ProgressPercent)
	if s.TransferInfo != "" {
		label += " - " + s.TransferInfo
	}
	return []styledLine{
		{text: m.gauge.ViewAs(s.ProgressPercent / 100), raw: true},
		{text: label, style: styles.TransferInfo},
	}
}

func (m *Model) outputLines() []styledLine {
	recent := m.session.RecentOutput()
	lines := make([]styledLine, len(recent))
	for i, entry := range recent {
		style := styles.Log
		if strings.HasPrefix(entry, "[ERR] ") {
			style = styles.LogError
		}
		lines[i] = styledLine{text: entry, style: style}
	}
	return lines
}

// bodyBudgets splits the rows left after the fixed panels between the log
// and output lists.
func (m *Model) bodyBudgets(previewRows int) (int, int) {
	logs, output := state.LogDisplayLimit, state.OutputDisplayLimit
	if m.height <= 0 {
		return logs, output
	}
	fixed := 1 + 2*(panelChrome+1) + panelChrome + optionRows(m.viewWidth()-4)
	fixed += panelChrome + previewRows
	fixed += panelChrome + 2
	fixed++ // info
	if m.showFooter {
		fixed++
	}
	avail := m.height - fixed
	if avail < 2 {
		avail = 2
	}
	logs = min(logs, max(1, avail/2))
	output = min(output, max(1, avail-logs))
	return logs, output
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) clearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.clearInfo()
	}
	return m.infoMsg
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{text: text, style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line.raw {
			out[i] = line.text
			continue
		}
		out[i] = renderStyled(line.style, line.text)
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
