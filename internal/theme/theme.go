package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Title        *lipgloss.Style
	ModeNormal   *lipgloss.Style
	ModeInsert   *lipgloss.Style
	Panel        *lipgloss.Style
	ActivePanel  *lipgloss.Style
	PanelTitle   *lipgloss.Style
	Field        *lipgloss.Style
	Placeholder  *lipgloss.Style
	OptionOn     *lipgloss.Style
	OptionOff    *lipgloss.Style
	OptionKey    *lipgloss.Style
	Command      *lipgloss.Style
	Log          *lipgloss.Style
	LogError     *lipgloss.Style
	LogStatus    *lipgloss.Style
	TransferInfo *lipgloss.Style
	Error        *lipgloss.Style
	Info         *lipgloss.Style
	Footer       *lipgloss.Style
	Cursor       *lipgloss.Style
}

// GaugeColor is the fill colour of the progress gauge.
const GaugeColor = "33"

var defaultStyles = Styles{
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	ModeNormal: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true).Padding(0, 1),
	),
	ModeInsert: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("34")).Bold(true).Padding(0, 1),
	),
	Panel: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	),
	ActivePanel: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	PanelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Field: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	OptionOn: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	OptionOff: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	OptionKey: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Command: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	),
	Log: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	LogError: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	),
	LogStatus: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	TransferInfo: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
