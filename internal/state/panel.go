package state

// Panel identifies the focused area of the screen.
type Panel int

const (
	PanelSource Panel = iota
	PanelDestination
	PanelOptions
	PanelLogs
	PanelProgress

	panelCount
)

// Panels lists every panel in focus order.
var Panels = [panelCount]Panel{PanelSource, PanelDestination, PanelOptions, PanelLogs, PanelProgress}

func (p Panel) String() string {
	switch p {
	case PanelSource:
		return "Source"
	case PanelDestination:
		return "Destination"
	case PanelOptions:
		return "Options"
	case PanelLogs:
		return "Logs"
	case PanelProgress:
		return "Progress"
	}
	return "Unknown"
}

// Editable reports whether the panel holds a text field.
func (p Panel) Editable() bool {
	return p == PanelSource || p == PanelDestination
}

// Next returns the following panel in the ring.
func (p Panel) Next() Panel {
	return Panel((int(p) + 1) % int(panelCount))
}

// Prev returns the preceding panel in the ring.
func (p Panel) Prev() Panel {
	return Panel((int(p) + int(panelCount) - 1) % int(panelCount))
}

func (p Panel) valid() bool {
	return p >= 0 && p < panelCount
}

// Mode is the editing mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	if m == ModeInsert {
		return "INSERT"
	}
	return "NORMAL"
}
