package ui

// Status is the information shown in the HUD panel.
type Status struct {
	Phase      string
	Generation int
	Population int
}

const (
	// PanelHeight is the height in pixels of the HUD panel.
	PanelHeight  = 20
	panelPadding = 4
	textBaseline = 10
)
