package views

import (
	"github.com/charmbracelet/lipgloss"

	"boxpick/internal/domain"
)

// BoxRenderer draws the row of selectable boxes
type BoxRenderer struct {
	styles *Styles
}

// NewBoxRenderer creates a new box renderer
func NewBoxRenderer(styles *Styles) *BoxRenderer {
	return &BoxRenderer{styles: styles}
}

// RenderBox draws a single box. Selected boxes are filled; the box under
// the cursor gets a thick highlighted border.
func (br *BoxRenderer) RenderBox(box domain.Box, selected, focused bool) string {
	style := br.styles.Box
	if selected {
		style = br.styles.BoxSelected
	}
	if focused {
		style = style.
			BorderStyle(br.styles.BoxCursor.GetBorderStyle()).
			BorderForeground(br.styles.BoxCursor.GetBorderTopForeground())
	}

	label := box.String()
	if selected {
		label += "\n✓"
	}
	return style.Render(label)
}

// RenderRow draws all three boxes side by side
func (br *BoxRenderer) RenderRow(state domain.SelectionState, cursor domain.Box) string {
	boxes := make([]string, 0, len(domain.AllBoxes()))
	for _, b := range domain.AllBoxes() {
		boxes = append(boxes, br.RenderBox(b, state.Get(b), b == cursor))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}
