package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"boxpick/internal/domain"
	"boxpick/internal/ui/input/types"
)

// ReadyMarker is printed once the first frame is up when running under
// the end-to-end harness
const ReadyMarker = "__READY__"

// StatusKind picks the colour of the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Selection     domain.SelectionState
	Cursor        domain.Box
	Policy        domain.Policy
	StatusMessage string
	StatusKind    StatusKind
	Confirming    bool
	HelpModel     help.Model
	Keys          types.KeyMap
	ShowReady     bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles    *Styles
	boxRender *BoxRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:    styles,
		boxRender: NewBoxRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.styles.Title.Render("boxpick"))
	content.WriteString("\n")

	content.WriteString(r.boxRender.RenderRow(state.Selection, state.Cursor))
	content.WriteString("\n")

	content.WriteString(r.renderStatusLine(state))
	content.WriteString("\n")

	if state.StatusMessage != "" {
		content.WriteString(r.renderStatusMessage(state))
		content.WriteString("\n")
	}

	helpView := state.HelpModel.View(state.Keys)

	// Push help to the bottom when we know the terminal height
	if state.Height > 0 {
		currentLines := strings.Count(content.String(), "\n") + 1
		helpLines := lipgloss.Height(helpView)
		// Main container has one line of padding above and below
		paddingNeeded := state.Height - 2 - currentLines - helpLines
		if paddingNeeded > 0 {
			content.WriteString(strings.Repeat("\n", paddingNeeded))
		}
	}
	content.WriteString(r.styles.Help.Render(helpView))

	if state.ShowReady {
		content.WriteString("\n")
		content.WriteString(ReadyMarker)
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderStatusLine(state ViewState) string {
	selected := state.Selection.Selected()
	names := make([]string, len(selected))
	for i, b := range selected {
		names[i] = b.String()
	}
	list := "none"
	if len(names) > 0 {
		list = strings.Join(names, ", ")
	}

	return r.styles.Status.Render(fmt.Sprintf("policy: %s  │  selected: %d/3 (%s)",
		r.styles.Policy.Render(state.Policy.String()),
		len(selected),
		list,
	))
}

func (r *Renderer) renderStatusMessage(state ViewState) string {
	if state.Confirming {
		return r.styles.Confirm.Render(state.StatusMessage)
	}
	switch state.StatusKind {
	case StatusSuccess:
		return r.styles.StatusSuccess.Render(state.StatusMessage)
	case StatusWarning:
		return r.styles.StatusWarning.Render(state.StatusMessage)
	case StatusError:
		return r.styles.StatusError.Render(state.StatusMessage)
	default:
		return r.styles.Dim.Render(state.StatusMessage)
	}
}
