package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"boxpick/internal/eventbus"
	"boxpick/internal/ui/state"
	"boxpick/internal/ui/views"
)

// EventHandler turns domain events into status line updates
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.BoxSelectedEvent:
		if e.Selected {
			h.state.SetStatus(views.StatusSuccess, fmt.Sprintf("Selected %s", e.Box))
		} else {
			h.state.SetStatus(views.StatusInfo, fmt.Sprintf("Deselected %s", e.Box))
		}

	case eventbus.IdentifierIgnoredEvent:
		h.state.SetStatus(views.StatusWarning, fmt.Sprintf("Ignored identifier %q", e.Identifier))

	case eventbus.SelectionClearedEvent:
		h.state.SetStatus(views.StatusInfo, "Selection cleared")

	case eventbus.PolicyChangedEvent:
		h.state.SetStatus(views.StatusInfo, fmt.Sprintf("Policy: %s", e.Policy))

	case eventbus.ConfigSavedEvent:
		h.state.SetStatus(views.StatusSuccess, fmt.Sprintf("Config saved to %s", e.Path))

	case eventbus.AppReadyEvent:
		if !e.HasExistingConfig {
			h.state.SetStatus(views.StatusInfo, "No config file yet, press w to save the policy")
		}

	case eventbus.ErrorEvent:
		h.state.SetStatus(views.StatusError, fmt.Sprintf("Error: %s", e.Message))
	}

	return nil
}
