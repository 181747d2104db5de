package state

import (
	"boxpick/internal/domain"
	"boxpick/internal/ui/views"
)

// AppState contains the UI state that is not owned by the selection service
type AppState struct {
	Cursor domain.Box // box under the cursor

	StatusMessage string
	StatusKind    views.StatusKind

	ShowFullHelp bool
	Quitting     bool
}

// NewAppState creates a new application state with the cursor on A
func NewAppState() *AppState {
	return &AppState{Cursor: domain.BoxA}
}

// MoveCursor moves the cursor by delta, wrapping around the row
func (s *AppState) MoveCursor(delta int) {
	n := len(domain.AllBoxes())
	idx := (int(s.Cursor) + delta) % n
	if idx < 0 {
		idx += n
	}
	s.Cursor = domain.Box(idx)
}

// SetStatus replaces the status line
func (s *AppState) SetStatus(kind views.StatusKind, message string) {
	s.StatusKind = kind
	s.StatusMessage = message
}
