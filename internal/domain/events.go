package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventBoxSelected       EventType = "BoxSelected"
	EventIdentifierIgnored EventType = "IdentifierIgnored"
	EventSelectionCleared  EventType = "SelectionCleared"
	EventPolicyChanged     EventType = "PolicyChanged"
	EventError             EventType = "Error"
	EventConfigSaved       EventType = "ConfigSaved"
	EventAppReady          EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// BoxSelectedEvent is emitted after a box flag was updated by a selection
type BoxSelectedEvent struct {
	Box      Box
	Selected bool // flag value after the selection
	Policy   Policy
	State    SelectionState
}

func (e BoxSelectedEvent) Type() EventType { return EventBoxSelected }

// IdentifierIgnoredEvent is emitted when a selection names no known box
type IdentifierIgnoredEvent struct {
	Identifier string
}

func (e IdentifierIgnoredEvent) Type() EventType { return EventIdentifierIgnored }

// SelectionClearedEvent is emitted when all flags were reset
type SelectionClearedEvent struct{}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// PolicyChangedEvent is emitted when the selection policy is switched
type PolicyChangedEvent struct {
	Policy Policy
}

func (e PolicyChangedEvent) Type() EventType { return EventPolicyChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
