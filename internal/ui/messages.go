package ui

import (
	"boxpick/internal/config"
	"boxpick/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// configSavedMsg reports the result of writing the config file
type configSavedMsg struct {
	cfg *config.Config
	err error
}
