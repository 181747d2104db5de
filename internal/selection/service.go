package selection

import (
	"github.com/rs/zerolog/log"

	"boxpick/internal/domain"
)

// Publisher is the part of the event bus the service needs
type Publisher interface {
	Publish(event domain.DomainEvent)
}

// Service wraps a Holder and announces every change on the bus
type Service struct {
	holder *Holder
	bus    Publisher
}

// NewService creates a new selection service. bus may be nil.
func NewService(policy domain.Policy, bus Publisher) *Service {
	return &Service{
		holder: NewHolder(policy),
		bus:    bus,
	}
}

// Select applies the policy to box
func (s *Service) Select(box domain.Box) bool {
	selected := s.holder.Select(box)

	log.Debug().
		Stringer("box", box).
		Bool("selected", selected).
		Stringer("policy", s.holder.Policy()).
		Msg("box selected")

	s.publish(domain.BoxSelectedEvent{
		Box:      box,
		Selected: selected,
		Policy:   s.holder.Policy(),
		State:    s.holder.State(),
	})
	return selected
}

// BoxSelected selects the box named by identifier, ignoring unknown names
func (s *Service) BoxSelected(identifier string) bool {
	_, ok := s.BoxSelectedBox(identifier)
	return ok
}

// BoxSelectedBox is BoxSelected that also returns the addressed box
func (s *Service) BoxSelectedBox(identifier string) (domain.Box, bool) {
	box, ok := domain.ParseBox(identifier)
	if !ok {
		log.Debug().Str("identifier", identifier).Msg("ignoring unknown identifier")
		s.publish(domain.IdentifierIgnoredEvent{Identifier: identifier})
		return 0, false
	}
	s.Select(box)
	return box, true
}

// Clear deselects all boxes
func (s *Service) Clear() {
	if s.holder.State().Count() == 0 {
		return
	}
	s.holder.Clear()
	s.publish(domain.SelectionClearedEvent{})
}

// SetPolicy switches the selection policy
func (s *Service) SetPolicy(policy domain.Policy) {
	if s.holder.Policy() == policy {
		return
	}
	s.holder.SetPolicy(policy)
	log.Info().Stringer("policy", policy).Msg("selection policy changed")
	s.publish(domain.PolicyChangedEvent{Policy: policy})
}

// TogglePolicy switches between set-only and toggle
func (s *Service) TogglePolicy() domain.Policy {
	next := domain.PolicyToggle
	if s.holder.Policy() == domain.PolicyToggle {
		next = domain.PolicySetOnly
	}
	s.SetPolicy(next)
	return next
}

// Policy returns the active policy
func (s *Service) Policy() domain.Policy {
	return s.holder.Policy()
}

// State returns a copy of the current flags
func (s *Service) State() domain.SelectionState {
	return s.holder.State()
}

// IsSelected checks if a box is selected
func (s *Service) IsSelected(box domain.Box) bool {
	return s.holder.IsSelected(box)
}

// GetCount returns the number of selected boxes
func (s *Service) GetCount() int {
	return s.holder.State().Count()
}

func (s *Service) publish(event domain.DomainEvent) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(event)
}
