package selection

import (
	"boxpick/internal/domain"
)

// Holder owns the three box flags and applies a selection policy to them.
// It is not safe for concurrent use; the owner serialises access.
type Holder struct {
	state  domain.SelectionState
	policy domain.Policy
}

// NewHolder creates a holder with nothing selected
func NewHolder(policy domain.Policy) *Holder {
	return &Holder{policy: policy}
}

// Select applies the policy to box and returns the flag's new value.
// The other two flags are never touched.
func (h *Holder) Select(box domain.Box) bool {
	if !box.Valid() {
		return false
	}

	switch h.policy {
	case domain.PolicyToggle:
		h.state.Set(box, !h.state.Get(box))
	default:
		h.state.Set(box, true)
	}
	return h.state.Get(box)
}

// BoxSelected selects the box named by identifier. Unknown identifiers
// leave every flag as it was. It reports whether a box was addressed.
func (h *Holder) BoxSelected(identifier string) bool {
	box, ok := domain.ParseBox(identifier)
	if !ok {
		return false
	}
	h.Select(box)
	return true
}

// Clear deselects all boxes
func (h *Holder) Clear() {
	h.state = domain.SelectionState{}
}

// State returns a copy of the current flags
func (h *Holder) State() domain.SelectionState {
	return h.state
}

// IsSelected returns the flag for box
func (h *Holder) IsSelected(box domain.Box) bool {
	return h.state.Get(box)
}

// Policy returns the active policy
func (h *Holder) Policy() domain.Policy {
	return h.policy
}

// SetPolicy switches the policy. Current flags are kept.
func (h *Holder) SetPolicy(policy domain.Policy) {
	h.policy = policy
}
