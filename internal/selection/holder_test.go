package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxpick/internal/domain"
)

func TestHolderStartsEmpty(t *testing.T) {
	for _, policy := range []domain.Policy{domain.PolicySetOnly, domain.PolicyToggle} {
		h := NewHolder(policy)
		assert.Equal(t, domain.SelectionState{}, h.State(), "policy %s", policy)
	}
}

func TestSetOnlySelectsSingleBox(t *testing.T) {
	tests := []struct {
		id   string
		want domain.SelectionState
	}{
		{"A", domain.SelectionState{BoxA: true}},
		{"B", domain.SelectionState{BoxB: true}},
		{"C", domain.SelectionState{BoxC: true}},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			h := NewHolder(domain.PolicySetOnly)
			require.True(t, h.BoxSelected(tt.id))
			assert.Equal(t, tt.want, h.State())
		})
	}
}

func TestSetOnlyIsIdempotent(t *testing.T) {
	h := NewHolder(domain.PolicySetOnly)
	h.BoxSelected("B")
	h.BoxSelected("B")

	assert.Equal(t, domain.SelectionState{BoxB: true}, h.State())
}

func TestSetOnlyLeavesOtherFlags(t *testing.T) {
	h := NewHolder(domain.PolicySetOnly)
	h.BoxSelected("A")
	h.BoxSelected("C")

	assert.Equal(t, domain.SelectionState{BoxA: true, BoxC: true}, h.State())
}

func TestToggleSequence(t *testing.T) {
	h := NewHolder(domain.PolicyToggle)

	h.BoxSelected("A")
	assert.Equal(t, domain.SelectionState{BoxA: true}, h.State())

	h.BoxSelected("A")
	assert.Equal(t, domain.SelectionState{}, h.State())

	h.BoxSelected("B")
	h.BoxSelected("C")
	assert.Equal(t, domain.SelectionState{BoxB: true, BoxC: true}, h.State())
}

func TestSelectReturnsNewValue(t *testing.T) {
	h := NewHolder(domain.PolicyToggle)
	assert.True(t, h.Select(domain.BoxC))
	assert.False(t, h.Select(domain.BoxC))

	h = NewHolder(domain.PolicySetOnly)
	assert.True(t, h.Select(domain.BoxC))
	assert.True(t, h.Select(domain.BoxC))
}

func TestUnknownIdentifierIsNoOp(t *testing.T) {
	identifiers := []string{"Z", "a", "", " A", "AB", "D"}

	for _, policy := range []domain.Policy{domain.PolicySetOnly, domain.PolicyToggle} {
		h := NewHolder(policy)
		h.BoxSelected("B")
		before := h.State()

		for _, id := range identifiers {
			assert.False(t, h.BoxSelected(id), "identifier %q", id)
			assert.Equal(t, before, h.State(), "identifier %q under %s", id, policy)
		}
	}
}

func TestSelectInvalidBoxIsNoOp(t *testing.T) {
	h := NewHolder(domain.PolicyToggle)
	assert.False(t, h.Select(domain.Box(7)))
	assert.Equal(t, domain.SelectionState{}, h.State())
}

func TestClear(t *testing.T) {
	h := NewHolder(domain.PolicySetOnly)
	h.BoxSelected("A")
	h.BoxSelected("B")
	h.Clear()

	assert.Equal(t, domain.SelectionState{}, h.State())
}

func TestSetPolicyKeepsFlags(t *testing.T) {
	h := NewHolder(domain.PolicySetOnly)
	h.BoxSelected("A")

	h.SetPolicy(domain.PolicyToggle)
	assert.Equal(t, domain.PolicyToggle, h.Policy())
	assert.True(t, h.IsSelected(domain.BoxA))

	h.BoxSelected("A")
	assert.False(t, h.IsSelected(domain.BoxA))
}
