package views

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/stretchr/testify/assert"

	"boxpick/internal/domain"
	"boxpick/internal/ui/input/types"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func plain(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func baseState() ViewState {
	return ViewState{
		Width:     80,
		Height:    24,
		Policy:    domain.PolicySetOnly,
		HelpModel: help.New(),
		Keys:      types.DefaultKeyMap(),
	}
}

func TestRenderShowsAllBoxes(t *testing.T) {
	out := plain(NewRenderer().Render(baseState()))

	assert.Contains(t, out, "boxpick")
	for _, label := range []string{"A", "B", "C"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "policy: set")
	assert.Contains(t, out, "selected: 0/3 (none)")
	assert.NotContains(t, out, ReadyMarker)
}

func TestRenderSelectedBoxes(t *testing.T) {
	state := baseState()
	state.Selection = domain.SelectionState{BoxA: true, BoxC: true}
	state.Policy = domain.PolicyToggle

	out := plain(NewRenderer().Render(state))

	assert.Contains(t, out, "selected: 2/3 (A, C)")
	assert.Contains(t, out, "policy: toggle")
	assert.Equal(t, 2, strings.Count(out, "✓"))
}

func TestRenderStatusAndReady(t *testing.T) {
	state := baseState()
	state.StatusMessage = `Ignored identifier "z"`
	state.StatusKind = StatusWarning
	state.ShowReady = true

	out := plain(NewRenderer().Render(state))
	assert.Contains(t, out, `Ignored identifier "z"`)
	assert.Contains(t, out, ReadyMarker)
}

func TestRenderBoxFocusChangesOutput(t *testing.T) {
	br := NewBoxRenderer(NewStyles())
	focused := br.RenderBox(domain.BoxB, false, true)
	unfocused := br.RenderBox(domain.BoxB, false, false)

	assert.NotEqual(t, plain(unfocused), plain(focused), "cursor uses a different border")
}
