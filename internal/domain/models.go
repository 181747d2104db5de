package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Box identifies one of the three selectable boxes
type Box int

const (
	BoxA Box = iota
	BoxB
	BoxC
)

// AllBoxes returns every box in display order
func AllBoxes() []Box {
	return []Box{BoxA, BoxB, BoxC}
}

// String returns the box label
func (b Box) String() string {
	switch b {
	case BoxA:
		return "A"
	case BoxB:
		return "B"
	case BoxC:
		return "C"
	default:
		return fmt.Sprintf("Box(%d)", int(b))
	}
}

// Valid reports whether b is one of A, B or C
func (b Box) Valid() bool {
	return b >= BoxA && b <= BoxC
}

// ParseBox maps an identifier to a box. Only the exact labels
// "A", "B" and "C" are recognised.
func ParseBox(identifier string) (Box, bool) {
	switch identifier {
	case "A":
		return BoxA, true
	case "B":
		return BoxB, true
	case "C":
		return BoxC, true
	default:
		return 0, false
	}
}

// Policy decides what selecting a box does to its flag
type Policy int

const (
	// PolicySetOnly moves a flag to true and never back
	PolicySetOnly Policy = iota
	// PolicyToggle flips a flag on every selection
	PolicyToggle
)

// ErrUnknownPolicy is returned when a policy name is not recognised
var ErrUnknownPolicy = errors.New("unknown selection policy")

// String returns the policy name as used in config files and flags
func (p Policy) String() string {
	switch p {
	case PolicySetOnly:
		return "set"
	case PolicyToggle:
		return "toggle"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy parses a policy name ("set", "set-only", "toggle")
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "set", "set-only", "setonly":
		return PolicySetOnly, nil
	case "toggle":
		return PolicyToggle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// MarshalText implements encoding.TextMarshaler
func (p Policy) MarshalText() ([]byte, error) {
	switch p {
	case PolicySetOnly, PolicyToggle:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// SelectionState is the set of three independent box flags.
// The zero value has nothing selected.
type SelectionState struct {
	BoxA bool `toml:"a"`
	BoxB bool `toml:"b"`
	BoxC bool `toml:"c"`
}

// Get returns the flag for box
func (s SelectionState) Get(box Box) bool {
	switch box {
	case BoxA:
		return s.BoxA
	case BoxB:
		return s.BoxB
	case BoxC:
		return s.BoxC
	default:
		return false
	}
}

// Set stores value in the flag for box. Invalid boxes are ignored.
func (s *SelectionState) Set(box Box, value bool) {
	switch box {
	case BoxA:
		s.BoxA = value
	case BoxB:
		s.BoxB = value
	case BoxC:
		s.BoxC = value
	}
}

// Selected returns the selected boxes in display order
func (s SelectionState) Selected() []Box {
	var boxes []Box
	for _, b := range AllBoxes() {
		if s.Get(b) {
			boxes = append(boxes, b)
		}
	}
	return boxes
}

// Count returns the number of selected boxes
func (s SelectionState) Count() int {
	return len(s.Selected())
}
