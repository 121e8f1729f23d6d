package hub

import "strings"

// Control represents a logical game control, decoupled from physical key
// identity. Games check controls; the hub owns the key-to-control mapping.
type Control int

const (
	ControlUp Control = iota
	ControlDown
	ControlLeft
	ControlRight
	ControlAction
)

// String returns a human-readable name for the control.
func (c Control) String() string {
	switch c {
	case ControlUp:
		return "up"
	case ControlDown:
		return "down"
	case ControlLeft:
		return "left"
	case ControlRight:
		return "right"
	case ControlAction:
		return "action"
	default:
		return "unknown"
	}
}

// KeyState holds the current held/released state of every logical control.
// It is a plain value: copying it yields an independent snapshot.
type KeyState struct {
	Up     bool
	Down   bool
	Left   bool
	Right  bool
	Action bool
}

// Held reports whether the given control is currently held.
func (s KeyState) Held(c Control) bool {
	switch c {
	case ControlUp:
		return s.Up
	case ControlDown:
		return s.Down
	case ControlLeft:
		return s.Left
	case ControlRight:
		return s.Right
	case ControlAction:
		return s.Action
	default:
		return false
	}
}

// set mutates the flag for one control.
func (s *KeyState) set(c Control, held bool) {
	switch c {
	case ControlUp:
		s.Up = held
	case ControlDown:
		s.Down = held
	case ControlLeft:
		s.Left = held
	case ControlRight:
		s.Right = held
	case ControlAction:
		s.Action = held
	}
}

// controlAliases is the fixed physical-key-to-control table. Arrow keys and
// WASD map to the same four directional controls; space is the action key.
// Not configurable.
var controlAliases = map[string]Control{
	"up":    ControlUp,
	"w":     ControlUp,
	"down":  ControlDown,
	"s":     ControlDown,
	"left":  ControlLeft,
	"a":     ControlLeft,
	"right": ControlRight,
	"d":     ControlRight,
	" ":     ControlAction,
	"space": ControlAction,
}

// LookupControl resolves a physical key name to its logical control.
// Single letters match case-insensitively (W and w are the same key with
// shift held). Unmapped keys return ok=false and are ignored by the hub.
func LookupControl(key string) (Control, bool) {
	if len(key) == 1 {
		key = strings.ToLower(key)
	}
	c, ok := controlAliases[key]
	return c, ok
}
