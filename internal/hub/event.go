package hub

import "time"

// Topic identifies an event category on the hub.
// The set is closed: games coordinate through these four channels.
type Topic int

const (
	// TopicFrame fires once per advanced frame, carrying the delta time.
	TopicFrame Topic = iota

	// TopicCollision is emitted by games when two entities touch.
	TopicCollision

	// TopicKeyChange fires on every logical control transition (press or release).
	TopicKeyChange

	// TopicCustom is a free channel for game-specific coordination.
	TopicCustom
)

// String returns a human-readable name for the topic.
func (t Topic) String() string {
	switch t {
	case TopicFrame:
		return "frame"
	case TopicCollision:
		return "collision"
	case TopicKeyChange:
		return "key-change"
	case TopicCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Payload is the tagged union of event payloads. Each topic has its own
// payload shape, so consumers type-switch instead of digging through
// untyped maps.
type Payload interface {
	payload()
}

// FramePayload accompanies TopicFrame events.
type FramePayload struct {
	// Delta is the elapsed time since the previous frame, in seconds.
	// The hub reports raw elapsed time; consumers that integrate physics
	// should clamp it locally to survive lag spikes.
	Delta float64
}

func (FramePayload) payload() {}

// KeyChangePayload accompanies TopicKeyChange events.
type KeyChangePayload struct {
	Control Control
	Pressed bool

	// Keys is a snapshot of the full control state taken at the moment
	// of the transition.
	Keys KeyState
}

func (KeyChangePayload) payload() {}

// CollisionPayload accompanies TopicCollision events.
type CollisionPayload struct {
	// Kind names the collision (e.g. "land", "coin", "wall").
	Kind string

	// X, Y locate the contact in game coordinates.
	X, Y float64
}

func (CollisionPayload) payload() {}

// CustomPayload accompanies TopicCustom events. Fields stays untyped here
// because the custom channel exists precisely for shapes the hub cannot
// know about.
type CustomPayload struct {
	Name   string
	Fields map[string]any
}

func (CustomPayload) payload() {}

// Event is the immutable record delivered to subscribers.
type Event struct {
	Topic   Topic
	Payload Payload // May be nil for payload-less emissions.
	Time    time.Time
}

// Handler is a callback registered for a topic.
type Handler func(Event)
