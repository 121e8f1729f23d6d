// Package hub provides the frame loop core and event broker for gamekit.
// It owns per-frame timing (delta time, FPS), keyboard-state tracking, and a
// topic-keyed publish/subscribe registry that lets games coordinate without
// referencing each other.
//
// A Hub is an explicit handle: the platform layer creates one per play
// session, passes it to every consumer, and closes it on teardown. All hub
// state is mutated from a single goroutine (the Bubble Tea update loop), so
// the hub itself takes no locks.
package hub

import (
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/charmbracelet/log"
)

// Hub is the frame loop driver and event broker.
type Hub struct {
	closed bool
	keys   KeyState
	timing timingTracker
	subs   map[Topic]map[uintptr]Handler
	logger *log.Logger
}

// New creates an active hub. The logger receives subscriber fault reports;
// pass nil for a default stderr logger.
func New(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "hub"})
	}
	return &Hub{
		subs:   make(map[Topic]map[uintptr]Handler),
		logger: logger,
	}
}

// Close tears the hub down. All subscriptions are dropped and every
// subsequent operation on the hub panics. Closing twice is a no-op, so
// every teardown path may call it unconditionally.
func (h *Hub) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.subs = nil
}

// Closed reports whether the hub has been torn down.
func (h *Hub) Closed() bool {
	return h.closed
}

// checkActive panics if the hub has been closed. Using a dead hub is a
// programmer error and must surface immediately rather than silently no-op.
func (h *Hub) checkActive(op string) {
	if h.closed {
		panic(fmt.Sprintf("hub: %s called on closed hub", op))
	}
}

// Keys returns a snapshot of the current logical control state.
func (h *Hub) Keys() KeyState {
	h.checkActive("Keys")
	return h.keys
}

// Timing returns the current delta time and smoothed FPS.
func (h *Hub) Timing() Timing {
	h.checkActive("Timing")
	return h.timing.timing()
}

// Subscribe registers handler for the given topic and returns a release
// function that removes it. Registration has set semantics: subscribing the
// identical handler twice under the same topic yields one registration, and
// either returned release removes it. Releasing twice is harmless.
//
// Handler identity is the function's code pointer, the closest Go analog of
// callback reference identity. Distinct closures instantiated from the same
// literal (and method values on different receivers) share a pointer, so a
// consumer that needs several registrations of the same behavior must wrap
// each in its own distinct function literal.
func (h *Hub) Subscribe(topic Topic, handler Handler) func() {
	h.checkActive("Subscribe")
	if handler == nil {
		panic("hub: Subscribe called with nil handler")
	}

	id := reflect.ValueOf(handler).Pointer()
	set, ok := h.subs[topic]
	if !ok {
		set = make(map[uintptr]Handler)
		h.subs[topic] = set
	}
	set[id] = handler

	return func() {
		if h.closed {
			return
		}
		if set, ok := h.subs[topic]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(h.subs, topic)
			}
		}
	}
}

// Emit synchronously delivers an event to every handler currently
// registered for the topic. Delivery order across handlers is unspecified.
// Emitting on a topic with no subscribers is a no-op.
//
// The subscriber set is snapshotted before delivery, so handlers may freely
// subscribe, unsubscribe, or re-enter Emit during dispatch: structural
// changes affect only later emissions. A handler added mid-dispatch does
// not receive the in-flight event.
//
// A panicking handler is recovered and logged; remaining handlers still
// receive the event. One misbehaving consumer must not starve the rest.
func (h *Hub) Emit(topic Topic, payload Payload) {
	h.checkActive("Emit")

	set := h.subs[topic]
	if len(set) == 0 {
		return
	}

	ev := Event{Topic: topic, Payload: payload, Time: time.Now()}

	snapshot := make([]Handler, 0, len(set))
	for _, fn := range set {
		snapshot = append(snapshot, fn)
	}
	for _, fn := range snapshot {
		h.invoke(fn, ev)
	}
}

// invoke runs one handler, isolating panics from the dispatch loop.
func (h *Hub) invoke(fn Handler, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("subscriber panicked", "topic", ev.Topic, "panic", r)
		}
	}()
	fn(ev)
}

// Advance drives one frame. The platform layer calls it once per tick with
// the tick's wall-clock timestamp. It updates timing state and then emits a
// TopicFrame event carrying the delta; key transitions processed before this
// call are therefore visible to frame handlers.
func (h *Hub) Advance(now time.Time) {
	h.checkActive("Advance")
	delta := h.timing.advance(now)
	h.Emit(TopicFrame, FramePayload{Delta: delta})
}

// KeyDown records a physical key press. Mapped keys set their control flag
// and emit one TopicKeyChange event; repeats for an already-held control do
// nothing, so transitions are edge-triggered. Unmapped keys are ignored.
func (h *Hub) KeyDown(key string) {
	h.checkActive("KeyDown")
	h.keyTransition(key, true)
}

// KeyUp records a physical key release, symmetric to KeyDown.
func (h *Hub) KeyUp(key string) {
	h.checkActive("KeyUp")
	h.keyTransition(key, false)
}

func (h *Hub) keyTransition(key string, pressed bool) {
	control, ok := LookupControl(key)
	if !ok {
		return
	}
	if h.keys.Held(control) == pressed {
		return
	}
	h.keys.set(control, pressed)
	h.Emit(TopicKeyChange, KeyChangePayload{
		Control: control,
		Pressed: pressed,
		Keys:    h.keys,
	})
}
