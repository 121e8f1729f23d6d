package tui

import "time"

// defaultHoldTimeout is how long a key counts as held after its last
// press message. Terminals report no release events, so a held key is
// inferred from auto-repeat: as long as repeats keep arriving the key
// stays down, and silence past the timeout becomes a synthesized release.
// The value must exceed the typical auto-repeat initial delay.
const defaultHoldTimeout = 550 * time.Millisecond

// holdTracker infers key releases for the hub from key-press timestamps.
type holdTracker struct {
	timeout  time.Duration
	lastSeen map[string]time.Time
}

func newHoldTracker(timeout time.Duration) *holdTracker {
	if timeout <= 0 {
		timeout = defaultHoldTimeout
	}
	return &holdTracker{
		timeout:  timeout,
		lastSeen: make(map[string]time.Time),
	}
}

// press records a key-press (or auto-repeat) message.
func (t *holdTracker) press(key string, now time.Time) {
	t.lastSeen[key] = now
}

// expire returns the keys whose hold has lapsed and forgets them.
func (t *holdTracker) expire(now time.Time) []string {
	var released []string
	for key, seen := range t.lastSeen {
		if now.Sub(seen) >= t.timeout {
			released = append(released, key)
			delete(t.lastSeen, key)
		}
	}
	return released
}

// reset drops all tracked keys without reporting releases.
func (t *holdTracker) reset() {
	clear(t.lastSeen)
}
