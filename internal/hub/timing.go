package hub

import (
	"math"
	"time"
)

// Timing exposes the hub's per-frame timing state.
type Timing struct {
	// Delta is the elapsed time between the two most recent frames,
	// in seconds. Zero on the very first frame.
	Delta float64

	// FPS is a smoothed frames-per-second value, refreshed once per
	// accumulated second of elapsed time. Zero until the first refresh.
	FPS int
}

// timingTracker computes delta time and the once-per-second FPS estimate.
// Single writer (the frame advance), so no locking.
type timingTracker struct {
	started bool
	last    time.Time

	delta   float64
	fps     int
	frames  int
	elapsed float64
}

// advance records a new frame timestamp and returns the delta in seconds.
// The first frame seeds the previous timestamp, so its delta is exactly
// zero: consumers never observe time elapsed before the loop existed.
func (t *timingTracker) advance(now time.Time) float64 {
	if !t.started {
		t.started = true
		t.last = now
		t.delta = 0
		return 0
	}

	t.delta = now.Sub(t.last).Seconds()
	t.last = now

	t.frames++
	t.elapsed += t.delta
	if t.elapsed >= 1.0 {
		t.fps = int(math.Round(float64(t.frames) / t.elapsed))
		t.frames = 0
		t.elapsed = 0
	}

	return t.delta
}

// timing returns the current readable timing state.
func (t *timingTracker) timing() Timing {
	return Timing{Delta: t.delta, FPS: t.fps}
}
