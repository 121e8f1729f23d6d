package hub

import (
	"testing"
	"time"
)

func TestFirstFrameDeltaIsZero(t *testing.T) {
	var tr timingTracker

	// Pretend the process has been alive for a while before the loop starts.
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	delta := tr.advance(start)

	if delta != 0 {
		t.Errorf("first delta = %f, expected exactly 0", delta)
	}
	if tr.timing().FPS != 0 {
		t.Errorf("FPS before first window = %d, expected 0", tr.timing().FPS)
	}
}

func TestDeltaNonNegativeForIncreasingTimestamps(t *testing.T) {
	var tr timingTracker

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	steps := []time.Duration{0, time.Millisecond, 16 * time.Millisecond, time.Second, 3 * time.Second}
	for _, step := range steps {
		now = now.Add(step)
		if delta := tr.advance(now); delta < 0 {
			t.Errorf("delta = %f after step %v, expected >= 0", delta, step)
		}
	}
}

func TestDeltaMatchesElapsedTime(t *testing.T) {
	var tr timingTracker

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tr.advance(now)

	delta := tr.advance(now.Add(16 * time.Millisecond))
	if delta < 0.0159 || delta > 0.0161 {
		t.Errorf("delta = %f, expected ~0.016", delta)
	}
}

func TestFPSUpdatesOnlyAtSecondBoundaries(t *testing.T) {
	var tr timingTracker

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tr.advance(now)

	// 30 frames at 20ms each: 600ms accumulated, under the boundary.
	for i := 0; i < 30; i++ {
		now = now.Add(20 * time.Millisecond)
		tr.advance(now)
	}
	if fps := tr.timing().FPS; fps != 0 {
		t.Errorf("FPS before 1s boundary = %d, expected to hold previous value 0", fps)
	}

	// 20 more frames carry it past one second: 50 frames in 1000ms.
	for i := 0; i < 20; i++ {
		now = now.Add(20 * time.Millisecond)
		tr.advance(now)
	}
	if fps := tr.timing().FPS; fps != 50 {
		t.Errorf("FPS at boundary = %d, expected 50", fps)
	}

	// Between boundaries the published value holds.
	for i := 0; i < 10; i++ {
		now = now.Add(20 * time.Millisecond)
		tr.advance(now)
	}
	if fps := tr.timing().FPS; fps != 50 {
		t.Errorf("FPS between boundaries = %d, expected held 50", fps)
	}
}

func TestFPSRoundsToNearestInteger(t *testing.T) {
	var tr timingTracker

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tr.advance(now)

	// 61 frames over 1.0065s: 60.6 fps, rounds to 61.
	for i := 0; i < 61; i++ {
		now = now.Add(16500 * time.Microsecond)
		tr.advance(now)
	}
	fps := tr.timing().FPS
	if fps != 61 {
		t.Errorf("FPS = %d, expected rounded 61", fps)
	}
}

func TestFPSCountersResetAfterWindow(t *testing.T) {
	var tr timingTracker

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tr.advance(now)

	// Step durations are powers of two in seconds, so the float deltas
	// accumulate exactly to 1.0 and the window boundary fires on the last
	// frame of each batch.
	// First window: 128 frames at 1/128s.
	for i := 0; i < 128; i++ {
		now = now.Add(time.Second / 128)
		tr.advance(now)
	}
	if fps := tr.timing().FPS; fps != 128 {
		t.Fatalf("first window FPS = %d, expected 128", fps)
	}

	// Second window at a different rate: 64 frames at 1/64s.
	for i := 0; i < 64; i++ {
		now = now.Add(time.Second / 64)
		tr.advance(now)
	}
	if fps := tr.timing().FPS; fps != 64 {
		t.Errorf("second window FPS = %d, expected 64 (counters should reset)", fps)
	}
}
