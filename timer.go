package main

import "time"

// frameTimer measures the elapsed wall-clock time between successive
// frames using the monotonic reading carried by time.Time. It is owned
// exclusively by the app's loop and never shared across goroutines.
type frameTimer struct {
	now  func() time.Time
	mark time.Time
	dt   float64
}

func makeFrameTimer() frameTimer {
	return makeFrameTimerWith(time.Now)
}

// makeFrameTimerWith builds a timer on an arbitrary time source so tests
// can drive it with a fake clock.
func makeFrameTimerWith(now func() time.Time) frameTimer {
	return frameTimer{now: now, mark: now()}
}

// start records the time elapsed since the previous start call as the
// current delta and resets the mark. Call once per frame, at the top,
// before any time-sensitive work.
func (t *frameTimer) start() {
	n := t.now()
	d := n.Sub(t.mark).Seconds()
	if d < 0 {
		// the time source stepped backward
		d = 0
	}
	t.dt = d
	t.mark = n
}

// stop is the end-of-frame hook. It measures nothing yet; it is where
// sleep-to-target-framerate would go.
func (t *frameTimer) stop() {}

// delta returns the seconds elapsed between the two most recent start
// calls, 0 before the first one. Never negative.
func (t *frameTimer) delta() float64 {
	return t.dt
}
