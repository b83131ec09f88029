package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestFrameTimerZeroBeforeFirstStart(t *testing.T) {
	c := &fakeClock{t: time.Unix(100, 0)}
	ft := makeFrameTimerWith(c.now)
	assert.Equal(t, 0.0, ft.delta())
}

func TestFrameTimerFixedStep(t *testing.T) {
	c := &fakeClock{t: time.Unix(100, 0)}
	ft := makeFrameTimerWith(c.now)
	for i := 0; i < 5; i++ {
		c.advance(16 * time.Millisecond)
		ft.start()
		assert.InDelta(t, 0.016, ft.delta(), 1e-6)
	}
}

func TestFrameTimerTracksElapsedWallClock(t *testing.T) {
	c := &fakeClock{t: time.Unix(100, 0)}
	ft := makeFrameTimerWith(c.now)
	steps := []time.Duration{
		7 * time.Millisecond,
		16 * time.Millisecond,
		250 * time.Millisecond, // stalled frame, still a valid pacing signal
		time.Microsecond,
	}
	for _, step := range steps {
		c.advance(step)
		ft.start()
		assert.InDelta(t, step.Seconds(), ft.delta(), 1e-9)
	}
}

func TestFrameTimerConstantClock(t *testing.T) {
	c := &fakeClock{t: time.Unix(100, 0)}
	ft := makeFrameTimerWith(c.now)
	ft.start()
	assert.Equal(t, 0.0, ft.delta())
	ft.start()
	assert.Equal(t, 0.0, ft.delta())
}

func TestFrameTimerBackwardClockClamps(t *testing.T) {
	c := &fakeClock{t: time.Unix(100, 0)}
	ft := makeFrameTimerWith(c.now)
	c.advance(16 * time.Millisecond)
	ft.start()
	require.Greater(t, ft.delta(), 0.0)

	c.advance(-time.Second)
	ft.start()
	assert.Equal(t, 0.0, ft.delta())

	// recovers once the clock moves forward again
	c.advance(16 * time.Millisecond)
	ft.start()
	assert.InDelta(t, 0.016, ft.delta(), 1e-6)
}

func TestFrameTimerStopKeepsDelta(t *testing.T) {
	c := &fakeClock{t: time.Unix(100, 0)}
	ft := makeFrameTimerWith(c.now)
	c.advance(16 * time.Millisecond)
	ft.start()
	before := ft.delta()
	ft.stop()
	assert.Equal(t, before, ft.delta())
}
