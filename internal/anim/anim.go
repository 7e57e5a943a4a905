// Package anim drives the per-frame animation loop shared by every
// visualization: one cooperative redraw loop per instance, re-armed only
// after the current frame's work is done, with a single cancellation handle.
package anim

import (
	"math/rand"
	"time"

	"github.com/san-kum/algoviz/internal/surface"
)

// Visualization is one animated view. Setup receives the initial logical
// surface dimensions; Frame runs once per scheduled tick and both advances
// state and redraws. Implementations are fail-silent: a zero-area surface or
// state that is not ready yet skips drawing and waits for the next frame.
type Visualization interface {
	Name() string
	Setup(w, h float64, rng *rand.Rand)
	Frame(dst surface.Surface, now time.Duration)
}

// Clock is a monotonic elapsed-time reading. The fractal zoom is its only
// hot-path consumer.
type Clock interface {
	Now() time.Duration
}

type monotonicClock struct {
	start time.Time
}

// NewClock returns a Clock measuring elapsed time from this call.
func NewClock() Clock {
	return &monotonicClock{start: time.Now()}
}

func (c *monotonicClock) Now() time.Duration {
	return time.Since(c.start)
}

// PausableClock accumulates elapsed time only while running, so pausing a
// host freezes time-derived animation (the fractal zoom) along with it.
type PausableClock struct {
	accum   time.Duration
	last    time.Time
	running bool
}

// NewPausableClock returns a running clock starting at zero elapsed.
func NewPausableClock() *PausableClock {
	return &PausableClock{last: time.Now(), running: true}
}

func (c *PausableClock) Now() time.Duration {
	if c.running {
		return c.accum + time.Since(c.last)
	}
	return c.accum
}

// Pause freezes the reading.
func (c *PausableClock) Pause() {
	if !c.running {
		return
	}
	c.accum += time.Since(c.last)
	c.running = false
}

// Resume continues from the frozen reading.
func (c *PausableClock) Resume() {
	if c.running {
		return
	}
	c.last = time.Now()
	c.running = true
}

// Toggle flips between paused and running and reports the new running state.
func (c *PausableClock) Toggle() bool {
	if c.running {
		c.Pause()
	} else {
		c.Resume()
	}
	return c.running
}

// FakeClock is a manually advanced Clock for deterministic tests.
type FakeClock struct {
	Elapsed time.Duration
}

func (c *FakeClock) Now() time.Duration { return c.Elapsed }

// Advance moves the fake clock forward.
func (c *FakeClock) Advance(d time.Duration) { c.Elapsed += d }
