package anim

import (
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/algoviz/internal/surface"
)

// Loop is the explicit per-instance animation session: it owns exactly one
// visualization, one surface, and one scheduler handle. Frames never
// overlap; the next frame is requested only after the current one finishes.
type Loop struct {
	sched Scheduler
	dst   surface.Surface
	viz   Visualization
	rng   *rand.Rand

	mu      sync.Mutex
	started bool
	stopped bool
	frames  int
	onFrame func(n int, took time.Duration)
}

// NewLoop wires a visualization to a surface and scheduler. rng seeds the
// visualization's randomness source; a nil rng gets a time-seeded one.
func NewLoop(sched Scheduler, dst surface.Surface, viz Visualization, rng *rand.Rand) *Loop {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Loop{sched: sched, dst: dst, viz: viz, rng: rng}
}

// OnFrame registers an observer called after every completed frame, with the
// frame ordinal and its wall duration. Must be set before Start.
func (l *Loop) OnFrame(fn func(n int, took time.Duration)) {
	l.onFrame = fn
}

// Start runs setup against the current surface geometry and schedules the
// first frame. Calling Start twice is a no-op.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.started || l.stopped {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.mu.Unlock()

	w, h := l.dst.Size()
	l.viz.Setup(w, h, l.rng)
	l.sched.Request(l.frame)
}

// Stop cancels the scheduler handle. After Stop returns no further frame
// callback runs; a loop left unstopped keeps drawing against its surface.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()
	l.sched.Cancel()
}

// Frames reports how many frames have completed.
func (l *Loop) Frames() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

func (l *Loop) frame(now time.Duration) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	begin := time.Now()
	l.viz.Frame(l.dst, now)
	took := time.Since(begin)

	l.mu.Lock()
	l.frames++
	n := l.frames
	l.mu.Unlock()

	if l.onFrame != nil {
		l.onFrame(n, took)
	}

	// The observer may have called Stop; re-read before re-arming.
	l.mu.Lock()
	stopped := l.stopped
	l.mu.Unlock()
	if !stopped {
		l.sched.Request(l.frame)
	}
}
