package anim

import (
	"sync"
	"time"
)

// Scheduler requests a single invocation of a callback before the next
// display refresh. Cancel guarantees no further invocation, including a
// request already in flight.
type Scheduler interface {
	Request(fn func(now time.Duration))
	Cancel()
}

// TimerScheduler paces frames with a wall timer at a fixed refresh interval.
// It backs hosts without a native frame signal (snapshot, load, tests); the
// TUI and GUI hosts use bubbletea's tick and raylib's own loop instead.
type TimerScheduler struct {
	mu        sync.Mutex
	interval  time.Duration
	clock     Clock
	timer     *time.Timer
	cancelled bool
}

// NewTimerScheduler builds a scheduler firing at most once per interval.
// A non-positive interval falls back to 60 Hz.
func NewTimerScheduler(interval time.Duration, clock Clock) *TimerScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	if clock == nil {
		clock = NewClock()
	}
	return &TimerScheduler{interval: interval, clock: clock}
}

// Request arms one callback. At most one request is pending at a time; a
// second Request before the first fires replaces it.
func (s *TimerScheduler) Request(fn func(now time.Duration)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelled {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, func() {
		// Re-check under the lock: Cancel may have won the race after the
		// timer fired but before we got here.
		s.mu.Lock()
		if s.cancelled {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()
		fn(s.clock.Now())
	})
}

// Cancel stops the pending request and refuses all future ones.
func (s *TimerScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Cancelled reports whether Cancel has been called.
func (s *TimerScheduler) Cancelled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelled
}

// ImmediateScheduler invokes callbacks synchronously on Request. Tests and
// the load command use it to run frames back to back without timer pacing.
type ImmediateScheduler struct {
	mu        sync.Mutex
	clock     Clock
	cancelled bool
	depth     int
	queued    []func(now time.Duration)
}

// NewImmediateScheduler builds a synchronous scheduler on the given clock.
func NewImmediateScheduler(clock Clock) *ImmediateScheduler {
	if clock == nil {
		clock = NewClock()
	}
	return &ImmediateScheduler{clock: clock}
}

// Request runs fn right away. Re-entrant requests (a frame asking for the
// next frame) are queued and drained iteratively so the stack stays flat.
func (s *ImmediateScheduler) Request(fn func(now time.Duration)) {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return
	}
	s.queued = append(s.queued, fn)
	if s.depth > 0 {
		s.mu.Unlock()
		return
	}
	s.depth++
	s.mu.Unlock()

	for {
		s.mu.Lock()
		if s.cancelled || len(s.queued) == 0 {
			s.depth--
			s.mu.Unlock()
			return
		}
		next := s.queued[0]
		s.queued = s.queued[1:]
		s.mu.Unlock()
		next(s.clock.Now())
	}
}

// Cancel drops queued callbacks and refuses future requests.
func (s *ImmediateScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelled = true
	s.queued = nil
}
