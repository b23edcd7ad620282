package engine

import (
	"sync"
	"time"
)

// FrameScheduler is the capability through which an engine asks its host for
// frame callbacks. Schedule requests exactly one future invocation of cb
// with a monotonic timestamp in seconds; Cancel drops a pending request.
//
// The engine itself guarantees it never has more than one outstanding
// request, so implementations only need to remember the latest callback.
type FrameScheduler interface {
	Schedule(cb func(frameTime float64))
	Cancel()
}

// ManualScheduler is a FrameScheduler driven explicitly by the caller. It is
// the deterministic driver used in tests and headless runs: each Tick
// delivers at most one pending callback.
type ManualScheduler struct {
	pending func(frameTime float64)
}

// NewManualScheduler returns a scheduler with no pending callback.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) Schedule(cb func(frameTime float64)) {
	s.pending = cb
}

func (s *ManualScheduler) Cancel() {
	s.pending = nil
}

// Pending reports whether a callback is waiting for the next tick.
func (s *ManualScheduler) Pending() bool {
	return s.pending != nil
}

// Tick delivers the pending callback, if any, with the given frame time.
// It returns whether a callback ran. The callback may re-schedule itself;
// that request is kept for the next tick.
func (s *ManualScheduler) Tick(frameTime float64) bool {
	cb := s.pending
	if cb == nil {
		return false
	}
	s.pending = nil
	cb(frameTime)
	return true
}

// TickerScheduler delivers frame callbacks from wall-clock timers at a fixed
// rate, timestamped with seconds elapsed since the scheduler was created. It
// is the driver behind the CLI's real-time runs.
type TickerScheduler struct {
	mu       sync.Mutex
	interval time.Duration
	start    time.Time
	timer    *time.Timer
}

// NewTickerScheduler returns a scheduler firing at the given rate in frames
// per second.
func NewTickerScheduler(fps int) *TickerScheduler {
	return &TickerScheduler{
		interval: time.Second / time.Duration(fps),
		start:    time.Now(),
	}
}

func (s *TickerScheduler) Schedule(cb func(frameTime float64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		return
	}
	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		s.timer = nil
		s.mu.Unlock()
		cb(time.Since(s.start).Seconds())
	})
}

func (s *TickerScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
