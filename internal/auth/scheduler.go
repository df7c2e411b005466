package auth

import (
	"sync"
	"time"
)

// DefaultRefreshInterval is the scheduler tick period. It is finer-grained
// than the 30-second refresh threshold so a token approaching expiry is
// caught within one tick's worth of slack, not one full threshold window.
const DefaultRefreshInterval = 10 * time.Second

// Scheduler owns the single repeating timer that drives automatic token
// refresh. At most one timer exists per scheduler at any instant; Start
// and Stop are idempotent.
type Scheduler struct {
	mu       sync.Mutex
	interval time.Duration
	tick     func()
	ticker   *time.Ticker
	done     chan struct{}
}

// NewScheduler creates a stopped scheduler that invokes tick every
// interval once started.
func NewScheduler(interval time.Duration, tick func()) *Scheduler {
	return &Scheduler{interval: interval, tick: tick}
}

// Start creates the repeating timer. Calling Start on a running
// scheduler is a no-op; it never double-schedules. The first tick fires
// strictly after one full interval, not immediately.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		return
	}
	ticker := time.NewTicker(s.interval)
	done := make(chan struct{})
	s.ticker = ticker
	s.done = done
	go func() {
		for {
			select {
			case <-ticker.C:
				s.tick()
			case <-done:
				return
			}
		}
	}()
}

// Stop cancels the timer and clears the handle. Calling Stop on a
// stopped scheduler is a no-op.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.done)
	s.ticker = nil
	s.done = nil
}

// Running reports whether a timer is currently active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker != nil
}
