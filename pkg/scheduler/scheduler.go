package scheduler

import (
	"sync"
	"time"
)

// timerScheduler implements Scheduler on top of runtime timers
// (time.AfterFunc), so an armed task costs no goroutine until it fires.
type timerScheduler struct {
	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

func (s *timerScheduler) Schedule(id string, delay time.Duration, task func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if prev, ok := s.timers[id]; ok {
		prev.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		// The registration may have been replaced or cancelled between fire
		// and lock acquisition; only the current one may run.
		if current, ok := s.timers[id]; !ok || current != timer {
			s.mu.Unlock()
			return
		}
		delete(s.timers, id)
		s.mu.Unlock()

		task()
	})
	s.timers[id] = timer
}

func (s *timerScheduler) Cancel(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[id]
	if !ok {
		return false
	}
	delete(s.timers, id)
	return timer.Stop()
}

func (s *timerScheduler) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.timers[id]
	return ok
}

func (s *timerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.stopped = true
}
