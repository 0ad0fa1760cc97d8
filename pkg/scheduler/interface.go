package scheduler

import "time"

// Scheduler runs a function once after a delay, keyed by an id that allows
// best-effort cancellation. A task can fire a few milliseconds after Cancel
// is requested; callers needing exactly-once semantics must guard in the
// task itself.
//
//go:generate mockery --name Scheduler
type Scheduler interface {
	// Schedule arms a one-shot task. Scheduling an id that is already armed
	// replaces the previous task.
	Schedule(id string, delay time.Duration, task func())
	// Cancel stops a pending task. Returns true if the task was still
	// pending, false if it already fired or was never scheduled.
	Cancel(id string) bool
	// Pending reports whether a task for id is still armed.
	Pending(id string) bool
	// Stop cancels every pending task. The scheduler must not be reused
	// afterwards.
	Stop()
}

// New returns a timer-backed Scheduler.
func New() Scheduler {
	return &timerScheduler{
		timers: make(map[string]*time.Timer),
	}
}
