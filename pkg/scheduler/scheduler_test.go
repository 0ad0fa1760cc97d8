package scheduler

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestScheduleFires(t *testing.T) {
	s := New()
	defer s.Stop()

	fired := make(chan struct{})
	s.Schedule("a", 10*time.Millisecond, func() { close(fired) })

	if !s.Pending("a") {
		t.Fatal("task should be pending before firing")
	}

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("task did not fire")
	}

	// Firing removes the registration.
	deadline := time.Now().Add(time.Second)
	for s.Pending("a") {
		if time.Now().After(deadline) {
			t.Fatal("task still pending after firing")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestCancelPreventsFire(t *testing.T) {
	s := New()
	defer s.Stop()

	var fired atomic.Bool
	s.Schedule("a", 20*time.Millisecond, func() { fired.Store(true) })

	if !s.Cancel("a") {
		t.Fatal("cancel should report the task as pending")
	}

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Fatal("cancelled task fired")
	}
	if s.Pending("a") {
		t.Fatal("cancelled task still pending")
	}
}

func TestCancelAfterFire(t *testing.T) {
	s := New()
	defer s.Stop()

	fired := make(chan struct{})
	s.Schedule("a", time.Millisecond, func() { close(fired) })

	<-fired
	if s.Cancel("a") {
		t.Fatal("cancel after fire should report false")
	}
}

func TestCancelUnknown(t *testing.T) {
	s := New()
	defer s.Stop()

	if s.Cancel("nope") {
		t.Fatal("cancel of unknown id should report false")
	}
}

func TestScheduleReplaces(t *testing.T) {
	s := New()
	defer s.Stop()

	var first atomic.Bool
	fired := make(chan struct{})

	s.Schedule("a", 10*time.Millisecond, func() { first.Store(true) })
	s.Schedule("a", 20*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("replacement task did not fire")
	}
	if first.Load() {
		t.Fatal("replaced task fired")
	}
}

func TestStopCancelsAll(t *testing.T) {
	s := New()

	var fired atomic.Int32
	for _, id := range []string{"a", "b", "c"} {
		s.Schedule(id, 20*time.Millisecond, func() { fired.Add(1) })
	}

	s.Stop()

	time.Sleep(60 * time.Millisecond)
	if n := fired.Load(); n != 0 {
		t.Fatalf("expected no task to fire after Stop, got %d", n)
	}

	// Scheduling after Stop is a no-op.
	s.Schedule("d", time.Millisecond, func() { fired.Add(1) })
	time.Sleep(20 * time.Millisecond)
	if n := fired.Load(); n != 0 {
		t.Fatalf("task scheduled after Stop fired, count %d", n)
	}
}
