package store

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CommitsAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var commits int32
	d.Trigger(func() { atomic.AddInt32(&commits, 1) })

	time.Sleep(60 * time.Millisecond)

	if got := atomic.LoadInt32(&commits); got != 1 {
		t.Errorf("Expected exactly 1 commit after quiet period, got %d", got)
	}
}

func TestDebouncer_NewTriggerCancelsPending(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var first, second int32
	d.Trigger(func() { atomic.AddInt32(&first, 1) })
	time.Sleep(10 * time.Millisecond)
	d.Trigger(func() { atomic.AddInt32(&second, 1) })

	time.Sleep(80 * time.Millisecond)

	if atomic.LoadInt32(&first) != 0 {
		t.Error("Superseded trigger must never commit")
	}
	if atomic.LoadInt32(&second) != 1 {
		t.Error("Surviving trigger should commit exactly once")
	}
}

func TestDebouncer_CancelDropsPendingCommit(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var commits int32
	d.Trigger(func() { atomic.AddInt32(&commits, 1) })
	d.Cancel()

	time.Sleep(60 * time.Millisecond)

	if atomic.LoadInt32(&commits) != 0 {
		t.Error("Cancelled trigger must not commit")
	}
}
