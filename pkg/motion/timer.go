package motion

import (
	"sort"
	"sync"
	"time"
)

var (
	timerMu      sync.Mutex
	activeTimers = make(map[*Timer]struct{})
)

// Timer is a one-shot deadline callback driven by [StepTimers].
//
// Timer is the low-level timing primitive behind transition completion and
// the fixed-delay fallback for widgets without native animation support.
type Timer struct {
	deadline time.Time
	callback func()
}

// After registers a callback to fire once the active clock passes the given
// delay. The callback runs during a future StepTimers call, never inline.
func After(d time.Duration, fn func()) *Timer {
	t := &Timer{
		deadline: Now().Add(d),
		callback: fn,
	}
	timerMu.Lock()
	activeTimers[t] = struct{}{}
	timerMu.Unlock()
	return t
}

// Stop cancels the timer. Stopping an already-fired or already-stopped
// timer is a no-op.
func (t *Timer) Stop() {
	timerMu.Lock()
	delete(activeTimers, t)
	timerMu.Unlock()
}

// StepTimers fires every timer whose deadline has passed, in deadline
// order. This should be called once per pump by the driver.
func StepTimers() {
	now := Now()

	timerMu.Lock()
	if len(activeTimers) == 0 {
		timerMu.Unlock()
		return
	}
	var due []*Timer
	for t := range activeTimers {
		if !t.deadline.After(now) {
			due = append(due, t)
		}
	}
	for _, t := range due {
		delete(activeTimers, t)
	}
	timerMu.Unlock()

	// Deadline order keeps completion delivery deterministic when several
	// transitions end within one pump.
	sort.Slice(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })
	for _, t := range due {
		if t.callback != nil {
			t.callback()
		}
	}
}

// HasActiveTimers returns true if any timers are pending.
func HasActiveTimers() bool {
	timerMu.Lock()
	defer timerMu.Unlock()
	return len(activeTimers) > 0
}

func resetTimers() {
	timerMu.Lock()
	activeTimers = make(map[*Timer]struct{})
	timerMu.Unlock()
}
