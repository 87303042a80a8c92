// Package foldtest provides isolated testing for the Fold runtime without a
// real page. It drives the same dispatch, frame, and timer phases the CLI
// run loop does, but against a fake clock, so transition timing is fully
// deterministic.
package foldtest

import (
	"errors"
	"testing"
	"time"

	"github.com/go-fold/fold/pkg/dom"
	"github.com/go-fold/fold/pkg/motion"
	"github.com/go-fold/fold/pkg/style"
)

// ErrSettleTimeout is returned when Settle exceeds its timeout.
var ErrSettleTimeout = errors.New("Settle timed out: runtime did not settle")

// FrameDuration is the simulated frame interval used by Settle.
const FrameDuration = 16 * time.Millisecond

// Harness hosts one parsed document on a fake clock and pumps the
// cooperative loop. Call Cleanup when done, or use NewHarness, which
// registers cleanup with the test.
type Harness struct {
	doc       *dom.Document
	clock     *FakeClock
	prevClock motion.Clock
}

// NewHarness parses markup into a document driven by a fresh fake clock
// and registers automatic cleanup. The zero-value sheet is style.Default();
// pass a sheet via NewHarnessWithSheet to override.
func NewHarness(t *testing.T, markup string) *Harness {
	t.Helper()
	return NewHarnessWithSheet(t, markup, style.Default())
}

// NewHarnessWithSheet is NewHarness with an explicit style sheet.
func NewHarnessWithSheet(t *testing.T, markup string, sheet *style.Sheet) *Harness {
	t.Helper()
	doc, err := dom.ParseString(markup, sheet)
	if err != nil {
		t.Fatalf("harness markup failed to parse: %v", err)
	}
	h := newHarness(doc)
	t.Cleanup(h.Cleanup)
	return h
}

func newHarness(doc *dom.Document) *Harness {
	motion.Reset()
	h := &Harness{
		doc:   doc,
		clock: NewFakeClock(),
	}
	h.prevClock = motion.SetClock(h.clock)
	return h
}

// Cleanup restores the motion clock and clears the loop's global queues.
func (h *Harness) Cleanup() {
	motion.SetClock(h.prevClock)
	motion.Reset()
}

// Document returns the hosted document.
func (h *Harness) Document() *dom.Document { return h.doc }

// Clock returns the fake clock for advancing time.
func (h *Harness) Clock() *FakeClock { return h.clock }

// Pump runs a single loop cycle: queued dispatches, one frame step, then
// due timers.
func (h *Harness) Pump() {
	motion.DrainDispatch()
	motion.StepFrame()
	motion.StepTimers()
}

// PumpFrames runs n loop cycles, advancing the clock by FrameDuration
// between cycles.
func (h *Harness) PumpFrames(n int) {
	for i := 0; i < n; i++ {
		h.Pump()
		h.clock.Advance(FrameDuration)
	}
	motion.StepTimers()
}

// Settle pumps until the loop is idle or the timeout is reached. Each
// cycle advances the fake clock by FrameDuration.
func (h *Harness) Settle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed <= timeout {
		h.Pump()
		if !motion.HasPendingWork() {
			return nil
		}
		h.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Click dispatches a click event on the element.
func (h *Harness) Click(el *dom.Element) {
	el.DispatchEvent(dom.NewEvent("click"))
}

// KeyPress dispatches a keydown event on the element and returns it, so
// callers can inspect DefaultPrevented.
func (h *Harness) KeyPress(el *dom.Element, key string) *dom.Event {
	e := dom.NewKeyEvent(key)
	el.DispatchEvent(e)
	return e
}
