package collapse_test

import (
	"testing"
	"time"

	"github.com/go-fold/fold/pkg/collapse"
	"github.com/go-fold/fold/pkg/style"
)

func TestAnimatedOpenSequence(t *testing.T) {
	h, w := newAccordion(t, nil)
	content := w.ItemAt(0).Content()

	w.Open(0)

	// Synchronous portion: expanded, unhidden, starting style forced.
	if content.Hidden() {
		t.Fatal("content still hidden after open call")
	}
	if v, _ := content.Style("height"); v != "0px" {
		t.Fatalf("starting height = %q, want 0px", v)
	}
	if v, _ := content.Style("opacity"); v != "0" {
		t.Fatalf("starting opacity = %q, want 0", v)
	}

	// Next frame: target style applied, transition running.
	h.Pump()
	if v, _ := content.Style("height"); v != "140px" {
		t.Fatalf("target height = %q, want 140px", v)
	}
	if !content.TransitionPending("height") {
		t.Fatal("no transition run after target style applied")
	}
	if w.ItemAt(0).State() != collapse.StateOpening {
		t.Fatal("state should remain opening until the transition settles")
	}

	// Completion: inline sizing cleared, state terminal.
	h.Clock().Advance(style.DefaultDuration)
	h.Pump()
	if w.ItemAt(0).State() != collapse.StateOpen {
		t.Fatalf("state = %v after completion, want open", w.ItemAt(0).State())
	}
	if _, ok := content.Style("height"); ok {
		t.Error("inline height not cleared at completion")
	}
	if _, ok := content.Style("opacity"); ok {
		t.Error("inline opacity not cleared at completion")
	}
}

func TestAnimatedCloseSequence(t *testing.T) {
	h, w := newAccordion(t, nil)
	content := w.ItemAt(0).Content()
	w.OpenAnimated(0, false)

	w.Close(0)

	// Synchronous portion: collapsed for ARIA, but still visible.
	if content.Hidden() {
		t.Fatal("content hidden before the close transition settled")
	}
	if v, _ := content.Style("height"); v != "140px" {
		t.Fatalf("captured height = %q, want 140px", v)
	}

	h.Pump()
	if v, _ := content.Style("height"); v != "0px" {
		t.Fatalf("collapsing height = %q, want 0px", v)
	}

	h.Clock().Advance(style.DefaultDuration)
	h.Pump()
	if !content.Hidden() {
		t.Error("content not hidden after the close transition settled")
	}
	if w.ItemAt(0).State() != collapse.StateClosed {
		t.Errorf("state = %v, want closed", w.ItemAt(0).State())
	}
	if _, ok := content.Style("height"); ok {
		t.Error("inline height not cleared after close")
	}
}

// A close interrupted by a re-open must neither hide the pane nor snap its
// height: the stale close completion discards itself by generation token,
// and the re-open's own completion clears the inline sizing exactly once.
func TestFastReopenDiscardsStaleClose(t *testing.T) {
	h, w := newAccordion(t, nil)
	content := w.ItemAt(0).Content()
	w.OpenAnimated(0, false)

	w.Close(0)
	h.Pump() // collapse transition under way

	h.Clock().Advance(100 * time.Millisecond)
	w.Open(0) // re-open before the close settles

	if err := h.Settle(time.Second); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if w.ItemAt(0).State() != collapse.StateOpen {
		t.Fatalf("state = %v after re-open settled, want open", w.ItemAt(0).State())
	}
	if content.Hidden() {
		t.Error("stale close completion hid a re-opened pane")
	}
	if v, ok := content.Style("height"); ok {
		t.Errorf("inline height %q left behind after re-open settled", v)
	}
	if !expanded(w, 0) {
		t.Error("aria-expanded lost across the interrupted close")
	}
}

// The mirror case: an open interrupted by a close. The stale open
// completion must not clear the inline height the close just forced.
func TestFastCloseDiscardsStaleOpen(t *testing.T) {
	h, w := newAccordion(t, nil)
	content := w.ItemAt(0).Content()

	w.Open(0)
	h.Pump() // expand transition under way

	h.Clock().Advance(100 * time.Millisecond)
	w.Close(0) // close before the open settles

	if err := h.Settle(time.Second); err != nil {
		t.Fatalf("Settle: %v", err)
	}
	if w.ItemAt(0).State() != collapse.StateClosed {
		t.Fatalf("state = %v after interrupted open settled, want closed", w.ItemAt(0).State())
	}
	if !content.Hidden() {
		t.Error("pane not hidden after the close settled")
	}
	if expanded(w, 0) {
		t.Error("aria-expanded true after close")
	}
}

func TestZeroHeightContentCommitsImmediately(t *testing.T) {
	const page = `<html><body>
<div class="accordion" data-accordion>
  <div class="accordion__item">
    <button class="accordion__trigger"></button>
    <div class="accordion__content"></div>
  </div>
</div>
</body></html>`
	_, w := newWidget(t, page, collapse.Accordion(), nil)
	w.Open(0)
	if w.ItemAt(0).State() != collapse.StateOpen {
		t.Error("zero-height open should commit synchronously; nothing can animate")
	}
	w.Close(0)
	if w.ItemAt(0).State() != collapse.StateClosed {
		t.Error("zero-height close should commit synchronously")
	}
}

func TestAnimatedDisabledByOption(t *testing.T) {
	_, w := newAccordion(t, &collapse.Options{Animated: collapse.Bool(false)})
	w.Open(0)
	if w.ItemAt(0).State() != collapse.StateOpen {
		t.Error("open should commit synchronously with animation disabled")
	}
}

// Behaviors without native animation support commit after the declared
// fixed delay instead of waiting for a transition-completion notification.
func TestDisclosureFixedDelayCommit(t *testing.T) {
	h, w := newWidget(t, disclosurePage, collapse.Disclosure(), nil)
	content := w.ItemAt(0).Content()

	w.Open(0)
	h.Pump()
	if w.ItemAt(0).State() != collapse.StateOpening {
		t.Fatalf("state = %v, want opening until the delay elapses", w.ItemAt(0).State())
	}

	h.Clock().Advance(collapse.Disclosure().FallbackDelay)
	h.Pump()
	if w.ItemAt(0).State() != collapse.StateOpen {
		t.Fatalf("state = %v after fallback delay, want open", w.ItemAt(0).State())
	}
	if _, ok := content.Style("height"); ok {
		t.Error("inline height not cleared after fixed-delay commit")
	}
}

func TestDisclosureSingleItemResolution(t *testing.T) {
	_, w := newWidget(t, disclosurePage, collapse.Disclosure(), nil)
	if w.Len() != 1 {
		t.Fatalf("disclosure resolved %d items, want the root as the single item", w.Len())
	}
}
