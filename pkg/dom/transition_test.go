package dom

import (
	"sync"
	"testing"
	"time"

	"github.com/go-fold/fold/pkg/motion"
	"github.com/go-fold/fold/pkg/style"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// newTransitionFixture returns a connected content element covered by a
// 300ms height/opacity rule, plus a controllable clock.
func newTransitionFixture(t *testing.T) (*Element, *fakeClock) {
	t.Helper()
	clk := newFakeClock()
	prev := motion.SetClock(clk)
	t.Cleanup(func() {
		motion.SetClock(prev)
		motion.Reset()
	})
	motion.Reset()

	d := NewDocument(style.Default())
	el := d.CreateElement("div")
	el.AddClass("accordion__content")
	el.SetNaturalHeight(140)
	d.Body().AppendChild(el)
	return el, clk
}

func pump(clk *fakeClock, d time.Duration) {
	motion.DrainDispatch()
	motion.StepFrame()
	clk.Advance(d)
	motion.StepTimers()
}

func TestFirstStyleSetDoesNotAnimate(t *testing.T) {
	el, _ := newTransitionFixture(t)
	el.SetStyle("height", "0px")
	if el.TransitionPending("height") {
		t.Error("initial set started a transition")
	}
}

func TestSameFrameOverwriteDoesNotAnimate(t *testing.T) {
	el, _ := newTransitionFixture(t)
	el.SetStyle("height", "0px")
	el.SetStyle("height", "140px")
	if el.TransitionPending("height") {
		t.Error("same-frame overwrite started a transition")
	}
}

func TestFrameCrossingChangeAnimates(t *testing.T) {
	el, clk := newTransitionFixture(t)
	el.SetStyle("height", "0px")
	motion.StepFrame()
	el.SetStyle("height", "140px")
	if !el.TransitionPending("height") {
		t.Fatal("frame-crossing change did not start a transition")
	}

	var completed []string
	el.AddEventListener(TransitionEnd, func(e *Event) {
		completed = append(completed, e.Property)
	})

	clk.Advance(299 * time.Millisecond)
	motion.StepTimers()
	if len(completed) != 0 {
		t.Fatal("transitionend fired before the declared duration")
	}

	clk.Advance(time.Millisecond)
	motion.StepTimers()
	if len(completed) != 1 || completed[0] != "height" {
		t.Fatalf("transitionend = %v, want one height completion", completed)
	}
	if el.TransitionPending("height") {
		t.Error("run still pending after completion")
	}
}

func TestTransitionEndBubbles(t *testing.T) {
	el, clk := newTransitionFixture(t)
	saw := false
	el.Document().Body().AddEventListener(TransitionEnd, func(e *Event) { saw = true })

	el.SetStyle("height", "0px")
	motion.StepFrame()
	el.SetStyle("height", "140px")
	clk.Advance(time.Second)
	motion.StepTimers()
	if !saw {
		t.Error("transitionend did not bubble to the body")
	}
}

func TestReplacedRunNeverCompletes(t *testing.T) {
	el, clk := newTransitionFixture(t)
	el.SetStyle("height", "140px")
	motion.StepFrame()
	el.SetStyle("height", "0px") // close starts

	count := 0
	el.AddEventListener(TransitionEnd, func(e *Event) { count++ })

	// Re-open before the close run completes.
	clk.Advance(100 * time.Millisecond)
	motion.StepFrame()
	el.SetStyle("height", "140px")

	clk.Advance(time.Second)
	motion.StepTimers()
	if count != 1 {
		t.Errorf("got %d transitionend events, want 1 (replaced run must not complete)", count)
	}
}

func TestRemoveStyleCancelsRun(t *testing.T) {
	el, clk := newTransitionFixture(t)
	el.SetStyle("height", "0px")
	motion.StepFrame()
	el.SetStyle("height", "140px")
	el.RemoveStyle("height")
	if el.TransitionPending("height") {
		t.Fatal("run survived RemoveStyle")
	}
	fired := false
	el.AddEventListener(TransitionEnd, func(e *Event) { fired = true })
	clk.Advance(time.Second)
	motion.StepTimers()
	if fired {
		t.Error("cancelled run still completed")
	}
}

func TestHidingCancelsRuns(t *testing.T) {
	el, clk := newTransitionFixture(t)
	el.SetStyle("height", "140px")
	motion.StepFrame()
	el.SetStyle("height", "0px")
	el.SetHidden(true)
	if el.TransitionPending("height") {
		t.Fatal("run survived hiding")
	}
	fired := false
	el.AddEventListener(TransitionEnd, func(e *Event) { fired = true })
	clk.Advance(time.Second)
	motion.StepTimers()
	if fired {
		t.Error("cancelled run still completed")
	}
}

func TestHiddenElementDoesNotAnimate(t *testing.T) {
	el, _ := newTransitionFixture(t)
	el.SetHidden(true)
	el.SetStyle("height", "0px")
	motion.StepFrame()
	el.SetStyle("height", "140px")
	if el.TransitionPending("height") {
		t.Error("hidden element started a transition")
	}
}

func TestUncoveredPropertyDoesNotAnimate(t *testing.T) {
	el, _ := newTransitionFixture(t)
	el.SetStyle("margin", "0px")
	motion.StepFrame()
	el.SetStyle("margin", "8px")
	if el.TransitionPending("margin") {
		t.Error("property outside the sheet's rules started a transition")
	}
}

func TestMutationObserverDeliversAsynchronously(t *testing.T) {
	_, clk := newTransitionFixture(t)
	d := NewDocument(nil)

	var inserted []*Element
	d.Observe(func(subtree *Element) { inserted = append(inserted, subtree) })

	el := d.CreateElement("div")
	d.Body().AppendChild(el)
	if len(inserted) != 0 {
		t.Fatal("observer ran inline with the mutation")
	}
	pump(clk, 0)
	if len(inserted) != 1 || inserted[0] != el {
		t.Fatalf("observer saw %d insertions, want the appended element", len(inserted))
	}
}

func TestMutationObserverUnsubscribe(t *testing.T) {
	_, clk := newTransitionFixture(t)
	d := NewDocument(nil)
	count := 0
	remove := d.Observe(func(subtree *Element) { count++ })
	remove()
	d.Body().AppendChild(d.CreateElement("div"))
	pump(clk, 0)
	if count != 0 {
		t.Error("observer ran after unsubscribe")
	}
}

func TestDetachedInsertDoesNotNotify(t *testing.T) {
	_, clk := newTransitionFixture(t)
	d := NewDocument(nil)
	count := 0
	d.Observe(func(subtree *Element) { count++ })

	parent := d.CreateElement("div")
	parent.AppendChild(d.CreateElement("span")) // parent is detached
	pump(clk, 0)
	if count != 0 {
		t.Error("observer notified for a detached insert")
	}
}
