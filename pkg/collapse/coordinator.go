package collapse

import (
	"strconv"
	"strings"

	"github.com/go-fold/fold/pkg/dom"
	"github.com/go-fold/fold/pkg/motion"
	"github.com/go-fold/fold/pkg/style"
)

// The transition coordinator drives the visual open/close animation for one
// item. The synchronous portion of every path flips ARIA and class state
// completely before the first suspension point; the asynchronous portion
// only ever touches inline styles, the hidden flag, and the item's state
// field, and is guarded by the generation token captured at start.

// beginOpen flips the item to expanded and starts (or immediately commits)
// the expand animation. Callers emit events; this does not.
func (w *Widget) beginOpen(it *Item, animate bool) {
	it.generation++
	gen := it.generation
	content := it.content

	// Synchronous portion: expanded state is observable before any frame.
	it.state = StateOpening
	it.trigger.SetAttribute("aria-expanded", "true")
	it.item.AddClass(style.ClassActive)
	content.SetHidden(false)
	content.SetAttribute("aria-hidden", "false")

	if !animate {
		w.commitOpen(it)
		return
	}

	// Unhidden is necessary before measuring; a zero measurement means
	// there is nothing to animate.
	target := content.ScrollHeight()
	if target <= 0 {
		w.commitOpen(it)
		return
	}

	content.SetStyle("height", "0px")
	content.SetStyle("opacity", "0")
	motion.RequestFrame(func() {
		if it.generation != gen {
			return
		}
		content.SetStyle("height", px(target))
		content.SetStyle("opacity", "1")
		w.onSettle(it, gen, func() {
			w.commitOpen(it)
		})
	})
}

// commitOpen commits the terminal open state: inline sizing cleared so the
// pane reverts to natural, responsive sizing.
func (w *Widget) commitOpen(it *Item) {
	it.state = StateOpen
	it.content.RemoveStyle("height")
	it.content.RemoveStyle("opacity")
}

// beginClose mirrors beginOpen: collapse from the current height to zero,
// committing hidden only once the transition settles.
func (w *Widget) beginClose(it *Item, animate bool) {
	it.generation++
	gen := it.generation
	content := it.content

	it.state = StateClosing
	it.trigger.SetAttribute("aria-expanded", "false")
	it.item.RemoveClass(style.ClassActive)
	content.SetAttribute("aria-hidden", "true")

	if !animate {
		w.commitClose(it)
		return
	}

	start := currentHeight(content)
	if start <= 0 {
		w.commitClose(it)
		return
	}

	content.SetStyle("height", px(start))
	motion.RequestFrame(func() {
		if it.generation != gen {
			return
		}
		content.SetStyle("height", "0px")
		content.SetStyle("opacity", "0")
		w.onSettle(it, gen, func() {
			// Second guard kept from the original behavior alongside the
			// token: never hide a pane whose trigger has re-expanded.
			if v, _ := it.trigger.Attribute("aria-expanded"); v != "false" {
				return
			}
			w.commitClose(it)
		})
	})
}

// commitClose commits the terminal closed state.
func (w *Widget) commitClose(it *Item) {
	it.state = StateClosed
	it.content.SetHidden(true)
	it.content.RemoveStyle("height")
	it.content.RemoveStyle("opacity")
}

// onSettle arranges for commit to run when the in-flight transition
// settles: a one-shot transition-completion listener for behaviors with
// native animation support, a fixed-delay timer otherwise. Either way the
// commit is discarded if the item's generation has moved past gen, and the
// pending listener or timer is released on Destroy.
func (w *Widget) onSettle(it *Item, gen uint64, commit func()) {
	if !w.behavior.AnimationSupported {
		delay := w.behavior.FallbackDelay
		if delay <= 0 {
			delay = style.DefaultDuration
		}
		var id int
		timer := motion.After(delay, func() {
			w.dropCleanup(id)
			if it.generation == gen {
				commit()
			}
		})
		id = w.addCleanup(timer.Stop)
		return
	}

	var id int
	var remove func()
	remove = it.content.AddEventListener(dom.TransitionEnd, func(e *dom.Event) {
		if e.Target != it.content || e.Property != "height" {
			return
		}
		remove()
		w.dropCleanup(id)
		if it.generation == gen {
			commit()
		}
	})
	id = w.addCleanup(remove)
}

// currentHeight returns the pane's explicit inline height if one is in
// effect (an interrupted expand), otherwise its natural height.
func currentHeight(el *dom.Element) float64 {
	if v, ok := el.Style("height"); ok {
		return parsePx(v)
	}
	return el.ScrollHeight()
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func parsePx(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return 0
	}
	return f
}
