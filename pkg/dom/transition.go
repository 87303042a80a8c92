package dom

import (
	"github.com/go-fold/fold/pkg/motion"
)

// TransitionEnd is the event type delivered when a transition run completes.
const TransitionEnd = "transitionend"

// transitionRun tracks one in-flight property transition on an element.
// A later change to the same property replaces the run; replaced runs never
// deliver a completion event.
type transitionRun struct {
	timer *motion.Timer
}

// SetStyle sets an inline-style property. A change to a property covered by
// a matching transition rule animates if the element is visible, connected,
// and the property was last set in an earlier frame; the style engine then
// delivers a bubbling transitionend event for it after the rule's duration.
// Setting the property again before completion replaces the pending run.
func (el *Element) SetStyle(property, value string) {
	old, hadOld := el.style(property)
	if hadOld && old == value {
		return
	}
	if el.styles == nil {
		el.styles = make(map[string]string)
	}
	el.styles[property] = value

	el.maybeTransition(property, hadOld)

	if el.styleFrames == nil {
		el.styleFrames = make(map[string]uint64)
	}
	el.styleFrames[property] = motion.FrameCount()
}

// Style returns an inline-style property value and whether it is set.
func (el *Element) Style(property string) (string, bool) {
	return el.style(property)
}

func (el *Element) style(property string) (string, bool) {
	v, ok := el.styles[property]
	return v, ok
}

// RemoveStyle clears an inline-style property, reverting the element to its
// natural sizing for that property. Clearing never animates and cancels any
// pending run on the property.
func (el *Element) RemoveStyle(property string) {
	delete(el.styles, property)
	delete(el.styleFrames, property)
	el.cancelTransition(property)
}

// TransitionPending reports whether a transition run is in flight for the
// property.
func (el *Element) TransitionPending(property string) bool {
	_, ok := el.pendingRuns[property]
	return ok
}

func (el *Element) maybeTransition(property string, hadOld bool) {
	// Whatever happens next, a value change invalidates the old run.
	el.cancelTransition(property)

	if el.doc == nil || el.hidden || !el.IsConnected() {
		return
	}
	// Only a change that crosses a frame boundary animates. A first-time
	// set, or an overwrite within the same frame, commits instantly.
	if !hadOld || el.styleFrames[property] >= motion.FrameCount() {
		return
	}
	duration, ok := el.doc.sheet.TransitionFor(el.classes, property)
	if !ok || duration <= 0 {
		return
	}

	run := &transitionRun{}
	if el.pendingRuns == nil {
		el.pendingRuns = make(map[string]*transitionRun)
	}
	el.pendingRuns[property] = run
	run.timer = motion.After(duration, func() {
		if el.pendingRuns[property] != run {
			return
		}
		delete(el.pendingRuns, property)
		e := NewEvent(TransitionEnd)
		e.Cancelable = false
		e.Property = property
		el.DispatchEvent(e)
	})
}

func (el *Element) cancelTransition(property string) {
	if run, ok := el.pendingRuns[property]; ok {
		run.timer.Stop()
		delete(el.pendingRuns, property)
	}
}

func (el *Element) cancelTransitions() {
	for property, run := range el.pendingRuns {
		run.timer.Stop()
		delete(el.pendingRuns, property)
	}
}
