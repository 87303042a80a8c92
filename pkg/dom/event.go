package dom

import (
	"github.com/go-fold/fold/pkg/errors"
)

// Event is a notification dispatched through the element tree. Events
// propagate from the target element up through its ancestors when Bubbles
// is set, matching the upward bubbling phase of the host page model.
type Event struct {
	// Type is the event name, e.g. "click" or "accordion:opened".
	Type string
	// Target is the element the event was dispatched on.
	Target *Element
	// CurrentTarget is the element whose listener is currently running.
	CurrentTarget *Element
	// Key carries the key name for keyboard events.
	Key string
	// Property carries the property name for transitionend events.
	Property string
	// Detail carries an arbitrary payload for custom events.
	Detail any
	// Bubbles controls upward propagation.
	Bubbles bool
	// Cancelable controls whether PreventDefault has effect.
	Cancelable bool

	defaultPrevented bool
	stopped          bool
}

// NewEvent returns a bubbling, cancelable event of the given type, the
// shape user-interaction events (click, keydown) take.
func NewEvent(eventType string) *Event {
	return &Event{Type: eventType, Bubbles: true, Cancelable: true}
}

// NewKeyEvent returns a bubbling, cancelable keyboard event.
func NewKeyEvent(key string) *Event {
	e := NewEvent("keydown")
	e.Key = key
	return e
}

// NewCustomEvent returns a bubbling, cancelable event carrying a payload.
func NewCustomEvent(eventType string, detail any) *Event {
	e := NewEvent(eventType)
	e.Detail = detail
	return e
}

// PreventDefault marks the event's default action as suppressed.
// It has no effect on non-cancelable events.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// StopPropagation prevents the event from reaching further elements.
// Listeners already collected for the current element still run.
func (e *Event) StopPropagation() { e.stopped = true }

// Listener handles a dispatched event.
type Listener func(*Event)

// AddEventListener registers a listener for the given event type.
// Returns an unsubscribe function.
func (el *Element) AddEventListener(eventType string, fn Listener) func() {
	if el.listeners == nil {
		el.listeners = make(map[string]map[int]Listener)
	}
	byID := el.listeners[eventType]
	if byID == nil {
		byID = make(map[int]Listener)
		el.listeners[eventType] = byID
	}
	id := el.nextListenerID
	el.nextListenerID++
	byID[id] = fn
	return func() {
		delete(byID, id)
	}
}

// DispatchEvent delivers the event to the element's listeners and, if the
// event bubbles, to each ancestor in turn. It returns false if any listener
// called PreventDefault on a cancelable event.
//
// A listener panic is recovered and reported; remaining listeners still run.
func (el *Element) DispatchEvent(e *Event) bool {
	e.Target = el
	for node := el; node != nil; node = node.parent {
		e.CurrentTarget = node
		node.invokeListeners(e)
		if !e.Bubbles || e.stopped {
			break
		}
	}
	return !e.defaultPrevented
}

func (el *Element) invokeListeners(e *Event) {
	byID := el.listeners[e.Type]
	if len(byID) == 0 {
		return
	}
	// Snapshot so listeners can unsubscribe themselves (one-shot handlers)
	// without corrupting iteration.
	ids := make([]int, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sortInts(ids)
	for _, id := range ids {
		fn, ok := byID[id]
		if !ok {
			continue
		}
		safeInvoke(fn, e)
		if e.stopped {
			return
		}
	}
}

func safeInvoke(fn Listener, e *Event) {
	defer errors.Recover("dom.DispatchEvent")
	fn(e)
}

// sortInts keeps listener invocation in registration order.
func sortInts(ids []int) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
}
