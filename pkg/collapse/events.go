package collapse

import "github.com/go-fold/fold/pkg/dom"

// Event names emitted by a widget, namespaced by the behavior's event
// namespace at dispatch time ("accordion:opened").
const (
	EventInitialized = "initialized"
	EventOpened      = "opened"
	EventClosed      = "closed"
	EventEnabled     = "enabled"
	EventDisabled    = "disabled"
	EventDestroyed   = "destroyed"
)

// EventDetail is the payload carried by every widget event.
type EventDetail struct {
	// Widget is the emitting instance.
	Widget *Widget
	// Index is the affected item's index, or -1 for widget-level events.
	Index int
	// Content is the affected item's content pane, or nil for widget-level
	// events.
	Content *dom.Element
}

// EventType returns the namespaced event type a behavior emits for the
// given name, for use by listeners: EventType(Accordion(), EventOpened)
// yields "accordion:opened".
func EventType(b Behavior, name string) string {
	return b.namespace() + ":" + name
}

// emit dispatches a bubbling, cancelable widget event from the root.
func (w *Widget) emit(name string, it *Item) {
	detail := &EventDetail{Widget: w, Index: -1}
	if it != nil {
		detail.Index = it.index
		detail.Content = it.content
	}
	w.root.DispatchEvent(dom.NewCustomEvent(EventType(w.behavior, name), detail))
}
