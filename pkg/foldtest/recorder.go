package foldtest

import "github.com/go-fold/fold/pkg/dom"

// Recorder captures events observed on one element, in delivery order.
type Recorder struct {
	events  []*dom.Event
	removes []func()
}

// RecordEvents attaches listeners for the given event types on el and
// returns a recorder accumulating everything delivered there (including
// events bubbling up from descendants).
func RecordEvents(el *dom.Element, types ...string) *Recorder {
	r := &Recorder{}
	for _, eventType := range types {
		r.removes = append(r.removes, el.AddEventListener(eventType, func(e *dom.Event) {
			r.events = append(r.events, e)
		}))
	}
	return r
}

// Events returns the captured events in delivery order.
func (r *Recorder) Events() []*dom.Event { return r.events }

// Types returns just the captured event types, in delivery order.
func (r *Recorder) Types() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

// Clear discards captured events without detaching listeners.
func (r *Recorder) Clear() { r.events = nil }

// Stop detaches the recorder's listeners.
func (r *Recorder) Stop() {
	for _, remove := range r.removes {
		remove()
	}
	r.removes = nil
}
