package collapse

import "github.com/go-fold/fold/pkg/dom"

// handleKeydown routes key presses whose target is itself one of the
// widget's trigger elements. Movement keys consume the event; unmatched
// keys propagate normally.
//
//	ArrowDown / ArrowUp  next / previous trigger, wrapping circularly
//	Home / End           first / last trigger
//	Enter / Space        toggle the targeted item
//	Escape               close all open items
func (w *Widget) handleKeydown(e *dom.Event) {
	index := -1
	for _, it := range w.items {
		if it.trigger == e.Target {
			index = it.index
			break
		}
	}
	if index < 0 {
		return
	}
	count := len(w.items)

	switch e.Key {
	case "ArrowDown":
		w.focusTrigger((index + 1) % count)
		e.PreventDefault()
	case "ArrowUp":
		w.focusTrigger((index - 1 + count) % count)
		e.PreventDefault()
	case "Home":
		w.focusTrigger(0)
		e.PreventDefault()
	case "End":
		w.focusTrigger(count - 1)
		e.PreventDefault()
	case "Enter", " ":
		w.Toggle(index)
	case "Escape":
		w.closeOpenItems(true)
	}
}

func (w *Widget) focusTrigger(index int) {
	if it := w.ItemAt(index); it != nil {
		it.trigger.Focus()
	}
}
