package collapse

import (
	"fmt"

	"github.com/go-fold/fold/pkg/dom"
)

// OpenState is the per-item transition state machine:
//
//	          Open(i)                    transition end
//	Closed ───────────► Opening ──────────────────────► Open
//	   ▲                                                  │
//	   │        transition end                  Close(i)  │
//	   └────────────────────────── Closing ◄──────────────┘
//
// ARIA expanded state flips at the moment a transition starts (Closed→
// Opening, Open→Closing); the hidden flag commits only at the boundaries
// into and out of Closed.
type OpenState int

const (
	// StateClosed means the content pane is hidden.
	StateClosed OpenState = iota
	// StateOpening means the expand transition is in flight.
	StateOpening
	// StateOpen means the content pane is fully visible.
	StateOpen
	// StateClosing means the collapse transition is in flight.
	StateClosing
)

func (s OpenState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpening:
		return "opening"
	case StateOpen:
		return "open"
	case StateClosing:
		return "closing"
	default:
		return fmt.Sprintf("OpenState(%d)", int(s))
	}
}

// Item is one collapsible trigger/content pair managed by a widget. The
// element references are non-owning; the page owns the tree.
type Item struct {
	index   int
	item    *dom.Element
	trigger *dom.Element
	content *dom.Element

	state OpenState

	// generation increases every time a new transition run starts for this
	// item. Deferred completion handlers capture the value at start and
	// discard themselves if the item has moved on, so a stale "clear inline
	// height" or "commit hidden" step can never land on a newer run.
	generation uint64
}

// Index returns the item's position, stable for the widget's lifetime.
func (it *Item) Index() int { return it.index }

// Trigger returns the item's trigger element.
func (it *Item) Trigger() *dom.Element { return it.trigger }

// Content returns the item's content pane.
func (it *Item) Content() *dom.Element { return it.content }

// State returns the item's current open state.
func (it *Item) State() OpenState { return it.state }

// expanded reports whether the item counts as expanded for ARIA purposes.
func (it *Item) expanded() bool {
	return it.state == StateOpening || it.state == StateOpen
}
