package dom

import (
	"github.com/go-fold/fold/pkg/motion"
	"github.com/go-fold/fold/pkg/style"
)

// Document owns one element tree: a root with head and body children, the
// active (focused) element, the style sheet in effect, and the set of
// mutation observers watching for subtree insertions.
type Document struct {
	root *Element
	head *Element
	body *Element

	sheet *style.Sheet

	activeElement *Element

	observers      map[int]func(inserted *Element)
	nextObserverID int

	ready bool
}

// NewDocument creates an empty document with an html/head/body skeleton.
// A nil sheet falls back to style.Default().
func NewDocument(sheet *style.Sheet) *Document {
	if sheet == nil {
		sheet = style.Default()
	}
	d := &Document{sheet: sheet, ready: true}
	d.root = d.CreateElement("html")
	d.head = d.CreateElement("head")
	d.body = d.CreateElement("body")
	d.root.children = append(d.root.children, d.head, d.body)
	d.head.parent = d.root
	d.body.parent = d.root
	return d
}

// CreateElement returns a new detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{tag: tag, doc: d}
}

// Root returns the document's root element.
func (d *Document) Root() *Element { return d.root }

// Body returns the document's body element.
func (d *Document) Body() *Element { return d.body }

// Sheet returns the style sheet in effect.
func (d *Document) Sheet() *style.Sheet { return d.sheet }

// ActiveElement returns the currently focused element, or nil.
func (d *Document) ActiveElement() *Element { return d.activeElement }

// Ready reports whether the document is fully parsed. Auto-init defers its
// initial scan until this is true.
func (d *Document) Ready() bool { return d.ready }

// Observe registers a mutation observer covering child-list changes at any
// depth under the root. The callback receives the root of each inserted
// subtree and is delivered asynchronously through the motion dispatch
// queue, never inline with the mutation. Returns an unsubscribe function.
func (d *Document) Observe(fn func(inserted *Element)) func() {
	if d.observers == nil {
		d.observers = make(map[int]func(*Element))
	}
	id := d.nextObserverID
	d.nextObserverID++
	d.observers[id] = fn
	return func() {
		delete(d.observers, id)
	}
}

// notifyInserted queues observer callbacks for an inserted subtree root.
func (d *Document) notifyInserted(subtree *Element) {
	if len(d.observers) == 0 {
		return
	}
	for _, fn := range d.observers {
		observer := fn
		motion.Dispatch(func() {
			// The subtree may have been detached again before delivery;
			// observers see only what is still connected, matching the
			// delivered-at-callback-time view a mutation watch provides.
			if subtree.IsConnected() {
				observer(subtree)
			}
		})
	}
}
