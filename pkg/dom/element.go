package dom

import "strings"

// Element is one node in the retained markup tree.
type Element struct {
	tag      string
	doc      *Document
	parent   *Element
	children []*Element

	attrs   map[string]string
	classes []string
	styles  map[string]string
	hidden  bool

	// naturalHeight is the element's intrinsic content height, supplied by
	// the fixture markup (data-height) or set programmatically. It stands in
	// for the layout measurement a rendered page would perform.
	naturalHeight float64

	listeners      map[string]map[int]Listener
	nextListenerID int

	// Per-property style bookkeeping for the transition engine.
	styleFrames map[string]uint64
	pendingRuns map[string]*transitionRun
}

// Tag returns the element's tag name, lower-cased.
func (el *Element) Tag() string { return el.tag }

// Document returns the owning document.
func (el *Element) Document() *Document { return el.doc }

// Parent returns the parent element, or nil for a detached root.
func (el *Element) Parent() *Element { return el.parent }

// Children returns the child elements in document order. The returned slice
// is shared; callers must not mutate it.
func (el *Element) Children() []*Element { return el.children }

// AppendChild attaches child as the last child of el. If child already has
// a parent it is moved. Insertions into the connected tree are reported
// asynchronously to the document's mutation observers.
func (el *Element) AppendChild(child *Element) {
	if child == nil || child == el {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = el
	child.setDocument(el.doc)
	el.children = append(el.children, child)
	if el.doc != nil && el.IsConnected() {
		el.doc.notifyInserted(child)
	}
}

// RemoveChild detaches child from el. Unknown children are ignored.
func (el *Element) RemoveChild(child *Element) {
	for i, c := range el.children {
		if c == child {
			el.children = append(el.children[:i], el.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// IsConnected reports whether the element is attached to its document's root.
func (el *Element) IsConnected() bool {
	if el.doc == nil {
		return false
	}
	for node := el; node != nil; node = node.parent {
		if node == el.doc.root {
			return true
		}
	}
	return false
}

func (el *Element) setDocument(d *Document) {
	el.doc = d
	for _, c := range el.children {
		c.setDocument(d)
	}
}

// --- Attributes ---

// SetAttribute sets an attribute value.
func (el *Element) SetAttribute(name, value string) {
	if el.attrs == nil {
		el.attrs = make(map[string]string)
	}
	el.attrs[name] = value
}

// Attribute returns an attribute value and whether it is present.
func (el *Element) Attribute(name string) (string, bool) {
	v, ok := el.attrs[name]
	return v, ok
}

// HasAttribute reports whether the attribute is present.
func (el *Element) HasAttribute(name string) bool {
	_, ok := el.attrs[name]
	return ok
}

// RemoveAttribute deletes an attribute.
func (el *Element) RemoveAttribute(name string) {
	delete(el.attrs, name)
}

// ID returns the element's id attribute.
func (el *Element) ID() string {
	id := el.attrs["id"]
	return id
}

// SetID sets the element's id attribute.
func (el *Element) SetID(id string) { el.SetAttribute("id", id) }

// --- Classes ---

// AddClass appends a class if not already present.
func (el *Element) AddClass(class string) {
	if class == "" || el.HasClass(class) {
		return
	}
	el.classes = append(el.classes, class)
}

// RemoveClass removes a class if present.
func (el *Element) RemoveClass(class string) {
	for i, c := range el.classes {
		if c == class {
			el.classes = append(el.classes[:i], el.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the class is present.
func (el *Element) HasClass(class string) bool {
	for _, c := range el.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns the class list in declaration order. The returned slice
// is shared; callers must not mutate it.
func (el *Element) Classes() []string { return el.classes }

// ClassAttr returns the class list as a space-joined attribute value.
func (el *Element) ClassAttr() string { return strings.Join(el.classes, " ") }

// --- Visibility and measurement ---

// Hidden reports the hidden flag.
func (el *Element) Hidden() bool { return el.hidden }

// SetHidden sets the hidden flag. Hiding an element cancels any transition
// runs pending on it, the way removing a box from layout does.
func (el *Element) SetHidden(hidden bool) {
	if el.hidden == hidden {
		return
	}
	el.hidden = hidden
	if hidden {
		el.cancelTransitions()
	}
}

// ScrollHeight returns the element's natural content height, the value a
// rendered page would measure after unhiding the element.
func (el *Element) ScrollHeight() float64 { return el.naturalHeight }

// SetNaturalHeight sets the intrinsic content height used by ScrollHeight.
func (el *Element) SetNaturalHeight(h float64) { el.naturalHeight = h }

// --- Focus ---

// Focus makes this element the document's active element. Detached
// elements cannot take focus.
func (el *Element) Focus() {
	if el.doc == nil || !el.IsConnected() {
		return
	}
	el.doc.activeElement = el
}

// HasFocus reports whether this element is the document's active element.
func (el *Element) HasFocus() bool {
	return el.doc != nil && el.doc.activeElement == el
}

// --- Traversal helpers ---

// Contains reports whether other is el or a descendant of el.
func (el *Element) Contains(other *Element) bool {
	for node := other; node != nil; node = node.parent {
		if node == el {
			return true
		}
	}
	return false
}

// Closest walks from el up through its ancestors and returns the first
// element satisfying the predicate, or nil.
func (el *Element) Closest(match func(*Element) bool) *Element {
	for node := el; node != nil; node = node.parent {
		if match(node) {
			return node
		}
	}
	return nil
}

// ClosestClass returns the nearest ancestor-or-self carrying the class.
func (el *Element) ClosestClass(class string) *Element {
	return el.Closest(func(e *Element) bool { return e.HasClass(class) })
}
