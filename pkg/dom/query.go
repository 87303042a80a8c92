package dom

// QueryByClass returns every descendant of el (excluding el itself)
// carrying the class, in document order.
func (el *Element) QueryByClass(class string) []*Element {
	var out []*Element
	el.walkDescendants(func(e *Element) {
		if e.HasClass(class) {
			out = append(out, e)
		}
	})
	return out
}

// FirstByClass returns the first descendant carrying the class, or nil.
func (el *Element) FirstByClass(class string) *Element {
	for _, e := range el.QueryByClass(class) {
		return e
	}
	return nil
}

// QueryByAttr returns every descendant of el (excluding el itself) carrying
// the attribute, in document order.
func (el *Element) QueryByAttr(name string) []*Element {
	var out []*Element
	el.walkDescendants(func(e *Element) {
		if e.HasAttribute(name) {
			out = append(out, e)
		}
	})
	return out
}

// QueryByAttrIncludingSelf is QueryByAttr but considers el itself as well,
// which is what subtree re-scans need: an inserted subtree's own root may
// be a widget root.
func (el *Element) QueryByAttrIncludingSelf(name string) []*Element {
	var out []*Element
	if el.HasAttribute(name) {
		out = append(out, el)
	}
	out = append(out, el.QueryByAttr(name)...)
	return out
}

// ByID returns the descendant-or-self with the given id attribute, or nil.
func (el *Element) ByID(id string) *Element {
	if el.ID() == id {
		return el
	}
	var found *Element
	el.walkDescendants(func(e *Element) {
		if found == nil && e.ID() == id {
			found = e
		}
	})
	return found
}

// walkDescendants visits every descendant depth-first in document order.
func (el *Element) walkDescendants(visit func(*Element)) {
	for _, child := range el.children {
		visit(child)
		child.walkDescendants(visit)
	}
}
