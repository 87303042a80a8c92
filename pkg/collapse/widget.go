package collapse

import (
	stderrors "errors"

	"github.com/google/uuid"

	"github.com/go-fold/fold/pkg/dom"
	"github.com/go-fold/fold/pkg/errors"
	"github.com/go-fold/fold/pkg/style"
)

// Widget is one live collapsible-panel instance bound to a root element.
// It owns its configuration, per-item state, and listener registrations;
// it holds only non-owning references into the page's element tree and
// mutates nothing outside its root's subtree (except the optional
// document-level outside-click listener it registers and releases itself).
type Widget struct {
	root     *dom.Element
	behavior Behavior
	config   Config
	items    []*Item

	disabled  bool
	destroyed bool

	cleanups      map[int]func()
	nextCleanupID int
}

// NewWidget constructs a widget on root with the given behavior. A nil
// root fails with a configuration error before any DOM mutation; no
// partial instance is left registered.
//
// Construction resolves the item set once — items inserted later need a
// fresh root-level scan, not this instance. Callers are expected to check
// [Lookup] before constructing on a root that may already hold a widget;
// construction itself does not re-check.
func NewWidget(root *dom.Element, b Behavior, opts *Options) (*Widget, error) {
	const op = "collapse.NewWidget"
	if root == nil {
		return nil, &errors.FoldError{
			Op:     op,
			Kind:   errors.KindConfiguration,
			Err:    stderrors.New("root element is nil"),
			Widget: b.namespace(),
		}
	}

	w := &Widget{
		root:     root,
		behavior: b,
		config:   configFor(b, root, opts),
		cleanups: make(map[int]func()),
	}

	for i, parts := range resolveItems(root, b) {
		it := &Item{
			index:   i,
			item:    parts.item,
			trigger: parts.trigger,
			content: parts.content,
		}
		w.wireItem(it)
		w.items = append(w.items, it)
	}

	w.addCleanup(root.AddEventListener("click", w.handleClick))
	if w.config.Keyboard {
		w.addCleanup(root.AddEventListener("keydown", w.handleKeydown))
	}
	if w.config.CloseOnOutsideClick && root.Document() != nil {
		docRoot := root.Document().Root()
		w.addCleanup(docRoot.AddEventListener("click", func(e *dom.Event) {
			if !w.root.Contains(e.Target) {
				w.closeOpenItems(true)
			}
		}))
	}

	register(root, w)
	w.emit(EventInitialized, nil)
	return w, nil
}

// wireItem assigns the content pane a stable id if the markup carries
// none, links the trigger to it, and applies the item's initial state from
// the markup without animation or events.
func (w *Widget) wireItem(it *Item) {
	id := it.content.ID()
	if id == "" {
		id = w.behavior.Name + "-panel-" + uuid.NewString()
		it.content.SetID(id)
	}
	it.trigger.SetAttribute("aria-controls", id)

	expanded, _ := it.trigger.Attribute("aria-expanded")
	if it.item.HasClass(style.ClassActive) || expanded == "true" {
		w.beginOpen(it, false)
	} else {
		w.beginClose(it, false)
	}
}

// Root returns the widget's root element.
func (w *Widget) Root() *dom.Element { return w.root }

// Behavior returns the widget's capability record.
func (w *Widget) Behavior() Behavior { return w.behavior }

// Config returns the effective configuration.
func (w *Widget) Config() Config { return w.config }

// Len returns the number of managed items.
func (w *Widget) Len() int { return len(w.items) }

// ItemAt returns the item at index, or nil if out of range.
func (w *Widget) ItemAt(index int) *Item {
	if index < 0 || index >= len(w.items) {
		return nil
	}
	return w.items[index]
}

// IsOpen reports whether the item at index is expanded. Out-of-range
// indices report false.
func (w *Widget) IsOpen(index int) bool {
	it := w.ItemAt(index)
	return it != nil && it.expanded()
}

// Disabled reports whether the widget is disabled.
func (w *Widget) Disabled() bool { return w.disabled }

// Open expands the item at index with animation.
func (w *Widget) Open(index int) { w.OpenAnimated(index, true) }

// OpenAnimated expands the item at index. Out-of-range indices and items
// already expanded are silently ignored, as is any open while the widget
// is disabled. Under single-open policy every other open item is closed
// first, synchronously, with the same animate flag; their closed events
// fire before this item's opened event.
func (w *Widget) OpenAnimated(index int, animate bool) {
	const op = "collapse.Open"
	if w.disabled {
		errors.ReportIgnored(op, w.behavior.namespace(), "widget disabled")
		return
	}
	it := w.ItemAt(index)
	if it == nil {
		errors.ReportIgnored(op, w.behavior.namespace(), "index out of range")
		return
	}
	if it.expanded() {
		return
	}
	animate = animate && w.config.Animated

	if !w.config.AllowMultiple {
		w.cascadeClose(it, animate)
	}
	w.beginOpen(it, animate)
	w.emit(EventOpened, it)
}

// Close collapses the item at index with animation.
func (w *Widget) Close(index int) { w.CloseAnimated(index, true) }

// CloseAnimated collapses the item at index. Out-of-range indices and
// items already collapsed are silently ignored.
//
// Close is deliberately not restricted while the widget is disabled: the
// original behavior only gates Open, and that asymmetry is preserved here
// rather than silently fixed, so a disabled widget can still be collapsed
// programmatically.
func (w *Widget) CloseAnimated(index int, animate bool) {
	const op = "collapse.Close"
	it := w.ItemAt(index)
	if it == nil {
		errors.ReportIgnored(op, w.behavior.namespace(), "index out of range")
		return
	}
	if !it.expanded() {
		return
	}
	w.beginClose(it, animate && w.config.Animated)
	w.emit(EventClosed, it)
}

// Toggle expands or collapses the item at index based on the trigger's
// current aria-expanded attribute.
func (w *Widget) Toggle(index int) {
	it := w.ItemAt(index)
	if it == nil {
		errors.ReportIgnored("collapse.Toggle", w.behavior.namespace(), "index out of range")
		return
	}
	if v, _ := it.trigger.Attribute("aria-expanded"); v == "true" {
		w.CloseAnimated(index, true)
	} else {
		w.OpenAnimated(index, true)
	}
}

// Enable clears the disabled flag and state class and emits enabled.
func (w *Widget) Enable() {
	if !w.disabled {
		return
	}
	w.disabled = false
	w.root.RemoveClass(style.ClassDisabled)
	w.emit(EventEnabled, nil)
}

// Disable sets the disabled flag and state class and emits disabled.
// While disabled, Open is refused; Close is not (see CloseAnimated).
func (w *Widget) Disable() {
	if w.disabled {
		return
	}
	w.disabled = true
	w.root.AddClass(style.ClassDisabled)
	w.emit(EventDisabled, nil)
}

// Destroy releases every listener the widget registered (including pending
// transition-completion listeners and fallback timers) and clears the
// registry entry for its root. Current DOM visual state is left as is. A
// subsequent scan treats the root as fresh markup.
func (w *Widget) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	for id, cleanup := range w.cleanups {
		delete(w.cleanups, id)
		cleanup()
	}
	unregister(w.root)
	w.emit(EventDestroyed, nil)
}

// cascadeClose closes every expanded item other than keep.
func (w *Widget) cascadeClose(keep *Item, animate bool) {
	for _, other := range w.items {
		if other == keep || !other.expanded() {
			continue
		}
		w.beginClose(other, animate)
		w.emit(EventClosed, other)
	}
}

// closeOpenItems collapses every expanded item, emitting closed for each.
func (w *Widget) closeOpenItems(animate bool) {
	for _, it := range w.items {
		if it.expanded() {
			w.CloseAnimated(it.index, animate)
		}
	}
}

// handleClick routes clicks inside the root: a click on (or inside) a
// trigger toggles its item; a click on a close button collapses the item
// whose content pane holds it.
func (w *Widget) handleClick(e *dom.Event) {
	triggerClass := w.behavior.triggerClass()
	if trigger := e.Target.ClosestClass(triggerClass); trigger != nil {
		for _, it := range w.items {
			if it.trigger == trigger {
				w.Toggle(it.index)
				return
			}
		}
		return
	}
	if closeEl := e.Target.ClosestClass(w.behavior.closeClass()); closeEl != nil {
		for _, it := range w.items {
			if it.content.Contains(closeEl) {
				w.CloseAnimated(it.index, true)
				return
			}
		}
	}
}

func (w *Widget) addCleanup(fn func()) int {
	id := w.nextCleanupID
	w.nextCleanupID++
	w.cleanups[id] = fn
	return id
}

func (w *Widget) dropCleanup(id int) {
	delete(w.cleanups, id)
}
