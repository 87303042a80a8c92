package collapse

import (
	"sync"

	"github.com/go-fold/fold/pkg/dom"
)

// The registry is a process-wide side table associating at most one live
// widget with a root element. It exists only to prevent duplicate
// instantiation; it does not own the widgets it lists — lifetime is
// governed by explicit Destroy, not by registry presence.
//
// Element pointer identity is the stable key; nothing is ever attached to
// the externally-owned elements themselves.
var (
	registryMu sync.Mutex
	registry   = make(map[*dom.Element]*Widget)
)

// Lookup returns the widget registered for the root element, if any.
func Lookup(root *dom.Element) (*Widget, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	w, ok := registry[root]
	return w, ok
}

func register(root *dom.Element, w *Widget) {
	registryMu.Lock()
	registry[root] = w
	registryMu.Unlock()
}

func unregister(root *dom.Element) {
	registryMu.Lock()
	delete(registry, root)
	registryMu.Unlock()
}
