package collapse

import (
	"sync"

	"github.com/go-fold/fold/pkg/dom"
	"github.com/go-fold/fold/pkg/errors"
)

// Scan constructs a widget for every element in scope (including scope
// itself) that carries the behavior's activation attribute and does not
// already hold a registry entry. Returns the newly constructed widgets.
func Scan(scope *dom.Element, b Behavior, opts *Options) []*Widget {
	if scope == nil {
		return nil
	}
	var out []*Widget
	for _, root := range scope.QueryByAttrIncludingSelf(b.ActivationAttr) {
		if _, ok := Lookup(root); ok {
			continue
		}
		w, err := NewWidget(root, b, opts)
		if err != nil {
			if fe, ok := err.(*errors.FoldError); ok {
				errors.Report(fe)
			}
			continue
		}
		out = append(out, w)
	}
	return out
}

// The standing mutation watch is process-wide state with an explicit
// one-time install guard per document and behavior, plus a teardown hook
// for tests. It is never started implicitly as a side effect of widget
// construction, only by AutoInit.
type watchKey struct {
	doc  *dom.Document
	attr string
}

var (
	watchMu sync.Mutex
	watches = make(map[watchKey]func())
)

// AutoInit scans the document's body for the behavior's markup and installs
// a standing mutation watch that re-scans each subtree inserted later, so
// matching markup added after initial load acquires a widget without
// further action. The watch is installed at most once per document and
// behavior, and only once the document body exists; repeated calls only
// re-scan. Returns the widgets constructed by the initial scan.
func AutoInit(d *dom.Document, b Behavior, opts *Options) []*Widget {
	if d == nil || d.Body() == nil || !d.Ready() {
		return nil
	}
	widgets := Scan(d.Body(), b, opts)

	key := watchKey{doc: d, attr: b.ActivationAttr}
	watchMu.Lock()
	defer watchMu.Unlock()
	if _, installed := watches[key]; installed {
		return widgets
	}
	watches[key] = d.Observe(func(inserted *dom.Element) {
		Scan(inserted, b, opts)
	})
	return widgets
}

// ResetWatches tears down every standing mutation watch. Test cleanup and
// full-page teardown only; live widgets are not destroyed.
func ResetWatches() {
	watchMu.Lock()
	defer watchMu.Unlock()
	for key, remove := range watches {
		remove()
		delete(watches, key)
	}
}
