package collapse_test

import (
	"testing"

	"github.com/go-fold/fold/pkg/collapse"
	"github.com/go-fold/fold/pkg/foldtest"
)

func TestScanConstructsEveryMatchingRoot(t *testing.T) {
	h := foldtest.NewHarness(t, `<html><body>
<div class="accordion" data-accordion>
  <div class="accordion__item">
    <button class="accordion__trigger"></button>
    <div class="accordion__content"></div>
  </div>
</div>
<div class="accordion" data-accordion>
  <div class="accordion__item">
    <button class="accordion__trigger"></button>
    <div class="accordion__content"></div>
  </div>
</div>
<div class="plain"></div>
</body></html>`)
	t.Cleanup(collapse.ResetWatches)

	widgets := collapse.Scan(h.Document().Body(), collapse.Accordion(), nil)
	if len(widgets) != 2 {
		t.Fatalf("scan constructed %d widgets, want 2", len(widgets))
	}
	for i, w := range widgets {
		if got, ok := collapse.Lookup(w.Root()); !ok || got != w {
			t.Errorf("widget %d not registered for its root", i)
		}
	}
}

func TestScanSkipsRegisteredRoots(t *testing.T) {
	h, w := newAccordion(t, nil)

	again := collapse.Scan(h.Document().Body(), collapse.Accordion(), nil)
	if len(again) != 0 {
		t.Fatalf("re-scan constructed %d widgets over a registered root, want 0", len(again))
	}
	if got, _ := collapse.Lookup(w.Root()); got != w {
		t.Error("re-scan displaced the registered widget")
	}
}

func TestScanMatchesScopeItself(t *testing.T) {
	h := foldtest.NewHarness(t, accordionPage)
	t.Cleanup(collapse.ResetWatches)

	root := h.Document().Body().QueryByAttr("data-accordion")[0]
	widgets := collapse.Scan(root, collapse.Accordion(), nil)
	if len(widgets) != 1 {
		t.Fatalf("scanning the root element itself constructed %d widgets, want 1", len(widgets))
	}
}

// Markup inserted after initial load must acquire a widget without further
// action: the standing mutation watch re-scans each inserted subtree.
func TestAutoInitPicksUpInsertedMarkup(t *testing.T) {
	h := foldtest.NewHarness(t, accordionPage)
	t.Cleanup(collapse.ResetWatches)

	initial := collapse.AutoInit(h.Document(), collapse.Accordion(), nil)
	if len(initial) != 1 {
		t.Fatalf("initial scan constructed %d widgets, want 1", len(initial))
	}

	rec := foldtest.RecordEvents(h.Document().Root(),
		collapse.EventType(collapse.Accordion(), collapse.EventInitialized))

	late := buildAccordion(h.Document(), 2)
	h.Document().Body().AppendChild(late)
	if _, ok := collapse.Lookup(late); ok {
		t.Fatal("watch delivery must be asynchronous, not inline with the mutation")
	}

	h.Pump()
	w, ok := collapse.Lookup(late)
	if !ok {
		t.Fatal("inserted root did not acquire a widget")
	}
	if w.Len() != 2 {
		t.Errorf("inserted widget resolved %d items, want 2", w.Len())
	}
	if len(rec.Events()) != 1 {
		t.Errorf("observed %d initialized events for the insertion, want 1", len(rec.Events()))
	}
}

func TestAutoInitMatchesNestedInsertion(t *testing.T) {
	h := foldtest.NewHarness(t, `<html><body></body></html>`)
	t.Cleanup(collapse.ResetWatches)
	collapse.AutoInit(h.Document(), collapse.Accordion(), nil)

	// The matching root sits below the inserted subtree's top element.
	wrapper := h.Document().CreateElement("section")
	late := buildAccordion(h.Document(), 1)
	wrapper.AppendChild(late)
	h.Document().Body().AppendChild(wrapper)

	h.Pump()
	if _, ok := collapse.Lookup(late); !ok {
		t.Error("nested matching root not picked up by the watch")
	}
}

func TestAutoInitInstallsWatchOnce(t *testing.T) {
	h := foldtest.NewHarness(t, `<html><body></body></html>`)
	t.Cleanup(collapse.ResetWatches)

	collapse.AutoInit(h.Document(), collapse.Accordion(), nil)
	collapse.AutoInit(h.Document(), collapse.Accordion(), nil)

	rec := foldtest.RecordEvents(h.Document().Root(),
		collapse.EventType(collapse.Accordion(), collapse.EventInitialized))
	h.Document().Body().AppendChild(buildAccordion(h.Document(), 1))
	h.Pump()
	if len(rec.Events()) != 1 {
		t.Errorf("observed %d initialized events, want 1: duplicate watch installed", len(rec.Events()))
	}
}

func TestAutoInitIgnoresDetachedInsertion(t *testing.T) {
	h := foldtest.NewHarness(t, `<html><body></body></html>`)
	t.Cleanup(collapse.ResetWatches)
	collapse.AutoInit(h.Document(), collapse.Accordion(), nil)

	late := buildAccordion(h.Document(), 1)
	h.Document().Body().AppendChild(late)
	h.Document().Body().RemoveChild(late) // detached again before delivery

	h.Pump()
	if _, ok := collapse.Lookup(late); ok {
		t.Error("watch constructed a widget for a subtree detached before delivery")
	}
}

func TestResetWatchesStopsDelivery(t *testing.T) {
	h := foldtest.NewHarness(t, `<html><body></body></html>`)
	collapse.AutoInit(h.Document(), collapse.Accordion(), nil)
	collapse.ResetWatches()

	late := buildAccordion(h.Document(), 1)
	h.Document().Body().AppendChild(late)
	h.Pump()
	if _, ok := collapse.Lookup(late); ok {
		t.Error("watch still delivering after teardown")
	}
}

func TestScanNilScope(t *testing.T) {
	if got := collapse.Scan(nil, collapse.Accordion(), nil); got != nil {
		t.Errorf("Scan(nil) = %v, want nil", got)
	}
}
