package collapse_test

import (
	"fmt"
	"testing"

	"github.com/go-fold/fold/pkg/collapse"
	"github.com/go-fold/fold/pkg/dom"
	"github.com/go-fold/fold/pkg/foldtest"
)

const accordionPage = `<html><body>
<div class="accordion" data-accordion>
  <div class="accordion__item">
    <button class="accordion__trigger">One</button>
    <div class="accordion__content" data-height="140">
      <button class="accordion__close">Close</button>
    </div>
  </div>
  <div class="accordion__item">
    <button class="accordion__trigger">Two</button>
    <div class="accordion__content" data-height="220"></div>
  </div>
  <div class="accordion__item">
    <button class="accordion__trigger">Three</button>
    <div class="accordion__content" data-height="90"></div>
  </div>
</div>
</body></html>`

const disclosurePage = `<html><body>
<div class="disclosure" data-disclosure>
  <button class="disclosure__trigger">Details</button>
  <div class="disclosure__content" data-height="60"></div>
</div>
</body></html>`

// newAccordion parses the standard three-item fixture and constructs a
// widget on it.
func newAccordion(t *testing.T, opts *collapse.Options) (*foldtest.Harness, *collapse.Widget) {
	t.Helper()
	return newWidget(t, accordionPage, collapse.Accordion(), opts)
}

func newWidget(t *testing.T, markup string, b collapse.Behavior, opts *collapse.Options) (*foldtest.Harness, *collapse.Widget) {
	t.Helper()
	h := foldtest.NewHarness(t, markup)
	t.Cleanup(collapse.ResetWatches)
	roots := h.Document().Body().QueryByAttr(b.ActivationAttr)
	if len(roots) != 1 {
		t.Fatalf("fixture holds %d widget roots, want 1", len(roots))
	}
	w, err := collapse.NewWidget(roots[0], b, opts)
	if err != nil {
		t.Fatalf("NewWidget failed: %v", err)
	}
	return h, w
}

// buildAccordion assembles an accordion subtree programmatically, for
// insertion-after-load tests.
func buildAccordion(d *dom.Document, items int) *dom.Element {
	root := d.CreateElement("div")
	root.AddClass("accordion")
	root.SetAttribute("data-accordion", "")
	for i := 0; i < items; i++ {
		item := d.CreateElement("div")
		item.AddClass("accordion__item")
		trigger := d.CreateElement("button")
		trigger.AddClass("accordion__trigger")
		content := d.CreateElement("div")
		content.AddClass("accordion__content")
		content.SetNaturalHeight(float64(100 + i))
		item.AppendChild(trigger)
		item.AppendChild(content)
		root.AppendChild(item)
	}
	return root
}

// expanded reads the ARIA expanded state straight off the trigger.
func expanded(w *collapse.Widget, index int) bool {
	v, _ := w.ItemAt(index).Trigger().Attribute("aria-expanded")
	return v == "true"
}

// stateSnapshot captures every item's open state for unchanged-state checks.
func stateSnapshot(w *collapse.Widget) string {
	s := ""
	for i := 0; i < w.Len(); i++ {
		s += fmt.Sprintf("%d:%v ", i, w.ItemAt(i).State())
	}
	return s
}
