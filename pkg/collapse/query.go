package collapse

import "github.com/go-fold/fold/pkg/dom"

// itemParts is one resolved trigger/content pair. Pure structural data; the
// resolver never mutates the tree.
type itemParts struct {
	item    *dom.Element
	trigger *dom.Element
	content *dom.Element
}

// resolveItems locates the widget's structural parts by the class-name
// convention: item roots under the widget root, each holding one trigger
// and one content pane. Item elements missing either part are skipped.
//
// When the markup carries no item wrappers at all — the single-panel
// generic component shape — the root itself stands in as the one item,
// provided it holds a trigger and a content pane.
func resolveItems(root *dom.Element, b Behavior) []itemParts {
	var out []itemParts
	for _, itemEl := range root.QueryByClass(b.itemClass()) {
		trigger := itemEl.FirstByClass(b.triggerClass())
		content := itemEl.FirstByClass(b.contentClass())
		if trigger == nil || content == nil {
			continue
		}
		out = append(out, itemParts{item: itemEl, trigger: trigger, content: content})
	}
	if len(out) > 0 {
		return out
	}

	trigger := root.FirstByClass(b.triggerClass())
	content := root.FirstByClass(b.contentClass())
	if trigger != nil && content != nil {
		out = append(out, itemParts{item: root, trigger: trigger, content: content})
	}
	return out
}
