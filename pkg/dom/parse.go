package dom

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-fold/fold/pkg/errors"
	"github.com/go-fold/fold/pkg/style"
)

// HeightAttr is the fixture attribute carrying an element's intrinsic
// content height, standing in for rendered layout measurement.
const HeightAttr = "data-height"

// Parse reads an HTML document into a retained tree. Text nodes are not
// retained; the runtime operates on element structure only. A nil sheet
// falls back to style.Default().
func Parse(r io.Reader, sheet *style.Sheet) (*Document, error) {
	node, err := html.Parse(r)
	if err != nil {
		return nil, &errors.ParseError{Source: "markup", Detail: "invalid HTML", Err: err}
	}
	if sheet == nil {
		sheet = style.Default()
	}

	d := &Document{sheet: sheet, ready: true}
	htmlNode := findElementNode(node, "html")
	if htmlNode == nil {
		return nil, &errors.ParseError{Source: "markup", Detail: "no html element"}
	}
	d.root = d.convert(htmlNode)
	for _, child := range d.root.children {
		switch child.tag {
		case "head":
			d.head = child
		case "body":
			d.body = child
		}
	}
	if d.body == nil {
		return nil, &errors.ParseError{Source: "markup", Detail: "no body element"}
	}
	return d, nil
}

// ParseString parses markup held in a string.
func ParseString(markup string, sheet *style.Sheet) (*Document, error) {
	return Parse(strings.NewReader(markup), sheet)
}

// ParseFile parses a markup file from disk.
func ParseFile(path string, sheet *style.Sheet) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open markup file: %w", err)
	}
	defer f.Close()
	d, err := Parse(f, sheet)
	if err != nil {
		if pe, ok := err.(*errors.ParseError); ok {
			pe.Source = path
		}
		return nil, err
	}
	return d, nil
}

// convert builds an Element subtree from a parsed html node.
func (d *Document) convert(node *html.Node) *Element {
	el := d.CreateElement(node.Data)
	for _, attr := range node.Attr {
		switch attr.Key {
		case "class":
			for _, class := range strings.Fields(attr.Val) {
				el.AddClass(class)
			}
		case "hidden":
			el.hidden = true
		default:
			el.SetAttribute(attr.Key, attr.Val)
			if attr.Key == HeightAttr {
				if h, err := strconv.ParseFloat(attr.Val, 64); err == nil {
					el.naturalHeight = h
				}
			}
		}
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			continue
		}
		converted := d.convert(child)
		converted.parent = el
		el.children = append(el.children, converted)
	}
	return el
}

func findElementNode(node *html.Node, tag string) *html.Node {
	if node.Type == html.ElementNode && node.Data == tag {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findElementNode(child, tag); found != nil {
			return found
		}
	}
	return nil
}
