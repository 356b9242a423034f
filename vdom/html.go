package vdom

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTMLNode converts a virtual tree into an x/net/html node tree.
// Attributes are emitted in key order so the output is stable.
func ToHTMLNode(n *VNode) *html.Node {
	if n == nil {
		return nil
	}
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}

	keys := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		switch v := n.Attributes[k].(type) {
		case bool:
			// Boolean attributes are present or absent.
			if v {
				el.Attr = append(el.Attr, html.Attribute{Key: k})
			}
		case func():
			// Handlers only exist in the virtual tree.
		default:
			el.Attr = append(el.Attr, html.Attribute{Key: k, Val: fmt.Sprint(v)})
		}
	}

	// Content only renders on leaf elements, matching the DOM mounter.
	if n.Content != "" && len(n.Children) == 0 {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if c := ToHTMLNode(child); c != nil {
			el.AppendChild(c)
		}
	}
	return el
}

// RenderHTML writes the HTML serialisation of n to w.
func RenderHTML(w io.Writer, n *VNode) error {
	node := ToHTMLNode(n)
	if node == nil {
		return nil
	}
	if err := html.Render(w, node); err != nil {
		return errors.Wrap(err, "render html")
	}
	return nil
}

// HTML returns the HTML serialisation of n.
func HTML(n *VNode) (string, error) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HTMLMounter is a headless mount target. Every mount writes the full
// HTML of the new tree to W, followed by a newline.
type HTMLMounter struct {
	W io.Writer
}

// Mount writes next to the underlying writer. The previous tree is ignored.
func (m *HTMLMounter) Mount(prev, next *VNode) error {
	if err := RenderHTML(m.W, next); err != nil {
		return err
	}
	_, err := io.WriteString(m.W, "\n")
	return errors.Wrap(err, "write html")
}
