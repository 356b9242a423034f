//go:build js || wasm
// +build js wasm

package vdom

import (
	"fmt"
	"syscall/js"

	"github.com/pkg/errors"

	"github.com/Mig-uel/event-emitter-demo/console"
)

// DOMMounter mounts virtual trees under the first element matching Selector.
type DOMMounter struct {
	Selector string
}

// NewDOMMounter returns a mounter for the given CSS selector.
func NewDOMMounter(selector string) *DOMMounter {
	return &DOMMounter{Selector: selector}
}

// Mount renders next fresh when there is no previous tree, and patches the
// mounted DOM otherwise.
func (m *DOMMounter) Mount(prev, next *VNode) error {
	mount, err := m.mountElement()
	if err != nil {
		return err
	}
	if prev == nil {
		clearMount(mount)
		RenderTo(mount, next)
		return nil
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderTo(mount, next)
		return nil
	}
	patchElement(rootElement, prev, next)
	return nil
}

func (m *DOMMounter) mountElement() (js.Value, error) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined(), errors.New("vdom: document is not available")
	}
	mount := doc.Call("querySelector", m.Selector)
	if !mount.Truthy() {
		return js.Undefined(), errors.Wrapf(ErrNodeNotFound, "mount element %q", m.Selector)
	}
	return mount, nil
}

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	for _, cb := range v.GetEventCallbacks() {
		switch c := cb.(type) {
		case listener:
			c.el.Call("removeEventListener", "click", c.fn)
			c.fn.Release()
		case js.Func:
			c.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	Walk(v, func(n *VNode) bool {
		releaseCallbacks(n)
		return true
	})
}

func clearMount(mount js.Value) {
	mount.Set("innerHTML", "")
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute on an element, handling boolean attributes correctly.
func setAttributeValue(el js.Value, key string, value any) {
	switch v := value.(type) {
	case bool:
		if v {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
	case func():
		// Attached as a listener, never as an attribute.
	default:
		el.Call("setAttribute", key, fmt.Sprint(v))
	}
}

func attachClick(el js.Value, n *VNode) {
	if n.OnClick == nil {
		return
	}
	handler := n.OnClick
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	})
	el.Call("addEventListener", "click", cb)
	n.AddEventCallback(listener{el: el, fn: cb})
}

// listener remembers where a callback was attached so patching can detach it.
type listener struct {
	el js.Value
	fn js.Func
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}
	if n.Tag == "" {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	if n.Content != "" && len(n.Children) == 0 {
		el.Set("textContent", n.Content)
	}
	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}
	attachClick(el, n)
	return el
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	keysDiffer := oldVNode.ComponentKey != "" && newVNode.ComponentKey != "" &&
		oldVNode.ComponentKey != newVNode.ComponentKey
	if keysDiffer || oldVNode.Tag != newVNode.Tag {
		deepReleaseCallbacks(oldVNode)
		newElement := createElement(newVNode)
		if parent := domElement.Get("parentNode"); newElement.Truthy() && parent.Truthy() {
			parent.Call("replaceChild", newElement, domElement)
		}
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	releaseCallbacks(oldVNode)
	attachClick(domElement, newVNode)

	// Setting textContent wipes child nodes, so only leaf elements get it.
	if len(newVNode.Children) == 0 && oldVNode.Content != newVNode.Content {
		domElement.Set("textContent", newVNode.Content)
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}
	for key, value := range newAttrs {
		if oldAttrs == nil || oldAttrs[key] != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])
		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
