package vdom

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrNodeNotFound is returned when no node carries the requested id.
	ErrNodeNotFound = errors.New("vdom: node not found")

	// ErrNoHandler is returned when a node is clicked that has no click handler.
	ErrNoHandler = errors.New("vdom: node has no click handler")
)

// Walk visits n and all of its descendants depth-first.
// Returning false from fn stops the walk.
func Walk(n *VNode, fn func(*VNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// FindByID returns the first node in the tree whose id attribute equals id.
func FindByID(root *VNode, id string) *VNode {
	var found *VNode
	Walk(root, func(n *VNode) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// TextContent concatenates the content of n and its descendants, like the
// DOM property of the same name.
func TextContent(n *VNode) string {
	var sb strings.Builder
	Walk(n, func(v *VNode) bool {
		sb.WriteString(v.Content)
		return true
	})
	return sb.String()
}

// Click invokes the click handler of the node with the given id, the same
// way a browser click on the mounted element would.
func Click(root *VNode, id string) error {
	n := FindByID(root, id)
	if n == nil {
		return errors.Wrapf(ErrNodeNotFound, "click #%s", id)
	}
	if n.OnClick == nil {
		return errors.Wrapf(ErrNoHandler, "click #%s", id)
	}
	n.OnClick()
	return nil
}
