// Package runtimetest provides in-memory renderers for exercising
// components without a browser.
package runtimetest

import (
	"github.com/rs/zerolog"

	"github.com/Mig-uel/event-emitter-demo/runtime"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without browser or WASM dependencies.
//
// It captures VDOM output from component renders and allows tests to:
// - Attach components to the renderer
// - Trigger re-renders via StateHasChanged()
// - Inspect the resulting VDOM tree
//
// Unlike runtime.RendererImpl it keeps no instance map: children are
// rendered as passed and never preserved.
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	logger      zerolog.Logger
	renders     int
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	r := &TestRenderer{
		component: comp,
		logger:    zerolog.Nop(),
	}
	comp.SetRenderer(r)
	return r
}

// WithLogger sets the logger handed to components.
func (r *TestRenderer) WithLogger(logger zerolog.Logger) *TestRenderer {
	r.logger = logger
	return r
}

// RenderRoot performs the initial render of the component.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.ReRender()
	return r.currentVDOM
}

// ReRender performs a re-render of the component.
// This is called by StateHasChanged() when the component requests a re-render.
func (r *TestRenderer) ReRender() {
	r.currentVDOM = r.component.Render(r)
	r.renders++
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// Renders returns how many times the component has been rendered.
func (r *TestRenderer) Renders() int {
	return r.renders
}

// RenderChild renders child in place.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	child.SetRenderer(r)
	vnode := child.Render(r)
	if vnode != nil {
		vnode.ComponentKey = key
	}
	return vnode
}

// Logger implements runtime.Renderer.
func (r *TestRenderer) Logger() zerolog.Logger {
	return r.logger
}
