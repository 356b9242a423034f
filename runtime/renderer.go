package runtime

import (
	"github.com/rs/zerolog"

	"github.com/Mig-uel/event-emitter-demo/vdom"
)

// Renderer defines the minimal set of runtime operations used by Render() code.
// This interface has NO build tags, making it available to both WASM and native builds.
type Renderer interface {
	// RenderChild renders a child component.
	// The key parameter uniquely identifies the component instance for state preservation.
	RenderChild(key string, childWithProps Component) *vdom.VNode

	// ReRender requests that the renderer re-run the render cycle.
	// Used by StateHasChanged() when component state changes.
	ReRender()

	// Logger returns the logger components write their trace output to.
	Logger() zerolog.Logger
}

// Mounter puts a rendered tree on screen. prev is nil on the first mount.
type Mounter interface {
	Mount(prev, next *vdom.VNode) error
}
