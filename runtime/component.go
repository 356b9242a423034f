package runtime

import "github.com/Mig-uel/event-emitter-demo/vdom"

// Component interface defines the structure for all components in the framework.
// This interface has NO build tags, making it available to both WASM and native builds.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode

	// SetRenderer is called by the framework to attach the renderer to the component.
	// This enables StateHasChanged() to trigger re-renders.
	SetRenderer(r Renderer)
}

// Initializer is implemented by components that need a hook before their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to props.
// OnParametersSet runs before every render, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// Cleaner is implemented by components that release resources when they
// leave the tree.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater copies the props of a freshly built component onto a preserved
// instance. The renderer calls it instead of replacing the instance, so the
// instance keeps its internal state across parent re-renders.
type PropUpdater interface {
	ApplyProps(next Component)
}
