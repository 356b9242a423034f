package runtime

import "github.com/rs/zerolog"

// ComponentBase is a struct that components can embed to gain access to the
// StateHasChanged method, which triggers a UI re-render.
// This type has no build tags and works in both WASM and test environments.
type ComponentBase struct {
	renderer Renderer
}

// SetRenderer is called by the framework's runtime to inject a reference
// to the renderer, enabling StateHasChanged. This method should not be
// called by user code.
func (b *ComponentBase) SetRenderer(r Renderer) {
	b.renderer = r
}

// Mounted reports whether the component has been attached to a renderer.
func (b *ComponentBase) Mounted() bool {
	return b.renderer != nil
}

// StateHasChanged signals to the framework that the component's state has
// been updated and the UI should be re-rendered to reflect the changes.
func (b *ComponentBase) StateHasChanged() {
	if b.renderer == nil {
		return
	}
	b.renderer.ReRender()
}

// Logger returns the renderer's logger, or a disabled logger when the
// component is not mounted.
func (b *ComponentBase) Logger() zerolog.Logger {
	if b.renderer == nil {
		return zerolog.Nop()
	}
	return b.renderer.Logger()
}
