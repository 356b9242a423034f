package child

import (
	"github.com/Mig-uel/event-emitter-demo/runtime"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

// Display shows a value handed down by its parent. It has no actions and
// never reports back.
type Display struct {
	runtime.ComponentBase

	Value int
}

// ApplyProps takes the parent's latest value on a re-render.
func (d *Display) ApplyProps(next runtime.Component) {
	if n, ok := next.(*Display); ok {
		d.Value = n.Value
	}
}

func (d *Display) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"id": ContainerID, "class": containerClass},
		countParagraph(d.Value),
	)
}
