package child

import (
	"fmt"

	"github.com/Mig-uel/event-emitter-demo/events"
	"github.com/Mig-uel/event-emitter-demo/runtime"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

// Element ids rendered by the child components.
const (
	ContainerID    = "child"
	CountID        = "child-count"
	IncrementID    = "increment"
	DecrementID    = "decrement"
	containerClass = "child"
)

// Child receives a counter from its parent and reports every change back
// through Change.
type Child struct {
	runtime.ComponentBase

	// --- PROPS ---

	// Count is the parent's counter. The child mutates its own copy.
	Count int

	// Change is emitted with the new value after every action.
	Change events.Output[int]
}

var (
	_ runtime.Component   = (*Child)(nil)
	_ runtime.PropUpdater = (*Child)(nil)
)

// ApplyProps takes the parent's latest props on a re-render.
func (c *Child) ApplyProps(next runtime.Component) {
	n, ok := next.(*Child)
	if !ok {
		return
	}
	c.Count = n.Count
	c.Change = n.Change
}

// Increment adds one to the counter and passes the result to the parent.
func (c *Child) Increment() {
	c.Count++
	c.notify()
	c.trace("increment", "incrementing count from the child component, passing to parent")
}

// Decrement subtracts one from the counter and passes the result to the parent.
func (c *Child) Decrement() {
	c.Count--
	c.notify()
	c.trace("decrement", "decrementing count from the child component, passing to parent")
}

func (c *Child) notify() {
	// A bound parent re-renders the tree; otherwise refresh ourselves.
	if !c.Change.Emit(c.Count) {
		c.StateHasChanged()
	}
}

func (c *Child) trace(action, msg string) {
	log := c.Logger()
	log.Info().
		Str("component", "child").
		Str("action", action).
		Int("count", c.Count).
		Msg(msg)
}

func (c *Child) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"id": ContainerID, "class": containerClass},
		countParagraph(c.Count),
		vdom.Button("-", map[string]any{"id": DecrementID, "onClick": c.Decrement}),
		vdom.Button("+", map[string]any{"id": IncrementID, "onClick": c.Increment}),
	)
}

func countParagraph(n int) *vdom.VNode {
	return vdom.Paragraph(fmt.Sprintf("Count in child: %d", n), map[string]any{"id": CountID})
}
