package root

import (
	"fmt"

	"github.com/Mig-uel/event-emitter-demo/internal/app/components/child"
	"github.com/Mig-uel/event-emitter-demo/runtime"
	"github.com/Mig-uel/event-emitter-demo/signals"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

// Element ids and child keys rendered by App.
const (
	ContainerID  = "app-root"
	TitleID      = "title"
	CountID      = "parent-count"
	ChildKey     = "Child_0"
	DisplayKey   = "Display_0"
	DefaultTitle = "event-emitter-demo"
	DefaultCount = 9
)

// App is the root component. It owns the counter and hands it to a child.
type App struct {
	runtime.ComponentBase

	Title   *signals.Signal[string]
	Count   int
	Variant child.Variant

	unsubscribe func()
}

var (
	_ runtime.Component   = (*App)(nil)
	_ runtime.Initializer = (*App)(nil)
	_ runtime.Cleaner     = (*App)(nil)
)

// NewApp creates the root component. An empty variant means child.Emitting.
func NewApp(title string, count int, variant child.Variant) *App {
	if variant == "" {
		variant = child.Emitting
	}
	return &App{
		Title:   signals.NewSignal(title),
		Count:   count,
		Variant: variant,
	}
}

func (a *App) OnInit() {
	a.unsubscribe = a.Title.Subscribe(a.StateHasChanged)
}

func (a *App) OnDestroy() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
}

// CountChange is bound to the child's Change output.
func (a *App) CountChange(n int) {
	a.Count = n
	a.StateHasChanged()
}

// SetTitle replaces the heading text.
func (a *App) SetTitle(title string) {
	a.Title.Set(title)
}

// InstanceKey returns the instance key of the child this root renders.
func (a *App) InstanceKey() string {
	if a.Variant == child.DisplayOnly {
		return DisplayKey
	}
	return ChildKey
}

func (a *App) Render(r runtime.Renderer) *vdom.VNode {
	var childNode *vdom.VNode
	switch a.Variant {
	case child.DisplayOnly:
		childNode = r.RenderChild(DisplayKey, &child.Display{Value: a.Count})
	default:
		childNode = r.RenderChild(ChildKey, &child.Child{Count: a.Count, Change: a.CountChange})
	}

	return vdom.Div(map[string]any{"id": ContainerID},
		vdom.Heading(1, a.Title.Get(), map[string]any{"id": TitleID}),
		vdom.Paragraph(fmt.Sprintf("Count in parent: %d", a.Count), map[string]any{"id": CountID}),
		childNode,
	)
}
