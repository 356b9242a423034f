package runtime_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mig-uel/event-emitter-demo/runtime"
	"github.com/Mig-uel/event-emitter-demo/runtime/runtimetest"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

// label is a child that keeps an internal click counter next to its Text prop.
type label struct {
	runtime.ComponentBase
	Text string

	clicks int
	calls  *[]string
}

func (l *label) OnInit()          { *l.calls = append(*l.calls, "init:"+l.Text) }
func (l *label) OnParametersSet() { *l.calls = append(*l.calls, "params:"+l.Text) }
func (l *label) OnDestroy()       { *l.calls = append(*l.calls, "destroy:"+l.Text) }

func (l *label) ApplyProps(next runtime.Component) {
	if n, ok := next.(*label); ok {
		l.Text = n.Text
	}
}

func (l *label) Click() {
	l.clicks++
	l.StateHasChanged()
}

func (l *label) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Paragraph(l.Text+"/"+strconv.Itoa(l.clicks), map[string]any{"id": "label"})
}

// page renders a label while ShowLabel is set.
type page struct {
	runtime.ComponentBase
	Text      string
	ShowLabel bool

	calls []string
}

func (p *page) OnInit()    { p.calls = append(p.calls, "init:page") }
func (p *page) OnDestroy() { p.calls = append(p.calls, "destroy:page") }

func (p *page) Render(r runtime.Renderer) *vdom.VNode {
	root := vdom.Div(map[string]any{"id": "page"})
	if p.ShowLabel {
		root.Children = append(root.Children, r.RenderChild("Label_0", &label{Text: p.Text, calls: &p.calls}))
	}
	return root
}

func newPage(text string) (*page, *runtime.RendererImpl, *runtimetest.Recorder) {
	p := &page{Text: text, ShowLabel: true}
	rec := &runtimetest.Recorder{}
	r := runtime.NewRenderer(rec, zerolog.Nop())
	r.SetCurrentComponent(p)
	return p, r, rec
}

func TestRenderer_RenderRootWithoutComponent(t *testing.T) {
	r := runtime.NewRenderer(&runtimetest.Recorder{}, zerolog.Nop())

	err := r.RenderRoot()

	assert.True(t, errors.Is(err, runtime.ErrNoComponent))
}

func TestRenderer_InitialRenderMountsTree(t *testing.T) {
	_, r, rec := newPage("a")

	require.NoError(t, r.RenderRoot())

	require.Len(t, rec.Frames, 1)
	assert.Equal(t, "a/0", vdom.TextContent(rec.Last()))
	assert.Equal(t, "Label_0", vdom.FindByID(rec.Last(), "label").ComponentKey)
	assert.Equal(t, 1, r.Renders())
}

func TestRenderer_PreservesChildInstanceAcrossRenders(t *testing.T) {
	p, r, rec := newPage("a")
	require.NoError(t, r.RenderRoot())

	first, ok := r.Instance("Label_0")
	require.True(t, ok)
	first.(*label).Click()

	p.Text = "b"
	p.StateHasChanged()

	second, ok := r.Instance("Label_0")
	require.True(t, ok)
	assert.Same(t, first, second)
	// Props moved over, internal state survived.
	assert.Equal(t, "b/1", vdom.TextContent(rec.Last()))
}

func TestRenderer_LifecycleOrder(t *testing.T) {
	p, r, _ := newPage("a")

	require.NoError(t, r.RenderRoot())
	r.ReRender()

	assert.Equal(t, []string{
		"init:page",
		"init:a", "params:a",
		"params:a",
	}, p.calls)
}

func TestRenderer_DestroysChildThatLeavesTree(t *testing.T) {
	p, r, _ := newPage("a")
	require.NoError(t, r.RenderRoot())

	p.ShowLabel = false
	p.StateHasChanged()

	_, ok := r.Instance("Label_0")
	assert.False(t, ok)
	assert.Contains(t, p.calls, "destroy:a")
}

func TestRenderer_UnmountDestroysEverything(t *testing.T) {
	p, r, _ := newPage("a")
	require.NoError(t, r.RenderRoot())

	r.Unmount()

	assert.Equal(t, []string{"destroy:a", "destroy:page"}, p.calls[len(p.calls)-2:])
	assert.False(t, p.Mounted())
	assert.Nil(t, r.CurrentVDOM())
	assert.True(t, errors.Is(r.RenderRoot(), runtime.ErrNoComponent))
}

func TestRenderer_NestedReRenderIsCoalesced(t *testing.T) {
	p, r, rec := newPage("a")
	require.NoError(t, r.RenderRoot())

	// A re-render requested from inside a render cycle runs after it
	// instead of nesting.
	r.SetCurrentComponent(&reentrant{page: p})
	require.NoError(t, r.RenderRoot())

	assert.Len(t, rec.Frames, 3)
}

// reentrant asks for one more render the first time it is rendered.
type reentrant struct {
	*page
	asked bool
}

func (c *reentrant) Render(r runtime.Renderer) *vdom.VNode {
	if !c.asked {
		c.asked = true
		r.ReRender()
	}
	return c.page.Render(r)
}

func TestRenderer_MountFailureIsReturnedAndLoggedOnReRender(t *testing.T) {
	var buf bytes.Buffer
	p := &page{Text: "a"}
	rec := &runtimetest.Recorder{}
	r := runtime.NewRenderer(rec, zerolog.New(&buf))
	r.SetCurrentComponent(p)
	require.NoError(t, r.RenderRoot())

	rec.Err = errors.New("boom")
	err := r.RenderRoot()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mount: boom")

	p.StateHasChanged()
	assert.Contains(t, buf.String(), "re-render failed")
}
