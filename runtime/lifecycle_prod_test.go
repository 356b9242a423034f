//go:build !dev

package runtime_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mig-uel/event-emitter-demo/runtime"
	"github.com/Mig-uel/event-emitter-demo/runtime/runtimetest"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

// panicky panics in OnInit; the renderer must keep going.
type panicky struct {
	runtime.ComponentBase
}

func (c *panicky) OnInit() { panic("init exploded") }

func (c *panicky) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Paragraph("still here", nil)
}

func TestRenderer_RecoversLifecyclePanics(t *testing.T) {
	var buf bytes.Buffer
	rec := &runtimetest.Recorder{}
	r := runtime.NewRenderer(rec, zerolog.New(&buf))
	r.SetCurrentComponent(&panicky{})

	require.NoError(t, r.RenderRoot())

	assert.Equal(t, "still here", rec.Last().Content)
	assert.Contains(t, buf.String(), "lifecycle hook panicked")
	assert.Contains(t, buf.String(), "init exploded")
}
