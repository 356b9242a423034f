package child

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mig-uel/event-emitter-demo/runtime/runtimetest"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

func countText(t *testing.T, tree *vdom.VNode) string {
	t.Helper()
	p := vdom.FindByID(tree, CountID)
	require.NotNil(t, p, "no #%s in tree", CountID)
	return p.Content
}

func TestChild_RendersInputCount(t *testing.T) {
	c := &Child{Count: 9}
	r := runtimetest.NewTestRenderer(c)

	tree := r.RenderRoot()

	assert.Equal(t, "Count in child: 9", countText(t, tree))
	assert.NotNil(t, vdom.FindByID(tree, IncrementID).OnClick)
	assert.NotNil(t, vdom.FindByID(tree, DecrementID).OnClick)
}

func TestChild_IncrementEmitsNewValue(t *testing.T) {
	var emitted []int
	c := &Child{Count: 9, Change: func(n int) { emitted = append(emitted, n) }}
	runtimetest.NewTestRenderer(c).RenderRoot()

	c.Increment()

	assert.Equal(t, 10, c.Count)
	assert.Equal(t, []int{10}, emitted)
}

func TestChild_DecrementGoesNegative(t *testing.T) {
	var emitted []int
	c := &Child{Count: 0, Change: func(n int) { emitted = append(emitted, n) }}

	c.Decrement()
	c.Decrement()

	assert.Equal(t, -2, c.Count)
	assert.Equal(t, []int{-1, -2}, emitted)
}

func TestChild_UnboundRefreshesItself(t *testing.T) {
	c := &Child{Count: 3}
	r := runtimetest.NewTestRenderer(c)
	r.RenderRoot()

	require.NoError(t, vdom.Click(r.GetCurrentVDOM(), IncrementID))

	assert.Equal(t, 2, r.Renders())
	assert.Equal(t, "Count in child: 4", countText(t, r.GetCurrentVDOM()))
}

func TestChild_BoundLeavesRenderingToParent(t *testing.T) {
	c := &Child{Count: 3, Change: func(int) {}}
	r := runtimetest.NewTestRenderer(c)
	r.RenderRoot()

	c.Increment()

	assert.Equal(t, 1, r.Renders())
}

func TestChild_LogsTraceAfterEachAction(t *testing.T) {
	var buf bytes.Buffer
	c := &Child{Count: 9}
	runtimetest.NewTestRenderer(c).WithLogger(zerolog.New(&buf))

	c.Increment()

	out := buf.String()
	assert.Contains(t, out, `"component":"child"`)
	assert.Contains(t, out, `"action":"increment"`)
	assert.Contains(t, out, `"count":10`)
	assert.Contains(t, out, "passing to parent")
}

func TestChild_ApplyPropsKeepsInstance(t *testing.T) {
	c := &Child{Count: 1}
	var got int
	c.ApplyProps(&Child{Count: 7, Change: func(n int) { got = n }})

	assert.Equal(t, 7, c.Count)
	c.Increment()
	assert.Equal(t, 8, got)

	// Props of another component type are ignored.
	c.ApplyProps(&Display{Value: 100})
	assert.Equal(t, 8, c.Count)
}

func TestDisplay_RendersValueWithoutActions(t *testing.T) {
	d := &Display{Value: -4}
	tree := runtimetest.NewTestRenderer(d).RenderRoot()

	assert.Equal(t, "Count in child: -4", countText(t, tree))
	assert.Nil(t, vdom.FindByID(tree, IncrementID))
	assert.True(t, errors.Is(vdom.Click(tree, DecrementID), vdom.ErrNodeNotFound))

	d.ApplyProps(&Display{Value: 5})
	assert.Equal(t, 5, d.Value)
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant(" Display ")
	require.NoError(t, err)
	assert.Equal(t, DisplayOnly, v)

	var decoded Variant
	require.NoError(t, decoded.UnmarshalText([]byte("emitter")))
	assert.Equal(t, Emitting, decoded)

	_, err = ParseVariant("readonly")
	assert.True(t, errors.Is(err, ErrUnknownVariant))
}
