package runtimetest

import (
	"github.com/Mig-uel/event-emitter-demo/runtime"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

var _ runtime.Mounter = (*Recorder)(nil)

// Recorder is a runtime.Mounter that keeps every mounted tree.
// Set Err to make the next mounts fail.
type Recorder struct {
	Frames []*vdom.VNode
	Err    error
}

// Mount records next.
func (m *Recorder) Mount(prev, next *vdom.VNode) error {
	if m.Err != nil {
		return m.Err
	}
	m.Frames = append(m.Frames, next)
	return nil
}

// Last returns the most recently mounted tree, or nil.
func (m *Recorder) Last() *vdom.VNode {
	if len(m.Frames) == 0 {
		return nil
	}
	return m.Frames[len(m.Frames)-1]
}
