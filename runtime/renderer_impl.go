package runtime

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Mig-uel/event-emitter-demo/vdom"
)

// ErrNoComponent is returned when a render is requested before a root
// component was set.
var ErrNoComponent = errors.New("runtime: no root component set")

const rootKey = "__root__"

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
// It is not safe for concurrent use; hosts drive it from their event thread.
type RendererImpl struct {
	instances        map[string]Component
	initialized      map[string]bool // Track which components have been initialized
	activeKeys       map[string]bool // Track which components are active in the current render
	currentComponent Component
	mounter          Mounter
	logger           zerolog.Logger
	prevVDOM         *vdom.VNode // Previous VDOM tree for patching
	renders          int

	rendering bool
	pending   bool
}

// NewRenderer creates a new runtime renderer that hands every rendered tree
// to mounter.
func NewRenderer(mounter Mounter, logger zerolog.Logger) *RendererImpl {
	return &RendererImpl{
		instances:   make(map[string]Component),
		initialized: make(map[string]bool),
		activeKeys:  make(map[string]bool),
		mounter:     mounter,
		logger:      logger,
	}
}

// SetCurrentComponent sets the root component to be rendered.
func (r *RendererImpl) SetCurrentComponent(comp Component) {
	r.currentComponent = comp
}

// Logger implements Renderer.
func (r *RendererImpl) Logger() zerolog.Logger {
	return r.logger
}

// RenderRoot runs one render cycle for the entire application and mounts
// the result. ReRender requests made while rendering are coalesced into a
// single follow-up cycle.
func (r *RendererImpl) RenderRoot() error {
	if r.currentComponent == nil {
		return ErrNoComponent
	}
	if r.rendering {
		r.pending = true
		return nil
	}

	r.rendering = true
	defer func() { r.rendering = false }()

	for {
		r.pending = false
		if err := r.renderOnce(); err != nil {
			return err
		}
		if !r.pending {
			return nil
		}
	}
}

func (r *RendererImpl) renderOnce() error {
	// Reset activeKeys for this render cycle
	r.activeKeys = make(map[string]bool)

	root := r.currentComponent
	root.SetRenderer(r)

	if !r.initialized[rootKey] {
		if initializer, ok := root.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.initialized[rootKey] = true
	}
	if paramReceiver, ok := root.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, rootKey)
	}

	newVDOM := root.Render(r)
	if newVDOM != nil && newVDOM.ComponentKey == "" {
		newVDOM.ComponentKey = rootKey
	}

	if r.mounter != nil {
		if err := r.mounter.Mount(r.prevVDOM, newVDOM); err != nil {
			return errors.Wrap(err, "mount")
		}
	}

	// Store the new VDOM tree for the next render cycle
	r.prevVDOM = newVDOM
	r.renders++

	// Clean up components that were not rendered in this cycle
	r.cleanupUnmountedComponents()

	r.logger.Debug().Int("render", r.renders).Int("instances", len(r.instances)).Msg("render cycle complete")
	return nil
}

// RenderChild renders a child component.
// It handles the core logic of instance creation and reuse.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	// Mark this component as active in the current render cycle
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	isFirstRender := false

	if !exists {
		instance = childWithProps
		r.instances[key] = instance
		isFirstRender = true
	} else if updater, ok := instance.(PropUpdater); ok {
		// Preserve the existing instance to keep state; only props move over.
		updater.ApplyProps(childWithProps)
	} else {
		// Without ApplyProps there is no way to carry props over, so the
		// fresh value replaces the old one.
		instance = childWithProps
		r.instances[key] = instance
	}

	instance.SetRenderer(r)

	if isFirstRender {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
		r.initialized[key] = true
	}

	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	vnode := instance.Render(r)
	if vnode != nil {
		vnode.ComponentKey = key
	}
	return vnode
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if !r.activeKeys[key] {
			r.destroy(key, instance)
		}
	}
}

func (r *RendererImpl) destroy(key string, instance Component) {
	if cleaner, ok := instance.(Cleaner); ok {
		r.callOnDestroy(cleaner, key)
	}
	delete(r.instances, key)
	delete(r.initialized, key)
}

// ReRender re-runs the render cycle. Failures are logged, since callers are
// event handlers with nowhere to return an error to.
func (r *RendererImpl) ReRender() {
	if err := r.RenderRoot(); err != nil {
		r.logger.Error().Err(err).Msg("re-render failed")
	}
}

// Unmount tears the tree down: OnDestroy runs for every child instance and
// then for the root, and the renderer forgets all of them.
func (r *RendererImpl) Unmount() {
	for key, instance := range r.instances {
		r.destroy(key, instance)
	}
	if r.currentComponent != nil {
		if cleaner, ok := r.currentComponent.(Cleaner); ok && r.initialized[rootKey] {
			r.callOnDestroy(cleaner, rootKey)
		}
		r.currentComponent.SetRenderer(nil)
	}
	delete(r.initialized, rootKey)
	r.currentComponent = nil
	r.prevVDOM = nil
}

// Instance returns the live child instance rendered under key.
func (r *RendererImpl) Instance(key string) (Component, bool) {
	c, ok := r.instances[key]
	return c, ok
}

// CurrentVDOM returns the tree produced by the last render cycle.
func (r *RendererImpl) CurrentVDOM() *vdom.VNode {
	return r.prevVDOM
}

// Renders returns how many render cycles have completed.
func (r *RendererImpl) Renders() int {
	return r.renders
}
