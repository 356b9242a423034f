// Package app wires the root component, the renderer and a mount target
// into a running UI session.
package app

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/Mig-uel/event-emitter-demo/internal/app/components/child"
	"github.com/Mig-uel/event-emitter-demo/internal/app/components/root"
	"github.com/Mig-uel/event-emitter-demo/internal/config"
	"github.com/Mig-uel/event-emitter-demo/runtime"
	"github.com/Mig-uel/event-emitter-demo/vdom"
)

// Session is one mounted component tree.
type Session struct {
	root     *root.App
	renderer *runtime.RendererImpl
	log      zerolog.Logger
}

// NewSession builds the root from cfg and performs the first render.
func NewSession(cfg config.Config, logger zerolog.Logger, mounter runtime.Mounter) (*Session, error) {
	rootApp := root.NewApp(cfg.Title, cfg.InitialCount, cfg.ChildVariant)

	renderer := runtime.NewRenderer(mounter, logger)
	renderer.SetCurrentComponent(rootApp)
	if err := renderer.RenderRoot(); err != nil {
		return nil, errors.Wrap(err, "initial render")
	}

	logger.Info().
		Int("count", rootApp.Count).
		Str("variant", rootApp.Variant.String()).
		Msg("component tree mounted")

	return &Session{root: rootApp, renderer: renderer, log: logger}, nil
}

// Dispatch performs a user action by clicking the matching button in the
// current tree.
func (s *Session) Dispatch(a Action) error {
	if err := vdom.Click(s.renderer.CurrentVDOM(), a.elementID()); err != nil {
		return errors.Wrapf(err, "%s", a)
	}
	return nil
}

// Run dispatches actions in order and stops at the first failure.
func (s *Session) Run(actions []Action, afterEach func(Action)) error {
	for _, a := range actions {
		if err := s.Dispatch(a); err != nil {
			return err
		}
		if afterEach != nil {
			afterEach(a)
		}
	}
	return nil
}

// Count returns the root's counter.
func (s *Session) Count() int {
	return s.root.Count
}

// ChildCount returns the value the child currently displays.
func (s *Session) ChildCount() (int, error) {
	p := vdom.FindByID(s.renderer.CurrentVDOM(), child.CountID)
	if p == nil {
		return 0, errors.Wrapf(vdom.ErrNodeNotFound, "#%s", child.CountID)
	}
	_, value, _ := strings.Cut(p.Content, ": ")
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q", p.Content)
	}
	return n, nil
}

// Root returns the root component.
func (s *Session) Root() *root.App {
	return s.root
}

// Tree returns the tree produced by the last render.
func (s *Session) Tree() *vdom.VNode {
	return s.renderer.CurrentVDOM()
}

// Close unmounts the tree, running every OnDestroy hook.
func (s *Session) Close() {
	s.renderer.Unmount()
	s.log.Debug().Msg("component tree unmounted")
}
