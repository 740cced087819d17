package gochart

import (
	"context"
	"errors"
	"sync"
)

// View defers the first paint of an Engine until the host reports that its
// container has a size. Before MarkReady every Render returns a pending
// placeholder; after it, Render is the engine's synchronous render.
type View struct {
	engine *Engine
	ready  chan struct{}
	once   sync.Once
}

// NewView wraps e. A nil engine gets New().
func NewView(e *Engine) *View {
	if e == nil {
		e = New()
	}
	return &View{engine: e, ready: make(chan struct{})}
}

// MarkReady opens the gate. Calling it more than once is harmless.
func (v *View) MarkReady() {
	v.once.Do(func() { close(v.ready) })
}

// Ready reports whether MarkReady has been called.
func (v *View) Ready() bool {
	select {
	case <-v.ready:
		return true
	default:
		return false
	}
}

// WaitReady blocks until the view is ready or ctx is done.
func (v *View) WaitReady(ctx context.Context) error {
	select {
	case <-v.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Render lays out spec once ready. The most recent hover wins: hover is not
// retained between calls.
func (v *View) Render(spec *ChartSpec, hover *int) *RenderTree {
	if !v.Ready() {
		if spec == nil {
			spec = &ChartSpec{}
		}
		return v.engine.placeholder(spec, ReasonPending, errors.New("view is not ready"))
	}
	return v.engine.Render(spec, hover)
}
