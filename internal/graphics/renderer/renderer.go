package renderer

import (
	"fmt"

	"giftex/internal/config"
	"giftex/internal/graphics/gpu"
	"giftex/internal/profiling"
)

// Renderer orchestrates rendering via renderable features
type Renderer struct {
	ctx         gpu.Context
	renderables []Renderable
	width       int
	height      int
}

// NewRenderer initializes each renderable in order. If one fails, the ones
// already initialized are destroyed in reverse order and the error returned.
func NewRenderer(ctx gpu.Context, rs ...Renderable) (*Renderer, error) {
	for i, r := range rs {
		if err := r.Initialize(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Destroy()
			}
			return nil, fmt.Errorf("renderable %d: %w", i, err)
		}
	}
	return &Renderer{ctx: ctx, renderables: rs}, nil
}

// Render clears the target and draws every renderable
func (r *Renderer) Render() {
	defer profiling.Track("renderer.Render")()

	c := config.GetClearColor()
	r.ctx.ClearColor(c[0], c[1], c[2], c[3])
	r.ctx.Clear(gpu.ColorBufferBit)

	for _, renderable := range r.renderables {
		renderable.Draw()
	}
}

// UpdateViewport resizes the GL viewport and forwards the size to every
// renderable. A zero-sized framebuffer (minimized window) is ignored.
func (r *Renderer) UpdateViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
	r.ctx.Viewport(0, 0, int32(width), int32(height))
	for _, renderable := range r.renderables {
		renderable.SetDimensions(width, height)
	}
}

// Viewport returns the last size passed to UpdateViewport
func (r *Renderer) Viewport() (int, int) {
	return r.width, r.height
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Destroy()
	}
}
