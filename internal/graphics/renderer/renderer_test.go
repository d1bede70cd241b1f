package renderer_test

import (
	"errors"
	"testing"

	"giftex/internal/config"
	"giftex/internal/graphics/gpu"
	"giftex/internal/graphics/gpu/gputest"
	"giftex/internal/graphics/renderer"
)

type recorder struct {
	name    string
	initErr error
	log     *[]string
	sizes   [][2]int
}

func (r *recorder) Initialize() error {
	*r.log = append(*r.log, "init "+r.name)
	return r.initErr
}

func (r *recorder) SetDimensions(w, h int) { r.sizes = append(r.sizes, [2]int{w, h}) }
func (r *recorder) Draw()                  { *r.log = append(*r.log, "draw "+r.name) }
func (r *recorder) Destroy()               { *r.log = append(*r.log, "destroy "+r.name) }

func TestRendererLifecycle(t *testing.T) {
	var log []string
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log}
	ctx := gputest.New()

	r, err := renderer.NewRenderer(ctx, a, b)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	r.UpdateViewport(640, 480)
	r.UpdateViewport(0, 0)
	r.Render()
	r.Dispose()

	want := []string{"init a", "init b", "draw a", "draw b", "destroy b", "destroy a"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}

	if len(a.sizes) != 1 || a.sizes[0] != [2]int{640, 480} {
		t.Errorf("sizes = %v, want one 640x480", a.sizes)
	}
	if len(ctx.Viewports) != 1 || ctx.Viewports[0] != [4]int32{0, 0, 640, 480} {
		t.Errorf("viewports = %v", ctx.Viewports)
	}
	if w, h := r.Viewport(); w != 640 || h != 480 {
		t.Errorf("Viewport() = %dx%d", w, h)
	}
	if len(ctx.Clears) != 1 || ctx.Clears[0] != gpu.ColorBufferBit {
		t.Errorf("clears = %v", ctx.Clears)
	}
	if ctx.ClearColors[0] != config.GetClearColor() {
		t.Errorf("clear color = %v", ctx.ClearColors[0])
	}
}

func TestRendererInitFailureRollsBack(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	a := &recorder{name: "a", log: &log}
	b := &recorder{name: "b", log: &log, initErr: boom}
	c := &recorder{name: "c", log: &log}

	_, err := renderer.NewRenderer(gputest.New(), a, b, c)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	want := []string{"init a", "init b", "destroy a"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}
