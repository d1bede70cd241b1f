package graphics

import (
	"errors"
	"strings"
	"testing"

	"giftex/internal/graphics/gpu"
	"giftex/internal/graphics/gpu/gputest"
)

func TestNewShaderLinksEmbeddedSources(t *testing.T) {
	ctx := gputest.New()
	s, err := NewShader(ctx, QuadVertexShader, QuadFragmentShader)
	if err != nil {
		t.Fatalf("NewShader: %v", err)
	}
	if s.ID == 0 {
		t.Fatalf("program id is 0")
	}
	if n := ctx.Live("shader"); n != 0 {
		t.Errorf("%d shader objects left after link", n)
	}

	for _, name := range []string{"position", "coordinate"} {
		if _, err := s.Attrib(name); err != nil {
			t.Errorf("Attrib(%q): %v", name, err)
		}
	}
	for _, name := range []string{"texture", "texMatrix"} {
		if _, err := s.Uniform(name); err != nil {
			t.Errorf("Uniform(%q): %v", name, err)
		}
	}

	s.Delete()
	s.Delete()
	if n := ctx.Live("program"); n != 0 {
		t.Errorf("program still live after Delete")
	}
}

func TestEmbeddedSourcesDeclareNames(t *testing.T) {
	for _, name := range []string{"attribute vec4 position", "attribute vec4 coordinate", "uniform mediump mat4 texMatrix"} {
		if !strings.Contains(QuadVertexShader, name) {
			t.Errorf("vertex shader lacks %q", name)
		}
	}
	if !strings.Contains(QuadFragmentShader, "uniform sampler2D texture") {
		t.Errorf("fragment shader lacks the texture sampler")
	}
}

func TestCompileErrorCarriesLog(t *testing.T) {
	ctx := gputest.New()
	ctx.FailCompile[gpu.FragmentShader] = "ERROR: 0:4: 'texture2D' : no matching overloaded function"

	_, err := NewShader(ctx, QuadVertexShader, "broken")
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("err = %v, want ErrCompile", err)
	}
	if !strings.Contains(err.Error(), "fragment stage") || !strings.Contains(err.Error(), "no matching overloaded") {
		t.Errorf("error %q lacks stage or log", err)
	}
	if ctx.Live("shader")+ctx.Live("program") != 0 {
		t.Errorf("objects left after compile failure")
	}
}

func TestMissingLocation(t *testing.T) {
	ctx := gputest.New()
	s, err := NewShader(ctx, QuadVertexShader, QuadFragmentShader)
	if err != nil {
		t.Fatal(err)
	}
	ctx.Missing["gone"] = true
	if _, err := s.Attrib("gone"); !errors.Is(err, ErrMissingLocation) {
		t.Errorf("Attrib(gone) = %v, want ErrMissingLocation", err)
	}
	if _, err := s.Uniform("gone"); !errors.Is(err, ErrMissingLocation) {
		t.Errorf("Uniform(gone) = %v, want ErrMissingLocation", err)
	}
}

func TestNewFrameTexture(t *testing.T) {
	ctx := gputest.New()
	tex := NewFrameTexture(ctx, 48, 27)
	if ctx.BoundTexture != tex {
		t.Errorf("texture %d not left bound", tex)
	}
	if len(ctx.TexImages) != 1 {
		t.Fatalf("TexImage2D calls = %d", len(ctx.TexImages))
	}
	img := ctx.TexImages[0]
	if img.Width != 48 || img.Height != 27 || img.Pixels != nil {
		t.Errorf("storage = %+v", img)
	}
	if ctx.TexParams[gpu.TextureMinFilter] != gpu.Linear {
		t.Errorf("min filter = %#x", ctx.TexParams[gpu.TextureMinFilter])
	}
}
