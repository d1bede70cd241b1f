// Package gifquad draws the current frame of an animated image as a
// screen-filling textured quad.
//
// A Drawer owns one texture and one program. The texture is sized to the
// frame source once and refreshed in place on every Draw; SetDimensions
// rebuilds the texture-coordinate transform that keeps the source aspect
// ratio inside the viewport.
package gifquad

import (
	"errors"
	"fmt"
	"log"

	"giftex/internal/graphics"
	"giftex/internal/graphics/gpu"
	"giftex/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// FrameSource supplies the pixels of the currently decoded frame.
// Width and Height must not change over the lifetime of the source.
type FrameSource interface {
	Width() int
	Height() int
	// UpdateTexture overwrites the bound texture at target and level with the
	// current frame in RGBA8 layout. It must not reallocate storage.
	UpdateTexture(ctx gpu.Context, target uint32, level int32)
	// Release frees the decode buffers.
	Release()
}

// ErrInitialized is returned by Initialize on a drawer that already ran it.
var ErrInitialized = errors.New("gifquad: already initialized")

// Attribute and uniform names in the quad shaders
const (
	PositionAttrib   = "position"
	CoordinateAttrib = "coordinate"
	TextureUniform   = "texture"
	TexMatrixUniform = "texMatrix"
)

// QuadVertices holds the triangle strip positions followed by the matching
// texture coordinates.
var QuadVertices = []float32{
	// position
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
	// coordinate
	0, 0,
	1, 0,
	0, 1,
	1, 1,
}

const (
	quadVertexCount  = 4
	coordinateOffset = 2 * quadVertexCount * 4 // bytes
)

type state int

const (
	stateNew state = iota
	stateReady
	stateDestroyed
)

// Drawer implements the textured-quad renderable.
type Drawer struct {
	// ReleaseGPU controls whether Destroy deletes the texture, buffer and
	// program in addition to releasing the frame source.
	ReleaseGPU bool

	ctx    gpu.Context
	source FrameSource
	width  int
	height int

	vertexSrc   string
	fragmentSrc string

	shader       *graphics.Shader
	texture      uint32
	quadVBO      uint32
	positionLoc  uint32
	coordLoc     uint32
	textureLoc   int32
	texMatrixLoc int32
	texMatrix    mgl32.Mat4

	state state
}

// NewDrawer creates a drawer for source. No GL calls are made until
// Initialize.
func NewDrawer(ctx gpu.Context, source FrameSource) (*Drawer, error) {
	if ctx == nil {
		return nil, errors.New("gifquad: nil context")
	}
	if source == nil {
		return nil, errors.New("gifquad: nil frame source")
	}
	w, h := source.Width(), source.Height()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("gifquad: invalid source size %dx%d", w, h)
	}
	return &Drawer{
		ReleaseGPU:  true,
		ctx:         ctx,
		source:      source,
		width:       w,
		height:      h,
		vertexSrc:   graphics.QuadVertexShader,
		fragmentSrc: graphics.QuadFragmentShader,
	}, nil
}

// Width returns the source width, which is also the texture width.
func (d *Drawer) Width() int { return d.width }

// Height returns the source height, which is also the texture height.
func (d *Drawer) Height() int { return d.height }

// TexMatrix returns the transform last uploaded by SetDimensions.
func (d *Drawer) TexMatrix() mgl32.Mat4 { return d.texMatrix }

// Initialize compiles the program, creates the texture and uploads the quad.
// A failure leaves no GL objects behind and the drawer uninitialized.
func (d *Drawer) Initialize() error {
	switch d.state {
	case stateReady:
		return ErrInitialized
	case stateDestroyed:
		return errors.New("gifquad: initialize after destroy")
	}

	shader, err := graphics.NewShader(d.ctx, d.vertexSrc, d.fragmentSrc)
	if err != nil {
		return fmt.Errorf("gifquad: %w", err)
	}
	if err := d.resolveLocations(shader); err != nil {
		shader.Delete()
		return fmt.Errorf("gifquad: %w", err)
	}
	d.shader = shader
	d.shader.Use()

	d.quadVBO = d.ctx.GenBuffer()
	d.ctx.BindBuffer(gpu.ArrayBuffer, d.quadVBO)
	d.ctx.BufferData(gpu.ArrayBuffer, QuadVertices, gpu.StaticDraw)
	d.bindQuad()
	d.shader.SetInt(d.textureLoc, 0)

	d.texture = graphics.NewFrameTexture(d.ctx, d.width, d.height)
	log.Printf("gifquad: allocated %dx%d RGBA texture (%d bytes)", d.width, d.height, d.width*d.height*4)

	d.state = stateReady
	return nil
}

func (d *Drawer) resolveLocations(shader *graphics.Shader) error {
	var err error
	if d.positionLoc, err = shader.Attrib(PositionAttrib); err != nil {
		return err
	}
	if d.coordLoc, err = shader.Attrib(CoordinateAttrib); err != nil {
		return err
	}
	if d.textureLoc, err = shader.Uniform(TextureUniform); err != nil {
		return err
	}
	if d.texMatrixLoc, err = shader.Uniform(TexMatrixUniform); err != nil {
		return err
	}
	return nil
}

// bindQuad points both attributes into the quad buffer, which must be bound.
func (d *Drawer) bindQuad() {
	d.ctx.VertexAttribPointer(d.positionLoc, 2, gpu.Float, 0, 0)
	d.ctx.EnableVertexAttribArray(d.positionLoc)
	d.ctx.VertexAttribPointer(d.coordLoc, 2, gpu.Float, 0, coordinateOffset)
	d.ctx.EnableVertexAttribArray(d.coordLoc)
}

// SetDimensions rebuilds the texture transform for a width x height viewport
// and uploads it. Non-positive sizes (a minimized window) keep the previous
// transform.
func (d *Drawer) SetDimensions(width, height int) {
	d.mustBeReady("SetDimensions")
	if width <= 0 || height <= 0 {
		return
	}
	d.texMatrix = graphics.TexMatrix(d.width, d.height, width, height)
	d.shader.Use()
	d.shader.SetMatrix4(d.texMatrixLoc, d.texMatrix)
}

// Draw copies the source's current frame into the texture and draws the quad.
// The transform is not uploaded here.
func (d *Drawer) Draw() {
	d.mustBeReady("Draw")
	defer profiling.Track("gifquad.Draw")()

	d.shader.Use()
	d.ctx.ActiveTexture(gpu.Texture0)
	d.ctx.BindTexture(gpu.Texture2D, d.texture)
	d.ctx.BindBuffer(gpu.ArrayBuffer, d.quadVBO)
	d.bindQuad()

	d.source.UpdateTexture(d.ctx, gpu.Texture2D, 0)
	d.ctx.DrawArrays(gpu.TriangleStrip, 0, quadVertexCount)
}

// Destroy releases the frame source and, when ReleaseGPU is set, the GL
// objects. Calls after the first do nothing.
func (d *Drawer) Destroy() {
	if d.state == stateDestroyed {
		return
	}
	d.source.Release()
	if d.state == stateReady && d.ReleaseGPU {
		d.ctx.DeleteTexture(d.texture)
		d.ctx.DeleteBuffer(d.quadVBO)
		d.shader.Delete()
		d.texture, d.quadVBO = 0, 0
	}
	d.state = stateDestroyed
}

func (d *Drawer) mustBeReady(op string) {
	switch d.state {
	case stateNew:
		panic("gifquad: " + op + " called before Initialize")
	case stateDestroyed:
		panic("gifquad: " + op + " called after Destroy")
	}
}
