// Package gputest provides a recording gpu.Context for tests that run
// without a GL driver.
package gputest

import (
	"fmt"

	"giftex/internal/graphics/gpu"

	"github.com/go-gl/mathgl/mgl32"
)

// TexImage records one TexImage2D or TexSubImage2D call.
type TexImage struct {
	Texture       uint32
	Level         int32
	X, Y          int32
	Width, Height int32
	Format        uint32
	Type          uint32
	Pixels        []byte
}

// MatrixUpload records one UniformMatrix4fv call.
type MatrixUpload struct {
	Location int32
	Matrix   mgl32.Mat4
}

// DrawCall records one DrawArrays call.
type DrawCall struct {
	Mode         uint32
	First, Count int32
	Program      uint32
	Texture      uint32
}

// Context is a fake gpu.Context. Object names are allocated from a single
// counter so that a stale name is never reused within one test.
type Context struct {
	// FailCompile maps a shader kind to the info log its compile should fail with.
	FailCompile map[uint32]string
	// FailLink, when non-empty, makes every link fail with this log.
	FailLink string
	// Missing lists attribute or uniform names that resolve to -1.
	Missing map[string]bool

	Calls        []string
	TexParams    map[uint32]int32
	TexImages    []TexImage
	SubImages    []TexImage
	Matrices     []MatrixUpload
	Ints         map[int32]int32
	Buffers      map[uint32][]float32
	Attribs      map[uint32]AttribPointer
	Enabled      map[uint32]bool
	Draws        []DrawCall
	Viewports    [][4]int32
	ClearColors  [][4]float32
	Clears       []uint32
	BoundTexture uint32
	BoundBuffer  uint32
	Program      uint32

	next     uint32
	live     map[uint32]string
	sources  map[uint32]string
	kinds    map[uint32]uint32
	compiled map[uint32]bool
	attached map[uint32][]uint32
	linked   map[uint32]bool
	locs     map[string]int32
}

// AttribPointer records one VertexAttribPointer call.
type AttribPointer struct {
	Size   int32
	Type   uint32
	Stride int32
	Offset int32
	Buffer uint32
}

var _ gpu.Context = (*Context)(nil)

// New returns an empty fake context.
func New() *Context {
	return &Context{
		FailCompile: make(map[uint32]string),
		Missing:     make(map[string]bool),
		TexParams:   make(map[uint32]int32),
		Ints:        make(map[int32]int32),
		Buffers:     make(map[uint32][]float32),
		Attribs:     make(map[uint32]AttribPointer),
		Enabled:     make(map[uint32]bool),
		live:        make(map[uint32]string),
		sources:     make(map[uint32]string),
		kinds:       make(map[uint32]uint32),
		compiled:    make(map[uint32]bool),
		attached:    make(map[uint32][]uint32),
		linked:      make(map[uint32]bool),
		locs:        make(map[string]int32),
	}
}

// Live returns the number of objects of the given kind ("texture",
// "buffer", "shader", "program") that have been created and not deleted.
func (c *Context) Live(kind string) int {
	n := 0
	for _, k := range c.live {
		if k == kind {
			n++
		}
	}
	return n
}

// Source returns the source text last given to shader.
func (c *Context) Source(shader uint32) string {
	return c.sources[shader]
}

// Location returns the location handed out for name, or -1.
func (c *Context) Location(name string) int32 {
	if loc, ok := c.locs[name]; ok {
		return loc
	}
	return -1
}

func (c *Context) record(format string, args ...any) {
	c.Calls = append(c.Calls, fmt.Sprintf(format, args...))
}

func (c *Context) alloc(kind string) uint32 {
	c.next++
	c.live[c.next] = kind
	return c.next
}

func (c *Context) free(name uint32, kind string) {
	if c.live[name] == kind {
		delete(c.live, name)
	}
}

func (c *Context) GenTexture() uint32 {
	tex := c.alloc("texture")
	c.record("GenTexture() = %d", tex)
	return tex
}

func (c *Context) DeleteTexture(texture uint32) {
	c.record("DeleteTexture(%d)", texture)
	c.free(texture, "texture")
	if c.BoundTexture == texture {
		c.BoundTexture = 0
	}
}

func (c *Context) ActiveTexture(unit uint32) {
	c.record("ActiveTexture(%#x)", unit)
}

func (c *Context) BindTexture(target, texture uint32) {
	c.record("BindTexture(%#x, %d)", target, texture)
	c.BoundTexture = texture
}

func (c *Context) TexParameteri(target, pname uint32, param int32) {
	c.record("TexParameteri(%#x, %#x, %#x)", target, pname, param)
	c.TexParams[pname] = param
}

func (c *Context) TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte) {
	c.record("TexImage2D(%dx%d)", width, height)
	c.TexImages = append(c.TexImages, TexImage{
		Texture: c.BoundTexture, Level: level, Width: width, Height: height,
		Format: format, Type: xtype, Pixels: pixels,
	})
}

func (c *Context) TexSubImage2D(target uint32, level, x, y, width, height int32, format, xtype uint32, pixels []byte) {
	c.record("TexSubImage2D(%dx%d)", width, height)
	cp := make([]byte, len(pixels))
	copy(cp, pixels)
	c.SubImages = append(c.SubImages, TexImage{
		Texture: c.BoundTexture, Level: level, X: x, Y: y, Width: width, Height: height,
		Format: format, Type: xtype, Pixels: cp,
	})
}

func (c *Context) CreateShader(kind uint32) uint32 {
	s := c.alloc("shader")
	c.kinds[s] = kind
	c.record("CreateShader(%#x) = %d", kind, s)
	return s
}

func (c *Context) ShaderSource(shader uint32, source string) {
	c.sources[shader] = source
}

func (c *Context) CompileShader(shader uint32) {
	c.record("CompileShader(%d)", shader)
	_, fail := c.FailCompile[c.kinds[shader]]
	c.compiled[shader] = !fail
}

func (c *Context) ShaderInfo(shader uint32) (bool, string) {
	if c.compiled[shader] {
		return true, ""
	}
	return false, c.FailCompile[c.kinds[shader]]
}

func (c *Context) DeleteShader(shader uint32) {
	c.record("DeleteShader(%d)", shader)
	c.free(shader, "shader")
}

func (c *Context) CreateProgram() uint32 {
	p := c.alloc("program")
	c.record("CreateProgram() = %d", p)
	return p
}

func (c *Context) AttachShader(program, shader uint32) {
	c.attached[program] = append(c.attached[program], shader)
}

func (c *Context) LinkProgram(program uint32) {
	c.record("LinkProgram(%d)", program)
	ok := c.FailLink == ""
	for _, s := range c.attached[program] {
		ok = ok && c.compiled[s]
	}
	c.linked[program] = ok
}

func (c *Context) ProgramInfo(program uint32) (bool, string) {
	if c.linked[program] {
		return true, ""
	}
	return false, c.FailLink
}

func (c *Context) UseProgram(program uint32) {
	c.record("UseProgram(%d)", program)
	c.Program = program
}

func (c *Context) DeleteProgram(program uint32) {
	c.record("DeleteProgram(%d)", program)
	c.free(program, "program")
	if c.Program == program {
		c.Program = 0
	}
}

func (c *Context) location(program uint32, name string) int32 {
	if c.Missing[name] || !c.linked[program] {
		return -1
	}
	if loc, ok := c.locs[name]; ok {
		return loc
	}
	loc := int32(len(c.locs))
	c.locs[name] = loc
	return loc
}

func (c *Context) AttribLocation(program uint32, name string) int32 {
	return c.location(program, name)
}

func (c *Context) UniformLocation(program uint32, name string) int32 {
	return c.location(program, name)
}

func (c *Context) Uniform1i(location, v int32) {
	c.record("Uniform1i(%d, %d)", location, v)
	c.Ints[location] = v
}

func (c *Context) UniformMatrix4fv(location int32, m mgl32.Mat4) {
	c.record("UniformMatrix4fv(%d)", location)
	c.Matrices = append(c.Matrices, MatrixUpload{Location: location, Matrix: m})
}

func (c *Context) GenBuffer() uint32 {
	b := c.alloc("buffer")
	c.record("GenBuffer() = %d", b)
	return b
}

func (c *Context) DeleteBuffer(buffer uint32) {
	c.record("DeleteBuffer(%d)", buffer)
	c.free(buffer, "buffer")
	delete(c.Buffers, buffer)
}

func (c *Context) BindBuffer(target, buffer uint32) {
	c.record("BindBuffer(%#x, %d)", target, buffer)
	c.BoundBuffer = buffer
}

func (c *Context) BufferData(target uint32, data []float32, usage uint32) {
	c.record("BufferData(%d floats)", len(data))
	c.Buffers[c.BoundBuffer] = append([]float32(nil), data...)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, stride, offset int32) {
	c.record("VertexAttribPointer(%d, %d, %d)", index, size, offset)
	c.Attribs[index] = AttribPointer{Size: size, Type: xtype, Stride: stride, Offset: offset, Buffer: c.BoundBuffer}
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.record("EnableVertexAttribArray(%d)", index)
	c.Enabled[index] = true
}

func (c *Context) DrawArrays(mode uint32, first, count int32) {
	c.record("DrawArrays(%#x, %d, %d)", mode, first, count)
	c.Draws = append(c.Draws, DrawCall{Mode: mode, First: first, Count: count, Program: c.Program, Texture: c.BoundTexture})
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.record("Viewport(%d, %d, %d, %d)", x, y, width, height)
	c.Viewports = append(c.Viewports, [4]int32{x, y, width, height})
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.ClearColors = append(c.ClearColors, [4]float32{r, g, b, a})
}

func (c *Context) Clear(mask uint32) {
	c.record("Clear(%#x)", mask)
	c.Clears = append(c.Clears, mask)
}
