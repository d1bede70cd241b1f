// Package gpu describes the slice of OpenGL ES 2 state the renderer touches.
//
// Renderables receive a Context explicitly instead of calling into a global
// binding, so two features sharing one GL context never depend on what the
// other left bound. Every method must be called on the thread that owns the
// context.
package gpu

import "github.com/go-gl/mathgl/mgl32"

// GL enum values used by the renderer. They match the OpenGL ES 2.0 headers.
const (
	Texture2D        uint32 = 0x0DE1
	Texture0         uint32 = 0x84C0
	TextureMinFilter uint32 = 0x2801
	TextureMagFilter uint32 = 0x2800
	TextureWrapS     uint32 = 0x2802
	TextureWrapT     uint32 = 0x2803
	Linear           int32  = 0x2601
	ClampToEdge      int32  = 0x812F

	RGBA         uint32 = 0x1908
	UnsignedByte uint32 = 0x1401
	Float        uint32 = 0x1406

	VertexShader   uint32 = 0x8B31
	FragmentShader uint32 = 0x8B30

	ArrayBuffer uint32 = 0x8892
	StaticDraw  uint32 = 0x88E4

	TriangleStrip  uint32 = 0x0005
	ColorBufferBit uint32 = 0x4000
)

// Context is an OpenGL ES 2 context that is current on the calling thread.
type Context interface {
	GenTexture() uint32
	DeleteTexture(texture uint32)
	ActiveTexture(unit uint32)
	BindTexture(target, texture uint32)
	TexParameteri(target, pname uint32, param int32)
	// TexImage2D allocates storage. pixels may be nil for empty contents.
	TexImage2D(target uint32, level, internalFormat, width, height int32, format, xtype uint32, pixels []byte)
	// TexSubImage2D overwrites a region of existing storage.
	TexSubImage2D(target uint32, level, x, y, width, height int32, format, xtype uint32, pixels []byte)

	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	// ShaderInfo reports the compile status and the driver's info log.
	ShaderInfo(shader uint32) (compiled bool, log string)
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	// ProgramInfo reports the link status and the driver's info log.
	ProgramInfo(program uint32) (linked bool, log string)
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// AttribLocation and UniformLocation return -1 for unknown names.
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32
	Uniform1i(location, v int32)
	UniformMatrix4fv(location int32, m mgl32.Mat4)

	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	// VertexAttribPointer reads from the bound array buffer at a byte offset.
	VertexAttribPointer(index uint32, size int32, xtype uint32, stride, offset int32)
	EnableVertexAttribArray(index uint32)
	DrawArrays(mode uint32, first, count int32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
}
