package graphics

import (
	_ "embed"
	"errors"
	"fmt"

	"giftex/internal/graphics/gpu"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrCompile is returned when a shader stage fails to compile.
	ErrCompile = errors.New("shader compile failed")
	// ErrLink is returned when the program fails to link.
	ErrLink = errors.New("program link failed")
	// ErrMissingLocation is returned when an attribute or uniform is not active.
	ErrMissingLocation = errors.New("shader location not found")
)

// Shader sources for the textured quad
var (
	//go:embed shaders/gif.vert
	QuadVertexShader string
	//go:embed shaders/gif.frag
	QuadFragmentShader string
)

// Shader represents a linked GL program
type Shader struct {
	ID  uint32
	ctx gpu.Context
}

// NewShader compiles and links a program from vertex and fragment source.
// Intermediate shader objects are deleted whether or not linking succeeds,
// and nothing is left allocated on failure.
func NewShader(ctx gpu.Context, vertexSrc, fragmentSrc string) (*Shader, error) {
	program, err := compileProgram(ctx, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Shader{ID: program, ctx: ctx}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	s.ctx.UseProgram(s.ID)
}

// Delete releases the program. The shader must not be used afterwards.
func (s *Shader) Delete() {
	if s.ID != 0 {
		s.ctx.DeleteProgram(s.ID)
		s.ID = 0
	}
}

// Attrib resolves an active vertex attribute by name.
func (s *Shader) Attrib(name string) (uint32, error) {
	loc := s.ctx.AttribLocation(s.ID, name)
	if loc < 0 {
		return 0, fmt.Errorf("attribute %q: %w", name, ErrMissingLocation)
	}
	return uint32(loc), nil
}

// Uniform resolves an active uniform by name.
func (s *Shader) Uniform(name string) (int32, error) {
	loc := s.ctx.UniformLocation(s.ID, name)
	if loc < 0 {
		return 0, fmt.Errorf("uniform %q: %w", name, ErrMissingLocation)
	}
	return loc, nil
}

// SetInt sets an integer uniform
func (s *Shader) SetInt(location, value int32) {
	s.ctx.Uniform1i(location, value)
}

// SetMatrix4 sets a 4x4 matrix uniform
func (s *Shader) SetMatrix4(location int32, m mgl32.Mat4) {
	s.ctx.UniformMatrix4fv(location, m)
}

// Helper functions
func compileProgram(ctx gpu.Context, vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(ctx, vertexSrc, gpu.VertexShader)
	if err != nil {
		return 0, fmt.Errorf("vertex stage: %w", err)
	}
	fragmentShader, err := compileShader(ctx, fragmentSrc, gpu.FragmentShader)
	if err != nil {
		ctx.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment stage: %w", err)
	}

	program := ctx.CreateProgram()
	ctx.AttachShader(program, vertexShader)
	ctx.AttachShader(program, fragmentShader)
	ctx.LinkProgram(program)
	ctx.DeleteShader(vertexShader)
	ctx.DeleteShader(fragmentShader)

	if ok, log := ctx.ProgramInfo(program); !ok {
		ctx.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrLink, log)
	}
	return program, nil
}

func compileShader(ctx gpu.Context, source string, shaderType uint32) (uint32, error) {
	shader := ctx.CreateShader(shaderType)
	ctx.ShaderSource(shader, source)
	ctx.CompileShader(shader)

	if ok, log := ctx.ShaderInfo(shader); !ok {
		ctx.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", ErrCompile, log)
	}
	return shader, nil
}
