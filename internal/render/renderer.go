// Package render draws the intersection's zone grid and vehicle boxes with
// a minimal OpenGL pipeline adapted from the teacher's chunk/sprite
// renderer (internal/game/renderer.go in the source repo), stripped of
// texture atlases, particles, and lighting since the simulation has no
// sprite art to load.
package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Color is a flat RGBA fill in the 0..1 range.
type Color struct {
	R, G, B, A float32
}

var (
	ColorZoneFree            = Color{0.16, 0.16, 0.18, 1}
	ColorZoneReservedWaiting = Color{0.55, 0.45, 0.10, 1}
	ColorZoneActive          = Color{0.70, 0.15, 0.15, 1}

	ColorVehicleNormal   = Color{0.15, 0.55, 0.85, 1}
	ColorVehicleBraking  = Color{0.90, 0.70, 0.10, 1}
	ColorVehicleCollided = Color{0.85, 0.10, 0.10, 1}
)

// Renderer owns the quad shader program and its static unit-quad geometry.
type Renderer struct {
	program uint32
	vao     uint32
	vbo     uint32

	uOrigin     int32
	uSize       int32
	uResolution int32
	uColor      int32

	fbW, fbH int32
}

// NewRenderer compiles the quad shader and uploads the unit-square geometry
// shared by every draw call. The renderer only ever builds this one
// program, so the compile/link steps live here rather than behind
// general-purpose helpers.
func NewRenderer() (*Renderer, error) {
	compile := func(source string, shaderType uint32) (uint32, error) {
		shader := gl.CreateShader(shaderType)
		csources, free := gl.Strs(source)
		gl.ShaderSource(shader, 1, csources, nil)
		free()
		gl.CompileShader(shader)

		var status int32
		gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
		if status == gl.FALSE {
			var logLen int32
			gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
			buf := strings.Repeat("\x00", int(logLen+1))
			gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
			gl.DeleteShader(shader)
			return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
		}
		return shader, nil
	}

	vs, err := compile(quadVertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	fs, err := compile(quadFragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, fmt.Errorf("renderer: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var linkStatus int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &linkStatus)
	if linkStatus == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("renderer: link program: %s", strings.TrimRight(buf, "\x00"))
	}

	quad := []float32{
		0, 0,
		1, 0,
		1, 1,
		0, 0,
		1, 1,
		0, 1,
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	return &Renderer{
		program:     program,
		vao:         vao,
		vbo:         vbo,
		uOrigin:     gl.GetUniformLocation(program, gl.Str("uOrigin\x00")),
		uSize:       gl.GetUniformLocation(program, gl.Str("uSize\x00")),
		uResolution: gl.GetUniformLocation(program, gl.Str("uResolution\x00")),
		uColor:      gl.GetUniformLocation(program, gl.Str("uColor\x00")),
	}, nil
}

// Destroy releases the GL objects the renderer owns.
func (r *Renderer) Destroy() {
	gl.DeleteProgram(r.program)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
}

// BeginFrame clears the framebuffer and records its size for the NDC
// projection used by every subsequent DrawQuad call this frame.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	r.fbW, r.fbH = int32(fbW), int32(fbH)
	gl.Viewport(0, 0, r.fbW, r.fbH)
	gl.ClearColor(0.05, 0.05, 0.06, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.Uniform2f(r.uResolution, float32(r.fbW), float32(r.fbH))
	gl.BindVertexArray(r.vao)
}

// DrawQuad fills an axis-aligned screen-space rectangle with a flat color.
func (r *Renderer) DrawQuad(x, y, w, h float32, c Color) {
	gl.Uniform2f(r.uOrigin, x, y)
	gl.Uniform2f(r.uSize, w, h)
	gl.Uniform4f(r.uColor, c.R, c.G, c.B, c.A)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// EndFrame unbinds the renderer's vertex array. Harmless to skip, but keeps
// GL state tidy between frames when other code shares the context.
func (r *Renderer) EndFrame() {
	gl.BindVertexArray(0)
}
