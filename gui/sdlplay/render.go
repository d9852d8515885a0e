// This file is part of Dashboy.
//
// Dashboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dashboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dashboy.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/tinworth/dashboy/curated"
	"github.com/tinworth/dashboy/hardware"
)

const vertexShader = `#version 150
uniform mat3 Proj;
in vec2 Position;
in vec2 UV;
out vec2 FragUV;
void main() {
	FragUV = UV;
	vec3 p = Proj * vec3(Position, 1.0);
	gl_Position = vec4(p.xy, 0.0, 1.0);
}
` + "\x00"

const fragmentShader = `#version 150
uniform sampler2D Texture;
in vec2 FragUV;
out vec4 OutColor;
void main() {
	OutColor = texture(Texture, FragUV);
}
` + "\x00"

// renderer owns the OpenGL state for the screen quad. all methods must be
// called with the GL context current.
type renderer struct {
	program uint32
	vao     uint32
	vbo     uint32
	texture uint32

	// attribute and uniform locations
	proj     int32
	position int32
	uv       int32
	texUnif  int32

	// current drawable size and the projection/vertices derived from it
	viewportW int32
	viewportH int32
	projMtx   [9]float32
	quad      [4]Vertex
}

func newRenderer() (*renderer, error) {
	rnd := &renderer{}

	var err error
	rnd.program, err = createProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	rnd.proj = gl.GetUniformLocation(rnd.program, gl.Str("Proj"+"\x00"))
	rnd.position = gl.GetAttribLocation(rnd.program, gl.Str("Position"+"\x00"))
	rnd.uv = gl.GetAttribLocation(rnd.program, gl.Str("UV"+"\x00"))
	rnd.texUnif = gl.GetUniformLocation(rnd.program, gl.Str("Texture"+"\x00"))

	// the screen texture. the screen image occupies only the top-left of it
	// and is addressed by the quad's texture coordinates
	gl.GenTextures(1, &rnd.texture)
	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGBA, textureWidth, textureHeight, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.GenVertexArrays(1, &rnd.vao)
	gl.BindVertexArray(rnd.vao)
	gl.GenBuffers(1, &rnd.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vbo)

	stride := int32(unsafe.Sizeof(Vertex{}))
	gl.EnableVertexAttribArray(uint32(rnd.position))
	gl.VertexAttribPointerWithOffset(uint32(rnd.position), 2, gl.FLOAT, false, stride, uintptr(0))
	gl.EnableVertexAttribArray(uint32(rnd.uv))
	gl.VertexAttribPointerWithOffset(uint32(rnd.uv), 2, gl.FLOAT, false, stride,
		unsafe.Offsetof(Vertex{}.TexCoord))

	return rnd, nil
}

func (rnd *renderer) destroy() {
	if rnd.vbo != 0 {
		gl.DeleteBuffers(1, &rnd.vbo)
		rnd.vbo = 0
	}
	if rnd.vao != 0 {
		gl.DeleteVertexArrays(1, &rnd.vao)
		rnd.vao = 0
	}
	if rnd.texture != 0 {
		gl.DeleteTextures(1, &rnd.texture)
		rnd.texture = 0
	}
	if rnd.program != 0 {
		gl.DeleteProgram(rnd.program)
		rnd.program = 0
	}
}

// setViewport recomputes the projection and the quad for a new drawable
// size and refills the vertex buffer.
func (rnd *renderer) setViewport(w int32, h int32) {
	rnd.viewportW = w
	rnd.viewportH = h
	rnd.projMtx = Projection(w, h)
	rnd.quad = ScreenQuad(w, h)

	gl.BindVertexArray(rnd.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, int(unsafe.Sizeof(rnd.quad)), gl.Ptr(rnd.quad[:]), gl.DYNAMIC_DRAW)
}

// upload copies the frame buffer into the screen image area of the
// texture.
func (rnd *renderer) upload(pixels []uint8) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		0, 0, hardware.ScreenWidth, hardware.ScreenHeight,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

// draw clears the viewport and renders the quad.
func (rnd *renderer) draw() {
	gl.Viewport(0, 0, rnd.viewportW, rnd.viewportH)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(rnd.program)
	gl.UniformMatrix3fv(rnd.proj, 1, false, &rnd.projMtx[0])
	gl.Uniform1i(rnd.texUnif, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.BindVertexArray(rnd.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// createProgram compiles and links the shader pair. the individual shaders
// are deleted once the program has linked.
func createProgram(vertSource string, fragSource string) (uint32, error) {
	compile := func(source string, shaderType uint32) (uint32, error) {
		handle := gl.CreateShader(shaderType)

		csource, free := gl.Strs(source)
		defer free()
		gl.ShaderSource(handle, 1, csource, nil)
		gl.CompileShader(handle)

		var isCompiled int32
		gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
		if isCompiled == 0 {
			var logLength int32
			gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(handle, logLength, &logLength, gl.Str(log))
			gl.DeleteShader(handle)
			return 0, curated.Errorf("shader compilation: %v", strings.TrimRight(log, "\x00"))
		}

		return handle, nil
	}

	vertHandle, err := compile(vertSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragHandle, err := compile(fragSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertHandle)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertHandle)
	gl.AttachShader(program, fragHandle)
	gl.LinkProgram(program)

	gl.DeleteShader(vertHandle)
	gl.DeleteShader(fragHandle)

	var isLinked int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &isLinked)
	if isLinked == 0 {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, &logLength, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, curated.Errorf("shader linking: %v", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}
