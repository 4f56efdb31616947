package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Shader modes, selected per draw command through the mode uniform.
const (
	modeColor    int32 = iota // vertex color only
	modeCoverage              // single-channel glyph coverage tinted by the vertex color
	modeTexture               // RGBA texture modulated by the vertex color
)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 inPos;
layout (location = 1) in vec2 inUV;
layout (location = 2) in vec4 inColor;

out vec2 fragUV;
out vec4 fragColor;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(inPos, 0.0, 1.0);
    fragUV = inUV;
    fragColor = inColor;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec2 fragUV;
in vec4 fragColor;

out vec4 outColor;

uniform sampler2D tex;
uniform int mode;

void main() {
    if (mode == 1) {
        outColor = vec4(fragColor.rgb, fragColor.a * texture(tex, fragUV).r);
    } else if (mode == 2) {
        outColor = texture(tex, fragUV) * fragColor;
    } else {
        outColor = fragColor;
    }
}
` + "\x00"

// program is the linked canvas shader with its uniform locations.
type program struct {
	id         uint32
	projection int32
	sampler    int32
	mode       int32
}

func newProgram() (*program, error) {
	vs, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)

	fs, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetProgramInfoLog(id, n, nil, &msg[0])
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("link: %s", msg)
	}

	return &program{
		id:         id,
		projection: gl.GetUniformLocation(id, gl.Str("projection\x00")),
		sampler:    gl.GetUniformLocation(id, gl.Str("tex\x00")),
		mode:       gl.GetUniformLocation(id, gl.Str("mode\x00")),
	}, nil
}

func (p *program) use(width, height int) {
	gl.UseProgram(p.id)
	proj := ortho(float32(width), float32(height))
	gl.UniformMatrix4fv(p.projection, 1, false, &proj[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(p.sampler, 0)
}

func (p *program) delete() {
	if p != nil && p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	src, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, src, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
		msg := make([]byte, n+1)
		gl.GetShaderInfoLog(shader, n, nil, &msg[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", msg)
	}
	return shader, nil
}

// ortho maps pixel coordinates with a top-left origin to clip space.
func ortho(width, height float32) [16]float32 {
	return [16]float32{
		2 / width, 0, 0, 0,
		0, -2 / height, 0, 0,
		0, 0, -1, 0,
		-1, 1, 0, 1,
	}
}

// glState is the slice of GL state Render changes, so a host that shares
// the context gets it back untouched.
type glState struct {
	program          int32
	blendSrc         int32
	blendDst         int32
	scissor          [4]int32
	vao              int32
	blend, depth     bool
	cull, scissoring bool
}

func captureState() glState {
	var s glState
	gl.GetIntegerv(gl.CURRENT_PROGRAM, &s.program)
	gl.GetIntegerv(gl.BLEND_SRC_ALPHA, &s.blendSrc)
	gl.GetIntegerv(gl.BLEND_DST_ALPHA, &s.blendDst)
	gl.GetIntegerv(gl.SCISSOR_BOX, &s.scissor[0])
	gl.GetIntegerv(gl.VERTEX_ARRAY_BINDING, &s.vao)
	s.blend = gl.IsEnabled(gl.BLEND)
	s.depth = gl.IsEnabled(gl.DEPTH_TEST)
	s.cull = gl.IsEnabled(gl.CULL_FACE)
	s.scissoring = gl.IsEnabled(gl.SCISSOR_TEST)
	return s
}

func (s glState) restore() {
	gl.UseProgram(uint32(s.program))
	gl.BlendFunc(uint32(s.blendSrc), uint32(s.blendDst))
	toggle(gl.BLEND, s.blend)
	toggle(gl.DEPTH_TEST, s.depth)
	toggle(gl.CULL_FACE, s.cull)
	toggle(gl.SCISSOR_TEST, s.scissoring)
	gl.Scissor(s.scissor[0], s.scissor[1], s.scissor[2], s.scissor[3])
	gl.BindVertexArray(uint32(s.vao))
}

func toggle(capability uint32, on bool) {
	if on {
		gl.Enable(capability)
	} else {
		gl.Disable(capability)
	}
}
