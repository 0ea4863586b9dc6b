// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glrender

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// cubeVertex transforms the shared cube mesh and passes the normal
// through for per-face lighting.
const cubeVertex = `#version 410
uniform mat4 mvp;
in vec3 pos;
in vec3 normal;
out vec3 vNormal;
void main() {
	vNormal = normal;
	gl_Position = mvp * vec4(pos, 1.0);
}
` + "\x00"

// cubeFragment lights the uniform color with a fixed directional light.
const cubeFragment = `#version 410
uniform vec3 color;
in vec3 vNormal;
out vec4 fragColor;
void main() {
	vec3 light = normalize(vec3(0.4, 1.0, 0.6));
	float diff = 0.4 + 0.6 * max(dot(normalize(vNormal), light), 0.0);
	fragColor = vec4(color * diff, 1.0);
}
` + "\x00"

// quadVertex emits a rotating triangle from gl_VertexID, no buffers.
const quadVertex = `#version 410
uniform float angle;
void main() {
	float a = angle + float(gl_VertexID) * 2.0943951; // 2*pi/3
	gl_Position = vec4(0.7 * cos(a), 0.7 * sin(a), 0.0, 1.0);
}
` + "\x00"

const quadFragment = `#version 410
uniform vec3 color;
out vec4 fragColor;
void main() {
	fragColor = vec4(color, 1.0);
}
` + "\x00"

// presentVertex covers the viewport with one big triangle from
// gl_VertexID, flipping Y so the texture appears upright in the window.
const presentVertex = `#version 410
out vec2 vTex;
void main() {
	vec2 p = vec2(float((gl_VertexID << 1) & 2), float(gl_VertexID & 2));
	vTex = vec2(p.x, 1.0 - p.y);
	gl_Position = vec4(p * 2.0 - 1.0, 0.0, 1.0);
}
` + "\x00"

const presentFragment = `#version 410
uniform sampler2D tex;
in vec2 vTex;
out vec4 fragColor;
void main() {
	fragColor = texture(tex, vTex);
}
` + "\x00"

// compileShader compiles one null-terminated GLSL 410 source.
func compileShader(typ uint32, src string) (uint32, error) {
	handle := gl.CreateShader(typ)
	csources, free := gl.Strs(src)
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("failed to compile shader: %v", msg)
	}
	return handle, nil
}

// newProgram compiles and links a vertex + fragment shader pair.
// The shaders are deleted after linking either way.
func newProgram(name, vertex, fragment string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertex)
	if err != nil {
		return 0, fmt.Errorf("%s vertex: %w", name, err)
	}
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragment)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, fmt.Errorf("%s fragment: %w", name, err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(prog, logLength, nil, gl.Str(msg))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("failed to link %s: %v", name, msg)
	}
	return prog, nil
}
