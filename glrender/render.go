// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glrender draws the demo scene with OpenGL 4.1 core: a floor,
// an orbiting cube field, a bouncing cube, hand and tracker cubes from
// the input snapshot, and the overlay quad. It implements
// [xrapp.Renderer] and must be used with a current GL context on the
// loop thread.
package glrender

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/cogentxr/playground/xr"
	"github.com/cogentxr/playground/xr/xrapp"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer implements [xrapp.Renderer]. Exported fields configure the
// scene and are read each frame.
type Renderer struct {

	// Cubes is the number of cubes in the orbiting field; 0 means a
	// default field.
	Cubes int

	// Direction is the bouncing cube's movement pattern.
	Direction Directions

	// NearZ and FarZ are the projection clip planes, matching the depth
	// range reported with submitted depth layers.
	NearZ float32
	FarZ  float32

	prog   uint32
	mvpU   int32
	colorU int32
	vao    uint32
	vbo    uint32

	quadProg   uint32
	quadAngleU int32
	quadColorU int32
	quadVAO    uint32

	presentProg uint32
	presentVAO  uint32

	// targets caches one framebuffer per texture name rendered to.
	targets map[uint32]*target

	inited bool
	failed bool
}

// target is a framebuffer wrapping one destination texture. When the
// texture name is not a live GL texture (a simulated swapchain), the
// target owns its own backing texture under that name's key instead.
type target struct {
	fbo    uint32
	color  uint32
	depth  uint32 // depth renderbuffer, 0 when external depth is attached
	width  int
	height int
}

// Init compiles the programs and uploads the cube mesh. It requires a
// current GL context; [Renderer.RenderView] calls it on first use.
func (rd *Renderer) Init() error {
	if rd.inited {
		return nil
	}
	if rd.NearZ == 0 {
		rd.NearZ = 0.01
	}
	if rd.FarZ == 0 {
		rd.FarZ = 100
	}
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize GL: %w", err)
	}

	var err error
	if rd.prog, err = newProgram("cube", cubeVertex, cubeFragment); err != nil {
		return err
	}
	rd.mvpU = gl.GetUniformLocation(rd.prog, gl.Str("mvp\x00"))
	rd.colorU = gl.GetUniformLocation(rd.prog, gl.Str("color\x00"))

	if rd.quadProg, err = newProgram("quad", quadVertex, quadFragment); err != nil {
		return err
	}
	rd.quadAngleU = gl.GetUniformLocation(rd.quadProg, gl.Str("angle\x00"))
	rd.quadColorU = gl.GetUniformLocation(rd.quadProg, gl.Str("color\x00"))

	if rd.presentProg, err = newProgram("present", presentVertex, presentFragment); err != nil {
		return err
	}

	verts := cubeVerts()
	gl.GenVertexArrays(1, &rd.vao)
	gl.BindVertexArray(rd.vao)
	gl.GenBuffers(1, &rd.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rd.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	pos := uint32(gl.GetAttribLocation(rd.prog, gl.Str("pos\x00")))
	gl.EnableVertexAttribArray(pos)
	gl.VertexAttribPointerWithOffset(pos, 3, gl.FLOAT, false, 6*4, 0)
	normal := uint32(gl.GetAttribLocation(rd.prog, gl.Str("normal\x00")))
	gl.EnableVertexAttribArray(normal)
	gl.VertexAttribPointerWithOffset(normal, 3, gl.FLOAT, false, 6*4, 3*4)
	gl.BindVertexArray(0)

	// attribute-less draws still need a bound VAO in core profile
	gl.GenVertexArrays(1, &rd.quadVAO)
	gl.GenVertexArrays(1, &rd.presentVAO)

	rd.targets = map[uint32]*target{}
	rd.inited = true
	return nil
}

// ensure returns the render target for the given texture name and size,
// creating or resizing its framebuffer as needed. An external depth
// texture is attached when given and live; otherwise the target keeps
// its own depth renderbuffer.
func (rd *Renderer) ensure(name uint32, width, height int, depthTex uint32) *target {
	t := rd.targets[name]
	if t != nil && t.width == width && t.height == height {
		gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)
		return t
	}
	if t != nil {
		rd.release(t, name)
	}
	t = &target{width: width, height: height}
	gl.GenFramebuffers(1, &t.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo)

	if gl.IsTexture(name) {
		t.color = name
	} else {
		gl.GenTextures(1, &t.color)
		gl.BindTexture(gl.TEXTURE_2D, t.color)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.SRGB8_ALPHA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(nil))
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	}
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.color, 0)

	if depthTex != 0 && gl.IsTexture(depthTex) {
		gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_2D, depthTex, 0)
	} else {
		gl.GenRenderbuffers(1, &t.depth)
		gl.BindRenderbuffer(gl.RENDERBUFFER, t.depth)
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, t.depth)
	}

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		errors.Log(fmt.Errorf("framebuffer for texture %d is incomplete: status %#x", name, status))
	}
	rd.targets[name] = t
	return t
}

// release deletes a target's GL resources.
func (rd *Renderer) release(t *target, name uint32) {
	if t.color != name {
		gl.DeleteTextures(1, &t.color)
	}
	if t.depth != 0 {
		gl.DeleteRenderbuffers(1, &t.depth)
	}
	gl.DeleteFramebuffers(1, &t.fbo)
	delete(rd.targets, name)
}

// initOnce initializes on first use; after one failure rendering is
// disabled rather than retrying and logging every frame.
func (rd *Renderer) initOnce() bool {
	if rd.inited {
		return true
	}
	if rd.failed {
		return false
	}
	if err := rd.Init(); err != nil {
		errors.Log(err)
		rd.failed = true
		return false
	}
	return true
}

// RenderView implements [xrapp.Renderer].
func (rd *Renderer) RenderView(view, width, height int, color, depth uint32, v xr.View, at xr.Time, snap *xrapp.Snapshot) {
	if !rd.initOnce() {
		return
	}
	rd.ensure(color, width, height, depth)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.1, 0.12, 0.18, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	proj := projectionFromFov(v.Fov, rd.NearZ, rd.FarZ)
	eye := viewFromPose(v.Pose)
	var vp math32.Matrix4
	vp.MulMatrices(&proj, &eye)

	gl.UseProgram(rd.prog)
	gl.BindVertexArray(rd.vao)
	rd.drawScene(&vp, at, snap)
	gl.BindVertexArray(0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// RenderQuad implements [xrapp.Renderer]: a rotating triangle over a
// slowly cycling background.
func (rd *Renderer) RenderQuad(width, height int, texture uint32, at xr.Time) {
	if !rd.initOnce() {
		return
	}
	rd.ensure(texture, width, height, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Disable(gl.DEPTH_TEST)

	t := float32(float64(at) / 1e9)
	gl.ClearColor(0.2+0.1*math32.Sin(t*0.5), 0.2, 0.3, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(rd.quadProg)
	gl.Uniform1f(rd.quadAngleU, t)
	gl.Uniform3f(rd.quadColorU, 0.9, 0.8, 0.2)
	gl.BindVertexArray(rd.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Present draws the target for the given texture name to the currently
// bound (default) framebuffer, for the desktop mirror window.
func (rd *Renderer) Present(texture uint32, width, height int) {
	if !rd.inited {
		return
	}
	t := rd.targets[texture]
	if t == nil {
		return
	}
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Disable(gl.DEPTH_TEST)
	gl.UseProgram(rd.presentProg)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.color)
	gl.BindVertexArray(rd.presentVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Destroy releases all GL resources; the context must still be current.
func (rd *Renderer) Destroy() {
	if !rd.inited {
		return
	}
	for name, t := range rd.targets {
		rd.release(t, name)
	}
	gl.DeleteBuffers(1, &rd.vbo)
	gl.DeleteVertexArrays(1, &rd.vao)
	gl.DeleteVertexArrays(1, &rd.quadVAO)
	gl.DeleteVertexArrays(1, &rd.presentVAO)
	gl.DeleteProgram(rd.prog)
	gl.DeleteProgram(rd.quadProg)
	gl.DeleteProgram(rd.presentProg)
	rd.inited = false
}
