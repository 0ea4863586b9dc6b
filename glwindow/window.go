// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glwindow owns the desktop mirror window and its GL context,
// built on glfw. It implements [xrapp.Window]; creating the window makes
// its context current on the calling goroutine, which must stay locked
// to the OS thread for the life of the window.
package glwindow

import (
	"fmt"
	"runtime"

	"github.com/cogentxr/playground/glrender"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GL and glfw calls must all come from the main OS thread
	runtime.LockOSThread()
}

// Window is the glfw mirror window.
type Window struct {

	// Renderer draws the mirrored frame; it shares this window's context.
	Renderer *glrender.Renderer

	glw      *glfw.Window
	exit     bool
	exitSent bool
}

// New creates the window with a 4.1 core profile context and makes the
// context current.
func New(title string, width, height int, rd *glrender.Renderer) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	glw, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	glw.MakeContextCurrent()
	glfw.SwapInterval(0) // frame pacing comes from the runtime, not vsync

	w := &Window{Renderer: rd, glw: glw}
	glw.SetKeyCallback(func(gw *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.exit = true
		}
	})
	return w, nil
}

// PollEvents implements [xrapp.Window]. The exit request is reported
// exactly once; further polls return false while shutdown proceeds.
func (w *Window) PollEvents() bool {
	glfw.PollEvents()
	if (w.exit || w.glw.ShouldClose()) && !w.exitSent {
		w.exitSent = true
		return true
	}
	return false
}

// Present implements [xrapp.Window], mirroring the given frame texture.
func (w *Window) Present(texture uint32) {
	if w.Renderer != nil {
		fw, fh := w.glw.GetFramebufferSize()
		w.Renderer.Present(texture, fw, fh)
	}
	w.glw.SwapBuffers()
}

// Destroy implements [xrapp.Window].
func (w *Window) Destroy() {
	if w.Renderer != nil {
		w.Renderer.Destroy()
	}
	w.glw.Destroy()
	glfw.Terminate()
}
