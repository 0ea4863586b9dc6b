// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command xrplayground runs the XR playground demo: a session-state
// driven frame loop rendering a cube world with controller, hand
// tracking, and tracker input, mirrored to a desktop window.
package main

import (
	"cogentcore.org/core/cli"
	"github.com/cogentxr/playground/glrender"
	"github.com/cogentxr/playground/glwindow"
	"github.com/cogentxr/playground/xr"
	"github.com/cogentxr/playground/xr/driver"
	"github.com/cogentxr/playground/xr/driver/simulated"
	"github.com/cogentxr/playground/xr/xrapp"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the xrplayground cli.
type Config struct {

	// FormFactor is the device form factor to request from the runtime.
	FormFactor xr.FormFactors `default:"head-mounted"`

	// ViewConfig is the primary view configuration.
	ViewConfig xr.ViewConfigs `default:"stereo"`

	// Space is the reference space poses are located against.
	Space xr.ReferenceSpaces `default:"space-local"`

	// Blend is the environment blend mode for submitted frames.
	Blend xr.BlendModes `default:"blend-opaque"`

	// HandVelocities requests velocities when locating hand poses.
	HandVelocities bool

	// JointVelocities requests per-joint velocities from hand tracking.
	JointVelocities bool

	// RefreshRate requests this display refresh rate in Hz; 0 leaves
	// the rate to the runtime.
	RefreshRate float32

	// Cubes is the number of cubes in the orbiting field.
	Cubes int `default:"12"`

	// Direction is the bouncing cube's movement pattern.
	Direction glrender.Directions `default:"diagonal"`

	// Headless runs without a mirror window or rendering, exercising
	// only the session and input loop.
	Headless bool

	// Width and Height are the mirror window size.
	Width  int `default:"1280"`
	Height int `default:"720"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("xrplayground", "An XR playground demo driven by the session state machine.")
	cli.Run(opts, &Config{}, Run)
}

// Run sets up the runtime, application, renderer, and mirror window,
// and runs the frame loop until the session exits.
func Run(c *Config) error { //cli:cmd -root
	rt, err := driver.New()
	if err != nil {
		return err
	}
	if sim, ok := rt.(*simulated.Runtime); ok {
		// give the simulated world something on the tracker paths
		sim.Connect("SIM-WAIST-1", xr.RoleWaist)
		sim.Connect("SIM-LFOOT-1", xr.RoleLeftFoot)
	}

	app := xrapp.New(rt, &xrapp.Config{
		FormFactor:      c.FormFactor,
		ViewConfig:      c.ViewConfig,
		ReferenceSpace:  c.Space,
		Blend:           c.Blend,
		HandVelocities:  c.HandVelocities,
		JointVelocities: c.JointVelocities,
		RefreshRate:     c.RefreshRate,
	})
	defer app.Destroy()

	if !c.Headless {
		rd := &glrender.Renderer{
			Cubes:     c.Cubes,
			Direction: c.Direction,
			NearZ:     app.Config.NearZ,
			FarZ:      app.Config.FarZ,
		}
		win, err := glwindow.New("XR Playground", c.Width, c.Height, rd)
		if err != nil {
			return err
		}
		app.Renderer = rd
		app.Window = win
	}

	if err := app.Init(); err != nil {
		return err
	}
	return app.Run()
}
