// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xr defines the types, enums, events, and action model for talking
// to an XR compositor runtime, along with the [Runtime], [Session], and
// [Swapchain] interfaces that a backend driver implements. The application
// core in [github.com/cogentxr/playground/xr/xrapp] is written entirely
// against these interfaces, so the same frame loop runs on any backend,
// including the pure-Go simulated runtime used for tests and headless runs.
package xr

//go:generate core generate

// Path is a semantic path string identifying an input sub-source,
// such as a hand or a tracker role, e.g., "/user/hand/left".
type Path string

// Standard user paths for the two hands.
const (
	PathLeftHand  Path = "/user/hand/left"
	PathRightHand Path = "/user/hand/right"
)

// Hand indexes for per-hand arrays.
const (
	LeftHand = iota
	RightHand
	NumHands
)

// HandPaths are the user paths for the two hands, indexed by hand.
var HandPaths = [NumHands]Path{PathLeftHand, PathRightHand}
