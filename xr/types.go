// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

import (
	"time"

	"cogentcore.org/core/math32"
)

// Time is an opaque monotonic timestamp in nanoseconds, produced by the
// runtime's clock. A frame's predicted display time must be passed
// unmodified to every per-frame query (views, action spaces, hand joints)
// so that all poses within one frame are temporally consistent.
type Time int64

// Add returns the time offset by the given duration.
func (t Time) Add(d time.Duration) Time {
	return t + Time(d)
}

// Posef is a position and orientation in a reference space.
type Posef struct {
	Orientation math32.Quat
	Position    math32.Vector3
}

// IdentityPose returns the identity pose, used for creating reference
// spaces without an offset.
func IdentityPose() Posef {
	return Posef{Orientation: math32.Quat{W: 1}}
}

// Matrix4 returns the rigid transform matrix for this pose
// (rotation then translation, no scale).
func (p Posef) Matrix4() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(p.Position, p.Orientation, math32.Vec3(1, 1, 1))
	return m
}

// Fovf is an asymmetric field of view, as four half-angles in radians.
// Left and down are typically negative.
type Fovf struct {
	AngleLeft  float32
	AngleRight float32
	AngleUp    float32
	AngleDown  float32
}

// SymmetricFov returns a symmetric field of view with the given horizontal
// and vertical half-angles in radians.
func SymmetricFov(horiz, vert float32) Fovf {
	return Fovf{AngleLeft: -horiz, AngleRight: horiz, AngleUp: vert, AngleDown: -vert}
}

// View is one located view (e.g., one eye): its pose and field of view
// at a given display time.
type View struct {
	Pose Posef
	Fov  Fovf
}

// ViewConfigView is the runtime's static configuration for one view:
// recommended and maximum render target sizes and sample counts.
type ViewConfigView struct {
	RecommendedWidth   int
	RecommendedHeight  int
	MaxWidth           int
	MaxHeight          int
	RecommendedSamples int
	MaxSamples         int
}

// FrameTiming is produced fresh by each wait-for-frame call and is not
// persisted across iterations.
type FrameTiming struct {

	// PredictedDisplayTime is when the frame being prepared is predicted
	// to be displayed.
	PredictedDisplayTime Time

	// PredictedDisplayPeriod is the expected time between displayed frames.
	PredictedDisplayPeriod time.Duration

	// ShouldRender is false when the compositor does not need frame
	// content (e.g., while not visible); layers should not be submitted.
	ShouldRender bool
}

// SpaceLocation is the result of locating a space against a base space
// at a point in time.
type SpaceLocation struct {

	// Flags report which of the pose fields are valid and tracked.
	Flags LocationFlags

	// Pose is the located pose; only meaningful per Flags.
	Pose Posef

	// LinearVelocity is in meters per second; only set if velocity
	// was requested and VelocityValid is true.
	LinearVelocity math32.Vector3

	// AngularVelocity is in radians per second about each axis.
	AngularVelocity math32.Vector3

	// VelocityValid reports whether the velocity fields are usable.
	VelocityValid bool
}

// OrientationValid reports whether the orientation is usable.
func (l *SpaceLocation) OrientationValid() bool {
	return l.Flags.HasFlag(OrientationValid)
}

// Tracked reports whether the orientation is actively tracked, the
// stricter bit used to gate rendering of auxiliary tracker devices.
func (l *SpaceLocation) Tracked() bool {
	return l.Flags.HasFlag(OrientationTracked)
}

// HandJointCount is the number of joints reported by the hand tracking API.
const HandJointCount = 26

// HandJoints is one hand's joint locations for one frame.
type HandJoints struct {

	// Active reports whether the hand is currently being tracked at all.
	Active bool

	// Joints are the located joints, all at the same display time.
	Joints [HandJointCount]SpaceLocation

	// Radii are the joint radii in meters.
	Radii [HandJointCount]float32
}

// SystemInfo describes the system obtained for a form factor.
type SystemInfo struct {
	Name     string
	VendorID int

	// OrientationTracking and PositionTracking report base tracking support.
	OrientationTracking bool
	PositionTracking    bool

	// HandTracking reports whether this particular system supports the
	// hand tracking capability (the runtime may support the API while
	// the current device does not).
	HandTracking bool

	// MaxLayerCount is the maximum number of composition layers.
	MaxLayerCount int

	// MaxSwapchainWidth and MaxSwapchainHeight are image size limits.
	MaxSwapchainWidth  int
	MaxSwapchainHeight int
}
