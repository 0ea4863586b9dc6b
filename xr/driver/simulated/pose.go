// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulated

import (
	"cogentcore.org/core/math32"
	"github.com/cogentxr/playground/xr"
)

// eyeHeight and eyeSeparation set the simulated standing viewpoint.
const (
	eyeHeight     = 1.6
	eyeSeparation = 0.064
)

// seconds converts a runtime timestamp to seconds, the animation clock.
func seconds(at xr.Time) float32 {
	return float32(float64(at) / 1e9)
}

// wave is the float action animation: a slow 0..1 pulse, phase shifted
// per hand and per action so values differ but stay deterministic. It
// spends part of each cycle above typical grab thresholds.
func wave(at xr.Time, hand, phase int) float32 {
	t := seconds(at)*0.7 + float32(hand)*1.7 + float32(phase)*0.3
	v := 0.5 + 0.5*math32.Sin(t)
	return v * v
}

// circle is the 2D action animation: a point orbiting at the given
// radius.
func circle(at xr.Time, radius float32) math32.Vector2 {
	t := seconds(at)
	return math32.Vec2(radius*math32.Cos(t), radius*math32.Sin(t))
}

// headPose is the simulated head: standing at eye height, swaying and
// yawing gently.
func headPose(at xr.Time) xr.Posef {
	t := seconds(at)
	return xr.Posef{
		Orientation: math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), 0.1*math32.Sin(t*0.4)),
		Position:    math32.Vec3(0.02*math32.Sin(t*0.3), eyeHeight+0.01*math32.Sin(t*0.9), 0),
	}
}

// eyeView offsets the head pose sideways for one of n views and applies
// a typical HMD field of view.
func eyeView(at xr.Time, i, n int) xr.View {
	head := headPose(at)
	if n > 1 {
		side := float32(i)*eyeSeparation - eyeSeparation*float32(n-1)/2
		offset := math32.Vec3(side, 0, 0).MulQuat(head.Orientation)
		head.Position.SetAdd(offset)
	}
	return xr.View{Pose: head, Fov: xr.SymmetricFov(math32.Pi/4, math32.Pi/4)}
}

// handPose animates the hands in small circles in front of the head.
func handPose(at xr.Time, hand int) xr.Posef {
	t := seconds(at)
	side := float32(-1)
	if hand == xr.RightHand {
		side = 1
		t += math32.Pi / 3
	}
	return xr.Posef{
		Orientation: math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), 0.3*math32.Sin(t)),
		Position: math32.Vec3(
			side*0.25+0.05*math32.Cos(t),
			eyeHeight-0.4+0.05*math32.Sin(t),
			-0.4,
		),
	}
}

// handVelocity is the analytic derivative of the hand circle.
func handVelocity(at xr.Time, hand int) math32.Vector3 {
	t := seconds(at)
	if hand == xr.RightHand {
		t += math32.Pi / 3
	}
	return math32.Vec3(-0.05*math32.Sin(t), 0.05*math32.Cos(t), 0)
}

// trackerPose places each tracker role at a fixed point around the
// user, bobbing slightly so motion is visible.
func trackerPose(at xr.Time, role xr.TrackerRoles) xr.Posef {
	t := seconds(at)
	angle := float32(role) * (2 * math32.Pi / float32(xr.TrackerRolesN))
	return xr.Posef{
		Orientation: math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), angle),
		Position: math32.Vec3(
			0.8*math32.Sin(angle),
			0.5+0.02*math32.Sin(t+angle),
			-0.8*math32.Cos(angle),
		),
	}
}
