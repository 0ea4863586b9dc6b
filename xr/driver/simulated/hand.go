// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulated

import (
	"fmt"

	"cogentcore.org/core/math32"
	"github.com/cogentxr/playground/xr"
)

// NewHandTracker implements [xr.HandTrackingAPI].
func (rt *Runtime) NewHandTracker(hand int) (xr.HandTracker, error) {
	if hand < 0 || hand >= xr.NumHands {
		return nil, fmt.Errorf("no such hand: %d", hand)
	}
	return &HandTracker{rt: rt, hand: hand}, nil
}

// HandTracker is the simulated articulated hand: joints are laid out
// along a small curl below the hand pose, flexing over time.
type HandTracker struct {
	rt        *Runtime
	hand      int
	destroyed bool
}

func (ht *HandTracker) LocateJoints(base xr.Space, at xr.Time, velocities bool) (*xr.HandJoints, error) {
	if ht.destroyed {
		return nil, fmt.Errorf("hand tracker is destroyed")
	}
	root := handPose(at, ht.hand)
	curl := 0.5 + 0.4*math32.Sin(seconds(at)*0.9)

	js := &xr.HandJoints{Active: true}
	for i := range xr.HandJointCount {
		f := float32(i) / float32(xr.HandJointCount-1)
		offset := math32.Vec3(0, -0.02*f*curl, -0.08*f).MulQuat(root.Orientation)
		js.Joints[i] = xr.SpaceLocation{
			Flags: trackedFlags(),
			Pose: xr.Posef{
				Orientation: root.Orientation,
				Position:    root.Position.Add(offset),
			},
		}
		if velocities {
			js.Joints[i].VelocityValid = true
			js.Joints[i].LinearVelocity = handVelocity(at, ht.hand)
		}
		js.Radii[i] = 0.008 + 0.012*(1-f)
	}
	return js, nil
}

func (ht *HandTracker) Destroy() error {
	if ht.destroyed {
		return fmt.Errorf("hand tracker already destroyed")
	}
	ht.destroyed = true
	return nil
}
