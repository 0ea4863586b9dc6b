// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xrapp

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentxr/playground/xr"
)

// HandInput is one hand's input state for one frame.
type HandInput struct {

	// Pose is the hand pose action state; Location is only meaningful
	// when Pose.Active is set.
	Pose     xr.ActionState
	Location xr.SpaceLocation

	// Grab is the squeeze value driving grabbing and haptics.
	Grab xr.ActionState

	// Accelerate is the throttle value from the thumb input.
	Accelerate xr.ActionState

	// Joints is the articulated hand tracking result, nil when hand
	// tracking is unavailable or the locate failed this frame.
	Joints *xr.HandJoints
}

// Snapshot is the input state for exactly one frame, rebuilt from
// scratch every frame after the action sync: the renderer must never
// see a previous frame's values.
type Snapshot struct {

	// Frame is the frame counter the snapshot was taken for.
	Frame uint64

	// Time is the predicted display time all poses were located at.
	Time xr.Time

	// Hands is the per-hand input state.
	Hands [xr.NumHands]HandInput

	// Trackers are the auxiliary tracker slots; entries report
	// [TrackedDevice.Renderable] per this frame's sync.
	Trackers []*TrackedDevice
}

// grabHapticThreshold is the squeeze value beyond which a haptic pulse
// is applied each frame.
const grabHapticThreshold = 0.75

// syncInput performs the once-per-frame action sync and rebuilds the
// input snapshot at the given predicted display time. Individual query
// failures are recoverable: that value is skipped for this frame only.
func (a *App) syncInput(at xr.Time) {
	if err := a.Session.SyncActions(a.Gameplay, a.Trackers.Set); err != nil {
		errors.Log(xr.Recoverablef("failed to sync actions: %w", err))
	}

	snap := &Snapshot{Frame: a.frame, Time: at, Trackers: a.Trackers.Devices}
	for hand := range xr.NumHands {
		h := &snap.Hands[hand]
		path := xr.HandPaths[hand]

		var err error
		h.Pose, err = a.Session.ActionState(a.HandPose, path)
		if err != nil {
			errors.Log(xr.Recoverablef("failed to get hand pose state for %s: %w", path, err))
		} else if h.Pose.Active {
			h.Location, err = a.Session.LocateSpace(a.HandSpaces[hand], a.PlaySpace, at, a.Config.HandVelocities)
			if err != nil {
				errors.Log(xr.Recoverablef("failed to locate hand space for %s: %w", path, err))
				h.Location = xr.SpaceLocation{}
			}
		}

		h.Grab, err = a.Session.ActionState(a.Grab, path)
		if err != nil {
			errors.Log(xr.Recoverablef("failed to get grab state for %s: %w", path, err))
		}
		if h.Grab.Active && h.Grab.Value.Float > grabHapticThreshold {
			err = a.Session.ApplyHaptic(a.Haptic, path, 0.5, xr.HapticMinDuration, xr.HapticFrequencyUnspecified)
			if err != nil {
				errors.Log(xr.Recoverablef("failed to apply haptic feedback for %s: %w", path, err))
			}
		}

		h.Accelerate, err = a.Session.ActionState(a.Accelerate, path)
		if err != nil {
			errors.Log(xr.Recoverablef("failed to get accelerate state for %s: %w", path, err))
		}
		if h.Accelerate.Active && h.Accelerate.Value.Float != 0 {
			slog.Debug("throttle", "hand", path, "value", h.Accelerate.Value.Float,
				"changed", h.Accelerate.Changed)
		}

		if a.HandTrackers[hand] != nil {
			joints, err := a.HandTrackers[hand].LocateJoints(a.PlaySpace, at, a.Config.JointVelocities)
			if err != nil {
				errors.Log(xr.Recoverablef("failed to locate hand joints for %s: %w", path, err))
			} else {
				h.Joints = joints
			}
		}
	}

	a.Trackers.sync(a.Session, a.PlaySpace, at)
	a.Snapshot = snap
}
