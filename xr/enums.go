// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

// SessionStates are the lifecycle states of a compositor session.
// The runtime owns the state; the application only observes it through
// [SessionStateChanged] events and reacts per the lifecycle state diagram.
type SessionStates int32 //enums:enum

const (
	// SessionUnknown is the zero value, before any state event has arrived.
	SessionUnknown SessionStates = iota

	// SessionIdle means the session exists but the runtime does not want
	// frames from us; rendering is skipped.
	SessionIdle

	// SessionReady means the runtime is ready for the session to begin;
	// the application must call begin exactly once in response.
	SessionReady

	// SessionSynchronized means the session is synchronized with the
	// compositor frame timing, but not yet visible.
	SessionSynchronized

	// SessionVisible means the session content is visible to the user,
	// but is not receiving input focus.
	SessionVisible

	// SessionFocused means the session is visible and receives input.
	SessionFocused

	// SessionStopping means the runtime wants the session ended;
	// the application must call end exactly once in response.
	SessionStopping

	// SessionLossPending means the session is about to be lost and
	// must be destroyed.
	SessionLossPending

	// SessionExiting means the session is finished and must be destroyed;
	// the application should quit.
	SessionExiting
)

// FormFactors are the device form factors a system can be requested for.
type FormFactors int32 //enums:enum

const (
	// HeadMounted is a head-mounted display (HMD).
	HeadMounted FormFactors = iota

	// Handheld is a handheld device such as a phone or tablet.
	Handheld
)

// ViewConfigs are the supported view configurations.
type ViewConfigs int32 //enums:enum

const (
	// Mono renders a single view.
	Mono ViewConfigs = iota

	// Stereo renders one view per eye.
	Stereo
)

// NumViews returns the number of views for this view configuration.
func (vc ViewConfigs) NumViews() int {
	if vc == Stereo {
		return 2
	}
	return 1
}

// ReferenceSpaces are the well-known reference space types that poses
// can be located against.
type ReferenceSpaces int32 //enums:enum

const (
	// SpaceView tracks the viewer's head; poses are relative to the display.
	SpaceView ReferenceSpaces = iota

	// SpaceLocal is a world-locked space with its origin at the initial
	// viewer position.
	SpaceLocal

	// SpaceStage is a world-locked space with its origin on the floor at
	// the center of the configured play area.
	SpaceStage
)

// BlendModes control how submitted layers are blended with the user's
// view of the physical world.
type BlendModes int32 //enums:enum

const (
	// BlendOpaque replaces the user's view entirely (VR).
	BlendOpaque BlendModes = iota

	// BlendAdditive adds layer colors over the physical view (see-through AR).
	BlendAdditive

	// BlendAlpha alpha-blends layers over a passthrough view.
	BlendAlpha
)

// ActionTypes are the value types an input action can have. The type is
// fixed when the action is created and never changes.
type ActionTypes int32 //enums:enum

const (
	// BoolAction is a digital on/off input such as a button click.
	BoolAction ActionTypes = iota

	// FloatAction is a normalized analog input such as a trigger squeeze.
	FloatAction

	// Vector2Action is a 2D analog input such as a thumbstick.
	Vector2Action

	// PoseAction is a tracked pose input such as a controller grip.
	PoseAction

	// VibrationAction is a haptic output, not an input.
	VibrationAction
)

// TrackerRoles are the fixed role slots that auxiliary tracked devices
// can be assigned to. One pose action per role (other than [RoleNone])
// is created up front at setup, because actions cannot be created after
// the action sets are attached to the session.
type TrackerRoles int32 //enums:enum

const (
	// RoleNone means the device has no assigned role. No action exists
	// for it, so such devices cannot be tracked.
	RoleNone TrackerRoles = iota

	// RoleHandheldObject is a tracker mounted on a handheld object.
	RoleHandheldObject

	RoleLeftFoot
	RoleRightFoot
	RoleLeftShoulder
	RoleRightShoulder
	RoleLeftElbow
	RoleRightElbow
	RoleLeftKnee
	RoleRightKnee
	RoleWaist
	RoleChest
	RoleCamera
	RoleKeyboard
)

// trackerRolePaths uses the vendor path spellings, which do not match
// the enum string transform.
var trackerRolePaths = map[TrackerRoles]Path{
	RoleHandheldObject: "/user/vive_tracker_htcx/role/handheld_object",
	RoleLeftFoot:       "/user/vive_tracker_htcx/role/left_foot",
	RoleRightFoot:      "/user/vive_tracker_htcx/role/right_foot",
	RoleLeftShoulder:   "/user/vive_tracker_htcx/role/left_shoulder",
	RoleRightShoulder:  "/user/vive_tracker_htcx/role/right_shoulder",
	RoleLeftElbow:      "/user/vive_tracker_htcx/role/left_elbow",
	RoleRightElbow:     "/user/vive_tracker_htcx/role/right_elbow",
	RoleLeftKnee:       "/user/vive_tracker_htcx/role/left_knee",
	RoleRightKnee:      "/user/vive_tracker_htcx/role/right_knee",
	RoleWaist:          "/user/vive_tracker_htcx/role/waist",
	RoleChest:          "/user/vive_tracker_htcx/role/chest",
	RoleCamera:         "/user/vive_tracker_htcx/role/camera",
	RoleKeyboard:       "/user/vive_tracker_htcx/role/keyboard",
}

// Path returns the user path for this tracker role,
// e.g., "/user/vive_tracker_htcx/role/waist". It is empty for [RoleNone].
func (tr TrackerRoles) Path() Path {
	return trackerRolePaths[tr]
}

// Severities classify how an error affects the application.
type Severities int32 //enums:enum

const (
	// Informational errors are logged and require no corrective action.
	Informational Severities = iota

	// Recoverable errors abort only the current frame's data or view;
	// the loop continues.
	Recoverable

	// Fatal errors abort the frame loop; the application cleans up and exits.
	Fatal
)

// LocationFlags report the validity and tracking quality of a located pose.
// Valid bits mean the fields hold sensible values; tracked bits additionally
// mean the values come from live tracking rather than inference.
type LocationFlags int64 //enums:bitflag

const (
	// OrientationValid means the orientation is usable.
	OrientationValid LocationFlags = iota

	// PositionValid means the position is usable.
	PositionValid

	// OrientationTracked means the orientation is actively tracked.
	OrientationTracked

	// PositionTracked means the position is actively tracked.
	PositionTracked
)
