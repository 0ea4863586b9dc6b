// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

// EventTypes tags the runtime events that [Runtime.PollEvent] can return.
type EventTypes int32 //enums:enum

const (
	// UnknownEvent is an event type this application does not handle,
	// e.g., from an extension. It is logged and ignored, never an error.
	UnknownEvent EventTypes = iota

	// EventsLostType reports that the runtime's event queue overflowed.
	EventsLostType

	// InstanceLossPendingType reports that the entire runtime connection
	// is about to be lost; the application must shut down.
	InstanceLossPendingType

	// SessionStateChangedType reports a session lifecycle transition.
	SessionStateChangedType

	// ReferenceSpaceChangePendingType reports that the origin of a
	// reference space is about to change.
	ReferenceSpaceChangePendingType

	// InteractionProfileChangedType reports that the active interaction
	// profile changed for one or more sub-paths.
	InteractionProfileChangedType

	// DeviceConnectedType reports a vendor tracker device connecting or
	// changing role.
	DeviceConnectedType

	// RefreshRateChangedType reports a display refresh rate change.
	RefreshRateChangedType
)

// Event is a runtime event returned by [Runtime.PollEvent].
type Event interface {

	// EventType returns the tag used to dispatch the event.
	EventType() EventTypes
}

// EventsLost reports that the runtime dropped events. The lost events
// are not recoverable, so this is informational only.
type EventsLost struct {
	Count int
}

func (e *EventsLost) EventType() EventTypes { return EventsLostType }

// InstanceLossPending reports that the runtime connection is about to
// be lost at the given time. The application treats it as an immediate
// fatal shutdown.
type InstanceLossPending struct {
	LossTime Time
}

func (e *InstanceLossPending) EventType() EventTypes { return InstanceLossPendingType }

// SessionStateChanged reports a session lifecycle transition.
type SessionStateChanged struct {
	State SessionStates
	Time  Time
}

func (e *SessionStateChanged) EventType() EventTypes { return SessionStateChangedType }

// ReferenceSpaceChangePending reports that the given reference space
// origin is about to change at ChangeTime, with the new origin's pose
// in the old space if PoseValid.
type ReferenceSpaceChangePending struct {
	Space      ReferenceSpaces
	ChangeTime Time
	PoseValid  bool
	Pose       Posef
}

func (e *ReferenceSpaceChangePending) EventType() EventTypes { return ReferenceSpaceChangePendingType }

// InteractionProfileChanged reports that the active interaction profile
// changed for one or more sub-paths. It carries no payload; the current
// profile must be re-queried for every tracked sub-path.
type InteractionProfileChanged struct{}

func (e *InteractionProfileChanged) EventType() EventTypes { return InteractionProfileChangedType }

// DeviceConnected reports a vendor tracker device connecting, or an
// already-connected device changing role. Persistent is the opaque
// runtime-assigned identity, stable across sessions; Role is the role
// currently assigned to the device, possibly [RoleNone].
type DeviceConnected struct {
	Persistent string
	Role       TrackerRoles
}

func (e *DeviceConnected) EventType() EventTypes { return DeviceConnectedType }

// RefreshRateChanged reports a display refresh rate change, in Hz.
type RefreshRateChanged struct {
	From float32
	To   float32
}

func (e *RefreshRateChanged) EventType() EventTypes { return RefreshRateChangedType }
