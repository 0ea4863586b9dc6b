// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xrapp

import (
	"log/slog"

	"github.com/cogentxr/playground/xr"
)

// TrackedDevice is one auxiliary tracker role slot. Because actions
// cannot be created after the action sets are attached to the session,
// every possible role gets its own pose action and action space up
// front, and connect events only redirect which physical device (by
// persistent identity) currently backs the slot.
type TrackedDevice struct {

	// Role is the fixed role of this slot.
	Role xr.TrackerRoles

	// Persistent is the runtime-assigned identity of the physical device
	// currently assigned this role, or empty if none has been observed.
	// A device's persistent identity never changes once assigned, but
	// which role it backs can.
	Persistent string

	// Action is the pre-provisioned pose action for this role.
	Action *xr.Action

	// Space is the action space for the pose action.
	Space xr.Space

	// State is the action state as of the last sync.
	State xr.ActionState

	// Location is the located pose as of the last sync.
	Location xr.SpaceLocation
}

// Renderable reports whether this slot should be drawn: the pose action
// is active and the orientation is actively tracked, a stricter bit than
// the plain validity used for hand controllers.
func (td *TrackedDevice) Renderable() bool {
	return td.State.Active && td.Location.Tracked()
}

// TrackerRegistry maintains the fixed set of tracker role slots, indexed
// by role.
type TrackerRegistry struct {

	// Devices holds one entry per role other than [xr.RoleNone],
	// at index Role-1.
	Devices []*TrackedDevice

	// Set is the action set owning the per-role pose actions.
	Set *xr.ActionSet
}

// newTrackerRegistry pre-provisions one device slot, with its pose
// action, per known role.
func newTrackerRegistry() *TrackerRegistry {
	r := &TrackerRegistry{Set: xr.NewActionSet("trackers", "Tracker Poses", 0)}
	for role := xr.RoleNone + 1; role < xr.TrackerRolesN; role++ {
		ac := r.Set.AddAction(role.String()+"-pose", role.String()+" pose", xr.PoseAction, role.Path())
		r.Devices = append(r.Devices, &TrackedDevice{Role: role, Action: ac})
	}
	return r
}

// createSpaces creates the per-role action spaces; setup only.
func (r *TrackerRegistry) createSpaces(sess xr.Session) error {
	for _, td := range r.Devices {
		sp, err := sess.ActionSpace(td.Action, td.Role.Path(), xr.IdentityPose())
		if err != nil {
			return xr.Fatalf("failed to create action space for %s: %w", td.Role, err)
		}
		td.Space = sp
	}
	return nil
}

// ByRole returns the slot for the given role, or nil for [xr.RoleNone].
func (r *TrackerRegistry) ByRole(role xr.TrackerRoles) *TrackedDevice {
	if role <= xr.RoleNone || role >= xr.TrackerRolesN {
		return nil
	}
	return r.Devices[role-1]
}

// ByPersistent returns the slot currently backed by the device with the
// given persistent identity, or nil.
func (r *TrackerRegistry) ByPersistent(id string) *TrackedDevice {
	if id == "" {
		return nil
	}
	for _, td := range r.Devices {
		if td.Persistent == id {
			return td
		}
	}
	return nil
}

// Connect applies a device connect or role change notification.
// A device whose new role is [xr.RoleNone] is logged and ignored: no
// role action exists to bind it to, and actions cannot be created now.
// Otherwise the device's identity moves to the slot for the notified
// role, vacating any slot it previously backed; when both the identity
// and the role match existing but different slots, the role rule is
// applied last and wins.
func (r *TrackerRegistry) Connect(ev *xr.DeviceConnected) {
	if ev.Role == xr.RoleNone {
		slog.Info("tracker without a role connected, ignoring", "persistent", ev.Persistent)
		return
	}
	if prev := r.ByPersistent(ev.Persistent); prev != nil && prev.Role != ev.Role {
		// the device was reassigned, e.g., by the user in the runtime UI
		slog.Info("tracker role changed", "persistent", ev.Persistent,
			"from", prev.Role, "to", ev.Role)
		prev.Persistent = ""
	}
	td := r.ByRole(ev.Role)
	if td.Persistent != ev.Persistent {
		slog.Info("tracker connected", "role", td.Role, "persistent", ev.Persistent)
		td.Persistent = ev.Persistent
	}
}

// sync refreshes every slot's action state and, for active poses, its
// location at the given display time. Query failures skip that slot for
// this frame only.
func (r *TrackerRegistry) sync(sess xr.Session, base xr.Space, at xr.Time) {
	for _, td := range r.Devices {
		st, err := sess.ActionState(td.Action, td.Role.Path())
		if err != nil {
			slog.Debug("tracker action state query failed", "role", td.Role, "err", err)
			td.State = xr.ActionState{}
			continue
		}
		td.State = st
		if !st.Active {
			td.Location = xr.SpaceLocation{}
			continue
		}
		loc, err := sess.LocateSpace(td.Space, base, at, false)
		if err != nil {
			slog.Debug("tracker locate failed", "role", td.Role, "err", err)
			td.Location = xr.SpaceLocation{}
			continue
		}
		td.Location = loc
	}
}
