// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xrapp

import (
	"testing"

	"github.com/cogentxr/playground/xr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryProvisionsEveryRole(t *testing.T) {
	r := newTrackerRegistry()
	assert.Len(t, r.Devices, int(xr.TrackerRolesN)-1)
	for role := xr.RoleNone + 1; role < xr.TrackerRolesN; role++ {
		td := r.ByRole(role)
		require.NotNil(t, td)
		assert.Equal(t, role, td.Role)
		assert.NotNil(t, td.Action)
	}
	assert.Nil(t, r.ByRole(xr.RoleNone))
	assert.Len(t, r.Set.Actions, len(r.Devices))
}

func TestRegistryConnect(t *testing.T) {
	r := newTrackerRegistry()
	r.Connect(&xr.DeviceConnected{Persistent: "LHR-AAA", Role: xr.RoleWaist})
	assert.Equal(t, "LHR-AAA", r.ByRole(xr.RoleWaist).Persistent)
	assert.Same(t, r.ByRole(xr.RoleWaist), r.ByPersistent("LHR-AAA"))
}

func TestRegistryConnectRoleNoneIgnored(t *testing.T) {
	r := newTrackerRegistry()
	r.Connect(&xr.DeviceConnected{Persistent: "LHR-AAA", Role: xr.RoleNone})
	assert.Nil(t, r.ByPersistent("LHR-AAA"))
}

func TestRegistryRoleChangeMovesDevice(t *testing.T) {
	r := newTrackerRegistry()
	r.Connect(&xr.DeviceConnected{Persistent: "LHR-AAA", Role: xr.RoleLeftFoot})
	r.Connect(&xr.DeviceConnected{Persistent: "LHR-AAA", Role: xr.RoleRightFoot})

	// the device must back exactly one slot, its new role
	assert.Empty(t, r.ByRole(xr.RoleLeftFoot).Persistent)
	assert.Equal(t, "LHR-AAA", r.ByRole(xr.RoleRightFoot).Persistent)
}

func TestRegistryRoleTakeover(t *testing.T) {
	r := newTrackerRegistry()
	r.Connect(&xr.DeviceConnected{Persistent: "LHR-AAA", Role: xr.RoleWaist})
	r.Connect(&xr.DeviceConnected{Persistent: "LHR-BBB", Role: xr.RoleWaist})

	// the newer device wins the role; the older one no longer backs any slot
	assert.Equal(t, "LHR-BBB", r.ByRole(xr.RoleWaist).Persistent)
	assert.Nil(t, r.ByPersistent("LHR-AAA"))
}

func TestRegistrySyncSkipsInactive(t *testing.T) {
	a, rt := newTestApp(t)
	waist := a.Trackers.ByRole(xr.RoleWaist)
	rt.session.states[stateKey(waist.Action, xr.RoleWaist.Path())] = xr.ActionState{Active: true}

	a.Trackers.sync(a.Session, a.PlaySpace, 500)
	assert.True(t, waist.State.Active)
	assert.True(t, waist.Renderable())

	chest := a.Trackers.ByRole(xr.RoleChest)
	assert.False(t, chest.State.Active)
	assert.False(t, chest.Renderable())
}
