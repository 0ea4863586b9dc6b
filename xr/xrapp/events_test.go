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

func TestDrainEmptiesQueueInOrder(t *testing.T) {
	a, rt := newTestApp(t)

	rt.pushState(xr.SessionIdle, xr.SessionReady)
	rt.push(&xr.EventsLost{Count: 3})
	require.NoError(t, a.drainEvents())
	assert.Empty(t, rt.events)
	assert.Equal(t, xr.SessionReady, a.mach.State)
}

func TestDrainStopsOnInstanceLoss(t *testing.T) {
	a, rt := newTestApp(t)
	rt.pushState(xr.SessionIdle, xr.SessionReady, xr.SessionFocused)
	require.NoError(t, a.drainEvents())

	// events queued after the loss must not be processed: the loop stops
	// immediately rather than finishing the drain
	rt.push(&xr.InstanceLossPending{LossTime: 42})
	rt.pushState(xr.SessionStopping)
	require.NoError(t, a.drainEvents())
	assert.True(t, a.quit)
	assert.Len(t, rt.events, 1)
	assert.Equal(t, 0, rt.session.count("end"))
}

func TestDrainPollErrorIsFatal(t *testing.T) {
	a, rt := newTestApp(t)
	rt.pollErr = assert.AnError
	err := a.drainEvents()
	require.Error(t, err)
	assert.True(t, xr.IsFatal(err))
}

func TestUnknownEventIgnored(t *testing.T) {
	a, rt := newTestApp(t)
	rt.push(&xr.InteractionProfileChanged{}, &xr.RefreshRateChanged{From: 90, To: 120})
	require.NoError(t, a.drainEvents())
	assert.False(t, a.quit)
}

func TestProfileUpdateTracksChanges(t *testing.T) {
	a, rt := newTestApp(t)
	rt.session.profiles[xr.PathLeftHand] = "/interaction_profiles/khr/simple_controller"

	rt.push(&xr.InteractionProfileChanged{})
	require.NoError(t, a.drainEvents())
	assert.Equal(t, "/interaction_profiles/khr/simple_controller", a.Profiles[xr.PathLeftHand])
	assert.Empty(t, a.Profiles[xr.PathRightHand])

	// a re-notification with the same profile must not lose the entry
	rt.push(&xr.InteractionProfileChanged{})
	require.NoError(t, a.drainEvents())
	assert.Equal(t, "/interaction_profiles/khr/simple_controller", a.Profiles[xr.PathLeftHand])

	rt.session.profiles[xr.PathLeftHand] = "/interaction_profiles/valve/index_controller"
	rt.push(&xr.InteractionProfileChanged{})
	require.NoError(t, a.drainEvents())
	assert.Equal(t, "/interaction_profiles/valve/index_controller", a.Profiles[xr.PathLeftHand])
}

func TestDeviceConnectedEventReachesRegistry(t *testing.T) {
	a, rt := newTestApp(t)
	rt.push(&xr.DeviceConnected{Persistent: "LHR-1", Role: xr.RoleWaist})
	require.NoError(t, a.drainEvents())
	assert.Equal(t, "LHR-1", a.Trackers.ByRole(xr.RoleWaist).Persistent)
}
