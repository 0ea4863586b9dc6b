// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulated

import (
	"testing"

	"github.com/cogentxr/playground/xr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drainStates polls all pending events and returns the session states
// seen, in order.
func drainStates(t *testing.T, rt *Runtime) []xr.SessionStates {
	t.Helper()
	var states []xr.SessionStates
	for {
		ev, err := rt.PollEvent()
		require.NoError(t, err)
		if ev == nil {
			return states
		}
		if sc, ok := ev.(*xr.SessionStateChanged); ok {
			states = append(states, sc.State)
		}
	}
}

func newTestSession(t *testing.T, rt *Runtime) xr.Session {
	t.Helper()
	sys, err := rt.System(xr.HeadMounted)
	require.NoError(t, err)
	sess, err := rt.NewSession(sys, xr.Stereo)
	require.NoError(t, err)
	return sess
}

func TestSessionLifecycleEvents(t *testing.T) {
	rt := NewRuntime()
	sess := newTestSession(t, rt)
	assert.Equal(t, []xr.SessionStates{xr.SessionIdle, xr.SessionReady}, drainStates(t, rt))

	require.NoError(t, sess.Begin(xr.Stereo))
	assert.Equal(t, []xr.SessionStates{xr.SessionSynchronized, xr.SessionVisible, xr.SessionFocused},
		drainStates(t, rt))

	require.NoError(t, sess.RequestExit())
	assert.Equal(t, []xr.SessionStates{xr.SessionStopping}, drainStates(t, rt))

	require.NoError(t, sess.End())
	assert.Equal(t, []xr.SessionStates{xr.SessionIdle, xr.SessionExiting}, drainStates(t, rt))

	require.NoError(t, sess.Destroy())
	assert.Error(t, sess.Destroy())
}

func TestSessionLifecycleMisuse(t *testing.T) {
	rt := NewRuntime()
	sess := newTestSession(t, rt)

	// end before stopping, exit before running
	assert.Error(t, sess.End())
	assert.Error(t, sess.RequestExit())

	require.NoError(t, sess.Begin(xr.Stereo))
	// begin again while focused
	assert.Error(t, sess.Begin(xr.Stereo))

	_, err := rt.NewSession(&xr.SystemInfo{}, xr.Stereo)
	assert.Error(t, err)
}

func TestHandheldUnavailable(t *testing.T) {
	rt := NewRuntime()
	_, err := rt.System(xr.Handheld)
	assert.Error(t, err)
}

func TestActionsRequireAttach(t *testing.T) {
	rt := NewRuntime()
	sess := newTestSession(t, rt)

	set := xr.NewActionSet("gameplay", "Gameplay", 0)
	grab := set.AddAction("grab", "Grab", xr.FloatAction, xr.HandPaths[:]...)

	require.Error(t, sess.SyncActions(set))
	_, err := sess.ActionState(grab, xr.PathLeftHand)
	require.Error(t, err)

	require.NoError(t, sess.AttachActionSets(set))
	assert.Error(t, sess.AttachActionSets(set))
	assert.Error(t, sess.SuggestBindings("/interaction_profiles/khr/simple_controller", nil))

	require.NoError(t, sess.SyncActions(set))
	st, err := sess.ActionState(grab, xr.PathLeftHand)
	require.NoError(t, err)
	assert.True(t, st.Active)
	assert.Equal(t, xr.FloatAction, st.Value.Type)
	assert.GreaterOrEqual(t, st.Value.Float, float32(0))
	assert.LessOrEqual(t, st.Value.Float, float32(1))
}

func TestTrackerStatesFollowConnection(t *testing.T) {
	rt := NewRuntime()
	sess := newTestSession(t, rt)

	set := xr.NewActionSet("trackers", "Trackers", 0)
	pose := set.AddAction("waist-pose", "Waist pose", xr.PoseAction, xr.RoleWaist.Path())
	sp, err := sess.ActionSpace(pose, xr.RoleWaist.Path(), xr.IdentityPose())
	require.NoError(t, err)
	require.NoError(t, sess.AttachActionSets(set))
	require.NoError(t, sess.SyncActions(set))

	st, err := sess.ActionState(pose, xr.RoleWaist.Path())
	require.NoError(t, err)
	assert.False(t, st.Active)

	base, err := sess.ReferenceSpace(xr.SpaceLocal, xr.IdentityPose())
	require.NoError(t, err)
	loc, err := sess.LocateSpace(sp, base, rt.now(), false)
	require.NoError(t, err)
	assert.False(t, loc.OrientationValid())

	rt.Connect("SIM-1", xr.RoleWaist)
	ev, err := rt.PollEvent()
	require.NoError(t, err)
	dc, ok := ev.(*xr.DeviceConnected)
	require.True(t, ok)
	assert.Equal(t, "SIM-1", dc.Persistent)
	assert.Equal(t, xr.RoleWaist, dc.Role)

	require.NoError(t, sess.SyncActions(set))
	st, err = sess.ActionState(pose, xr.RoleWaist.Path())
	require.NoError(t, err)
	assert.True(t, st.Active)
	loc, err = sess.LocateSpace(sp, base, rt.now(), false)
	require.NoError(t, err)
	assert.True(t, loc.Tracked())
}

func TestSwapchainOrdering(t *testing.T) {
	rt := NewRuntime()
	sess := newTestSession(t, rt)
	sc, err := sess.NewSwapchain(64, 64, 0x8C43, 1)
	require.NoError(t, err)

	_, err = sc.Acquire()
	require.NoError(t, err)
	// double acquire and release-before-wait are protocol errors
	_, err = sc.Acquire()
	assert.Error(t, err)
	assert.Error(t, sc.Release())

	require.NoError(t, sc.Wait(xr.SwapchainTimeout))
	require.NoError(t, sc.Release())

	// images cycle through the ring
	i1, err := sc.Acquire()
	require.NoError(t, err)
	assert.Equal(t, 1, i1)
	assert.NotZero(t, sc.Texture(i1))

	require.NoError(t, sc.Wait(xr.SwapchainTimeout))
	require.NoError(t, sc.Release())
	require.NoError(t, sc.Destroy())
	_, err = sc.Acquire()
	assert.Error(t, err)
}

func TestWaitFrameRequiresRunning(t *testing.T) {
	rt := NewRuntime()
	sess := newTestSession(t, rt)
	_, err := sess.WaitFrame()
	require.Error(t, err)

	require.NoError(t, sess.Begin(xr.Stereo))
	timing, err := sess.WaitFrame()
	require.NoError(t, err)
	assert.True(t, timing.ShouldRender)
	assert.Positive(t, timing.PredictedDisplayPeriod)

	// begin must follow wait before the next wait
	_, err = sess.WaitFrame()
	assert.Error(t, err)
	require.NoError(t, sess.BeginFrame())
	require.NoError(t, sess.EndFrame(timing.PredictedDisplayTime, xr.BlendOpaque, nil))
}

func TestLocateViewsStereo(t *testing.T) {
	rt := NewRuntime()
	sess := newTestSession(t, rt)
	base, err := sess.ReferenceSpace(xr.SpaceLocal, xr.IdentityPose())
	require.NoError(t, err)

	views, flags, err := sess.LocateViews(rt.now(), base)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.True(t, flags.HasFlag(xr.OrientationValid))
	// the eyes are separated horizontally
	assert.Less(t, views[0].Pose.Position.X, views[1].Pose.Position.X)
	assert.Negative(t, views[0].Fov.AngleLeft)
	assert.Positive(t, views[0].Fov.AngleRight)
}

func TestRefreshRateControl(t *testing.T) {
	rt := NewRuntime()
	hz, err := rt.RefreshRate()
	require.NoError(t, err)
	assert.Equal(t, float32(90), hz)

	assert.Error(t, rt.RequestRefreshRate(100))
	require.NoError(t, rt.RequestRefreshRate(120))
	ev, err := rt.PollEvent()
	require.NoError(t, err)
	rr, ok := ev.(*xr.RefreshRateChanged)
	require.True(t, ok)
	assert.Equal(t, float32(90), rr.From)
	assert.Equal(t, float32(120), rr.To)
}
