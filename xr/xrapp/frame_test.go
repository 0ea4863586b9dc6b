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

func TestRenderFrameSubmitsLayers(t *testing.T) {
	a, rt := newTestApp(t)

	require.NoError(t, a.renderFrame())
	require.Len(t, rt.session.frames, 1)
	fr := rt.session.frames[0]
	assert.Equal(t, rt.session.timing.PredictedDisplayTime, fr.at)

	// projection layer plus the overlay quad
	require.Len(t, fr.layers, 2)
	proj, ok := fr.layers[0].(*xr.ProjectionLayer)
	require.True(t, ok)
	assert.Len(t, proj.Views, 2)
	_, ok = fr.layers[1].(*xr.QuadLayer)
	assert.True(t, ok)
}

func TestRenderFrameUsesOneTimestamp(t *testing.T) {
	a, rt := newTestApp(t)
	rt.session.timing.PredictedDisplayTime = 7777

	require.NoError(t, a.renderFrame())

	at := xr.Time(7777)
	require.NotEmpty(t, rt.session.viewAts)
	for _, got := range rt.session.viewAts {
		assert.Equal(t, at, got)
	}
	assert.Equal(t, at, rt.session.frames[0].at)
	assert.Equal(t, at, a.Snapshot.Time)
}

func TestRenderFrameShouldRenderFalse(t *testing.T) {
	a, rt := newTestApp(t)
	rt.session.timing.ShouldRender = false

	require.NoError(t, a.renderFrame())
	require.Len(t, rt.session.frames, 1)
	assert.Empty(t, rt.session.frames[0].layers)

	// input still syncs even when nothing is rendered
	assert.Equal(t, 1, rt.session.syncs)
}

func TestRenderFrameInvalidOrientationSubmitsNothing(t *testing.T) {
	a, rt := newTestApp(t)
	rt.session.viewFlags = 0

	require.NoError(t, a.renderFrame())
	require.Len(t, rt.session.frames, 1)
	assert.Empty(t, rt.session.frames[0].layers)
}

func TestRenderFrameAcquireFailureDropsFrameNotLoop(t *testing.T) {
	a, rt := newTestApp(t)
	rt.session.acquireErr = assert.AnError

	// the frame protocol must still complete with zero layers
	require.NoError(t, a.renderFrame())
	require.Len(t, rt.session.frames, 1)
	assert.Empty(t, rt.session.frames[0].layers)
	assert.Equal(t, 1, rt.session.count("beginFrame"))
	assert.Equal(t, 1, rt.session.count("endFrame"))

	// the next frame recovers
	rt.session.acquireErr = nil
	require.NoError(t, a.renderFrame())
	require.Len(t, rt.session.frames, 2)
	assert.Len(t, rt.session.frames[1].layers, 2)
}

func TestRenderFrameWaitFailureIsFatal(t *testing.T) {
	a, rt := newTestApp(t)
	rt.session.waitErr = assert.AnError

	err := a.renderFrame()
	require.Error(t, err)
	assert.True(t, xr.IsFatal(err))
	assert.Equal(t, 0, rt.session.count("beginFrame"))
}

func TestSnapshotIsFreshEachFrame(t *testing.T) {
	a, rt := newTestApp(t)
	rt.session.states[stateKey(a.Grab, xr.PathLeftHand)] = xr.ActionState{
		Active: true,
		Value:  xr.FloatValue(0.5),
	}

	require.NoError(t, a.renderFrame())
	first := a.Snapshot
	assert.Equal(t, uint64(1), first.Frame)
	assert.InDelta(t, 0.5, first.Hands[xr.LeftHand].Grab.Value.Float, 1e-6)

	// stale values must not leak into the next frame
	delete(rt.session.states, stateKey(a.Grab, xr.PathLeftHand))
	require.NoError(t, a.renderFrame())
	assert.NotSame(t, first, a.Snapshot)
	assert.Equal(t, uint64(2), a.Snapshot.Frame)
	assert.False(t, a.Snapshot.Hands[xr.LeftHand].Grab.Active)
}

func TestGrabTriggersHaptics(t *testing.T) {
	a, rt := newTestApp(t)
	rt.session.states[stateKey(a.Grab, xr.PathRightHand)] = xr.ActionState{
		Active: true,
		Value:  xr.FloatValue(0.9),
	}
	rt.session.states[stateKey(a.Grab, xr.PathLeftHand)] = xr.ActionState{
		Active: true,
		Value:  xr.FloatValue(0.5),
	}

	a.syncInput(1000)
	require.Len(t, rt.session.haptics, 1)
	assert.Equal(t, xr.PathRightHand, rt.session.haptics[0])
}

func TestHandPoseLocatedOnlyWhenActive(t *testing.T) {
	a, rt := newTestApp(t)
	rt.session.states[stateKey(a.HandPose, xr.PathLeftHand)] = xr.ActionState{Active: true}

	a.syncInput(1000)
	left := a.Snapshot.Hands[xr.LeftHand]
	assert.True(t, left.Pose.Active)
	assert.True(t, left.Location.OrientationValid())

	right := a.Snapshot.Hands[xr.RightHand]
	assert.False(t, right.Pose.Active)
	assert.False(t, right.Location.OrientationValid())
}
