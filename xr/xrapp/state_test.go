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

func TestMachineTransitions(t *testing.T) {
	tests := []struct {
		name   string
		start  machine
		state  xr.SessionStates
		action sessionActions
		skip   bool
		quit   bool
	}{
		{"idle skips", machine{}, xr.SessionIdle, noAction, true, false},
		{"unknown skips", machine{}, xr.SessionUnknown, noAction, true, false},
		{"ready begins", machine{}, xr.SessionReady, beginSession, false, false},
		{"ready again does not rebegin", machine{Running: true}, xr.SessionReady, noAction, false, false},
		{"synchronized renders", machine{Running: true}, xr.SessionSynchronized, noAction, false, false},
		{"visible renders", machine{Running: true}, xr.SessionVisible, noAction, false, false},
		{"focused renders", machine{Running: true}, xr.SessionFocused, noAction, false, false},
		{"stopping ends", machine{Running: true}, xr.SessionStopping, endSession, true, false},
		{"stopping when not running", machine{}, xr.SessionStopping, noAction, true, false},
		{"exiting destroys and quits", machine{}, xr.SessionExiting, destroySession, true, true},
		{"loss pending destroys and quits", machine{}, xr.SessionLossPending, destroySession, true, true},
		{"exiting after destroy", machine{Destroyed: true}, xr.SessionExiting, noAction, true, true},
		{"out of range keeps polling", machine{}, xr.SessionStates(99), noAction, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, action, skip, quit := tt.start.transition(tt.state)
			assert.Equal(t, tt.action, action)
			assert.Equal(t, tt.skip, skip)
			assert.Equal(t, tt.quit, quit)
			assert.Equal(t, tt.state, next.State)
		})
	}
}

func TestMachineRunningFlag(t *testing.T) {
	var m machine
	m, action, _, _ := m.transition(xr.SessionReady)
	require.Equal(t, beginSession, action)
	assert.True(t, m.Running)

	// a repeated ready must not begin again
	m, action, _, _ = m.transition(xr.SessionReady)
	assert.Equal(t, noAction, action)

	m, action, _, _ = m.transition(xr.SessionStopping)
	require.Equal(t, endSession, action)
	assert.False(t, m.Running)

	m, action, _, _ = m.transition(xr.SessionStopping)
	assert.Equal(t, noAction, action)
}

func TestMachineDestroyOnce(t *testing.T) {
	var m machine
	m, action, _, quit := m.transition(xr.SessionLossPending)
	require.Equal(t, destroySession, action)
	assert.True(t, quit)

	m, action, _, quit = m.transition(xr.SessionExiting)
	assert.Equal(t, noAction, action)
	assert.True(t, quit)
}

// TestLifecycleNormalExit walks the full user-initiated exit sequence:
// idle, ready, synchronized, visible, focused, then stopping, idle,
// exiting, checking that each session primitive is called exactly once.
func TestLifecycleNormalExit(t *testing.T) {
	a, rt := newTestApp(t)

	rt.pushState(xr.SessionIdle, xr.SessionReady, xr.SessionSynchronized,
		xr.SessionVisible, xr.SessionFocused)
	require.NoError(t, a.drainEvents())
	assert.Equal(t, 1, rt.session.count("begin"))
	assert.False(t, a.skipRender)
	assert.False(t, a.quit)

	require.NoError(t, a.renderFrame())
	assert.Equal(t, 1, rt.session.count("endFrame"))

	rt.pushState(xr.SessionStopping, xr.SessionIdle, xr.SessionExiting)
	require.NoError(t, a.drainEvents())
	assert.Equal(t, 1, rt.session.count("end"))
	assert.Equal(t, 1, rt.session.count("destroy"))
	assert.True(t, a.quit)
	assert.True(t, a.skipRender)
}

// TestLifecycleRuntimeLoss walks the loss sequence: the session jumps
// to loss pending and the loop must destroy once and quit.
func TestLifecycleRuntimeLoss(t *testing.T) {
	a, rt := newTestApp(t)

	rt.pushState(xr.SessionIdle, xr.SessionReady, xr.SessionFocused)
	require.NoError(t, a.drainEvents())

	rt.pushState(xr.SessionLossPending)
	require.NoError(t, a.drainEvents())
	assert.Equal(t, 1, rt.session.count("destroy"))
	assert.True(t, a.quit)

	// a straggler loss event must not destroy again
	a.quit = false
	rt.pushState(xr.SessionLossPending)
	require.NoError(t, a.drainEvents())
	assert.Equal(t, 1, rt.session.count("destroy"))
	assert.True(t, a.quit)
}

func TestBeginFailureIsFatal(t *testing.T) {
	a, rt := newTestApp(t)
	rt.session.beginErr = assert.AnError

	rt.pushState(xr.SessionReady)
	err := a.drainEvents()
	require.Error(t, err)
	assert.True(t, xr.IsFatal(err))
}
