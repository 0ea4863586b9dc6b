// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

import (
	"testing"
	"time"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeAdd(t *testing.T) {
	at := Time(1_000_000)
	assert.Equal(t, Time(2_000_000), at.Add(time.Millisecond))
	assert.Equal(t, Time(0), at.Add(-time.Millisecond))
}

func TestIdentityPoseMatrix(t *testing.T) {
	m := IdentityPose().Matrix4()
	id := math32.Identity4()
	for i := range 16 {
		assert.InDelta(t, id[i], m[i], 1e-6, "element %d", i)
	}
}

func TestPoseMatrixTranslates(t *testing.T) {
	p := Posef{Orientation: math32.Quat{W: 1}, Position: math32.Vec3(1, 2, 3)}
	m := p.Matrix4()
	out := math32.Vec3(0, 0, 0).MulMatrix4AsVector4(&m, 1)
	assert.InDelta(t, 1, out.X, 1e-6)
	assert.InDelta(t, 2, out.Y, 1e-6)
	assert.InDelta(t, 3, out.Z, 1e-6)
}

func TestSymmetricFov(t *testing.T) {
	fov := SymmetricFov(0.8, 0.7)
	assert.Equal(t, float32(-0.8), fov.AngleLeft)
	assert.Equal(t, float32(0.8), fov.AngleRight)
	assert.Equal(t, float32(0.7), fov.AngleUp)
	assert.Equal(t, float32(-0.7), fov.AngleDown)
}

func TestLocationFlags(t *testing.T) {
	var loc SpaceLocation
	assert.False(t, loc.OrientationValid())
	assert.False(t, loc.Tracked())

	loc.Flags.SetFlag(true, OrientationValid, PositionValid)
	assert.True(t, loc.OrientationValid())
	assert.False(t, loc.Tracked())

	loc.Flags.SetFlag(true, OrientationTracked)
	assert.True(t, loc.Tracked())
}

func TestTrackerRolePaths(t *testing.T) {
	assert.Equal(t, Path("/user/vive_tracker_htcx/role/left_foot"), RoleLeftFoot.Path())
	assert.Equal(t, Path("/user/vive_tracker_htcx/role/waist"), RoleWaist.Path())
	assert.Empty(t, RoleNone.Path())

	// every real role must have a distinct non-empty path
	seen := map[Path]bool{}
	for role := RoleNone + 1; role < TrackerRolesN; role++ {
		p := role.Path()
		require.NotEmpty(t, p, role.String())
		assert.False(t, seen[p], "duplicate path %s", p)
		seen[p] = true
	}
}

func TestViewConfigNumViews(t *testing.T) {
	assert.Equal(t, 1, Mono.NumViews())
	assert.Equal(t, 2, Stereo.NumViews())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "session-focused", SessionFocused.String())

	var st SessionStates
	require.NoError(t, st.SetString("session-stopping"))
	assert.Equal(t, SessionStopping, st)
	assert.Error(t, st.SetString("bogus"))

	var vc ViewConfigs
	require.NoError(t, vc.SetString("stereo"))
	assert.Equal(t, Stereo, vc)
}

func TestActionValueString(t *testing.T) {
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "0.5", FloatValue(0.5).String())
	assert.Equal(t, "(1, 2)", Vector2Value(math32.Vec2(1, 2)).String())
}
