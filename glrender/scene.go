// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glrender

import (
	"cogentcore.org/core/math32"
	"github.com/cogentxr/playground/xr"
	"github.com/cogentxr/playground/xr/xrapp"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// cubeFace vertex positions per face, with the face normal; two
// triangles each.
var cubeFaces = []struct {
	normal math32.Vector3
	verts  [6]math32.Vector3
}{
	{math32.Vec3(0, 0, 1), quadVerts(math32.Vec3(-1, -1, 1), math32.Vec3(1, -1, 1), math32.Vec3(1, 1, 1), math32.Vec3(-1, 1, 1))},
	{math32.Vec3(0, 0, -1), quadVerts(math32.Vec3(1, -1, -1), math32.Vec3(-1, -1, -1), math32.Vec3(-1, 1, -1), math32.Vec3(1, 1, -1))},
	{math32.Vec3(1, 0, 0), quadVerts(math32.Vec3(1, -1, 1), math32.Vec3(1, -1, -1), math32.Vec3(1, 1, -1), math32.Vec3(1, 1, 1))},
	{math32.Vec3(-1, 0, 0), quadVerts(math32.Vec3(-1, -1, -1), math32.Vec3(-1, -1, 1), math32.Vec3(-1, 1, 1), math32.Vec3(-1, 1, -1))},
	{math32.Vec3(0, 1, 0), quadVerts(math32.Vec3(-1, 1, 1), math32.Vec3(1, 1, 1), math32.Vec3(1, 1, -1), math32.Vec3(-1, 1, -1))},
	{math32.Vec3(0, -1, 0), quadVerts(math32.Vec3(-1, -1, -1), math32.Vec3(1, -1, -1), math32.Vec3(1, -1, 1), math32.Vec3(-1, -1, 1))},
}

// quadVerts expands four corners into two counterclockwise triangles.
func quadVerts(a, b, c, d math32.Vector3) [6]math32.Vector3 {
	return [6]math32.Vector3{a, b, c, a, c, d}
}

// cubeVerts returns the interleaved position + normal vertex data for a
// unit cube (half extent 1).
func cubeVerts() []float32 {
	vs := make([]float32, 0, len(cubeFaces)*6*6)
	for _, f := range cubeFaces {
		for _, v := range f.verts {
			vs = append(vs, v.X, v.Y, v.Z, f.normal.X, f.normal.Y, f.normal.Z)
		}
	}
	return vs
}

var palette = []math32.Vector3{
	math32.Vec3(0.85, 0.35, 0.30),
	math32.Vec3(0.35, 0.70, 0.35),
	math32.Vec3(0.30, 0.45, 0.85),
	math32.Vec3(0.85, 0.75, 0.30),
	math32.Vec3(0.60, 0.35, 0.75),
}

var (
	floorColor   = math32.Vec3(0.25, 0.3, 0.25)
	leftColor    = math32.Vec3(0.9, 0.4, 0.2)
	rightColor   = math32.Vec3(0.2, 0.5, 0.9)
	jointColor   = math32.Vec3(0.9, 0.85, 0.7)
	trackerColor = math32.Vec3(0.95, 0.55, 0.1)
	bounceColor  = math32.Vec3(0.95, 0.95, 0.95)
)

var identityQuat = math32.Quat{W: 1}

// drawCube draws one cube with the given transform and color; vp is the
// combined projection * view matrix for the current eye.
func (rd *Renderer) drawCube(vp *math32.Matrix4, pos math32.Vector3, quat math32.Quat, scale math32.Vector3, color math32.Vector3) {
	var model, mvp math32.Matrix4
	model.SetTransform(pos, quat, scale)
	mvp.MulMatrices(vp, &model)
	gl.UniformMatrix4fv(rd.mvpU, 1, false, &mvp[0])
	gl.Uniform3f(rd.colorU, color.X, color.Y, color.Z)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
}

// bouncePosition is the bouncing cube's position at the given time.
func (rd *Renderer) bouncePosition(at xr.Time) math32.Vector3 {
	t := float32(float64(at) / 1e9)
	x := 1.5 * math32.Sin(t)
	y := 0.5 + math32.Abs(math32.Sin(t*1.5))
	switch rd.Direction {
	case Horizontal:
		return math32.Vec3(x, 1, -2)
	case Vertical:
		return math32.Vec3(0, y, -2)
	}
	return math32.Vec3(x, y, -2)
}

// drawScene draws the world: floor, the orbiting cube field, the
// bouncing cube, and everything tracked in the input snapshot.
func (rd *Renderer) drawScene(vp *math32.Matrix4, at xr.Time, snap *xrapp.Snapshot) {
	t := float32(float64(at) / 1e9)

	rd.drawCube(vp, math32.Vec3(0, -0.01, 0), identityQuat, math32.Vec3(10, 0.01, 10), floorColor)

	n := rd.Cubes
	if n <= 0 {
		n = 12
	}
	for i := range n {
		angle := float32(i)*2*math32.Pi/float32(n) + 0.05*t
		spin := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), t*0.3+float32(i))
		pos := math32.Vec3(
			3*math32.Sin(angle),
			0.3+0.4*float32(i%4),
			-3*math32.Cos(angle),
		)
		rd.drawCube(vp, pos, spin, math32.Vec3(0.12, 0.12, 0.12), palette[i%len(palette)])
	}

	rd.drawCube(vp, rd.bouncePosition(at), identityQuat, math32.Vec3(0.15, 0.15, 0.15), bounceColor)

	if snap == nil {
		return
	}
	for hand := range xr.NumHands {
		h := &snap.Hands[hand]
		color := leftColor
		if hand == xr.RightHand {
			color = rightColor
		}
		if h.Pose.Active && h.Location.OrientationValid() {
			// squeezing grows the cube, so grabbing is visible
			s := 0.05 * (1 + h.Grab.Value.Float)
			rd.drawCube(vp, h.Location.Pose.Position, h.Location.Pose.Orientation, math32.Vec3(s, s, s), color)
		}
		if h.Joints != nil && h.Joints.Active {
			for i := range xr.HandJointCount {
				j := &h.Joints.Joints[i]
				if !j.OrientationValid() {
					continue
				}
				r := h.Joints.Radii[i]
				rd.drawCube(vp, j.Pose.Position, j.Pose.Orientation, math32.Vec3(r, r, r), jointColor)
			}
		}
	}
	for _, td := range snap.Trackers {
		if !td.Renderable() {
			continue
		}
		rd.drawCube(vp, td.Location.Pose.Position, td.Location.Pose.Orientation, math32.Vec3(0.08, 0.08, 0.08), trackerColor)
	}
}
