// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glrender

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/cogentxr/playground/xr"
)

// projectionFromFov builds an asymmetric projection matrix from four
// field of view half-angles, with OpenGL clip space conventions
// (Z in [-1, 1], -Z forward).
func projectionFromFov(fov xr.Fovf, near, far float32) math32.Matrix4 {
	tanLeft := math32.Tan(fov.AngleLeft)
	tanRight := math32.Tan(fov.AngleRight)
	tanUp := math32.Tan(fov.AngleUp)
	tanDown := math32.Tan(fov.AngleDown)

	width := tanRight - tanLeft
	height := tanUp - tanDown

	var m math32.Matrix4
	m[0] = 2 / width
	m[5] = 2 / height
	m[8] = (tanRight + tanLeft) / width
	m[9] = (tanUp + tanDown) / height
	m[10] = -(far + near) / (far - near)
	m[11] = -1
	m[14] = -(2 * far * near) / (far - near)
	return m
}

// viewFromPose inverts an eye pose into a view matrix.
func viewFromPose(pose xr.Posef) math32.Matrix4 {
	m := pose.Matrix4()
	inv, err := m.Inverse()
	if err != nil {
		// a rigid transform is always invertible; a singular matrix here
		// means the pose itself is corrupt
		errors.Log(err)
		return *math32.Identity4()
	}
	return *inv
}
