// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glrender

//go:generate core generate

// Directions are the movement patterns of the bouncing cube.
type Directions int32 //enums:enum

const (
	// Horizontal moves the cube side to side at a fixed height.
	Horizontal Directions = iota

	// Diagonal combines horizontal and vertical movement.
	Diagonal

	// Vertical bounces the cube up and down in place.
	Vertical
)
