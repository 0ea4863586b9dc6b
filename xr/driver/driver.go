// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver selects the concrete [xr.Runtime] backend for the
// current build. The in-tree backend is the pure Go simulated runtime;
// a loader-backed OpenXR backend can be selected here with a build tag
// when one is present.
package driver

import (
	"github.com/cogentxr/playground/xr"
	"github.com/cogentxr/playground/xr/driver/simulated"
)

// New returns the runtime backend for this build.
func New() (xr.Runtime, error) {
	return simulated.NewRuntime(), nil
}
