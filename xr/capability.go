// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

import "time"

// Capabilities is the static capability set resolved once at startup by
// the driver and consumed read-only afterward. Optional capabilities are
// typed interfaces that are nil when the runtime does not support them,
// replacing raw extension function pointers.
type Capabilities struct {

	// RuntimeName and RuntimeVersion identify the runtime implementation.
	RuntimeName    string
	RuntimeVersion string

	// Extensions are the raw names of the supported extensions, for logging.
	Extensions []string

	// Depth reports whether depth layer composition is supported.
	Depth bool

	// HandTracking is non-nil when articulated hand tracking is available.
	HandTracking HandTrackingAPI

	// RefreshRate is non-nil when display refresh rate query and control
	// is available.
	RefreshRate RefreshRateAPI

	// Trackers is non-nil when vendor auxiliary tracker devices are
	// supported; their connect events arrive as [DeviceConnected].
	Trackers TrackerAPI
}

// HandTrackingAPI creates per-hand trackers that locate articulated
// hand joints.
type HandTrackingAPI interface {

	// NewHandTracker creates a tracker for the given hand
	// ([LeftHand] or [RightHand]).
	NewHandTracker(hand int) (HandTracker, error)
}

// HandTracker locates the joints of one hand.
type HandTracker interface {

	// LocateJoints locates all joints against the base space at the given
	// time, which must be the frame's predicted display time. Velocities
	// are only filled in when requested.
	LocateJoints(base Space, at Time, velocities bool) (*HandJoints, error)

	// Destroy releases the tracker.
	Destroy() error
}

// RefreshRateAPI queries and requests the display refresh rate.
type RefreshRateAPI interface {

	// RefreshRate returns the current display refresh rate in Hz.
	RefreshRate() (float32, error)

	// AvailableRefreshRates returns the rates that can be requested.
	AvailableRefreshRates() ([]float32, error)

	// RequestRefreshRate asks the runtime to switch to the given rate;
	// 0 returns control of the rate to the runtime. The change is
	// reported asynchronously by a [RefreshRateChanged] event.
	RequestRefreshRate(hz float32) error
}

// TrackerAPI enumerates currently connected auxiliary tracker devices.
// Connect and role change notifications arrive as [DeviceConnected]
// events independently of enumeration.
type TrackerAPI interface {

	// Trackers returns the persistent identity and current role of each
	// connected tracker device.
	Trackers() ([]DeviceConnected, error)
}

// Space is a located coordinate frame created from a session: a reference
// space or an action space. Spaces are opaque to the application core and
// are passed back to [Session.LocateSpace] and composition layers.
type Space interface {

	// Label describes the space for logging, e.g., "stage" or
	// "handpose/left".
	Label() string
}

// SwapchainTimeout is the bounded wait used when acquiring a swapchain
// image. Timing out is a recoverable, per-frame error.
const SwapchainTimeout = 100 * time.Millisecond
