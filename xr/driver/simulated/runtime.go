// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simulated implements [xr.Runtime] entirely in Go: a scripted
// head-mounted stereo system that walks sessions through the standard
// lifecycle, animates head and hand poses, and paces frames at a fixed
// refresh rate. It lets the full application loop run and be tested
// without an OpenXR runtime or a GPU, in the same role an offscreen
// rendering driver plays for a windowing system.
package simulated

import (
	"fmt"
	"sync"
	"time"

	"github.com/cogentxr/playground/xr"
)

// Runtime is the simulated [xr.Runtime]. The zero value is not usable;
// use [NewRuntime].
type Runtime struct {
	caps  *xr.Capabilities
	start time.Time

	// refresh is the simulated display refresh rate in Hz.
	refresh float32

	// mu guards events and trackers, which tests may push from other
	// goroutines; everything else is loop-thread only.
	mu       sync.Mutex
	events   []xr.Event
	trackers []xr.DeviceConnected

	session   *Session
	textures  uint32
	destroyed bool
}

// NewRuntime returns a simulated runtime with hand tracking, refresh
// rate control, tracker support, and depth composition all available.
func NewRuntime() *Runtime {
	rt := &Runtime{start: time.Now(), refresh: 90}
	rt.caps = &xr.Capabilities{
		RuntimeName:    "Cogent Simulated Runtime",
		RuntimeVersion: "1.0.0",
		Extensions: []string{
			"XR_KHR_composition_layer_depth",
			"XR_EXT_hand_tracking",
			"XR_FB_display_refresh_rate",
			"XR_HTCX_vive_tracker_interaction",
		},
		Depth:        true,
		HandTracking: rt,
		RefreshRate:  rt,
		Trackers:     rt,
	}
	return rt
}

// now returns the runtime clock: nanoseconds since runtime creation.
func (rt *Runtime) now() xr.Time {
	return xr.Time(time.Since(rt.start))
}

// push queues an event for [Runtime.PollEvent].
func (rt *Runtime) push(ev xr.Event) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.events = append(rt.events, ev)
}

func (rt *Runtime) Capabilities() *xr.Capabilities {
	return rt.caps
}

func (rt *Runtime) System(form xr.FormFactors) (*xr.SystemInfo, error) {
	if form != xr.HeadMounted {
		return nil, fmt.Errorf("form factor %s is unavailable", form)
	}
	return &xr.SystemInfo{
		Name:                "Simulated HMD",
		VendorID:            0x1209,
		OrientationTracking: true,
		PositionTracking:    true,
		HandTracking:        true,
		MaxLayerCount:       16,
		MaxSwapchainWidth:   4096,
		MaxSwapchainHeight:  4096,
	}, nil
}

func (rt *Runtime) Views(vc xr.ViewConfigs) ([]xr.ViewConfigView, error) {
	views := make([]xr.ViewConfigView, vc.NumViews())
	for i := range views {
		views[i] = xr.ViewConfigView{
			RecommendedWidth:   1664,
			RecommendedHeight:  1856,
			MaxWidth:           4096,
			MaxHeight:          4096,
			RecommendedSamples: 1,
			MaxSamples:         4,
		}
	}
	return views, nil
}

func (rt *Runtime) PollEvent() (xr.Event, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	if len(rt.events) == 0 {
		return nil, nil
	}
	ev := rt.events[0]
	rt.events = rt.events[1:]
	return ev, nil
}

func (rt *Runtime) NewSession(system *xr.SystemInfo, vc xr.ViewConfigs) (xr.Session, error) {
	if rt.session != nil && !rt.session.destroyed {
		return nil, fmt.Errorf("session already exists")
	}
	s := &Session{rt: rt, vc: vc, values: map[stateKey]xr.ActionValue{}}
	rt.session = s
	s.setState(xr.SessionIdle)
	s.setState(xr.SessionReady)
	return s, nil
}

func (rt *Runtime) Destroy() error {
	rt.destroyed = true
	return nil
}

// Connect registers or reassigns a simulated tracker device and queues
// the corresponding [xr.DeviceConnected] event, as a runtime does when
// the user pairs a tracker or changes its role.
func (rt *Runtime) Connect(persistent string, role xr.TrackerRoles) {
	rt.mu.Lock()
	found := false
	for i := range rt.trackers {
		if rt.trackers[i].Persistent == persistent {
			rt.trackers[i].Role = role
			found = true
			break
		}
	}
	if !found {
		rt.trackers = append(rt.trackers, xr.DeviceConnected{Persistent: persistent, Role: role})
	}
	rt.mu.Unlock()
	rt.push(&xr.DeviceConnected{Persistent: persistent, Role: role})
}

// LoseInstance queues an instance loss event at the given delay from
// now, simulating the runtime shutting down underneath the application.
func (rt *Runtime) LoseInstance(in time.Duration) {
	rt.push(&xr.InstanceLossPending{LossTime: rt.now().Add(in)})
}

// Trackers implements [xr.TrackerAPI].
func (rt *Runtime) Trackers() ([]xr.DeviceConnected, error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	out := make([]xr.DeviceConnected, len(rt.trackers))
	copy(out, rt.trackers)
	return out, nil
}

// roleConnected reports whether any simulated tracker currently has the
// given role.
func (rt *Runtime) roleConnected(role xr.TrackerRoles) bool {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	for _, t := range rt.trackers {
		if t.Role == role {
			return true
		}
	}
	return false
}

// RefreshRate implements [xr.RefreshRateAPI].
func (rt *Runtime) RefreshRate() (float32, error) {
	return rt.refresh, nil
}

// AvailableRefreshRates implements [xr.RefreshRateAPI].
func (rt *Runtime) AvailableRefreshRates() ([]float32, error) {
	return []float32{72, 90, 120, 144}, nil
}

// RequestRefreshRate implements [xr.RefreshRateAPI]. The change applies
// immediately and is reported through a [xr.RefreshRateChanged] event.
func (rt *Runtime) RequestRefreshRate(hz float32) error {
	if hz == 0 {
		hz = 90
	}
	rates, _ := rt.AvailableRefreshRates()
	ok := false
	for _, r := range rates {
		if r == hz {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("refresh rate %g is not available", hz)
	}
	from := rt.refresh
	rt.refresh = hz
	if from != hz {
		rt.push(&xr.RefreshRateChanged{From: from, To: hz})
	}
	return nil
}

// period returns the current frame period.
func (rt *Runtime) period() time.Duration {
	return time.Duration(float64(time.Second) / float64(rt.refresh))
}
