// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xrapp

import (
	"time"

	"github.com/cogentxr/playground/xr"
)

// fakeRuntime is a scriptable [xr.Runtime] for loop tests: events are
// queued directly and every session call is recorded.
type fakeRuntime struct {
	caps    *xr.Capabilities
	events  []xr.Event
	pollErr error
	session *fakeSession

	destroyed bool
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{caps: &xr.Capabilities{RuntimeName: "fake", RuntimeVersion: "0.0"}}
}

func (r *fakeRuntime) push(evs ...xr.Event) {
	r.events = append(r.events, evs...)
}

func (r *fakeRuntime) pushState(states ...xr.SessionStates) {
	for _, st := range states {
		r.push(&xr.SessionStateChanged{State: st})
	}
}

func (r *fakeRuntime) Capabilities() *xr.Capabilities { return r.caps }

func (r *fakeRuntime) System(form xr.FormFactors) (*xr.SystemInfo, error) {
	return &xr.SystemInfo{Name: "fake hmd", OrientationTracking: true, MaxLayerCount: 16}, nil
}

func (r *fakeRuntime) Views(vc xr.ViewConfigs) ([]xr.ViewConfigView, error) {
	views := make([]xr.ViewConfigView, vc.NumViews())
	for i := range views {
		views[i] = xr.ViewConfigView{RecommendedWidth: 64, RecommendedHeight: 64, RecommendedSamples: 1}
	}
	return views, nil
}

func (r *fakeRuntime) PollEvent() (xr.Event, error) {
	if r.pollErr != nil {
		return nil, r.pollErr
	}
	if len(r.events) == 0 {
		return nil, nil
	}
	ev := r.events[0]
	r.events = r.events[1:]
	return ev, nil
}

func (r *fakeRuntime) NewSession(system *xr.SystemInfo, vc xr.ViewConfigs) (xr.Session, error) {
	if r.session == nil {
		r.session = newFakeSession()
	}
	return r.session, nil
}

func (r *fakeRuntime) Destroy() error {
	r.destroyed = true
	return nil
}

// frameEnd records one end-frame submission.
type frameEnd struct {
	at     xr.Time
	blend  xr.BlendModes
	layers []xr.Layer
}

// fakeSession records every call and returns configurable results.
type fakeSession struct {
	calls []string

	beginErr   error
	endErr     error
	destroyErr error
	waitErr    error

	attached  bool
	sets      []*xr.ActionSet
	suggested map[string][]xr.SuggestedBinding
	profiles  map[xr.Path]string

	// states configures action state per "name|sub" key; missing keys
	// report inactive.
	states map[string]xr.ActionState

	locFlags  xr.LocationFlags
	viewFlags xr.LocationFlags
	haptics   []xr.Path
	locates   []xr.Time
	viewAts   []xr.Time

	timing  xr.FrameTiming
	formats []int64
	frames  []frameEnd
	syncs   int

	acquireErr error
	swapchains []*fakeSwapchain
}

func newFakeSession() *fakeSession {
	var all xr.LocationFlags
	all.SetFlag(true, xr.OrientationValid, xr.PositionValid, xr.OrientationTracked, xr.PositionTracked)
	return &fakeSession{
		suggested: map[string][]xr.SuggestedBinding{},
		profiles:  map[xr.Path]string{},
		states:    map[string]xr.ActionState{},
		locFlags:  all,
		viewFlags: all,
		timing:    xr.FrameTiming{PredictedDisplayTime: 1000, PredictedDisplayPeriod: 11 * time.Millisecond, ShouldRender: true},
		formats:   []int64{0x8C43, 0x8058, 0x81A5},
	}
}

func stateKey(ac *xr.Action, sub xr.Path) string {
	return ac.Name + "|" + string(sub)
}

func (s *fakeSession) record(call string) {
	s.calls = append(s.calls, call)
}

// count returns how many times the given call was recorded.
func (s *fakeSession) count(call string) int {
	n := 0
	for _, c := range s.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (s *fakeSession) Begin(vc xr.ViewConfigs) error {
	s.record("begin")
	return s.beginErr
}

func (s *fakeSession) End() error {
	s.record("end")
	return s.endErr
}

func (s *fakeSession) Destroy() error {
	s.record("destroy")
	return s.destroyErr
}

func (s *fakeSession) RequestExit() error {
	s.record("requestExit")
	return nil
}

func (s *fakeSession) ReferenceSpace(typ xr.ReferenceSpaces, pose xr.Posef) (xr.Space, error) {
	return &fakeSpace{label: typ.String()}, nil
}

func (s *fakeSession) ActionSpace(ac *xr.Action, sub xr.Path, pose xr.Posef) (xr.Space, error) {
	return &fakeSpace{label: stateKey(ac, sub)}, nil
}

func (s *fakeSession) AttachActionSets(sets ...*xr.ActionSet) error {
	s.record("attach")
	s.attached = true
	s.sets = sets
	return nil
}

func (s *fakeSession) SuggestBindings(profile string, bindings []xr.SuggestedBinding) error {
	s.suggested[profile] = bindings
	return nil
}

func (s *fakeSession) CurrentProfile(sub xr.Path) (string, error) {
	return s.profiles[sub], nil
}

func (s *fakeSession) SyncActions(sets ...*xr.ActionSet) error {
	s.syncs++
	return nil
}

func (s *fakeSession) ActionState(ac *xr.Action, sub xr.Path) (xr.ActionState, error) {
	return s.states[stateKey(ac, sub)], nil
}

func (s *fakeSession) LocateSpace(space, base xr.Space, at xr.Time, velocity bool) (xr.SpaceLocation, error) {
	s.locates = append(s.locates, at)
	return xr.SpaceLocation{Flags: s.locFlags, Pose: xr.IdentityPose()}, nil
}

func (s *fakeSession) ApplyHaptic(ac *xr.Action, sub xr.Path, amplitude float32, duration time.Duration, frequency float32) error {
	s.haptics = append(s.haptics, sub)
	return nil
}

func (s *fakeSession) Formats() ([]int64, error) {
	return s.formats, nil
}

func (s *fakeSession) NewSwapchain(width, height int, format int64, samples int) (xr.Swapchain, error) {
	sc := &fakeSwapchain{width: width, height: height, format: format, session: s}
	s.swapchains = append(s.swapchains, sc)
	return sc, nil
}

func (s *fakeSession) WaitFrame() (xr.FrameTiming, error) {
	s.record("waitFrame")
	return s.timing, s.waitErr
}

func (s *fakeSession) LocateViews(at xr.Time, base xr.Space) ([]xr.View, xr.LocationFlags, error) {
	s.viewAts = append(s.viewAts, at)
	views := []xr.View{
		{Pose: xr.IdentityPose(), Fov: xr.SymmetricFov(0.7, 0.7)},
		{Pose: xr.IdentityPose(), Fov: xr.SymmetricFov(0.7, 0.7)},
	}
	return views, s.viewFlags, nil
}

func (s *fakeSession) BeginFrame() error {
	s.record("beginFrame")
	return nil
}

func (s *fakeSession) EndFrame(at xr.Time, blend xr.BlendModes, layers []xr.Layer) error {
	s.record("endFrame")
	s.frames = append(s.frames, frameEnd{at: at, blend: blend, layers: layers})
	return nil
}

type fakeSpace struct {
	label string
}

func (s *fakeSpace) Label() string { return s.label }

// fakeSwapchain hands out a single image; acquireErr makes Acquire fail
// to exercise the per-frame recovery path.
type fakeSwapchain struct {
	width   int
	height  int
	format  int64
	session *fakeSession

	acquires int
	releases int
}

func (sc *fakeSwapchain) Acquire() (int, error) {
	if sc.session.acquireErr != nil {
		return 0, sc.session.acquireErr
	}
	sc.acquires++
	return 0, nil
}

func (sc *fakeSwapchain) Wait(timeout time.Duration) error { return nil }

func (sc *fakeSwapchain) Release() error {
	sc.releases++
	return nil
}

func (sc *fakeSwapchain) Texture(i int) uint32 { return uint32(100 + i) }

func (sc *fakeSwapchain) Size() (int, int) { return sc.width, sc.height }

func (sc *fakeSwapchain) Format() int64 { return sc.format }

func (sc *fakeSwapchain) Destroy() error { return nil }

// newTestApp returns an initialized App on a fake runtime.
func newTestApp(t interface{ Fatalf(string, ...any) }) (*App, *fakeRuntime) {
	rt := newFakeRuntime()
	a := New(rt, &Config{ViewConfig: xr.Stereo, ReferenceSpace: xr.SpaceLocal})
	if err := a.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	return a, rt
}
