// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simulated

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cogentxr/playground/xr"
)

// stateKey identifies one (action, sub-path) state slot.
type stateKey struct {
	ac  *xr.Action
	sub xr.Path
}

// Session is the simulated [xr.Session]. It validates lifecycle and
// frame call ordering strictly, so misuse that a real runtime would
// reject also fails here.
type Session struct {
	rt *Runtime
	vc xr.ViewConfigs

	state     xr.SessionStates
	running   bool
	destroyed bool

	attached bool
	sets     []*xr.ActionSet

	// profiles maps interaction profile path to its suggested bindings.
	profiles map[string][]xr.SuggestedBinding

	// values remembers the previous value per state slot so Changed can
	// be reported across syncs.
	values map[stateKey]xr.ActionValue
	synced xr.Time

	waited bool
	begun  bool
}

// setState advances the runtime-side session state and queues the
// event; the application observes the change on its next event drain.
func (s *Session) setState(state xr.SessionStates) {
	s.state = state
	s.rt.push(&xr.SessionStateChanged{State: state, Time: s.rt.now()})
}

func (s *Session) Begin(vc xr.ViewConfigs) error {
	if s.state != xr.SessionReady {
		return fmt.Errorf("cannot begin session in state %s", s.state)
	}
	s.running = true
	s.setState(xr.SessionSynchronized)
	s.setState(xr.SessionVisible)
	s.setState(xr.SessionFocused)
	return nil
}

func (s *Session) End() error {
	if s.state != xr.SessionStopping {
		return fmt.Errorf("cannot end session in state %s", s.state)
	}
	s.running = false
	s.setState(xr.SessionIdle)
	s.setState(xr.SessionExiting)
	return nil
}

func (s *Session) Destroy() error {
	if s.destroyed {
		return fmt.Errorf("session already destroyed")
	}
	s.destroyed = true
	return nil
}

func (s *Session) RequestExit() error {
	if !s.running {
		return fmt.Errorf("session is not running")
	}
	s.setState(xr.SessionStopping)
	return nil
}

func (s *Session) ReferenceSpace(typ xr.ReferenceSpaces, pose xr.Posef) (xr.Space, error) {
	return &space{label: typ.String(), pose: pose}, nil
}

func (s *Session) ActionSpace(ac *xr.Action, sub xr.Path, pose xr.Posef) (xr.Space, error) {
	if s.attached {
		return nil, fmt.Errorf("cannot create action space after action sets are attached")
	}
	return &space{label: ac.Name + "/" + string(sub), ac: ac, sub: sub, pose: pose}, nil
}

func (s *Session) AttachActionSets(sets ...*xr.ActionSet) error {
	if s.attached {
		return fmt.Errorf("action sets are already attached")
	}
	s.attached = true
	s.sets = sets
	return nil
}

func (s *Session) SuggestBindings(profile string, bindings []xr.SuggestedBinding) error {
	if s.attached {
		return fmt.Errorf("cannot suggest bindings after action sets are attached")
	}
	if s.profiles == nil {
		s.profiles = map[string][]xr.SuggestedBinding{}
	}
	s.profiles[profile] = bindings
	return nil
}

// CurrentProfile reports the simple controller profile for hands and
// the vive tracker profile for tracker role paths that have a device.
func (s *Session) CurrentProfile(sub xr.Path) (string, error) {
	if !s.attached {
		return "", nil
	}
	for _, h := range xr.HandPaths {
		if sub == h {
			return "/interaction_profiles/khr/simple_controller", nil
		}
	}
	if role := roleForPath(sub); role != xr.RoleNone && s.rt.roleConnected(role) {
		return "/interaction_profiles/htc/vive_tracker_htcx", nil
	}
	return "", nil
}

func (s *Session) SyncActions(sets ...*xr.ActionSet) error {
	if !s.attached {
		return fmt.Errorf("action sets are not attached")
	}
	s.synced = s.rt.now()
	return nil
}

// ActionState animates deterministic input: float actions follow a slow
// wave per hand (periodically crossing any grab threshold), bools
// toggle, and pose actions are active for hands and for tracker roles
// with a connected device.
func (s *Session) ActionState(ac *xr.Action, sub xr.Path) (xr.ActionState, error) {
	if !s.attached {
		return xr.ActionState{}, fmt.Errorf("action sets are not attached")
	}
	hand := handForPath(sub)
	role := roleForPath(sub)

	st := xr.ActionState{Active: true}
	switch ac.Type {
	case xr.PoseAction:
		if role != xr.RoleNone {
			st.Active = s.rt.roleConnected(role)
		}
		st.Value = xr.ActionValue{Type: xr.PoseAction}
	case xr.FloatAction:
		st.Value = xr.FloatValue(wave(s.synced, hand, len(ac.Name)))
	case xr.BoolAction:
		st.Value = xr.BoolValue(int(seconds(s.synced))%2 == 0)
	case xr.Vector2Action:
		st.Value = xr.Vector2Value(circle(s.synced, 0.5))
	default:
		return xr.ActionState{}, fmt.Errorf("action %s has no state", ac.Name)
	}

	key := stateKey{ac, sub}
	if prev, ok := s.values[key]; ok && prev != st.Value {
		st.Changed = true
		st.LastChange = s.synced
	}
	s.values[key] = st.Value
	return st, nil
}

// LocateSpace returns the animated pose of hand and tracker action
// spaces, and a fixed pose for reference spaces. Tracker roles with no
// connected device locate with zero flags.
func (s *Session) LocateSpace(sp, base xr.Space, at xr.Time, velocity bool) (xr.SpaceLocation, error) {
	ss, ok := sp.(*space)
	if !ok {
		return xr.SpaceLocation{}, fmt.Errorf("space %s is not from this runtime", sp.Label())
	}
	if ss.ac == nil {
		return xr.SpaceLocation{Flags: trackedFlags(), Pose: ss.pose}, nil
	}
	if role := roleForPath(ss.sub); role != xr.RoleNone {
		if !s.rt.roleConnected(role) {
			return xr.SpaceLocation{}, nil
		}
		return xr.SpaceLocation{Flags: trackedFlags(), Pose: trackerPose(at, role)}, nil
	}
	loc := xr.SpaceLocation{Flags: trackedFlags(), Pose: handPose(at, handForPath(ss.sub))}
	if velocity {
		loc.VelocityValid = true
		loc.LinearVelocity = handVelocity(at, handForPath(ss.sub))
	}
	return loc, nil
}

func (s *Session) ApplyHaptic(ac *xr.Action, sub xr.Path, amplitude float32, duration time.Duration, frequency float32) error {
	if !s.attached {
		return fmt.Errorf("action sets are not attached")
	}
	slog.Debug("haptic pulse", "action", ac.Name, "sub", sub, "amplitude", amplitude)
	return nil
}

func (s *Session) Formats() ([]int64, error) {
	// GL_SRGB8_ALPHA8 first: it is the runtime's preference too
	return []int64{0x8C43, 0x8058, 0x881A, 0x81A5, 0x88F0}, nil
}

func (s *Session) NewSwapchain(width, height int, format int64, samples int) (xr.Swapchain, error) {
	sc := &Swapchain{width: width, height: height, format: format, acquired: -1}
	for range swapchainImages {
		s.rt.textures++
		sc.images = append(sc.images, s.rt.textures)
	}
	return sc, nil
}

// WaitFrame paces the loop at the simulated refresh rate and predicts
// the next display time one period out.
func (s *Session) WaitFrame() (xr.FrameTiming, error) {
	if !s.running {
		return xr.FrameTiming{}, fmt.Errorf("session is not running")
	}
	if s.waited {
		return xr.FrameTiming{}, fmt.Errorf("frame already waited; begin it first")
	}
	period := s.rt.period()
	time.Sleep(period)
	s.waited = true
	return xr.FrameTiming{
		PredictedDisplayTime:   s.rt.now().Add(period),
		PredictedDisplayPeriod: period,
		ShouldRender:           s.state == xr.SessionVisible || s.state == xr.SessionFocused,
	}, nil
}

func (s *Session) LocateViews(at xr.Time, base xr.Space) ([]xr.View, xr.LocationFlags, error) {
	views := make([]xr.View, s.vc.NumViews())
	for i := range views {
		views[i] = eyeView(at, i, len(views))
	}
	return views, trackedFlags(), nil
}

func (s *Session) BeginFrame() error {
	if !s.waited {
		return fmt.Errorf("frame was not waited")
	}
	if s.begun {
		return fmt.Errorf("frame already begun")
	}
	s.waited = false
	s.begun = true
	return nil
}

func (s *Session) EndFrame(at xr.Time, blend xr.BlendModes, layers []xr.Layer) error {
	if !s.begun {
		return fmt.Errorf("frame was not begun")
	}
	s.begun = false
	return nil
}

// space is the simulated [xr.Space]: a reference space when ac is nil,
// an action space otherwise.
type space struct {
	label string
	ac    *xr.Action
	sub   xr.Path
	pose  xr.Posef
}

func (s *space) Label() string { return s.label }

// handForPath returns [xr.LeftHand] or [xr.RightHand] for a hand
// sub-path, defaulting to left for anything else.
func handForPath(sub xr.Path) int {
	if sub == xr.PathRightHand {
		return xr.RightHand
	}
	return xr.LeftHand
}

// roleForPath returns the tracker role whose user path matches sub, or
// [xr.RoleNone] when sub is not a tracker role path.
func roleForPath(sub xr.Path) xr.TrackerRoles {
	for role := xr.RoleNone + 1; role < xr.TrackerRolesN; role++ {
		if role.Path() == sub {
			return role
		}
	}
	return xr.RoleNone
}

// trackedFlags returns a location fully valid and actively tracked.
func trackedFlags() xr.LocationFlags {
	var f xr.LocationFlags
	f.SetFlag(true, xr.OrientationValid, xr.PositionValid, xr.OrientationTracked, xr.PositionTracked)
	return f
}
