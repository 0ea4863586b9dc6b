// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xrapp implements the session-state-driven frame loop at the
// heart of the playground: a single-threaded poll, decide, maybe render
// cycle that drains runtime events, reacts to session lifecycle
// transitions, and runs the wait → locate → sync → begin → render → end
// frame protocol against a [xr.Runtime] driver. Rendering and windowing
// are external collaborators behind the [Renderer] and [Window]
// interfaces.
package xrapp

import (
	"log/slog"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/cogentxr/playground/xr"
)

// Renderer draws frame content into swapchain textures. Implementations
// are called on the loop thread with a current GL context.
type Renderer interface {

	// RenderView draws one view into the given color (and optional
	// depth) textures at the given display time.
	RenderView(view, width, height int, color, depth uint32, v xr.View, at xr.Time, snap *Snapshot)

	// RenderQuad draws the auxiliary overlay into the given texture.
	RenderQuad(width, height int, texture uint32, at xr.Time)
}

// Window is the desktop mirror window collaborator.
type Window interface {

	// PollEvents pumps window events and reports whether the user
	// requested exit (close button or escape).
	PollEvents() (exit bool)

	// Present shows the given frame texture in the mirror window.
	Present(texture uint32)

	// Destroy closes the window.
	Destroy()
}

// Config are the application options, fixed at startup.
type Config struct {

	// FormFactor is the device form factor to request.
	FormFactor xr.FormFactors

	// ViewConfig is the primary view configuration.
	ViewConfig xr.ViewConfigs

	// ReferenceSpace is the play space type poses are located against.
	ReferenceSpace xr.ReferenceSpaces

	// Blend is the environment blend mode for submitted frames.
	Blend xr.BlendModes

	// HandVelocities requests linear and angular velocities when
	// locating hand pose action spaces.
	HandVelocities bool

	// JointVelocities requests per-joint velocities from hand tracking.
	JointVelocities bool

	// RefreshRate requests this display refresh rate in Hz at startup;
	// 0 leaves the rate to the runtime.
	RefreshRate float32

	// NearZ and FarZ are the projection depth range.
	NearZ float32
	FarZ  float32
}

// Defaults fills in the unset clip planes.
func (c *Config) Defaults() {
	if c.NearZ == 0 {
		c.NearZ = 0.01
	}
	if c.FarZ == 0 {
		c.FarZ = 100
	}
}

// preferred swapchain formats, by GL enum value
const (
	formatSRGBA8  int64 = 0x8C43 // GL_SRGB8_ALPHA8
	formatDepth16 int64 = 0x81A5 // GL_DEPTH_COMPONENT16
)

// quadPosition is where the overlay quad floats in the play space.
var quadPosition = math32.Vec3(1.5, 0.7, -1.5)

// skipPollInterval paces the loop while rendering is skipped, where
// there is no wait-frame call to block on.
const skipPollInterval = 5 * time.Millisecond

// App owns every handle of the running application: the runtime
// connection, session, spaces, actions, swapchains, and the tracker
// registry, all passed explicitly rather than through globals. All use
// is from the single loop thread.
type App struct {
	Config *Config

	Runtime xr.Runtime
	Caps    *xr.Capabilities
	System  *xr.SystemInfo
	Session xr.Session

	// Views is the static per-view configuration.
	Views []xr.ViewConfigView

	// PlaySpace is the reference space all poses are located against.
	PlaySpace xr.Space

	// Gameplay is the action set holding the hand actions below.
	Gameplay   *xr.ActionSet
	HandPose   *xr.Action
	Grab       *xr.Action
	Accelerate *xr.Action
	Haptic     *xr.Action

	// HandSpaces are the hand pose action spaces, indexed by hand.
	HandSpaces [xr.NumHands]xr.Space

	// HandTrackers are non-nil per hand when hand tracking is available.
	HandTrackers [xr.NumHands]xr.HandTracker

	// Trackers is the auxiliary tracker device registry.
	Trackers *TrackerRegistry

	// Swapchains holds one color swapchain per view; DepthSwapchains is
	// nil when depth composition is unsupported.
	Swapchains      []xr.Swapchain
	DepthSwapchains []xr.Swapchain

	// QuadSwapchain backs the overlay quad layer.
	QuadSwapchain xr.Swapchain

	// Profiles is the current interaction profile per sub-path, used
	// only to detect and log changes.
	Profiles map[xr.Path]string

	// Renderer and Window are the external collaborators; either may be
	// nil (headless or no mirror).
	Renderer Renderer
	Window   Window

	// Snapshot is the current frame's input state.
	Snapshot *Snapshot

	mach       machine
	skipRender bool
	quit       bool
	frame      uint64
	mirror     uint32
}

// New returns an App for the given runtime and options.
func New(rt xr.Runtime, cfg *Config) *App {
	cfg.Defaults()
	return &App{
		Config:   cfg,
		Runtime:  rt,
		Caps:     rt.Capabilities(),
		Trackers: newTrackerRegistry(),
		Profiles: map[xr.Path]string{},
	}
}

// Init performs all setup: system and view enumeration, session and
// space creation, action creation and binding suggestion, action set
// attachment, and swapchain creation. Any error is fatal; nothing is
// retried.
func (a *App) Init() error {
	slog.Info("runtime", "name", a.Caps.RuntimeName, "version", a.Caps.RuntimeVersion)
	slog.Debug("supported extensions", "extensions", a.Caps.Extensions)

	sys, err := a.Runtime.System(a.Config.FormFactor)
	if err != nil {
		return xr.Fatalf("failed to get system for form factor %s: %w", a.Config.FormFactor, err)
	}
	a.System = sys
	slog.Info("system", "name", sys.Name, "vendor", sys.VendorID,
		"orientationTracking", sys.OrientationTracking, "positionTracking", sys.PositionTracking,
		"handTracking", sys.HandTracking, "maxLayers", sys.MaxLayerCount)

	a.Views, err = a.Runtime.Views(a.Config.ViewConfig)
	if err != nil {
		return xr.Fatalf("failed to enumerate views for %s: %w", a.Config.ViewConfig, err)
	}
	for i, v := range a.Views {
		slog.Debug("view configuration", "view", i,
			"recommended", []int{v.RecommendedWidth, v.RecommendedHeight},
			"max", []int{v.MaxWidth, v.MaxHeight}, "samples", v.RecommendedSamples)
	}

	a.Session, err = a.Runtime.NewSession(sys, a.Config.ViewConfig)
	if err != nil {
		return xr.Fatalf("failed to create session: %w", err)
	}

	a.PlaySpace, err = a.Session.ReferenceSpace(a.Config.ReferenceSpace, xr.IdentityPose())
	if err != nil {
		return xr.Fatalf("failed to create %s reference space: %w", a.Config.ReferenceSpace, err)
	}

	if err := a.initActions(); err != nil {
		return err
	}
	if a.Caps.Trackers != nil {
		// devices already connected at startup produce no connect event
		devs, err := a.Caps.Trackers.Trackers()
		if err != nil {
			errors.Log(xr.Recoverablef("failed to enumerate trackers: %w", err))
		}
		for i := range devs {
			a.Trackers.Connect(&devs[i])
		}
	}
	if err := a.initSwapchains(); err != nil {
		return err
	}
	if err := a.initHandTracking(); err != nil {
		return err
	}
	a.initRefreshRate()
	return nil
}

// initActions creates the gameplay actions, suggests bindings, creates
// the action spaces, and attaches the action sets. Attach is last:
// afterward no actions or spaces can be created, which is why every
// tracker role was pre-provisioned by [newTrackerRegistry].
func (a *App) initActions() error {
	a.Gameplay = xr.NewActionSet("gameplay", "Gameplay", 0)
	hands := xr.HandPaths[:]
	a.HandPose = a.Gameplay.AddAction("handpose", "Hand Pose", xr.PoseAction, hands...)
	a.Grab = a.Gameplay.AddAction("grabobject", "Grab Object", xr.FloatAction, hands...)
	a.Accelerate = a.Gameplay.AddAction("accelerate", "Accelerate", xr.FloatAction, hands...)
	a.Haptic = a.Gameplay.AddAction("haptic", "Haptic Vibration", xr.VibrationAction, hands...)

	suggest := func(profile string, bindings []xr.SuggestedBinding) error {
		if err := a.Session.SuggestBindings(profile, bindings); err != nil {
			return xr.Fatalf("failed to suggest bindings for %s: %w", profile, err)
		}
		return nil
	}
	perHand := func(ac *xr.Action, comp string) []xr.SuggestedBinding {
		bs := make([]xr.SuggestedBinding, 0, xr.NumHands)
		for _, h := range xr.HandPaths {
			bs = append(bs, xr.SuggestedBinding{Action: ac, Binding: h + xr.Path(comp)})
		}
		return bs
	}

	simple := append(perHand(a.HandPose, "/input/grip/pose"), perHand(a.Grab, "/input/select/click")...)
	simple = append(simple, perHand(a.Haptic, "/output/haptic")...)
	if err := suggest("/interaction_profiles/khr/simple_controller", simple); err != nil {
		return err
	}

	index := append(perHand(a.HandPose, "/input/grip/pose"), perHand(a.Grab, "/input/squeeze/value")...)
	index = append(index, perHand(a.Accelerate, "/input/thumbstick/y")...)
	index = append(index, perHand(a.Haptic, "/output/haptic")...)
	if err := suggest("/interaction_profiles/valve/index_controller", index); err != nil {
		return err
	}

	if a.Caps.Trackers != nil {
		tb := make([]xr.SuggestedBinding, 0, len(a.Trackers.Devices))
		for _, td := range a.Trackers.Devices {
			tb = append(tb, xr.SuggestedBinding{Action: td.Action, Binding: td.Role.Path() + "/input/grip/pose"})
		}
		if err := suggest("/interaction_profiles/htc/vive_tracker_htcx", tb); err != nil {
			return err
		}
	}

	for hand, path := range xr.HandPaths {
		sp, err := a.Session.ActionSpace(a.HandPose, path, xr.IdentityPose())
		if err != nil {
			return xr.Fatalf("failed to create hand action space for %s: %w", path, err)
		}
		a.HandSpaces[hand] = sp
	}
	if err := a.Trackers.createSpaces(a.Session); err != nil {
		return err
	}

	if err := a.Session.AttachActionSets(a.Gameplay, a.Trackers.Set); err != nil {
		return xr.Fatalf("failed to attach action sets: %w", err)
	}
	return nil
}

// chooseFormat returns the preferred format if the runtime supports it,
// or the runtime's first (most preferred) format otherwise.
func chooseFormat(formats []int64, preferred int64) int64 {
	for _, f := range formats {
		if f == preferred {
			return f
		}
	}
	chosen := formats[0]
	slog.Warn("falling back to non-preferred swapchain format",
		"preferred", preferred, "chosen", chosen)
	return chosen
}

func (a *App) initSwapchains() error {
	formats, err := a.Session.Formats()
	if err != nil {
		return xr.Fatalf("failed to enumerate swapchain formats: %w", err)
	}
	if len(formats) == 0 {
		return xr.Fatalf("runtime reported no swapchain formats")
	}
	slog.Debug("swapchain formats", "count", len(formats))
	format := chooseFormat(formats, formatSRGBA8)

	for i, v := range a.Views {
		sc, err := a.Session.NewSwapchain(v.RecommendedWidth, v.RecommendedHeight, format, v.RecommendedSamples)
		if err != nil {
			return xr.Fatalf("failed to create swapchain for view %d: %w", i, err)
		}
		a.Swapchains = append(a.Swapchains, sc)
	}

	if a.Caps.Depth {
		for i, v := range a.Views {
			sc, err := a.Session.NewSwapchain(v.RecommendedWidth, v.RecommendedHeight, formatDepth16, v.RecommendedSamples)
			if err != nil {
				return xr.Fatalf("failed to create depth swapchain for view %d: %w", i, err)
			}
			a.DepthSwapchains = append(a.DepthSwapchains, sc)
		}
	}

	quad, err := a.Session.NewSwapchain(800, 600, format, 1)
	if err != nil {
		return xr.Fatalf("failed to create quad swapchain: %w", err)
	}
	a.QuadSwapchain = quad
	return nil
}

func (a *App) initHandTracking() error {
	if a.Caps.HandTracking == nil || !a.System.HandTracking {
		return nil
	}
	for hand := range xr.NumHands {
		ht, err := a.Caps.HandTracking.NewHandTracker(hand)
		if err != nil {
			return xr.Fatalf("failed to create hand tracker %d: %w", hand, err)
		}
		a.HandTrackers[hand] = ht
	}
	slog.Info("hand tracking enabled")
	return nil
}

func (a *App) initRefreshRate() {
	rr := a.Caps.RefreshRate
	if rr == nil {
		return
	}
	if hz, err := rr.RefreshRate(); err == nil {
		slog.Info("display refresh rate", "hz", hz)
	}
	if a.Config.RefreshRate > 0 {
		if err := rr.RequestRefreshRate(a.Config.RefreshRate); err != nil {
			errors.Log(xr.Recoverablef("failed to request refresh rate %g: %w", a.Config.RefreshRate, err))
		}
	}
}

// Run is the outer loop: pump window events, drain runtime events,
// then either skip or render one frame. It returns when a terminal
// session state or instance loss sets the quit flag, when the user
// closes the window, or on the first fatal error.
func (a *App) Run() error {
	for !a.quit {
		if a.Window != nil && a.Window.PollEvents() {
			slog.Info("requesting exit")
			// cooperative: the runtime walks the session to Stopping and
			// Exiting, which we observe as events
			errors.Log(a.Session.RequestExit())
		}

		if err := a.drainEvents(); err != nil {
			return err
		}
		if a.quit {
			break
		}
		if a.skipRender {
			// nothing will block this iteration, so pace the polling
			time.Sleep(skipPollInterval)
			continue
		}

		if err := a.renderFrame(); err != nil {
			return err
		}
		if a.Window != nil && a.mirror != 0 {
			a.Window.Present(a.mirror)
		}
	}
	return nil
}

// Destroy releases everything in reverse creation order. The session is
// destroyed here only if the state machine did not already do so.
func (a *App) Destroy() {
	for _, ht := range a.HandTrackers {
		if ht != nil {
			errors.Log(ht.Destroy())
		}
	}
	for _, sc := range a.Swapchains {
		errors.Log(sc.Destroy())
	}
	for _, sc := range a.DepthSwapchains {
		errors.Log(sc.Destroy())
	}
	if a.QuadSwapchain != nil {
		errors.Log(a.QuadSwapchain.Destroy())
	}
	if a.Session != nil && !a.mach.Destroyed {
		errors.Log(a.Session.Destroy())
	}
	errors.Log(a.Runtime.Destroy())
	if a.Window != nil {
		a.Window.Destroy()
	}
	slog.Info("cleaned up")
}
