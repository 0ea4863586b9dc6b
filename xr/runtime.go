// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

import "time"

// Runtime is the top-level driver contract, corresponding to an XR
// instance. All methods are blocking calls made from the single loop
// thread; drivers need no internal locking for application use.
type Runtime interface {

	// Capabilities returns the static capability set, resolved once at
	// startup. The returned value is read-only.
	Capabilities() *Capabilities

	// System returns the system for the given form factor, or an error
	// if no such system is available (fatal at setup).
	System(form FormFactors) (*SystemInfo, error)

	// Views returns the per-view configuration for the given view
	// configuration type.
	Views(vc ViewConfigs) ([]ViewConfigView, error)

	// PollEvent returns the next pending event, or (nil, nil) when the
	// queue is empty. Any error is a failure of the poll itself.
	PollEvent() (Event, error)

	// NewSession creates the session for the given system.
	NewSession(system *SystemInfo, vc ViewConfigs) (Session, error)

	// Destroy releases the runtime connection.
	Destroy() error
}

// Session is a driver session. Lifecycle calls (Begin, End, Destroy) must
// follow the state machine: Begin only from [SessionReady], End only from
// [SessionStopping], Destroy from [SessionLossPending] or [SessionExiting].
type Session interface {

	// Begin starts the session with the given primary view configuration.
	Begin(vc ViewConfigs) error

	// End ends a running session.
	End() error

	// Destroy destroys the session and all resources created from it.
	Destroy() error

	// RequestExit asks the runtime to transition the session toward
	// [SessionExiting]. The actual transitions arrive as events.
	RequestExit() error

	// ReferenceSpace creates a reference space of the given type with the
	// given pose offset from its natural origin.
	ReferenceSpace(typ ReferenceSpaces, pose Posef) (Space, error)

	// ActionSpace creates a space tracking a pose action for one sub-path.
	// Like actions themselves, action spaces are created at setup only.
	ActionSpace(ac *Action, sub Path, pose Posef) (Space, error)

	// AttachActionSets attaches the given sets to the session. After this
	// no actions or action spaces may be created; attach happens once.
	AttachActionSets(sets ...*ActionSet) error

	// SuggestBindings suggests bindings of actions to input component
	// paths for the named interaction profile.
	SuggestBindings(profile string, bindings []SuggestedBinding) error

	// CurrentProfile returns the interaction profile path currently
	// active for the given top level user path, or "" if none.
	CurrentProfile(sub Path) (string, error)

	// SyncActions updates the state of all actions in the given sets.
	// It must be called once per frame before any state queries.
	SyncActions(sets ...*ActionSet) error

	// ActionState returns the state of the action for one sub-path
	// (or "" for single-source actions) as of the last sync.
	ActionState(ac *Action, sub Path) (ActionState, error)

	// LocateSpace locates a space against a base space at the given time.
	// Velocities are only filled in when requested.
	LocateSpace(space, base Space, at Time, velocity bool) (SpaceLocation, error)

	// ApplyHaptic triggers a vibration on a haptic output action.
	ApplyHaptic(ac *Action, sub Path, amplitude float32, duration time.Duration, frequency float32) error

	// Formats returns the supported swapchain texture formats, in the
	// runtime's order of preference.
	Formats() ([]int64, error)

	// NewSwapchain creates a swapchain of the given pixel size and format.
	NewSwapchain(width, height int, format int64, samples int) (Swapchain, error)

	// WaitFrame blocks until the compositor is ready for a new frame and
	// returns its predicted timing. Calling WaitFrame commits the caller
	// to eventually calling BeginFrame; failure here is fatal.
	WaitFrame() (FrameTiming, error)

	// LocateViews locates all views against the base space at the given
	// display time. The returned flags apply to all views.
	LocateViews(at Time, base Space) ([]View, LocationFlags, error)

	// BeginFrame marks the start of frame submission.
	BeginFrame() error

	// EndFrame submits the composed layers with the frame's display time
	// and blend mode. Submitting zero layers presents nothing.
	EndFrame(at Time, blend BlendModes, layers []Layer) error
}

// SuggestedBinding pairs an action with an input component path,
// e.g., ".../input/squeeze/value".
type SuggestedBinding struct {
	Action  *Action
	Binding Path
}

// Swapchain is a runtime-managed ring of renderable textures. Each frame
// the application acquires an image, waits for it to be ready, renders
// into it, and releases it back to the compositor.
type Swapchain interface {

	// Acquire returns the index of the next image to render into.
	Acquire() (int, error)

	// Wait blocks until the acquired image is ready, up to the timeout.
	// A timeout is a recoverable per-frame error.
	Wait(timeout time.Duration) error

	// Release hands the rendered image back to the compositor.
	Release() error

	// Texture returns the GL texture name for the given image index.
	Texture(i int) uint32

	// Size returns the pixel size of the images.
	Size() (width, height int)

	// Format returns the texture format the swapchain was created with.
	Format() int64

	// Destroy releases the swapchain.
	Destroy() error
}

// Layer is one composition layer submitted at end-frame: either a
// *[ProjectionLayer] or a *[QuadLayer].
type Layer interface {
	layer()
}

// ProjectionLayer is the per-view projected content of a frame.
type ProjectionLayer struct {

	// Space the view poses are expressed in.
	Space Space

	// Views holds one entry per view, in view order.
	Views []ProjectionView
}

func (l *ProjectionLayer) layer() {}

// ProjectionView is one view's contribution to a projection layer.
type ProjectionView struct {
	Pose Posef
	Fov  Fovf

	// Swapchain and ImageIndex identify the rendered color image.
	Swapchain  Swapchain
	ImageIndex int

	// DepthSwapchain optionally carries depth for reprojection; nil when
	// depth composition is unsupported or disabled.
	DepthSwapchain  Swapchain
	DepthImageIndex int

	// NearZ and FarZ are the projection depth range for the depth layer.
	NearZ float32
	FarZ  float32
}

// QuadLayer is a flat textured rectangle composed into the world,
// used here for the auxiliary overlay.
type QuadLayer struct {
	Space Space
	Pose  Posef

	// Width and Height are the quad's world-space size in meters.
	Width  float32
	Height float32

	Swapchain  Swapchain
	ImageIndex int
}

func (l *QuadLayer) layer() {}
