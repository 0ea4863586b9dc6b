// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xrapp

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentxr/playground/xr"
)

// renderFrame runs the fixed per-frame protocol exactly once:
// wait-frame, locate-views, sync-input, begin-frame, per-view render,
// end-frame. Returned errors are fatal and break the outer loop; per-view
// failures degrade to submitting zero layers for this frame instead.
func (a *App) renderFrame() error {
	// once wait-frame succeeds we are committed to begin-frame, so there
	// is no recovery path for failures in between
	timing, err := a.Session.WaitFrame()
	if err != nil {
		return xr.Fatalf("wait frame failed: %w", err)
	}

	// every per-frame query below must use this exact timestamp so all
	// poses within the frame are temporally consistent
	at := timing.PredictedDisplayTime

	views, flags, err := a.Session.LocateViews(at, a.PlaySpace)
	if err != nil {
		return xr.Fatalf("could not locate views: %w", err)
	}

	a.frame++
	a.syncInput(at)

	if err := a.Session.BeginFrame(); err != nil {
		return xr.Fatalf("failed to begin frame: %w", err)
	}

	layers := a.composeLayers(timing, views, flags)

	if err := a.Session.EndFrame(at, a.Config.Blend, layers); err != nil {
		return xr.Fatalf("failed to end frame: %w", err)
	}
	return nil
}

// composeLayers renders each view and the overlay quad and returns the
// layers to submit. It returns nil (present nothing) when the compositor
// asked for no content, when any view failed to render, or when the view
// orientation is invalid: submitting layers with guessed poses produces
// visibly wrong results, so we degrade to blank instead.
func (a *App) composeLayers(timing xr.FrameTiming, views []xr.View, flags xr.LocationFlags) []xr.Layer {
	if !timing.ShouldRender {
		return nil
	}

	proj := &xr.ProjectionLayer{Space: a.PlaySpace, Views: make([]xr.ProjectionView, len(views))}
	ok := true
	for i := range views {
		pv, err := a.renderView(i, views[i], timing)
		if err != nil {
			// per-view failure aborts this frame's submission, not the loop
			errors.Log(err)
			ok = false
			break
		}
		proj.Views[i] = pv
	}

	quad, err := a.renderQuad(timing)
	if err != nil {
		errors.Log(err)
	}

	if !flags.HasFlag(xr.OrientationValid) {
		slog.Warn("not submitting layers because view orientation is invalid")
		return nil
	}
	if !ok {
		return nil
	}
	layers := []xr.Layer{proj}
	if quad != nil {
		layers = append(layers, quad)
	}
	return layers
}

// renderView renders one view into a freshly acquired swapchain image.
// Acquire and bounded-wait failures are recoverable per-frame errors.
func (a *App) renderView(i int, view xr.View, timing xr.FrameTiming) (xr.ProjectionView, error) {
	sc := a.Swapchains[i]
	idx, err := sc.Acquire()
	if err != nil {
		return xr.ProjectionView{}, xr.Recoverablef("failed to acquire swapchain image for view %d: %w", i, err)
	}
	if err := sc.Wait(xr.SwapchainTimeout); err != nil {
		return xr.ProjectionView{}, xr.Recoverablef("swapchain image wait timed out for view %d: %w", i, err)
	}

	depthIdx := 0
	var depth xr.Swapchain
	if a.DepthSwapchains != nil {
		depth = a.DepthSwapchains[i]
		depthIdx, err = depth.Acquire()
		if err != nil {
			return xr.ProjectionView{}, xr.Recoverablef("failed to acquire depth image for view %d: %w", i, err)
		}
		if err := depth.Wait(xr.SwapchainTimeout); err != nil {
			return xr.ProjectionView{}, xr.Recoverablef("depth image wait timed out for view %d: %w", i, err)
		}
	}

	if a.Renderer != nil {
		w, h := sc.Size()
		var depthTex uint32
		if depth != nil {
			depthTex = depth.Texture(depthIdx)
		}
		a.Renderer.RenderView(i, w, h, sc.Texture(idx), depthTex, view, timing.PredictedDisplayTime, a.Snapshot)
		if i == 0 {
			a.mirror = sc.Texture(idx)
		}
	}

	if err := sc.Release(); err != nil {
		return xr.ProjectionView{}, xr.Recoverablef("failed to release swapchain image for view %d: %w", i, err)
	}
	if depth != nil {
		if err := depth.Release(); err != nil {
			return xr.ProjectionView{}, xr.Recoverablef("failed to release depth image for view %d: %w", i, err)
		}
	}

	pv := xr.ProjectionView{
		Pose:       view.Pose,
		Fov:        view.Fov,
		Swapchain:  sc,
		ImageIndex: idx,
		NearZ:      a.Config.NearZ,
		FarZ:       a.Config.FarZ,
	}
	if depth != nil {
		pv.DepthSwapchain = depth
		pv.DepthImageIndex = depthIdx
	}
	return pv, nil
}

// renderQuad renders the auxiliary overlay quad. Failures drop the quad
// layer for this frame only; the projection layer is still submitted.
func (a *App) renderQuad(timing xr.FrameTiming) (xr.Layer, error) {
	if a.QuadSwapchain == nil {
		return nil, nil
	}
	sc := a.QuadSwapchain
	idx, err := sc.Acquire()
	if err != nil {
		return nil, xr.Recoverablef("failed to acquire quad swapchain image: %w", err)
	}
	if err := sc.Wait(xr.SwapchainTimeout); err != nil {
		return nil, xr.Recoverablef("quad swapchain image wait timed out: %w", err)
	}
	if a.Renderer != nil {
		w, h := sc.Size()
		a.Renderer.RenderQuad(w, h, sc.Texture(idx), timing.PredictedDisplayTime)
	}
	if err := sc.Release(); err != nil {
		return nil, xr.Recoverablef("failed to release quad swapchain image: %w", err)
	}

	w, h := sc.Size()
	width := float32(1)
	return &xr.QuadLayer{
		Space: a.PlaySpace,
		Pose: xr.Posef{
			Orientation: xr.IdentityPose().Orientation,
			Position:    quadPosition,
		},
		Width:      width,
		Height:     width * float32(h) / float32(w),
		Swapchain:  sc,
		ImageIndex: idx,
	}, nil
}
