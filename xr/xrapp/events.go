// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xrapp

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentxr/playground/xr"
)

// drainEvents processes all pending runtime events, strictly in delivery
// order, and returns once the poll reports the queue empty. It runs before
// frame timing each iteration: calling wait-frame commits us to completing
// a frame, so any decision to go idle or quit must be made first.
func (a *App) drainEvents() error {
	for !a.quit {
		ev, err := a.Runtime.PollEvent()
		if err != nil {
			return xr.Fatalf("failed to poll events: %w", err)
		}
		if ev == nil {
			return nil
		}
		if err := a.dispatchEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) dispatchEvent(ev xr.Event) error {
	switch e := ev.(type) {
	case *xr.EventsLost:
		// the lost events are gone; nothing to recover
		slog.Warn("runtime lost events", "count", e.Count)

	case *xr.InstanceLossPending:
		// the whole runtime connection is going away: stop draining and
		// shut down immediately
		slog.Error("instance loss pending, shutting down", "lossTime", e.LossTime)
		a.quit = true

	case *xr.SessionStateChanged:
		return a.sessionStateChanged(e)

	case *xr.ReferenceSpaceChangePending:
		// reserved extension point: recentering the play space would go here
		slog.Debug("reference space change pending", "space", e.Space)

	case *xr.InteractionProfileChanged:
		a.updateProfiles()

	case *xr.DeviceConnected:
		a.Trackers.Connect(e)

	case *xr.RefreshRateChanged:
		slog.Info("display refresh rate changed", "from", e.From, "to", e.To)

	default:
		// extension events we do not handle must not abort the drain
		slog.Debug("unhandled runtime event", "type", ev.EventType())
	}
	return nil
}

// updateProfiles re-queries the current interaction profile for every
// hand and every tracker role, and logs only actual changes: runtimes
// may re-notify without the profile having changed.
func (a *App) updateProfiles() {
	paths := make([]xr.Path, 0, xr.NumHands+len(a.Trackers.Devices))
	paths = append(paths, xr.HandPaths[:]...)
	for _, td := range a.Trackers.Devices {
		paths = append(paths, td.Role.Path())
	}
	for _, p := range paths {
		prof, err := a.Session.CurrentProfile(p)
		if err != nil {
			errors.Log(xr.Recoverablef("failed to get interaction profile for %s: %w", p, err))
			continue
		}
		if a.Profiles[p] == prof {
			continue
		}
		slog.Info("interaction profile changed", "path", p, "profile", prof)
		a.Profiles[p] = prof
	}
}
