// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xrapp

import (
	"log/slog"

	"github.com/cogentxr/playground/xr"
)

// sessionActions are the side-effecting session calls a state transition
// can demand. Each must be issued at most once per state entry, which the
// machine guarantees with the Running and Destroyed flags.
type sessionActions int32

const (
	noAction sessionActions = iota
	beginSession
	endSession
	destroySession
)

// machine is the session lifecycle state machine. State is mutated only
// by [machine.transition]; Running and Destroyed are the derived flags
// that make the at-most-once invariants checkable.
type machine struct {
	State     xr.SessionStates
	Running   bool
	Destroyed bool
}

// transition is a pure function from the current machine and a newly
// reported state to the next machine and the decision for this entry:
// which session call to issue (at most once), whether rendering is
// skipped until the next transition, and whether the outer loop should
// stop after the current event drain completes.
func (m machine) transition(state xr.SessionStates) (next machine, action sessionActions, skip, quit bool) {
	m.State = state
	switch state {
	case xr.SessionUnknown, xr.SessionIdle:
		return m, noAction, true, false

	case xr.SessionSynchronized, xr.SessionVisible, xr.SessionFocused:
		return m, noAction, false, false

	case xr.SessionReady:
		// begin only if not already running: the runtime may re-report
		// Ready before it switches to the next state
		if m.Running {
			return m, noAction, false, false
		}
		m.Running = true
		return m, beginSession, false, false

	case xr.SessionStopping:
		// likewise end only if running
		if !m.Running {
			return m, noAction, true, false
		}
		m.Running = false
		return m, endSession, true, false

	case xr.SessionLossPending, xr.SessionExiting:
		if m.Destroyed {
			return m, noAction, true, true
		}
		m.Destroyed = true
		return m, destroySession, true, true
	}
	// out-of-range state from a newer runtime: keep polling
	return m, noAction, true, false
}

// sessionStateChanged applies one state change event: runs the machine
// transition and issues the demanded session call. Failures of the
// begin/end/destroy primitives have no recovery path and are fatal.
func (a *App) sessionStateChanged(ev *xr.SessionStateChanged) error {
	slog.Info("session state changed", "from", a.mach.State, "to", ev.State)
	next, action, skip, quit := a.mach.transition(ev.State)
	a.mach = next
	a.skipRender = skip
	if quit {
		a.quit = true
	}
	switch action {
	case beginSession:
		if err := a.Session.Begin(a.Config.ViewConfig); err != nil {
			return xr.Fatalf("failed to begin session: %w", err)
		}
		slog.Info("session started")
	case endSession:
		if err := a.Session.End(); err != nil {
			return xr.Fatalf("failed to end session: %w", err)
		}
		slog.Info("session ended")
	case destroySession:
		if err := a.Session.Destroy(); err != nil {
			return xr.Fatalf("failed to destroy session: %w", err)
		}
		slog.Info("session destroyed")
	}
	return nil
}
