// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

import (
	"fmt"
	"time"

	"cogentcore.org/core/math32"
)

// HapticMinDuration requests the runtime's shortest supported pulse.
const HapticMinDuration time.Duration = -1

// HapticFrequencyUnspecified lets the runtime pick the pulse frequency.
const HapticFrequencyUnspecified float32 = 0

// Action is one abstract input or output, such as "grab" or "hand pose",
// bound to physical controls by the runtime through interaction profile
// bindings. The value type is fixed at creation. Actions are created at
// setup time only; they cannot be created after the owning [ActionSet]
// is attached to a session.
type Action struct {

	// Name is the action's identifier within its set, e.g., "grabobject".
	Name string

	// Localized is the human-readable name shown in runtime binding UIs.
	Localized string

	// Type is the fixed value type of the action.
	Type ActionTypes

	// SubPaths are the sub-sources (hands, tracker roles) this action can
	// be queried for separately. Empty means the action has one source.
	SubPaths []Path
}

// ActionSet is a named group of actions that is synced as a unit
// once per frame.
type ActionSet struct {

	// Name identifies the set, e.g., "gameplay".
	Name string

	// Localized is the human-readable set name.
	Localized string

	// Priority breaks binding conflicts between sets; higher wins.
	Priority int

	// Actions are the actions in this set, fixed after attach.
	Actions []*Action
}

// NewActionSet returns a new empty action set.
func NewActionSet(name, localized string, priority int) *ActionSet {
	return &ActionSet{Name: name, Localized: localized, Priority: priority}
}

// AddAction creates an action in this set and returns it.
func (as *ActionSet) AddAction(name, localized string, typ ActionTypes, subPaths ...Path) *Action {
	ac := &Action{Name: name, Localized: localized, Type: typ, SubPaths: subPaths}
	as.Actions = append(as.Actions, ac)
	return ac
}

// ActionValue is the tagged value of an action state. The Type tag is
// set when the owning action is created and never changes; only the
// variant selected by it is meaningful.
type ActionValue struct {
	Type ActionTypes

	Bool    bool
	Float   float32
	Vector2 math32.Vector2
}

// BoolValue returns a bool-typed action value.
func BoolValue(v bool) ActionValue {
	return ActionValue{Type: BoolAction, Bool: v}
}

// FloatValue returns a float-typed action value.
func FloatValue(v float32) ActionValue {
	return ActionValue{Type: FloatAction, Float: v}
}

// Vector2Value returns a 2D vector typed action value.
func Vector2Value(v math32.Vector2) ActionValue {
	return ActionValue{Type: Vector2Action, Vector2: v}
}

func (v ActionValue) String() string {
	switch v.Type {
	case BoolAction:
		return fmt.Sprintf("%v", v.Bool)
	case FloatAction:
		return fmt.Sprintf("%g", v.Float)
	case Vector2Action:
		return fmt.Sprintf("(%g, %g)", v.Vector2.X, v.Vector2.Y)
	case PoseAction:
		return "pose"
	}
	return v.Type.String()
}

// ActionState is the state of one (action, sub-path) pair as of the last
// action sync. Pose-typed actions report only Active here; their pose is
// obtained by locating the action's space.
type ActionState struct {

	// Value is the current value, tagged by the action's type.
	Value ActionValue

	// Active reports whether any input source is currently bound and
	// providing this action.
	Active bool

	// Changed reports whether the value changed since the previous sync.
	Changed bool

	// LastChange is when the value last changed.
	LastChange Time
}
