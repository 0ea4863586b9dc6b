// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xr

import (
	"errors"
	"fmt"
)

// Error is an error with a [Severities] classification, which the frame
// loop uses to decide between aborting the loop, skipping one frame's
// data, or just logging.
type Error struct {
	Severity Severities
	Err      error
}

func (e *Error) Error() string {
	return e.Severity.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Fatalf returns a [Fatal] severity error; the frame loop must stop.
func Fatalf(format string, args ...any) error {
	return &Error{Severity: Fatal, Err: fmt.Errorf(format, args...)}
}

// Recoverablef returns a [Recoverable] severity error; the current
// frame's data or view is skipped and the loop continues.
func Recoverablef(format string, args ...any) error {
	return &Error{Severity: Recoverable, Err: fmt.Errorf(format, args...)}
}

// Infof returns an [Informational] severity error, which is only logged.
func Infof(format string, args ...any) error {
	return &Error{Severity: Informational, Err: fmt.Errorf(format, args...)}
}

// SeverityOf returns the severity of the given error. Errors without a
// classification are treated as [Fatal]: an unclassified failure from a
// runtime primitive has no defined recovery path.
func SeverityOf(err error) Severities {
	var xe *Error
	if errors.As(err, &xe) {
		return xe.Severity
	}
	return Fatal
}

// IsFatal reports whether the error should abort the frame loop.
func IsFatal(err error) bool {
	return err != nil && SeverityOf(err) == Fatal
}
