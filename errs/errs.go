// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package errs classifies the errors raised while reading and analysing a beam model
package errs

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// Kind is a coarse-grained category of errors
type Kind string

// error kinds
const (
	InvalidNodeIndex  Kind = "invalid node index" // node id < 1 or DOF outside the system
	DegenerateElement Kind = "degenerate element" // zero or negative element length
	SingularSystem    Kind = "singular system"    // rigid-body motion or disconnected mesh
	InconsistentInput Kind = "inconsistent input" // header counts or values do not match data
)

// Error wraps an underlying error with the operation that raised it and its kind
type Error struct {
	Op   string // operation; e.g. "fem.DofMap"
	Kind Kind   // category
	Err  error  // cause
}

// New returns a new Error
func New(kind Kind, op string, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Error returns the message
func (o *Error) Error() string {
	if o == nil {
		return "<nil>"
	}
	if o.Err == nil {
		return io.Sf("%s: %s", o.Op, o.Kind)
	}
	return io.Sf("%s: %s: %v", o.Op, o.Kind, o.Err)
}

// Unwrap returns the cause
func (o *Error) Unwrap() error {
	if o == nil {
		return nil
	}
	return o.Err
}

// Is tells whether err (or any error it wraps) is of the given kind
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf returns the kind of err or "" if err is not classified
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
