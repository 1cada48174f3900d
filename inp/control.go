// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gobeam/errs"

	"github.com/cpmech/gosl/chk"
)

// constraint imposition methods
const (
	MethodElimination = "elimination" // exact: zero rows/columns of constrained DOFs and unit diagonal
	MethodPenalty     = "penalty"     // approximate: add a large number to the diagonal
)

// Control holds data to control the solution procedure
//  Note: the reciprocal condition number of the stiffness matrix decreases as the mesh is refined;
//        e.g. a well supported cantilever with 600 elements has rcond ≈ 8e-13. Such meshes need
//        a Tol smaller than the default 1e-12 or they are reported as singular
type Control struct {
	Method    string  `json:"method" yaml:"method"`       // constraint imposition method: "elimination" or "penalty"
	Penalty   float64 `json:"penalty" yaml:"penalty"`     // penalty factor (multiplies the largest diagonal entry of K)
	Tol       float64 `json:"tol" yaml:"tol"`             // smallest admissible reciprocal condition number; finer meshes need a smaller tol
	Symmetric bool    `json:"symmetric" yaml:"symmetric"` // use Cholesky factorisation instead of LU
	Nworkers  int     `json:"nworkers" yaml:"nworkers"`   // number of goroutines to compute element matrices
	Nstations int     `json:"nstations" yaml:"nstations"` // number of stations along each element for post-processing
}

// DefaultControl returns the default control data
func DefaultControl() (o *Control) {
	o = new(Control)
	o.SetDefault()
	return
}

// SetDefault sets default values to fields that were not given
func (o *Control) SetDefault() {
	if o.Method == "" {
		o.Method = MethodElimination
	}
	if o.Penalty == 0 {
		o.Penalty = 1e8
	}
	if o.Tol == 0 {
		o.Tol = 1e-12
	}
	if o.Nworkers == 0 {
		o.Nworkers = 1
	}
	if o.Nstations == 0 {
		o.Nstations = 11
	}
}

// Check checks control data
func (o *Control) Check() (err error) {
	switch o.Method {
	case MethodElimination, MethodPenalty:
	default:
		return errs.New(errs.InconsistentInput, "inp.Control", chk.Err("constraint imposition method %q is not available. use %q or %q", o.Method, MethodElimination, MethodPenalty))
	}
	if !(o.Penalty > 1) || math.IsInf(o.Penalty, 0) {
		return errs.New(errs.InconsistentInput, "inp.Control", chk.Err("penalty factor must be greater than 1. penalty = %g", o.Penalty))
	}
	if !(o.Tol > 0) || o.Tol >= 1 {
		return errs.New(errs.InconsistentInput, "inp.Control", chk.Err("tolerance must be in (0, 1). tol = %g", o.Tol))
	}
	if o.Nworkers < 1 {
		return errs.New(errs.InconsistentInput, "inp.Control", chk.Err("number of workers must be positive. nworkers = %d", o.Nworkers))
	}
	if o.Nstations < 2 {
		return errs.New(errs.InconsistentInput, "inp.Control", chk.Err("number of stations must be at least 2. nstations = %d", o.Nstations))
	}
	return
}
