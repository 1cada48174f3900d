// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the finite element method for the linear static analysis of beams
package fem

import (
	"time"

	"github.com/cpmech/gobeam/inp"
)

// FEM holds all data for an analysis using the finite element method
type FEM struct {
	Mdl  *inp.Model   // model (input) data
	Ctrl *inp.Control // control data
	Dom  *Domain      // domain: nodes, elements, constraints and global system
	Rep  Reporter     // reporter of messages and intermediate results
}

// NewFEM returns a new FEM structure
//  Input:
//   mdl  -- model data; it is validated here
//   ctrl -- control data; if nil, mdl.Control (or the default control) is used.
//           a copy is taken before defaults are filled in
//   rep  -- reporter; if nil, nothing is reported
func NewFEM(mdl *inp.Model, ctrl *inp.Control, rep Reporter) (o *FEM, err error) {

	// new FEM object
	o = new(FEM)
	o.Mdl = mdl
	o.Rep = rep
	if o.Rep == nil {
		o.Rep = Silent{}
	}

	// validate input data
	err = mdl.Validate()
	if err != nil {
		return nil, err
	}
	if ctrl == nil {
		ctrl = mdl.Control
	}
	o.Ctrl = new(inp.Control)
	if ctrl != nil {
		*o.Ctrl = *ctrl
	}
	o.Ctrl.SetDefault()
	err = o.Ctrl.Check()
	if err != nil {
		return nil, err
	}

	// allocate domain
	o.Dom, err = NewDomain(mdl, o.Ctrl, o.Rep)
	if err != nil {
		return nil, err
	}
	o.Rep.Msg("%d nodes, %d elements, %d equations, %d constrained", len(o.Dom.Nodes), len(o.Dom.Elems), o.Dom.Ny, len(o.Dom.EssenBcs.Eqs))
	return
}

// Run assembles and solves the linear system and then computes the results.
// Run may be called many times; each call starts from scratch
func (o *FEM) Run() (res *Results, err error) {

	// assemble
	cputime := time.Now()
	err = o.Dom.Assemble()
	if err != nil {
		return
	}
	o.Rep.Msg("global stiffness matrix assembled (%d workers)", o.Ctrl.Nworkers)
	o.Rep.Mat("K", o.Dom.K0)

	// solve
	err = o.Dom.Solve()
	if err != nil {
		return
	}

	// results
	res = NewResults(o.Dom, o.Ctrl.Nstations)
	o.Rep.Msg("equilibrium residual = %g", res.Residual())
	o.Rep.Msg("cpu time = %v", time.Now().Sub(cputime))
	return
}
