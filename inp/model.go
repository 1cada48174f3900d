// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data of a beam analysis: mesh, material, constraints and loads
package inp

import (
	"math"

	"github.com/cpmech/gobeam/ana"
	"github.com/cpmech/gobeam/errs"

	"github.com/cpmech/gosl/chk"
)

// Node holds node (vertex) data
type Node struct {
	Id int     `json:"id" yaml:"id"` // id (1-based)
	X  float64 `json:"x" yaml:"x"`   // axial position
}

// Elem holds element (connectivity) data
type Elem struct {
	Id int `json:"id" yaml:"id"` // id
	N1 int `json:"n1" yaml:"n1"` // first node id
	N2 int `json:"n2" yaml:"n2"` // second node id
}

// Material holds material and cross-section data shared by all elements
type Material struct {
	E   float64 `json:"E" yaml:"E"`     // Young's modulus
	Hei float64 `json:"hei" yaml:"hei"` // height of rectangular cross-section
	Wid float64 `json:"wid" yaml:"wid"` // width of rectangular cross-section
}

// Load holds a point load (force or moment) applied directly on a global DOF
type Load struct {
	Dof int     `json:"dof" yaml:"dof"` // global equation number
	Val float64 `json:"val" yaml:"val"` // magnitude
}

// Model holds all data required by an analysis
type Model struct {

	// input data
	Nodes       []*Node  `json:"nodes" yaml:"nodes"`             // nodes
	Elems       []*Elem  `json:"elems" yaml:"elems"`             // elements
	Mat         Material `json:"material" yaml:"material"`       // material and cross-section
	Constraints []int    `json:"constraints" yaml:"constraints"` // constrained (fixed) global DOFs
	Loads       []*Load  `json:"loads" yaml:"loads"`             // point loads
	Control     *Control `json:"control" yaml:"control"`         // solver control; may be nil

	// derived
	FnamePath  string            `json:"-" yaml:"-"` // complete filename path
	Fnkey      string            `json:"-" yaml:"-"` // filename key; e.g. "cantilever" for "/tmp/cantilever.txt"
	Sec        *ana.CrossSection `json:"-" yaml:"-"` // cross-section properties
	Vid2node   []*Node           `json:"-" yaml:"-"` // [nnodes] node id - 1 => node
	Xmin, Xmax float64           `json:"-" yaml:"-"` // min and max coordinates
}

// Ny returns the total number of DOFs == 2 * number of nodes
func (o *Model) Ny() int { return 2 * len(o.Nodes) }

// Validate checks the input data and computes derived quantities
//  Note: errors are classified with the errs package
func (o *Model) Validate() (err error) {

	// nodes
	nnodes := len(o.Nodes)
	if nnodes < 2 {
		return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("at least two nodes are required. nnodes = %d", nnodes))
	}
	o.Vid2node = make([]*Node, nnodes)
	for _, n := range o.Nodes {
		if n == nil {
			return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("nil node found"))
		}
		if n.Id < 1 {
			return errs.New(errs.InvalidNodeIndex, "inp.Validate", chk.Err("node id must be greater than or equal to 1. id = %d", n.Id))
		}
		if n.Id > nnodes {
			return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("node ids must be contiguous from 1 to %d. id = %d", nnodes, n.Id))
		}
		if o.Vid2node[n.Id-1] != nil {
			return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("node id %d is repeated", n.Id))
		}
		if math.IsNaN(n.X) || math.IsInf(n.X, 0) {
			return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("coordinate of node %d is invalid. x = %g", n.Id, n.X))
		}
		o.Vid2node[n.Id-1] = n
	}
	o.Xmin, o.Xmax = o.Vid2node[0].X, o.Vid2node[0].X
	for _, n := range o.Vid2node {
		o.Xmin = math.Min(o.Xmin, n.X)
		o.Xmax = math.Max(o.Xmax, n.X)
	}

	// elements
	if len(o.Elems) < 1 {
		return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("at least one element is required"))
	}
	eids := make(map[int]bool)
	for _, e := range o.Elems {
		if e == nil {
			return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("nil element found"))
		}
		if eids[e.Id] {
			return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("element id %d is repeated", e.Id))
		}
		eids[e.Id] = true
		for _, nid := range []int{e.N1, e.N2} {
			if nid < 1 {
				return errs.New(errs.InvalidNodeIndex, "inp.Validate", chk.Err("element %d references node id %d < 1", e.Id, nid))
			}
			if nid > nnodes {
				return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("element %d references node id %d but there are only %d nodes", e.Id, nid, nnodes))
			}
		}
	}

	// material and cross-section
	if !(o.Mat.E > 0) || math.IsInf(o.Mat.E, 0) {
		return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("Young's modulus must be positive. E = %g", o.Mat.E))
	}
	o.Sec, err = ana.NewCrossSection(o.Mat.Wid, o.Mat.Hei)
	if err != nil {
		return errs.New(errs.InconsistentInput, "inp.Validate", err)
	}

	// constraints and loads
	ny := o.Ny()
	for _, eq := range o.Constraints {
		if eq < 0 || eq >= ny {
			return errs.New(errs.InvalidNodeIndex, "inp.Validate", chk.Err("constrained DOF %d is outside [0, %d)", eq, ny))
		}
	}
	for _, l := range o.Loads {
		if l == nil {
			return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("nil load found"))
		}
		if l.Dof < 0 || l.Dof >= ny {
			return errs.New(errs.InvalidNodeIndex, "inp.Validate", chk.Err("loaded DOF %d is outside [0, %d)", l.Dof, ny))
		}
		if math.IsNaN(l.Val) || math.IsInf(l.Val, 0) {
			return errs.New(errs.InconsistentInput, "inp.Validate", chk.Err("load on DOF %d is invalid. val = %g", l.Dof, l.Val))
		}
	}

	// control
	if o.Control == nil {
		o.Control = DefaultControl()
	}
	o.Control.SetDefault()
	return o.Control.Check()
}
