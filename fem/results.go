// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// NodeResult holds results @ node
type NodeResult struct {
	Id int     `json:"id" yaml:"id"` // node id
	X  float64 `json:"x" yaml:"x"`   // coordinate
	Uy float64 `json:"uy" yaml:"uy"` // transverse displacement
	Rz float64 `json:"rz" yaml:"rz"` // rotation
	Fy float64 `json:"fy" yaml:"fy"` // reaction force (zero if uy is free)
	Mz float64 `json:"mz" yaml:"mz"` // reaction moment (zero if rz is free)
}

// ElemResult holds results of a beam element
type ElemResult struct {
	Id   int         `json:"id" yaml:"id"`     // element id
	L    float64     `json:"L" yaml:"L"`       // length
	Umap []int       `json:"umap" yaml:"umap"` // assembly map
	Kl   [][]float64 `json:"Kl" yaml:"Kl"`     // local stiffness matrix
	Fe   []float64   `json:"fe" yaml:"fe"`     // end forces: Kl・ue
	X    []float64   `json:"x" yaml:"x"`       // coordinates of stations
	U    []float64   `json:"u" yaml:"u"`       // deflection @ stations
	V    []float64   `json:"V" yaml:"V"`       // shear force @ stations
	M    []float64   `json:"M" yaml:"M"`       // bending moment @ stations
	Sig  []float64   `json:"sig" yaml:"sig"`   // bending stress @ extreme fibre @ stations
	Eps  []float64   `json:"eps" yaml:"eps"`   // strain @ extreme fibre @ stations
}

// Results holds the results of a linear static analysis
type Results struct {
	Ny          int           `json:"ny" yaml:"ny"`                   // number of equations
	K           [][]float64   `json:"K" yaml:"K"`                     // global stiffness matrix before constraints
	F           []float64     `json:"F" yaml:"F"`                     // external forces
	Y           []float64     `json:"Y" yaml:"Y"`                     // displacements and rotations
	R           []float64     `json:"R" yaml:"R"`                     // reactions
	Constrained []int         `json:"constrained" yaml:"constrained"` // constrained equations (sorted and unique)
	Rcond       float64       `json:"rcond" yaml:"rcond"`             // reciprocal condition number of scaled system
	Nodes       []*NodeResult `json:"nodes" yaml:"nodes"`             // results @ nodes
	Elems       []*ElemResult `json:"elems" yaml:"elems"`             // results @ elements

	// extreme values
	UyMax     float64 `json:"uymax" yaml:"uymax"`         // largest transverse displacement (absolute value; with sign)
	UyMaxNode int     `json:"uymaxnode" yaml:"uymaxnode"` // node with largest transverse displacement
	Mmax      float64 `json:"mmax" yaml:"mmax"`           // largest bending moment (absolute value; with sign)
	SigMax    float64 `json:"sigmax" yaml:"sigmax"`       // largest bending stress (absolute value; with sign)

	// equilibrium: sum of external forces (loads plus reactions)
	SumFy float64 `json:"sumfy" yaml:"sumfy"` // Σ forces along y
	SumMz float64 `json:"summz" yaml:"summz"` // Σ moments about x=0
}

// Residual returns the largest equilibrium residual; i.e. max(|ΣFy|, |ΣMz|)
func (o *Results) Residual() float64 {
	return math.Max(math.Abs(o.SumFy), math.Abs(o.SumMz))
}

// KMatrix returns K as a gonum matrix
func (o *Results) KMatrix() *mat.Dense {
	K := mat.NewDense(o.Ny, o.Ny, nil)
	for i := 0; i < o.Ny; i++ {
		for j := 0; j < o.Ny; j++ {
			K.Set(i, j, o.K[i][j])
		}
	}
	return K
}

// NewResults collects the results from a solved domain
//  Input:
//   nstations -- number of stations along each element
func NewResults(dom *Domain, nstations int) (o *Results) {

	// global system
	o = new(Results)
	o.Ny = dom.Ny
	o.K = make([][]float64, dom.Ny)
	for i := 0; i < dom.Ny; i++ {
		o.K[i] = mat.Row(nil, i, dom.K0)
	}
	o.F = append([]float64{}, dom.Sol.F...)
	o.Y = append([]float64{}, dom.Sol.Y...)
	o.R = append([]float64{}, dom.Sol.R...)
	o.Constrained = append([]int{}, dom.EssenBcs.Eqs...)
	o.Rcond = dom.LinSol.Rcond

	// nodes
	o.Nodes = make([]*NodeResult, len(dom.Nodes))
	for i, nod := range dom.Nodes {
		uy, rz := nod.GetEq(KeyUy), nod.GetEq(KeyRz)
		x := nod.Vert.X
		o.Nodes[i] = &NodeResult{
			Id: nod.Vert.Id,
			X:  x,
			Uy: o.Y[uy],
			Rz: o.Y[rz],
			Fy: o.R[uy],
			Mz: o.R[rz],
		}
		if math.Abs(o.Y[uy]) > math.Abs(o.UyMax) || i == 0 {
			o.UyMax = o.Y[uy]
			o.UyMaxNode = nod.Vert.Id
		}
		fy := o.R[uy] + o.F[uy]
		mz := o.R[rz] + o.F[rz]
		o.SumFy += fy
		o.SumMz += mz + x*fy
	}

	// elements
	o.Elems = make([]*ElemResult, len(dom.Elems))
	for i, e := range dom.Elems {
		r := &ElemResult{
			Id:   e.Id(),
			L:    e.L,
			Umap: append([]int{}, e.Umap...),
			Kl:   e.Kl,
			Fe:   e.EndForces(dom.Sol),
			X:    e.Xs(nstations),
			U:    e.CalcDeflection(dom.Sol, 0, nstations),
		}
		r.V, r.M = e.CalcVandM(dom.Sol, 0, nstations)
		r.Sig = make([]float64, nstations)
		r.Eps = make([]float64, nstations)
		for j, m := range r.M {
			r.Sig[j] = e.Sig(m)
			r.Eps[j] = e.Eps(m)
			if math.Abs(m) > math.Abs(o.Mmax) {
				o.Mmax = m
			}
			if math.Abs(r.Sig[j]) > math.Abs(o.SigMax) {
				o.SigMax = r.Sig[j]
			}
		}
		o.Elems[i] = r
	}
	return
}
