// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"sync"

	"github.com/cpmech/gobeam/ana"
	"github.com/cpmech/gobeam/errs"
	"github.com/cpmech/gobeam/inp"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Solution holds the solution data @ nodes.
//
//        / uy1 \
//        | rz1 |
//  y  =  | uy2 |
//        | rz2 |
//        \ ... / (ny x 1)
//
type Solution struct {
	Y []float64 // DOFs (solution variables): uy and rz of each node
	F []float64 // external (applied) forces; before constraints are imposed
	R []float64 // reactions @ constrained DOFs: R = K0・Y - F; zero elsewhere
}

// Domain holds all Nodes and Elements in addition to the global system and the Solution at nodes
type Domain struct {

	// init: auxiliary variables
	Mdl    *inp.Model   // [from FEM] input data
	Ctrl   *inp.Control // [from FEM] control data
	Rep    Reporter     // [from FEM] reporter
	LinSol LinSol       // linear solver

	// nodes and elements
	Nodes    []*Node // [nnodes] all nodes; sorted by id
	Elems    []*Beam // [nelems] all elements in input order
	Vid2node []*Node // [nnodes] VertexId - 1 => node

	// coefficients and prescribed forces
	EssenBcs EssentialBcs // constraints
	PtNatBcs PtNaturalBcs // point loads such as prescribed forces at nodes

	// system
	Ny  int        // total number of equations
	Kb  *mat.Dense // global stiffness matrix; constraints are imposed in place
	K0  *mat.Dense // global stiffness matrix before constraints
	Fb  []float64  // right-hand side; constrained entries are zeroed
	Sol *Solution  // solution state
}

// NewDomain returns a new domain
//  Note: mdl must have been validated already
func NewDomain(mdl *inp.Model, ctrl *inp.Control, rep Reporter) (o *Domain, err error) {

	// basic data
	o = new(Domain)
	o.Mdl = mdl
	o.Ctrl = ctrl
	o.Rep = rep
	if o.Rep == nil {
		o.Rep = Silent{}
	}
	o.LinSol.Symmetric = ctrl.Symmetric
	o.LinSol.Tol = ctrl.Tol

	// nodes
	o.Ny = mdl.Ny()
	o.Nodes = make([]*Node, len(mdl.Vid2node))
	o.Vid2node = o.Nodes
	for i, v := range mdl.Vid2node {
		o.Nodes[i], err = NewNode(v)
		if err != nil {
			return
		}
	}

	// elements
	o.Elems = make([]*Beam, len(mdl.Elems))
	for i, edat := range mdl.Elems {
		if edat.N1 < 1 || edat.N2 < 1 || edat.N1 > len(o.Nodes) || edat.N2 > len(o.Nodes) {
			return nil, errs.New(errs.InvalidNodeIndex, "fem.NewDomain", chk.Err("element %d refers to node (%d, %d) outside [1, %d]", edat.Id, edat.N1, edat.N2, len(o.Nodes)))
		}
		x := []float64{o.Nodes[edat.N1-1].Vert.X, o.Nodes[edat.N2-1].Vert.X}
		o.Elems[i], err = NewBeam(edat, x, mdl.Mat.E, mdl.Sec)
		if err != nil {
			return
		}
	}

	// essential boundary conditions
	dups, err := o.EssenBcs.Init(mdl.Constraints, o.Ny, ctrl.Method, ctrl.Penalty)
	if err != nil {
		return
	}
	if len(dups) > 0 {
		o.Rep.Warn("constrained DOFs %v are repeated and will be imposed only once", dups)
	}

	// natural boundary conditions
	o.PtNatBcs.Reset()
	for _, load := range mdl.Loads {
		if load.Dof < 0 || load.Dof >= o.Ny {
			return nil, errs.New(errs.InvalidNodeIndex, "fem.NewDomain", chk.Err("load DOF %d is outside [0, %d)", load.Dof, o.Ny))
		}
		o.PtNatBcs.Set(load.Dof, load.Val)
	}

	// solution
	o.Sol = &Solution{
		Y: make([]float64, o.Ny),
		F: make([]float64, o.Ny),
		R: make([]float64, o.Ny),
	}
	o.Fb = make([]float64, o.Ny)
	return
}

// Recompute re-computes the element matrices. Elements are split among Ctrl.Nworkers goroutines;
// each element only writes to itself. The first failing element in input order is reported
func (o *Domain) Recompute() (err error) {
	nel := len(o.Elems)
	nw := o.Ctrl.Nworkers
	if nw > nel {
		nw = nel
	}
	if nw < 2 {
		for _, e := range o.Elems {
			err = e.Recompute()
			if err != nil {
				return
			}
		}
		return
	}
	elerrs := make([]error, nel)
	size := (nel + nw - 1) / nw
	var wg sync.WaitGroup
	for start := 0; start < nel; start += size {
		end := start + size
		if end > nel {
			end = nel
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				elerrs[i] = o.Elems[i].Recompute()
			}
		}(start, end)
	}
	wg.Wait()
	for _, e := range elerrs {
		if e != nil {
			return e
		}
	}
	return
}

// Assemble computes all element matrices and assembles the global stiffness matrix.
// The scatter (addition into Kb) runs serially in element order; thus the results are
// bit-identical regardless of the number of workers
func (o *Domain) Assemble() (err error) {
	err = o.Recompute()
	if err != nil {
		return
	}
	o.Kb = mat.NewDense(o.Ny, o.Ny, nil)
	for _, e := range o.Elems {
		e.AddToKb(o.Kb)
	}
	o.K0 = mat.DenseCopyOf(o.Kb)
	return
}

// Solve builds the right-hand side, imposes the constraints and solves the linear system.
// Assemble must be called first
func (o *Domain) Solve() (err error) {

	// external forces
	for i := 0; i < o.Ny; i++ {
		o.Sol.F[i] = 0
	}
	o.PtNatBcs.AddToRhs(o.Sol.F)
	copy(o.Fb, o.Sol.F)
	o.Rep.Vec("F", o.Sol.F)

	// constraints
	o.EssenBcs.Apply(o.Kb, o.Fb)
	if o.EssenBcs.Method == inp.MethodPenalty {
		o.Rep.Msg("penalty value = %g", o.EssenBcs.Pval)
	}

	// solve
	err = o.LinSol.Fact(o.Kb)
	if err != nil {
		return
	}
	o.Rep.Msg("reciprocal condition number (scaled) = %g", o.LinSol.Rcond)
	err = o.LinSol.Solve(o.Sol.Y, o.Fb)
	if err != nil {
		return
	}
	o.Rep.Vec("Y", o.Sol.Y)
	o.Reactions()
	return
}

// Reactions computes the reactions @ constrained DOFs: R = K0・Y - F
func (o *Domain) Reactions() []float64 {
	for i := 0; i < o.Ny; i++ {
		o.Sol.R[i] = 0
	}
	for _, d := range o.EssenBcs.Eqs {
		r := -o.Sol.F[d]
		for j := 0; j < o.Ny; j++ {
			r += o.K0.At(d, j) * o.Sol.Y[j]
		}
		o.Sol.R[d] = r
	}
	return o.Sol.R
}

// AssembleK assembles the global stiffness matrix of a beam made of one material and one
// cross-section
//  Input:
//   nnodes -- number of nodes
//   elems  -- connectivity
//   X      -- [nnodes] coordinates of nodes; X[id-1] corresponds to node id
//   E      -- Young's modulus
//   I      -- second moment of area
//  Output:
//   K -- [2*nnodes][2*nnodes] global stiffness matrix
func AssembleK(nnodes int, elems []*inp.Elem, X []float64, E, I float64) (K *mat.Dense, err error) {
	if nnodes < 1 || len(X) != nnodes {
		return nil, errs.New(errs.InconsistentInput, "fem.AssembleK", chk.Err("number of nodes (%d) and coordinates (%d) must be equal and positive", nnodes, len(X)))
	}
	sec := &ana.CrossSection{Izz: I}
	K = mat.NewDense(Ndof*nnodes, Ndof*nnodes, nil)
	for _, edat := range elems {
		if edat.N1 < 1 || edat.N2 < 1 || edat.N1 > nnodes || edat.N2 > nnodes {
			return nil, errs.New(errs.InvalidNodeIndex, "fem.AssembleK", chk.Err("element %d refers to node (%d, %d) outside [1, %d]", edat.Id, edat.N1, edat.N2, nnodes))
		}
		var e *Beam
		e, err = NewBeam(edat, []float64{X[edat.N1-1], X[edat.N2-1]}, E, sec)
		if err != nil {
			return nil, err
		}
		err = e.Recompute()
		if err != nil {
			return nil, err
		}
		e.AddToKb(K)
	}
	return
}
