// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gobeam/ana"
	"github.com/cpmech/gobeam/errs"
	"github.com/cpmech/gobeam/inp"
	"github.com/cpmech/gobeam/shp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// Beam represents a structural beam element (Euler-Bernoulli, linear elastic) with two nodes
// and two DOFs per node: transverse displacement (uy) and rotation (rz)
//
//   uy1        uy2
//    ↑  rz1     ↑  rz2
//    o----------o ---> x
//    N1    L    N2
//
type Beam struct {

	// basic data
	Edat *inp.Elem // element data
	X    []float64 // nodal coordinates [2]
	Nu   int       // total number of unknowns == 2 * nnode

	// parameters and properties
	E   float64 // Young's modulus
	A   float64 // cross-sectional area
	Izz float64 // second moment of area
	C   float64 // distance from neutral axis to extreme fibre
	L   float64 // length of beam

	// vectors and matrices
	Kl [][]float64 // local K matrix. The beam axis is the global axis, so K == Kl

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// shape functions
	Hshp *shp.Shape // Hermite functions: deflection, bending moment and shear force
	Xshp *shp.Shape // linear functions: coordinates of stations

	// scratchpad
	ue []float64 // local u vector
}

// NewBeam returns a new beam element. Kl is only available after Recompute
//  Input:
//   edat -- element data (id and node ids)
//   x    -- coordinates of the two nodes
//   E    -- Young's modulus
//   sec  -- cross-section shared by all elements
//  Note: the element is always oriented along +x; i.e. if x[1] < x[0] the nodes are swapped
func NewBeam(edat *inp.Elem, x []float64, E float64, sec *ana.CrossSection) (o *Beam, err error) {
	o = new(Beam)
	o.Edat = edat
	n1, n2 := edat.N1, edat.N2
	o.X = []float64{x[0], x[1]}
	if x[1] < x[0] {
		n1, n2 = n2, n1
		o.X[0], o.X[1] = x[1], x[0]
	}
	o.Nu = 2 * Ndof
	o.E = E
	o.A = sec.A
	o.Izz = sec.Izz
	o.C = sec.C
	o.Umap, err = DofMap(n1, n2)
	if err != nil {
		return nil, err
	}
	o.Hshp = shp.Get("hermite")
	o.Xshp = shp.Get("lin2")
	o.ue = make([]float64, o.Nu)
	return
}

// Id returns the element Id
func (o *Beam) Id() int { return o.Edat.Id }

// Recompute re-computes the length and the stiffness matrix
func (o *Beam) Recompute() (err error) {
	o.L = o.X[1] - o.X[0]
	o.Kl, err = BeamStiffness(o.E, o.Izz, o.L)
	if e, ok := err.(*errs.Error); ok {
		e.Err = chk.Err("element %d with nodes (%d, %d): %v", o.Id(), o.Edat.N1, o.Edat.N2, e.Err)
	}
	return
}

// AddToKb adds element K to global matrix Kb
func (o *Beam) AddToKb(Kb *mat.Dense) {
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Set(I, J, Kb.At(I, J)+o.Kl[i][j])
		}
	}
}

// EndForces computes the element end forces fe = Kl * ue: [V1, M1, V2, M2]
func (o *Beam) EndForces(sol *Solution) (fe []float64) {
	o.gather(sol)
	fe = make([]float64, o.Nu)
	for i := 0; i < o.Nu; i++ {
		for j := 0; j < o.Nu; j++ {
			fe[i] += o.Kl[i][j] * o.ue[j]
		}
	}
	return
}

// CalcVandM calculate shear force and bending moment @ s
//  Input:
//   s         -- natural coordinate   0 ≤ s ≤ 1
//   nstations -- compute many values; otherwise, if nstations<2, compute @ s
//  Output:
//   V -- shear force @ stations or s
//   M -- bending moment @ stations or s
//  Note: M = EI v'' and V = dM/dx
func (o *Beam) CalcVandM(sol *Solution, s float64, nstations int) (V, M []float64) {
	o.gather(sol)
	if nstations < 2 {
		v, m := o.calcVandM(s)
		V, M = []float64{v}, []float64{m}
		return
	}
	V = make([]float64, nstations)
	M = make([]float64, nstations)
	for i, si := range utl.LinSpace(0, 1, nstations) {
		V[i], M[i] = o.calcVandM(si)
	}
	return
}

// CalcDeflection computes the transverse displacement @ s (or @ stations if nstations ≥ 2)
// using the cubic Hermite shape functions
func (o *Beam) CalcDeflection(sol *Solution, s float64, nstations int) (v []float64) {
	o.gather(sol)
	if nstations < 2 {
		return []float64{o.calcDeflection(s)}
	}
	v = make([]float64, nstations)
	for i, si := range utl.LinSpace(0, 1, nstations) {
		v[i] = o.calcDeflection(si)
	}
	return
}

// Sig returns the bending stress at the extreme fibre for a given bending moment
func (o *Beam) Sig(M float64) float64 {
	return M * o.C / o.Izz
}

// Eps returns the strain at the extreme fibre for a given bending moment
func (o *Beam) Eps(M float64) float64 {
	return o.Sig(M) / o.E
}

// Xs returns the coordinates of nstations equally spaced stations
func (o *Beam) Xs(nstations int) (xs []float64) {
	xs = make([]float64, nstations)
	for i, si := range utl.LinSpace(0, 1, nstations) {
		o.Xshp.CalcAtS(si, o.L, false)
		xs[i] = o.Xshp.Interp(o.X)
	}
	return
}

// BeamStiffness computes the 4×4 stiffness matrix of an Euler-Bernoulli beam element
//
//                 _                                 _
//                |  12/L³   6/L²  -12/L³   6/L²  |
//   K = E * I *  |   6/L²   4/L    -6/L²   2/L   |
//                | -12/L³  -6/L²   12/L³  -6/L²  |
//                |_  6/L²   2/L    -6/L²   4/L  _|
//
func BeamStiffness(E, I, L float64) (K [][]float64, err error) {
	if !(L > 0) || math.IsInf(L, 0) {
		err = errs.New(errs.DegenerateElement, "fem.BeamStiffness", chk.Err("element length must be positive and finite. L = %g", L))
		return
	}
	ll := L * L
	n := E * I / (ll * L)
	K = utl.Alloc(4, 4)
	K[0][0] = 12 * n
	K[0][1] = 6 * L * n
	K[0][2] = -12 * n
	K[0][3] = 6 * L * n
	K[1][0] = 6 * L * n
	K[1][1] = 4 * ll * n
	K[1][2] = -6 * L * n
	K[1][3] = 2 * ll * n
	K[2][0] = -12 * n
	K[2][1] = -6 * L * n
	K[2][2] = 12 * n
	K[2][3] = -6 * L * n
	K[3][0] = 6 * L * n
	K[3][1] = 2 * ll * n
	K[3][2] = -6 * L * n
	K[3][3] = 4 * ll * n
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

func (o *Beam) gather(sol *Solution) {
	for i, I := range o.Umap {
		o.ue[i] = sol.Y[I]
	}
}

func (o *Beam) calcVandM(s float64) (V, M float64) {
	o.Hshp.CalcAtS(s, o.L, true)
	for i := 0; i < o.Nu; i++ {
		M += o.Hshp.H[i] * o.ue[i]
		V += o.Hshp.T[i] * o.ue[i]
	}
	M *= o.E * o.Izz
	V *= o.E * o.Izz
	return
}

func (o *Beam) calcDeflection(s float64) float64 {
	o.Hshp.CalcAtS(s, o.L, false)
	return o.Hshp.Interp(o.ue)
}
