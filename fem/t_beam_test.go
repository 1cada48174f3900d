// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gobeam/ana"
	"github.com/cpmech/gobeam/errs"
	"github.com/cpmech/gobeam/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_dofmap01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dofmap01")

	umap, err := DofMap(3, 5)
	if err != nil {
		tst.Errorf("DofMap failed:\n%v", err)
		return
	}
	chk.Ints(tst, "umap(3,5)", umap, []int{4, 5, 8, 9})

	umap, err = DofMap(1, 2)
	if err != nil {
		tst.Errorf("DofMap failed:\n%v", err)
		return
	}
	chk.Ints(tst, "umap(1,2)", umap, []int{0, 1, 2, 3})

	uy, rz, err := NodeEqs(7)
	if err != nil {
		tst.Errorf("NodeEqs failed:\n%v", err)
		return
	}
	chk.Ints(tst, "eqs(7)", []int{uy, rz}, []int{12, 13})

	for _, ids := range [][]int{{0, 2}, {2, 0}, {-1, 3}} {
		_, err = DofMap(ids[0], ids[1])
		if !errs.Is(err, errs.InvalidNodeIndex) {
			tst.Errorf("DofMap(%d,%d) should have failed with InvalidNodeIndex. err = %v", ids[0], ids[1], err)
		}
	}
}

func Test_beam01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam01. element stiffness")

	E, I, L := 2.0, 3.0, 1.5
	K, err := BeamStiffness(E, I, L)
	if err != nil {
		tst.Errorf("BeamStiffness failed:\n%v", err)
		return
	}
	io.Pforan("K = %v\n", K)

	// symmetry (exact)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if K[i][j] != K[j][i] {
				tst.Errorf("K is not symmetric: K[%d][%d]=%v != K[%d][%d]=%v", i, j, K[i][j], j, i, K[j][i])
				return
			}
		}
	}

	// values
	EI := E * I
	chk.Float64(tst, "K00", 1e-14, K[0][0], 12*EI/(L*L*L))
	chk.Float64(tst, "K01", 1e-14, K[0][1], 6*EI/(L*L))
	chk.Float64(tst, "K11", 1e-14, K[1][1], 4*EI/L)
	chk.Float64(tst, "K13", 1e-14, K[1][3], 2*EI/L)
	chk.Float64(tst, "K22", 1e-14, K[2][2], 12*EI/(L*L*L))

	// rigid body translation produces no forces
	for i := 0; i < 4; i++ {
		chk.Float64(tst, io.Sf("K[%d]・{1,0,1,0}", i), 1e-14, K[i][0]+K[i][2], 0)
	}

	// degenerate elements
	for _, l := range []float64{0, -1, math.Inf(1), math.NaN()} {
		_, err = BeamStiffness(E, I, l)
		if !errs.Is(err, errs.DegenerateElement) {
			tst.Errorf("BeamStiffness with L=%v should have failed with DegenerateElement. err = %v", l, err)
		}
	}
}

func Test_beam02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam02. shear force, bending moment and deflection")

	// cantilever: exact nodal values
	can := ana.Cantilever{L: 2, EI: 3, P: -1.5}
	sec := &ana.CrossSection{Izz: 3, C: 0.5}
	e, err := NewBeam(&inp.Elem{Id: 1, N1: 1, N2: 2}, []float64{0, 2}, 1, sec)
	if err != nil {
		tst.Errorf("NewBeam failed:\n%v", err)
		return
	}
	err = e.Recompute()
	if err != nil {
		tst.Errorf("Recompute failed:\n%v", err)
		return
	}
	sol := &Solution{Y: []float64{0, 0, can.TipDeflection(), can.TipRotation()}}

	// end forces: reactions at the fixed end and the load at the tip
	fe := e.EndForces(sol)
	chk.Array(tst, "fe", 1e-13, fe, []float64{-can.P, -can.P * can.L, can.P, 0})

	// stations
	nsta := 5
	xs := e.Xs(nsta)
	V, M := e.CalcVandM(sol, 0, nsta)
	v := e.CalcDeflection(sol, 0, nsta)
	chk.Array(tst, "xs", 1e-15, xs, []float64{0, 0.5, 1, 1.5, 2})
	for i, x := range xs {
		chk.Float64(tst, io.Sf("V(%g)", x), 1e-13, V[i], -can.P)
		chk.Float64(tst, io.Sf("M(%g)", x), 1e-13, M[i], can.Moment(x))
		chk.Float64(tst, io.Sf("v(%g)", x), 1e-13, v[i], can.Deflection(x))
		chk.Float64(tst, io.Sf("σ(%g)", x), 1e-13, e.Sig(M[i]), can.Moment(x)*0.5/3)
		chk.Float64(tst, io.Sf("ε(%g)", x), 1e-13, e.Eps(M[i]), can.Moment(x)*0.5/3)
	}

	// single station
	V, M = e.CalcVandM(sol, 0.5, 1)
	chk.IntAssert(len(M), 1)
	chk.Float64(tst, "M(1)", 1e-13, M[0], can.Moment(1))
	chk.Float64(tst, "V(1)", 1e-13, V[0], -can.P)
}

func Test_beam03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("beam03. orientation")

	sec := &ana.CrossSection{Izz: 1}
	e, err := NewBeam(&inp.Elem{Id: 7, N1: 4, N2: 3}, []float64{3, 1}, 1, sec)
	if err != nil {
		tst.Errorf("NewBeam failed:\n%v", err)
		return
	}
	chk.IntAssert(e.Id(), 7)
	chk.Array(tst, "X", 1e-15, e.X, []float64{1, 3})
	chk.Ints(tst, "umap", e.Umap, []int{4, 5, 6, 7})
	err = e.Recompute()
	if err != nil {
		tst.Errorf("Recompute failed:\n%v", err)
		return
	}
	chk.Float64(tst, "L", 1e-15, e.L, 2)

	// zero length
	e, err = NewBeam(&inp.Elem{Id: 8, N1: 1, N2: 2}, []float64{3, 3}, 1, sec)
	if err != nil {
		tst.Errorf("NewBeam failed:\n%v", err)
		return
	}
	err = e.Recompute()
	if !errs.Is(err, errs.DegenerateElement) {
		tst.Errorf("Recompute should have failed with DegenerateElement. err = %v", err)
		return
	}
	io.Pforan("%v\n", err)

	// the error raised by BeamStiffness is returned as is, with element data in its message
	var e8 *errs.Error
	if !errors.As(err, &e8) {
		tst.Errorf("error should be an *errs.Error")
		return
	}
	if e8.Op != "fem.BeamStiffness" {
		tst.Errorf("operation should be fem.BeamStiffness. op = %q", e8.Op)
	}
	if _, ok := e8.Err.(*errs.Error); ok {
		tst.Errorf("error should not be wrapped twice. err = %v", err)
	}
	if !strings.Contains(err.Error(), "element 8 with nodes (1, 2)") {
		tst.Errorf("message should identify the element. err = %v", err)
	}
}
