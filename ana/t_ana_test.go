// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/diff/fd"
)

func Test_section01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("section01")

	sec, err := NewCrossSection(0.2, 0.3)
	if err != nil {
		tst.Errorf("NewCrossSection failed:\n%v", err)
		return
	}
	chk.Float64(tst, "A", 1e-15, sec.A, 0.06)
	chk.Float64(tst, "Izz", 1e-15, sec.Izz, 0.2*0.027/12.0)
	chk.Float64(tst, "C", 1e-15, sec.C, 0.15)
	chk.Float64(tst, "σ", 1e-10, sec.Sig(9), 9*0.15/sec.Izz)

	for _, wh := range [][]float64{{0, 1}, {1, -1}, {math.Inf(1), 1}, {1, math.NaN()}} {
		_, err = NewCrossSection(wh[0], wh[1])
		if err == nil {
			tst.Errorf("NewCrossSection(%v, %v) should have failed", wh[0], wh[1])
		}
	}
}

func Test_cantilever01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cantilever01")

	sol := Cantilever{L: 3, EI: 40, P: -2}
	chk.Float64(tst, "v(0)", 1e-15, sol.Deflection(0), 0)
	chk.Float64(tst, "θ(0)", 1e-15, sol.Rotation(0), 0)
	chk.Float64(tst, "v(L)", 1e-15, sol.Deflection(3), sol.TipDeflection())
	chk.Float64(tst, "θ(L)", 1e-15, sol.TipRotation(), sol.Rotation(3))
	chk.Float64(tst, "M(L)", 1e-15, sol.Moment(3), 0)

	// θ = dv/dx and M = EI d²v/dx²
	for _, x := range utl.LinSpace(0.1, 2.9, 5) {
		θ := fd.Derivative(sol.Deflection, x, &fd.Settings{Formula: fd.Central, Step: 1e-3})
		κ := fd.Derivative(sol.Deflection, x, &fd.Settings{Formula: fd.Central2nd, Step: 1e-3})
		io.Pforan("x=%g θ=%g κ=%g\n", x, θ, κ)
		chk.Float64(tst, io.Sf("θ(%g)", x), 1e-8, sol.Rotation(x), θ)
		chk.Float64(tst, io.Sf("M(%g)", x), 1e-5, sol.Moment(x), sol.EI*κ)
	}
}

func Test_simply01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("simply01")

	sol := SimplySupported{L: 5, EI: 12, P: -3, A: 1.5}
	R0, RL := sol.Reactions()
	chk.Float64(tst, "ΣF", 1e-15, R0+RL+sol.P, 0)
	chk.Float64(tst, "ΣM", 1e-14, RL*sol.L+sol.P*sol.A, 0)
	chk.Float64(tst, "v(0)", 1e-15, sol.Deflection(0), 0)
	chk.Float64(tst, "v(L)", 1e-15, sol.Deflection(5), 0)
	chk.Float64(tst, "M(0)", 1e-15, sol.Moment(0), 0)
	chk.Float64(tst, "M(L)", 1e-15, sol.Moment(5), 0)

	// continuity @ load
	δ := 1e-9
	chk.Float64(tst, "v continuity", 1e-8, sol.Deflection(sol.A-δ), sol.Deflection(sol.A+δ))
	chk.Float64(tst, "M continuity", 1e-8, sol.Moment(sol.A-δ), sol.Moment(sol.A+δ))

	// M = EI d²v/dx²
	for _, x := range []float64{0.5, 1.0, 2.5, 4.0} {
		κ := fd.Derivative(sol.Deflection, x, &fd.Settings{Formula: fd.Central2nd, Step: 1e-3})
		chk.Float64(tst, io.Sf("M(%g)", x), 1e-5, sol.Moment(x), sol.EI*κ)
	}

	// symmetric load: M(L/2) = P L / 4
	mid := SimplySupported{L: 4, EI: 1, P: 8, A: 2}
	chk.Float64(tst, "M(L/2)", 1e-15, mid.Moment(2), -8.0)
}
