// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

func init() {
	factory["lin2"] = &Shape{Type: "lin2", Func: FuncLin2, Nverts: 2, Nfuncs: 2}
	factory["hermite"] = &Shape{Type: "hermite", Func: FuncHermite, Nverts: 2, Nfuncs: 4}
}

// FuncLin2 calculates the shape functions of a linear (Lagrange) segment
//
//   0-----------1  --> s
//   0    0.5    1
//
func FuncLin2(S []float64, dS [][]float64, s, L float64, derivs bool) {
	S[0] = 1.0 - s
	S[1] = s
	if !derivs {
		return
	}
	dS[0][0], dS[0][1] = -1, 1
	for k := 1; k < 3; k++ {
		dS[k][0], dS[k][1] = 0, 0
	}
}

// FuncHermite calculates the cubic Hermite shape functions of a beam segment with
// DOFs {v0, θ0, v1, θ1}
//
//   v(s) = S0 v0 + S1 θ0 + S2 v1 + S3 θ1
//
func FuncHermite(S []float64, dS [][]float64, s, L float64, derivs bool) {
	ss := s * s
	sss := ss * s
	S[0] = 1.0 - 3.0*ss + 2.0*sss
	S[1] = L * (s - 2.0*ss + sss)
	S[2] = 3.0*ss - 2.0*sss
	S[3] = L * (sss - ss)
	if !derivs {
		return
	}
	dS[0][0] = -6.0*s + 6.0*ss
	dS[0][1] = L * (1.0 - 4.0*s + 3.0*ss)
	dS[0][2] = 6.0*s - 6.0*ss
	dS[0][3] = L * (3.0*ss - 2.0*s)
	dS[1][0] = -6.0 + 12.0*s
	dS[1][1] = L * (-4.0 + 6.0*s)
	dS[1][2] = 6.0 - 12.0*s
	dS[1][3] = L * (6.0*s - 2.0)
	dS[2][0] = 12.0
	dS[2][1] = 6.0 * L
	dS[2][2] = -12.0
	dS[2][3] = 6.0 * L
}
