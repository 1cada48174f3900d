// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape functions of one-dimensional (line) elements
package shp

// ShpFunc is the shape functions callback function
//  Input:
//   s      -- natural coordinate 0 ≤ s ≤ 1
//   L      -- length of element (Hermite functions of rotations are scaled by L)
//   derivs -- compute derivatives
//  Output:
//   S  -- [nfuncs] shape functions
//   dS -- [3][nfuncs] first, second and third derivatives w.r.t s (only if derivs == true)
type ShpFunc func(S []float64, dS [][]float64, s, L float64, derivs bool)

// Shape holds data of shape functions
type Shape struct {

	// geometry
	Type   string  // name; e.g. "lin2"
	Func   ShpFunc // shape/derivs function callback function
	Nverts int     // number of vertices; e.g. "lin2" => 2
	Nfuncs int     // number of shape functions; e.g. "hermite" => 4

	// scratchpad
	S  []float64   // [nfuncs] shape functions
	dS [][]float64 // [3][nfuncs] derivatives w.r.t natural coordinate
	G  []float64   // [nfuncs] dS/dx
	H  []float64   // [nfuncs] d²S/dx²
	T  []float64   // [nfuncs] d³S/dx³
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// Get returns a new Shape structure; each element must hold its own copy
//  Note: returns nil if geoType is not available
func Get(geoType string) *Shape {
	s, ok := factory[geoType]
	if !ok {
		return nil
	}
	return s.GetCopy()
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	p := &Shape{Type: o.Type, Func: o.Func, Nverts: o.Nverts, Nfuncs: o.Nfuncs}
	p.init_scratchpad()
	return p
}

// CalcAtS calculates shape functions and derivatives w.r.t x @ natural coordinate s
//  Input:
//   s      -- natural coordinate 0 ≤ s ≤ 1; x = x0 + s L
//   L      -- length of element
//   derivs -- compute derivatives (G, H and T)
func (o *Shape) CalcAtS(s, L float64, derivs bool) {
	o.Func(o.S, o.dS, s, L, derivs)
	if !derivs {
		return
	}
	ll := L * L
	for i := 0; i < o.Nfuncs; i++ {
		o.G[i] = o.dS[0][i] / L
		o.H[i] = o.dS[1][i] / ll
		o.T[i] = o.dS[2][i] / (ll * L)
	}
}

// Interp returns Σ S[i] u[i]; i.e. interpolates u using the last computed S
func (o *Shape) Interp(u []float64) (res float64) {
	for i := 0; i < o.Nfuncs; i++ {
		res += o.S[i] * u[i]
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

func (o *Shape) init_scratchpad() {
	o.S = make([]float64, o.Nfuncs)
	o.dS = [][]float64{make([]float64, o.Nfuncs), make([]float64, o.Nfuncs), make([]float64, o.Nfuncs)}
	o.G = make([]float64, o.Nfuncs)
	o.H = make([]float64, o.Nfuncs)
	o.T = make([]float64, o.Nfuncs)
}
