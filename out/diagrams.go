// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"sort"

	"github.com/cpmech/gobeam/fem"
)

// Diagram holds the values of a quantity along the beam axis
type Diagram struct {
	Key   string    // e.g. "M"
	Title string    // e.g. "bending moment"
	X     []float64 // coordinates of stations (all elements, sorted by x)
	Y     []float64 // values @ stations
}

// Diagrams returns the deflection, shear force, bending moment and stress diagrams.
// Stations of consecutive elements are joined; hence discontinuities (e.g. in the shear
// force) appear as vertical jumps
func Diagrams(res *fem.Results) []*Diagram {
	elems := make([]*fem.ElemResult, len(res.Elems))
	copy(elems, res.Elems)
	sort.SliceStable(elems, func(i, j int) bool { return elems[i].X[0] < elems[j].X[0] })
	diags := []*Diagram{
		{Key: "uy", Title: "deflection"},
		{Key: "V", Title: "shear force"},
		{Key: "M", Title: "bending moment"},
		{Key: "sig", Title: "bending stress"},
	}
	for _, e := range elems {
		for k, vals := range [][]float64{e.U, e.V, e.M, e.Sig} {
			diags[k].X = append(diags[k].X, e.X...)
			diags[k].Y = append(diags[k].Y, vals...)
		}
	}
	return diags
}
