// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// PtNaturalBc holds a point load (force or moment) on a global equation
type PtNaturalBc struct {
	Key string  // "fy" or "mz"
	Eq  int     // equation
	Val float64 // total value; loads on the same equation add up
}

// PtNaturalBcs holds all point loads
type PtNaturalBcs struct {
	Bcs    []*PtNaturalBc // in order of first appearance
	Eq2idx map[int]int    // maps eq to index in Bcs
}

// Reset initialises internal structures
func (o *PtNaturalBcs) Reset() {
	o.Bcs = make([]*PtNaturalBc, 0)
	o.Eq2idx = make(map[int]int)
}

// Set sets (or adds to) a point load on equation eq
func (o *PtNaturalBcs) Set(eq int, val float64) {
	if idx, ok := o.Eq2idx[eq]; ok {
		o.Bcs[idx].Val += val
		return
	}
	key := Y2F[KeyUy]
	if eq%Ndof == 1 {
		key = Y2F[KeyRz]
	}
	o.Eq2idx[eq] = len(o.Bcs)
	o.Bcs = append(o.Bcs, &PtNaturalBc{key, eq, val})
}

// AddToRhs adds the point loads to the right-hand side vector fb
func (o *PtNaturalBcs) AddToRhs(fb []float64) {
	for _, p := range o.Bcs {
		fb[p.Eq] += p.Val
	}
}
