// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"
	"sort"

	"github.com/cpmech/gobeam/errs"
	"github.com/cpmech/gobeam/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// EssentialBcs holds the constrained (fixed) equations. All prescribed values are zero.
//
//  Two methods are available to impose the constraints on  K・y = f :
//
//   elimination -- for each constrained equation d: K[d][:] = K[:][d] = 0, K[d][d] = 1 and
//                  f[d] = 0. This is exact: y[d] == 0 and the other equations are unchanged
//                  because the prescribed values are zero.
//   penalty     -- for each constrained equation d: K[d][d] += P and f[d] = 0, with
//                  P = penalty × max(diag(K)). y[d] is of order f/P instead of zero; i.e. the
//                  error is proportional to 1/penalty.
type EssentialBcs struct {
	Method  string  // "elimination" or "penalty"
	Penalty float64 // penalty factor
	Eqs     []int   // constrained equations; sorted and unique
	Pval    float64 // penalty value P used in the last call to Apply (penalty method only)
	isfixed []bool  // [ny] whether equation is constrained or not
}

// Init initialises this structure
//  Input:
//   eqs     -- constrained equations; repeated entries are removed
//   ny      -- total number of equations
//   method  -- "elimination" or "penalty"
//   penalty -- penalty factor
//  Output:
//   dups -- repeated entries found in eqs
func (o *EssentialBcs) Init(eqs []int, ny int, method string, penalty float64) (dups []int, err error) {
	switch method {
	case inp.MethodElimination, inp.MethodPenalty:
	default:
		return nil, errs.New(errs.InconsistentInput, "fem.EssentialBcs", chk.Err("constraint imposition method %q is not available", method))
	}
	o.Method = method
	o.Penalty = penalty
	o.Eqs = make([]int, 0, len(eqs))
	o.isfixed = make([]bool, ny)
	for _, eq := range eqs {
		if eq < 0 || eq >= ny {
			return nil, errs.New(errs.InvalidNodeIndex, "fem.EssentialBcs", chk.Err("constrained equation %d is outside [0, %d)", eq, ny))
		}
		if o.isfixed[eq] {
			dups = append(dups, eq)
			continue
		}
		o.isfixed[eq] = true
		o.Eqs = append(o.Eqs, eq)
	}
	sort.Ints(o.Eqs)
	return
}

// IsFixed tells whether equation eq is constrained
func (o *EssentialBcs) IsFixed(eq int) bool {
	return o.isfixed[eq]
}

// Apply imposes the constraints on K and f (in place)
func (o *EssentialBcs) Apply(K *mat.Dense, f []float64) {
	n, _ := K.Dims()
	if o.Method == inp.MethodPenalty {
		var dmax float64
		for i := 0; i < n; i++ {
			dmax = math.Max(dmax, math.Abs(K.At(i, i)))
		}
		if dmax == 0 {
			dmax = 1
		}
		o.Pval = o.Penalty * dmax
		for _, d := range o.Eqs {
			K.Set(d, d, K.At(d, d)+o.Pval)
			f[d] = 0
		}
		return
	}
	for _, d := range o.Eqs {
		for k := 0; k < n; k++ {
			K.Set(d, k, 0)
			K.Set(k, d, 0)
		}
		K.Set(d, d, 1)
		f[d] = 0
	}
}

// List returns a simple list of constrained equations and their keys; e.g. "uy@0 rz@1"
func (o *EssentialBcs) List() (l []string) {
	for _, eq := range o.Eqs {
		key := KeyUy
		if eq%Ndof == 1 {
			key = KeyRz
		}
		l = append(l, io.Sf("%s@%d", key, eq))
	}
	return
}
