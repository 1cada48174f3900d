// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gobeam/errs"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// LinSol solves dense linear systems  K・y = f  with K square.
//
//  The system is solved with symmetric diagonal (Jacobi) scaling:
//
//   S = diag(1/√|Kii|)   =>   (S K S) z = S f   and   y = S z
//
//  The reciprocal condition number of S K S is compared against Tol to detect singular or
//  nearly-singular systems; e.g. beams missing constraints (rigid body motion).
type LinSol struct {

	// input
	Symmetric bool    // use Cholesky factorisation; otherwise LU
	Tol       float64 // smallest admissible reciprocal condition number

	// output
	Rcond float64 // reciprocal condition number of the scaled matrix (after Fact)

	// internal
	n    int          // dimension
	scal []float64    // diagonal of S
	lu   mat.LU       // LU factorisation
	ch   mat.Cholesky // Cholesky factorisation
}

// Fact scales and factorises K. K is not modified
func (o *LinSol) Fact(K *mat.Dense) (err error) {

	// scaling
	r, c := K.Dims()
	if r != c {
		return errs.New(errs.InconsistentInput, "fem.LinSol.Fact", chk.Err("matrix must be square. %d×%d is invalid", r, c))
	}
	o.n = r
	o.scal = make([]float64, o.n)
	for i := 0; i < o.n; i++ {
		d := K.At(i, i)
		if !(d > 0) || math.IsInf(d, 0) {
			return errs.New(errs.SingularSystem, "fem.LinSol.Fact", chk.Err("diagonal entry of equation %d is not positive. K[%d][%d] = %g", i, i, i, d))
		}
		o.scal[i] = 1.0 / math.Sqrt(d)
	}

	// factorisation
	o.Rcond = 0
	if o.Symmetric {
		A := mat.NewSymDense(o.n, nil)
		for i := 0; i < o.n; i++ {
			for j := i; j < o.n; j++ {
				A.SetSym(i, j, o.scal[i]*K.At(i, j)*o.scal[j])
			}
		}
		if ok := o.ch.Factorize(A); !ok {
			return errs.New(errs.SingularSystem, "fem.LinSol.Fact", chk.Err("Cholesky factorisation failed: matrix is singular or not positive-definite"))
		}
		o.Rcond = 1.0 / o.ch.Cond()
	} else {
		A := mat.NewDense(o.n, o.n, nil)
		for i := 0; i < o.n; i++ {
			for j := 0; j < o.n; j++ {
				A.Set(i, j, o.scal[i]*K.At(i, j)*o.scal[j])
			}
		}
		o.lu.Factorize(A)
		o.Rcond = 1.0 / o.lu.Cond()
	}
	if math.IsNaN(o.Rcond) || o.Rcond < o.Tol {
		return errs.New(errs.SingularSystem, "fem.LinSol.Fact", chk.Err("matrix is singular or nearly singular: rcond = %g < tol = %g", o.Rcond, o.Tol))
	}
	return
}

// Solve solves the system for a given right-hand side f. Fact must be called first
//  Output:
//   y -- solution; len(y) == len(f) == dimension of K
func (o *LinSol) Solve(y, f []float64) (err error) {
	if len(y) != o.n || len(f) != o.n {
		return errs.New(errs.InconsistentInput, "fem.LinSol.Solve", chk.Err("vectors must have length %d. len(y)=%d len(f)=%d", o.n, len(y), len(f)))
	}
	b := mat.NewVecDense(o.n, nil)
	for i := 0; i < o.n; i++ {
		b.SetVec(i, o.scal[i]*f[i])
	}
	var z mat.VecDense
	if o.Symmetric {
		err = o.ch.SolveVecTo(&z, b)
	} else {
		err = o.lu.SolveVecTo(&z, false, b)
	}
	if err != nil {
		return errs.New(errs.SingularSystem, "fem.LinSol.Solve", err)
	}
	for i := 0; i < o.n; i++ {
		y[i] = o.scal[i] * z.AtVec(i)
		if math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return errs.New(errs.SingularSystem, "fem.LinSol.Solve", chk.Err("solution is not finite at equation %d", i))
		}
	}
	return
}
