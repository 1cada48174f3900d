// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

// Cantilever implements the solution of a cantilever beam with a point load at the free end
//
//   |
//   |=========================o  ↑ P
//   |
//   x=0                      x=L
//
type Cantilever struct {
	L  float64 // length
	EI float64 // flexural rigidity
	P  float64 // tip load (positive along +y)
}

// Deflection returns v(x)
func (o Cantilever) Deflection(x float64) float64 {
	return o.P * x * x * (3.0*o.L - x) / (6.0 * o.EI)
}

// Rotation returns θ(x) = dv/dx
func (o Cantilever) Rotation(x float64) float64 {
	return o.P * x * (2.0*o.L - x) / (2.0 * o.EI)
}

// TipDeflection returns v(L) = P L³ / (3 EI)
func (o Cantilever) TipDeflection() float64 {
	return o.P * o.L * o.L * o.L / (3.0 * o.EI)
}

// TipRotation returns θ(L) = P L² / (2 EI)
func (o Cantilever) TipRotation() float64 {
	return o.P * o.L * o.L / (2.0 * o.EI)
}

// Moment returns the bending moment M(x) = EI v''(x) = P (L - x)
func (o Cantilever) Moment(x float64) float64 {
	return o.P * (o.L - x)
}

// SimplySupported implements the solution of a simply supported beam with a point load at x=a
//
//             ↑ P
//   o=========+==============o
//   Δ         a              Δ
//   x=0                      x=L
//
type SimplySupported struct {
	L  float64 // length
	EI float64 // flexural rigidity
	P  float64 // load (positive along +y)
	A  float64 // position of load
}

// Reactions returns the support reactions at x=0 and x=L (positive along +y)
func (o SimplySupported) Reactions() (R0, RL float64) {
	b := o.L - o.A
	R0 = -o.P * b / o.L
	RL = -o.P * o.A / o.L
	return
}

// Deflection returns v(x)
func (o SimplySupported) Deflection(x float64) float64 {
	a, b, l := o.A, o.L-o.A, o.L
	if x <= a {
		return o.P * b * x * (l*l - b*b - x*x) / (6.0 * l * o.EI)
	}
	r := l - x
	return o.P * a * r * (l*l - a*a - r*r) / (6.0 * l * o.EI)
}

// Moment returns the bending moment M(x) = EI v''(x)
func (o SimplySupported) Moment(x float64) float64 {
	R0, RL := o.Reactions()
	if x <= o.A {
		return R0 * x
	}
	return RL * (o.L - x)
}
