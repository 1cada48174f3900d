// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements cross-section properties and analytical solutions of beams
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// CrossSection holds the properties of a rectangular cross-section
//
//    y (transverse)
//    ^
//    |   +-------+  ---
//    |   |       |   |
//    |   |   +   |   | h = hei
//    |   |       |   |
//    |   +-------+  ---
//    |   b = wid
//    +-------------> x (beam axis)
//
type CrossSection struct {

	// input
	Wid float64 // width (b)
	Hei float64 // height (h)

	// derived
	A   float64 // cross-sectional area
	Izz float64 // second moment of area about the bending axis: b h³ / 12
	C   float64 // distance from the neutral axis to the extreme fibre: h / 2
}

// NewCrossSection returns a new rectangular cross-section
func NewCrossSection(wid, hei float64) (o *CrossSection, err error) {
	if !positive(wid) || !positive(hei) {
		return nil, chk.Err("width and height of cross-section must be positive. wid=%g, hei=%g", wid, hei)
	}
	o = new(CrossSection)
	o.Wid, o.Hei = wid, hei
	o.A = wid * hei
	o.Izz = wid * hei * hei * hei / 12.0
	o.C = hei / 2.0
	return
}

// Sig returns the bending stress at the extreme fibre for a given bending moment
func (o *CrossSection) Sig(M float64) float64 {
	return M * o.C / o.Izz
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
