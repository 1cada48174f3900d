// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gobeam/fem"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotDiagrams saves one PNG figure per diagram (deflection, shear force, bending moment and stress)
//  dirout -- directory to save figures
//  fnkey  -- filename key; e.g. "cantilever" => cantilever_M.png
//  Output:
//   fns -- complete filenames
func PlotDiagrams(dirout, fnkey string, res *fem.Results) (fns []string, err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return nil, chk.Err("cannot create directory %q\n%v", dirout, err)
	}
	for _, d := range Diagrams(res) {
		fn := filepath.Join(dirout, io.Sf("%s_%s.png", fnkey, d.Key))
		err = plotDiagram(fn, d)
		if err != nil {
			return
		}
		fns = append(fns, fn)
	}
	return
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////////

func plotDiagram(fn string, d *Diagram) (err error) {
	p := plot.New()
	p.Title.Text = d.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = d.Key
	p.Add(plotter.NewGrid())

	// beam axis
	axis, err := plotter.NewLine(plotter.XYs{{X: d.X[0], Y: 0}, {X: d.X[len(d.X)-1], Y: 0}})
	if err != nil {
		return chk.Err("cannot plot beam axis\n%v", err)
	}
	axis.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(axis)

	// values
	xys := make(plotter.XYs, len(d.X))
	for i := range d.X {
		xys[i].X = d.X[i]
		xys[i].Y = d.Y[i]
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return chk.Err("cannot plot %s\n%v", d.Title, err)
	}
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Legend.Add(d.Key, line)

	err = p.Save(16*vg.Centimeter, 10*vg.Centimeter, fn)
	if err != nil {
		return chk.Err("cannot save figure %q\n%v", fn, err)
	}
	return
}
