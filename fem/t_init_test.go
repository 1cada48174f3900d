// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gobeam/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func get_nids_eqs(dom *Domain) (nids, eqs []int) {
	for _, nod := range dom.Nodes {
		nids = append(nids, nod.Vert.Id)
		for _, dof := range nod.Dofs {
			eqs = append(eqs, dof.Eq)
		}
	}
	return
}

// run_analysis reads model and runs analysis; ctrl may be nil
func run_analysis(tst *testing.T, fnamepath string, ctrl *inp.Control, rep Reporter) (analysis *FEM, res *Results) {
	mdl, err := inp.ReadModel(fnamepath)
	if err != nil {
		tst.Errorf("ReadModel failed:\n%v", err)
		return
	}
	analysis, err = NewFEM(mdl, ctrl, rep)
	if err != nil {
		tst.Errorf("NewFEM failed:\n%v", err)
		return
	}
	res, err = analysis.Run()
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	return
}

// recorder implements Reporter by recording everything
type recorder struct {
	msgs  []string
	warns []string
	mats  []string
	vecs  []string
}

func (o *recorder) Msg(msg string, prm ...interface{}) {
	o.msgs = append(o.msgs, io.Sf(msg, prm...))
	io.Pf(msg+"\n", prm...)
}

func (o *recorder) Warn(msg string, prm ...interface{}) {
	o.warns = append(o.warns, io.Sf(msg, prm...))
	io.Pfyel(msg+"\n", prm...)
}

func (o *recorder) Mat(key string, a mat.Matrix) {
	o.mats = append(o.mats, key)
	io.Pf("%s =\n%v\n", key, mat.Formatted(a, mat.Squeeze()))
}

func (o *recorder) Vec(key string, v []float64) {
	o.vecs = append(o.vecs, key)
	io.Pf("%s = %v\n", key, v)
}
