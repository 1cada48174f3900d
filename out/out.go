// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of results: console messages, tables, files and diagrams
package out

import (
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

// Console implements fem.Reporter by printing to the terminal.
// Messages are printed only if io.Verbose is true
type Console struct {
	ShowMat bool // print matrices and vectors
}

// Msg prints a progress message
func (o *Console) Msg(msg string, prm ...interface{}) {
	io.Pf("> "+msg+"\n", prm...)
}

// Warn prints a warning
func (o *Console) Warn(msg string, prm ...interface{}) {
	io.Pfyel("warning: "+msg+"\n", prm...)
}

// Mat prints a matrix
func (o *Console) Mat(key string, a mat.Matrix) {
	if !o.ShowMat {
		return
	}
	io.Pfcyan("%s =\n", key)
	io.Pf("%v\n", mat.Formatted(a, mat.Prefix(""), mat.Squeeze()))
}

// Vec prints a vector
func (o *Console) Vec(key string, v []float64) {
	if !o.ShowMat {
		return
	}
	io.Pfcyan("%s = ", key)
	io.Pf("%v\n", v)
}
