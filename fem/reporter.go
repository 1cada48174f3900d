// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "gonum.org/v1/gonum/mat"

// Reporter receives messages and intermediate results from an analysis.
// The fem package itself does not print or write files
type Reporter interface {
	Msg(msg string, prm ...interface{})  // progress message
	Warn(msg string, prm ...interface{}) // warning; e.g. repeated constraints
	Mat(key string, a mat.Matrix)        // matrix; e.g. "K" or "Kl(1)"
	Vec(key string, v []float64)         // vector; e.g. "F" or "Y"
}

// Silent is a Reporter that discards everything
type Silent struct{}

func (Silent) Msg(msg string, prm ...interface{})  {}
func (Silent) Warn(msg string, prm ...interface{}) {}
func (Silent) Mat(key string, a mat.Matrix)        {}
func (Silent) Vec(key string, v []float64)         {}
