// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gobeam/errs"
	"github.com/cpmech/gobeam/fem"

	"github.com/cpmech/gosl/chk"
)

func Test_main01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main01. command line")

	dirout := tst.TempDir()
	cmd := newRootCmd()
	cmd.SetArgs([]string{"-i", "fem/data/cantilever4.txt", "--dirout", dirout, "--verbose=false", "--method", "penalty", "--workers", "2", "--enc", "json", "--png", "--html"})
	err := cmd.Execute()
	if err != nil {
		tst.Errorf("Execute failed:\n%v", err)
		return
	}
	for _, fn := range []string{"cantilever4.res.json", "cantilever4_M.png", "cantilever4.html"} {
		if _, err = os.Stat(filepath.Join(dirout, fn)); err != nil {
			tst.Errorf("file %q was not written:\n%v", fn, err)
		}
	}
	res, err := fem.ReadResults(dirout, "cantilever4", fem.EncJson)
	if err != nil {
		tst.Errorf("ReadResults failed:\n%v", err)
		return
	}
	chk.Float64(tst, "tip deflection", 1e-8, res.Y[8], -0.04)
}

func Test_main02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("main02. errors")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"-i", "fem/data/floating.txt", "--dirout", tst.TempDir(), "--verbose=false"})
	cmd.SilenceErrors = true
	err := cmd.Execute()
	if !errs.Is(err, errs.SingularSystem) {
		tst.Errorf("Execute should have failed with SingularSystem. err = %v", err)
	}
}
