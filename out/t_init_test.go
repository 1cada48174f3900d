// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gobeam/fem"
	"github.com/cpmech/gobeam/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func get_results(tst *testing.T, fnamepath string) *fem.Results {
	mdl, err := inp.ReadModel(fnamepath)
	if err != nil {
		tst.Fatalf("ReadModel failed:\n%v", err)
	}
	analysis, err := fem.NewFEM(mdl, nil, &Console{ShowMat: chk.Verbose})
	if err != nil {
		tst.Fatalf("NewFEM failed:\n%v", err)
	}
	res, err := analysis.Run()
	if err != nil {
		tst.Fatalf("Run failed:\n%v", err)
	}
	return res
}
