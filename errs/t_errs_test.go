// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_errs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("errs01. kinds and unwrapping")

	cause := chk.Err("element %d has zero length", 3)
	err := New(DegenerateElement, "fem.BeamStiffness", cause)
	if !errors.Is(err, cause) {
		tst.Errorf("errors.Is should reach the cause")
		return
	}
	if !Is(err, DegenerateElement) {
		tst.Errorf("kind should be %q", DegenerateElement)
		return
	}
	if Is(err, SingularSystem) {
		tst.Errorf("kind should not be %q", SingularSystem)
		return
	}
	msg := "fem.BeamStiffness: degenerate element: element 3 has zero length"
	if err.Error() != msg {
		tst.Errorf("message is incorrect:\n%q\n%q", err.Error(), msg)
	}

	// wrapped twice
	outer := fmt.Errorf("assembly failed:\n%w", err)
	chk.Strings(tst, "kinds", []string{string(KindOf(outer)), string(KindOf(cause))}, []string{string(DegenerateElement), ""})
}
