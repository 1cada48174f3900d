// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"strings"

	"github.com/cpmech/gobeam/errs"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// ReadModel reads and validates a model. The format is selected by the file extension:
//  .yaml or .yml -- YAML format (see ParseYaml)
//  otherwise     -- text format (see ParseTxt)
func ReadModel(fnamepath string) (o *Model, err error) {

	// read file; gosl's io.ReadFile panics on failure
	b, err := os.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read model file %q:\n%v", fnamepath, err)
	}

	// parse
	switch strings.ToLower(strings.TrimPrefix(io.FnExt(fnamepath), ".")) {
	case "yaml", "yml":
		o, err = ParseYaml(b)
	default:
		o, err = ParseTxt(string(b))
	}
	if err != nil {
		return nil, err
	}

	// derived
	o.FnamePath = fnamepath
	o.Fnkey = io.FnKey(fnamepath)
	err = o.Validate()
	return
}

// ParseYaml parses a model given in YAML format; e.g.
//
//   nodes: [{id: 1, x: 0}, {id: 2, x: 1}]
//   elems: [{id: 1, n1: 1, n2: 2}]
//   material: {E: 1, hei: 1, wid: 12}
//   constraints: [0, 1]
//   loads: [{dof: 2, val: 1}]
//   control: {method: elimination}
//
//  Note: the model is not validated; call Validate afterwards
func ParseYaml(b []byte) (o *Model, err error) {
	o = new(Model)
	err = yaml.Unmarshal(b, o)
	if err != nil {
		return nil, errs.New(errs.InconsistentInput, "inp.ParseYaml", err)
	}
	return
}

// Yaml returns the YAML representation of the input data of a model
func (o *Model) Yaml() (b []byte, err error) {
	return yaml.Marshal(o)
}
