// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strconv"
	"strings"

	"github.com/cpmech/gobeam/errs"

	"github.com/cpmech/gosl/chk"
)

// ParseTxt parses a model given in the text format. Sections are separated by blank lines and
// '#' starts a comment:
//
//   nnodes nelems          # mesh
//   id x                   # nnodes lines
//
//   id n1 n2               # connectivity: nelems lines
//
//   E hei wid              # properties
//
//   nconstraints           # constraints
//   dof dof dof ...        # may span many lines
//
//   nloads                 # loads
//   dof val                # nloads lines
//
//  Note: the model is not validated; call Validate afterwards
func ParseTxt(text string) (o *Model, err error) {

	// split sections
	sections := splitSections(text)
	if len(sections) != 5 {
		return nil, txtErr(0, "there must be 5 sections (mesh, connectivity, properties, constraints, loads) separated by blank lines; %d found", len(sections))
	}
	mesh, conn, prop, cons, lds := sections[0], sections[1], sections[2], sections[3], sections[4]
	o = new(Model)

	// mesh
	hdr := mesh[0]
	if err = hdr.nfields(2, "mesh header (nnodes nelems)"); err != nil {
		return nil, err
	}
	nnodes, err := hdr.atoi(0, "number of nodes")
	if err != nil {
		return nil, err
	}
	nelems, err := hdr.atoi(1, "number of elements")
	if err != nil {
		return nil, err
	}
	if len(mesh)-1 != nnodes {
		return nil, txtErr(hdr.num, "mesh header declares %d nodes but %d node lines were found", nnodes, len(mesh)-1)
	}
	o.Nodes = make([]*Node, nnodes)
	for i, l := range mesh[1:] {
		if err = l.nfields(2, "node (id x)"); err != nil {
			return nil, err
		}
		o.Nodes[i] = new(Node)
		if o.Nodes[i].Id, err = l.atoi(0, "node id"); err != nil {
			return nil, err
		}
		if o.Nodes[i].X, err = l.atof(1, "node position"); err != nil {
			return nil, err
		}
	}

	// connectivity
	if len(conn) != nelems {
		return nil, txtErr(hdr.num, "mesh header declares %d elements but %d element lines were found", nelems, len(conn))
	}
	o.Elems = make([]*Elem, nelems)
	for i, l := range conn {
		if err = l.nfields(3, "element (id n1 n2)"); err != nil {
			return nil, err
		}
		o.Elems[i] = new(Elem)
		if o.Elems[i].Id, err = l.atoi(0, "element id"); err != nil {
			return nil, err
		}
		if o.Elems[i].N1, err = l.atoi(1, "element node 1"); err != nil {
			return nil, err
		}
		if o.Elems[i].N2, err = l.atoi(2, "element node 2"); err != nil {
			return nil, err
		}
	}

	// properties
	if len(prop) != 1 {
		return nil, txtErr(prop[0].num, "properties section must have a single line; %d found", len(prop))
	}
	if err = prop[0].nfields(3, "properties (E hei wid)"); err != nil {
		return nil, err
	}
	if o.Mat.E, err = prop[0].atof(0, "Young's modulus"); err != nil {
		return nil, err
	}
	if o.Mat.Hei, err = prop[0].atof(1, "height"); err != nil {
		return nil, err
	}
	if o.Mat.Wid, err = prop[0].atof(2, "width"); err != nil {
		return nil, err
	}

	// constraints
	if err = cons[0].nfields(1, "number of constraints"); err != nil {
		return nil, err
	}
	ncons, err := cons[0].atoi(0, "number of constraints")
	if err != nil {
		return nil, err
	}
	for _, l := range cons[1:] {
		for i := range l.fields {
			eq, err := l.atoi(i, "constrained DOF")
			if err != nil {
				return nil, err
			}
			o.Constraints = append(o.Constraints, eq)
		}
	}
	if len(o.Constraints) != ncons {
		return nil, txtErr(cons[0].num, "constraints section declares %d DOFs but %d were found", ncons, len(o.Constraints))
	}

	// loads
	if err = lds[0].nfields(1, "number of loads"); err != nil {
		return nil, err
	}
	nloads, err := lds[0].atoi(0, "number of loads")
	if err != nil {
		return nil, err
	}
	if len(lds)-1 != nloads {
		return nil, txtErr(lds[0].num, "loads section declares %d loads but %d load lines were found", nloads, len(lds)-1)
	}
	o.Loads = make([]*Load, nloads)
	for i, l := range lds[1:] {
		if err = l.nfields(2, "load (dof val)"); err != nil {
			return nil, err
		}
		o.Loads[i] = new(Load)
		if o.Loads[i].Dof, err = l.atoi(0, "loaded DOF"); err != nil {
			return nil, err
		}
		if o.Loads[i].Val, err = l.atof(1, "load value"); err != nil {
			return nil, err
		}
	}
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// txtLine holds the fields of a non-empty line
type txtLine struct {
	num    int      // line number (1-based)
	fields []string // whitespace separated fields
}

// splitSections splits text into sections of non-empty lines separated by blank lines
func splitSections(text string) (sections [][]txtLine) {
	var cur []txtLine
	for i, raw := range strings.Split(text, "\n") {
		if idx := strings.Index(raw, "#"); idx >= 0 {
			raw = raw[:idx]
		}
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			if len(cur) > 0 {
				sections = append(sections, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, txtLine{i + 1, fields})
	}
	if len(cur) > 0 {
		sections = append(sections, cur)
	}
	return
}

func (o txtLine) nfields(n int, what string) error {
	if len(o.fields) != n {
		return txtErr(o.num, "%s requires %d values; %d found", what, n, len(o.fields))
	}
	return nil
}

func (o txtLine) atoi(i int, what string) (int, error) {
	v, err := strconv.Atoi(o.fields[i])
	if err != nil {
		return 0, txtErr(o.num, "cannot parse %s %q as integer", what, o.fields[i])
	}
	return v, nil
}

func (o txtLine) atof(i int, what string) (float64, error) {
	v, err := strconv.ParseFloat(o.fields[i], 64)
	if err != nil {
		return 0, txtErr(o.num, "cannot parse %s %q as float", what, o.fields[i])
	}
	return v, nil
}

func txtErr(num int, msg string, prm ...interface{}) error {
	if num > 0 {
		msg = "line " + strconv.Itoa(num) + ": " + msg
	}
	return errs.New(errs.InconsistentInput, "inp.ParseTxt", chk.Err(msg, prm...))
}
