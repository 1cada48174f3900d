// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gobeam/errs"
	"github.com/cpmech/gobeam/inp"

	"github.com/cpmech/gosl/chk"
)

// number of DOFs per node: transverse translation and rotation
const Ndof = 2

// DOF keys
const (
	KeyUy = "uy" // transverse translation
	KeyRz = "rz" // rotation about the out-of-plane axis
)

// Y2F maps DOF keys to the corresponding natural (force) keys
var Y2F = map[string]string{KeyUy: "fy", KeyRz: "mz"}

// Dof holds information about a degree-of-freedom == solution variable
type Dof struct {
	Key string // primary variable key. e.g. "uy"
	Eq  int    // equation number
}

// Node holds node dofs information
type Node struct {
	Dofs []*Dof    // dofs: [uy, rz]
	Vert *inp.Node // pointer to vertex
}

// NewNode allocates a new Node with its two equations set by NodeEqs
func NewNode(v *inp.Node) (o *Node, err error) {
	uy, rz, err := NodeEqs(v.Id)
	if err != nil {
		return
	}
	o = new(Node)
	o.Vert = v
	o.Dofs = []*Dof{{KeyUy, uy}, {KeyRz, rz}}
	return
}

// GetEq returns the equation number for a given key. It returns -1 if not found
func (o *Node) GetEq(key string) int {
	for _, dof := range o.Dofs {
		if dof.Key == key {
			return dof.Eq
		}
	}
	return -1
}

// NodeEqs returns the global equation numbers (0-based) of the translation and rotation of
// node id (1-based):
//   uy = 2*(id-1)
//   rz = 2*(id-1)+1
func NodeEqs(id int) (uy, rz int, err error) {
	if id < 1 {
		err = errs.New(errs.InvalidNodeIndex, "fem.NodeEqs", chk.Err("node id must be greater than or equal to 1. id = %d", id))
		return
	}
	uy = Ndof * (id - 1)
	rz = uy + 1
	return
}

// DofMap returns the assembly vector of a 2-node beam element with node ids n1 and n2:
//   [uy(n1), rz(n1), uy(n2), rz(n2)]
// e.g. (3, 5) => [4, 5, 8, 9]
func DofMap(n1, n2 int) (umap []int, err error) {
	a, b, err := NodeEqs(n1)
	if err != nil {
		return
	}
	c, d, err := NodeEqs(n2)
	if err != nil {
		return
	}
	return []int{a, b, c, d}, nil
}
