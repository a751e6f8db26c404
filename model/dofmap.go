// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

// DofMap is the deterministic numbering of all joint DOFs described in
// spec.md §3: every joint contributes exactly three DOF indices, in order
// (u, v, θ); free DOFs occupy the leading block [0, Nf) and constrained
// DOFs the trailing block [Nf, 3n), each block preserving joint input
// order.
type DofMap struct {
	Nfree, Ncons int
	// Global maps joint index (0-based, input order) and local DOF
	// (0=u,1=v,2=θ) to a global DOF index in [0, 3n).
	Global [][3]int
}

// BuildDofMap assigns DOF indices for the given joints, honoring each
// joint's support code.
func BuildDofMap(joints []Joint) DofMap {
	n := len(joints)
	dm := DofMap{Global: make([][3]int, n)}

	// first pass: count/assign free DOFs
	free := 0
	cons := 0
	constrainedFlags := make([][3]bool, n)
	for i, j := range joints {
		u, v, th := j.Support.Constrained()
		constrainedFlags[i] = [3]bool{u, v, th}
		for k := 0; k < 3; k++ {
			if constrainedFlags[i][k] {
				cons++
			} else {
				free++
			}
		}
	}
	dm.Nfree = free
	dm.Ncons = cons

	nextFree, nextCons := 0, free
	for i := range joints {
		for k := 0; k < 3; k++ {
			if constrainedFlags[i][k] {
				dm.Global[i][k] = nextCons
				nextCons++
			} else {
				dm.Global[i][k] = nextFree
				nextFree++
			}
		}
	}
	return dm
}

// MemberDofs returns the 6 global DOF indices of a member's two end
// joints (start then end, each u,v,θ), given their joint indices si, ei.
func (dm DofMap) MemberDofs(si, ei int) [6]int {
	return [6]int{
		dm.Global[si][0], dm.Global[si][1], dm.Global[si][2],
		dm.Global[ei][0], dm.Global[ei][1], dm.Global[ei][2],
	}
}
