// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solve

import (
	"github.com/cpmech/planarframe/assembly"
	"github.com/cpmech/planarframe/element"
	"github.com/cpmech/planarframe/loads"
	"github.com/cpmech/planarframe/model"
)

// Result is the outcome of a first- or second-order analysis (spec.md
// §4.4, §6 output boundary): the full displacement vector, the reaction
// vector on constrained DOFs, and each member's local end-force vector.
type Result struct {
	U            []float64    // full displacement vector, length 3*len(joints); u_c entries are 0
	R            []float64    // reactions on constrained DOFs, length DofMap.Ncons
	MemberForces [][6]float64 // per member, local (N1,V1,M1,N2,V2,M2)
}

// FirstOrder solves K_ff*u_f = F_f (u_c = 0), recovers reactions
// R = K_cf*u_f - F_c, and per-member local end forces, per spec.md §4.4.
// K_ff is expected SPD for a well-constrained model (§8 invariant 3); a
// singular block is reported as model.ErrUnderConstrained.
func FirstOrder(mdl *model.Model, dm model.DofMap, g *assembly.Global) (*Result, error) {
	blocks := assembly.Partition(dm, g.K)
	Ff, Fc := assembly.SplitVector(dm, g.F)

	uf, err := SPD(blocks.Ff, Ff)
	if err != nil {
		return nil, err
	}

	R := matVec(blocks.Cf, uf)
	for i := range R {
		R[i] -= Fc[i]
	}

	u := make([]float64, g.N)
	copy(u, uf)

	forces := MemberEndForces(mdl, dm, u, nil)
	return &Result{U: u, R: R, MemberForces: forces}, nil
}

// MemberEndForces computes, for every member, the local end-force vector
// f_local = k_e*d_local - f_eq,local (spec.md §4.4 step 4), where k_e may
// be replaced by k_e + k_g(N) when normalForces is non-nil (second-order,
// §4.7): the same tangent stiffness the displacements were solved against.
func MemberEndForces(mdl *model.Model, dm model.DofMap, u []float64, normalForces []float64) [][6]float64 {
	out := make([][6]float64, len(mdl.Members))
	for mi := range mdl.Members {
		m := mdl.Members[mi]
		si, ei, L, c, s := mdl.MemberGeometry(mi)
		dofs := dm.MemberDofs(si, ei)
		T := element.Rotation(c, s)

		var dGlobal [6]float64
		for k, I := range dofs {
			dGlobal[k] = u[I]
		}
		dLocal := rotateVec(T, dGlobal)

		ke := element.Elastic(L, m.E*m.A, m.E*m.I)
		if normalForces != nil {
			kg := element.Geometric(L, normalForces[mi])
			for i := 0; i < 6; i++ {
				for j := 0; j < 6; j++ {
					ke[i][j] += kg[i][j]
				}
			}
		}

		var fElastic [6]float64
		for i := 0; i < 6; i++ {
			var sum float64
			for j := 0; j < 6; j++ {
				sum += ke[i][j] * dLocal[j]
			}
			fElastic[i] = sum
		}

		var fEq [6]float64
		for _, ldRef := range memberLoads(mdl, mi) {
			f := loads.EquivalentNodalForces(ldRef, L)
			for i := 0; i < 6; i++ {
				fEq[i] += f[i]
			}
		}

		var fLocal [6]float64
		for i := 0; i < 6; i++ {
			fLocal[i] = fElastic[i] - fEq[i]
		}
		out[mi] = fLocal
	}
	return out
}

// NormalForces extracts the tension-positive member normal force from
// each member's local end-force vector: N = -f_local[0] (§4.5's sign
// convention, "Axial N(x) ... starts at -N1").
func NormalForces(forces [][6]float64) []float64 {
	N := make([]float64, len(forces))
	for i, f := range forces {
		N[i] = -f[0]
	}
	return N
}

func memberLoads(mdl *model.Model, mi int) []loads.Resolved {
	beam := mdl.Members[mi].Beam
	var out []loads.Resolved
	for _, ld := range mdl.Loads {
		if ld.Beam == beam {
			out = append(out, loads.Resolved{Kind: ld.Kind, Magnitude: ld.Magnitude, D1: ld.D1, D2: ld.D2})
		}
	}
	return out
}

func rotateVec(T [][]float64, v [6]float64) [6]float64 {
	var out [6]float64
	for i := 0; i < 6; i++ {
		var sum float64
		for j := 0; j < 6; j++ {
			sum += T[i][j] * v[j]
		}
		out[i] = sum
	}
	return out
}

func matVec(A [][]float64, x []float64) []float64 {
	n := len(A)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := range x {
			sum += A[i][j] * x[j]
		}
		out[i] = sum
	}
	return out
}
