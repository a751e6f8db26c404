// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly builds the global elastic stiffness K, geometric
// stiffness Kg(N), mass M, and load vector F by scatter-add from element
// contributions, then partitions them into free/constrained blocks per the
// DOF map, following spec.md §4.3. The scatter step mirrors
// fem/domain.go's la.Triplet-based assembly (Kb.Put(I,J,val), then
// Kb.ToMatrix(nil).ToDense()), generalised to three triplets (K, Kg, M)
// plus a dense load vector.
package assembly

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/planarframe/element"
	"github.com/cpmech/planarframe/loads"
	"github.com/cpmech/planarframe/model"
)

// Global holds the fully assembled, unpartitioned global matrices/vector
// for a model with N = 3*len(joints) total DOFs.
type Global struct {
	N      int
	DM     model.DofMap
	K      [][]float64 // elastic stiffness
	Kg     [][]float64 // geometric stiffness (nil unless normal forces supplied)
	M      [][]float64 // consistent mass (nil unless withMass requested)
	F      []float64   // equivalent nodal load vector
	loadsB map[int][]loads.Resolved
}

// resolveLoads groups mdl.Loads by member index. It does not check the
// load stations; that is done by model.Validate.
func resolveLoads(mdl *model.Model) map[int][]loads.Resolved {
	out := make(map[int][]loads.Resolved)
	for _, ld := range mdl.Loads {
		for mi, m := range mdl.Members {
			if m.Beam == ld.Beam {
				out[mi] = append(out[mi], loads.Resolved{Kind: ld.Kind, Magnitude: ld.Magnitude, D1: ld.D1, D2: ld.D2})
			}
		}
	}
	return out
}

// Build assembles K, F always; Kg is assembled when normalForces is
// non-nil (one entry per member, tension-positive); M is assembled when
// withMass is true.
func Build(mdl *model.Model, dm model.DofMap, normalForces []float64, withMass bool) *Global {
	n := 3 * len(mdl.Joints)
	g := &Global{N: n, DM: dm, F: make([]float64, n), loadsB: resolveLoads(mdl)}

	maxNnz := 36 * len(mdl.Members)
	Kt := new(la.Triplet)
	Kt.Init(n, n, maxNnz)
	var Kgt *la.Triplet
	if normalForces != nil {
		Kgt = new(la.Triplet)
		Kgt.Init(n, n, maxNnz)
	}
	var Mt *la.Triplet
	if withMass {
		Mt = new(la.Triplet)
		Mt.Init(n, n, maxNnz)
	}

	for mi := range mdl.Members {
		m := mdl.Members[mi]
		si, ei, L, c, s := mdl.MemberGeometry(mi)
		dofs := dm.MemberDofs(si, ei)
		T := element.Rotation(c, s)

		Ke := element.ToGlobal(T, element.Elastic(L, m.E*m.A, m.E*m.I))
		scatterAdd(Kt, dofs, Ke)

		if Kgt != nil {
			Kge := element.ToGlobal(T, element.Geometric(L, normalForces[mi]))
			scatterAdd(Kgt, dofs, Kge)
		}
		if Mt != nil {
			Me := element.ToGlobal(T, element.ConsistentMass(L, m.Rho*m.A))
			scatterAdd(Mt, dofs, Me)
		}

		for _, ld := range g.loadsB[mi] {
			fLocal := loads.EquivalentNodalForces(ld, L)
			fGlobal := rotateVecTranspose(T, fLocal)
			for k, I := range dofs {
				g.F[I] += fGlobal[k]
			}
		}
	}

	g.K = Kt.ToMatrix(nil).ToDense().GetDeep2()
	if Kgt != nil {
		g.Kg = Kgt.ToMatrix(nil).ToDense().GetDeep2()
	}
	if Mt != nil {
		g.M = Mt.ToMatrix(nil).ToDense().GetDeep2()
	}
	return g
}

// scatterAdd adds a 6x6 element matrix Ke into triplet Kt at the global
// DOF indices dofs, the same Kb.Put(I,J,val) pattern fem/domain.go uses.
func scatterAdd(Kt *la.Triplet, dofs [6]int, Ke [][]float64) {
	for i, I := range dofs {
		for j, J := range dofs {
			Kt.Put(I, J, Ke[i][j])
		}
	}
}

// rotateVecTranspose returns Tᵀ * v for a 6x6 rotation T and local
// 6-vector v, the same transform ele/solid/beam.go's AddToRhs uses to
// bring the local consistent-load vector fxl into global coordinates.
func rotateVecTranspose(T [][]float64, v [6]float64) [6]float64 {
	var out [6]float64
	for i := 0; i < 6; i++ {
		var sum float64
		for j := 0; j < 6; j++ {
			sum += T[j][i] * v[j]
		}
		out[i] = sum
	}
	return out
}

// Blocks is the four-way free/constrained partition of a square global
// matrix, per spec.md §4.3.
type Blocks struct {
	Ff, Fc, Cf, Cc [][]float64
}

// Partition splits a dense n x n global matrix A into free/constrained
// blocks using dm's DOF numbering (free DOFs occupy [0,Nfree), constrained
// occupy [Nfree,Nfree+Ncons)).
func Partition(dm model.DofMap, A [][]float64) Blocks {
	nf, nc := dm.Nfree, dm.Ncons
	b := Blocks{
		Ff: la.MatAlloc(nf, nf),
		Fc: la.MatAlloc(nf, nc),
		Cf: la.MatAlloc(nc, nf),
		Cc: la.MatAlloc(nc, nc),
	}
	for i := 0; i < nf; i++ {
		for j := 0; j < nf; j++ {
			b.Ff[i][j] = A[i][j]
		}
		for j := 0; j < nc; j++ {
			b.Fc[i][j] = A[i][nf+j]
		}
	}
	for i := 0; i < nc; i++ {
		for j := 0; j < nf; j++ {
			b.Cf[i][j] = A[nf+i][j]
		}
		for j := 0; j < nc; j++ {
			b.Cc[i][j] = A[nf+i][nf+j]
		}
	}
	return b
}

// SplitVector splits a dense n-vector v into its free and constrained
// parts using dm's DOF numbering.
func SplitVector(dm model.DofMap, v []float64) (free, cons []float64) {
	free = append([]float64(nil), v[:dm.Nfree]...)
	cons = append([]float64(nil), v[dm.Nfree:dm.Nfree+dm.Ncons]...)
	return
}
