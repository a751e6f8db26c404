// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eigen solves the generalised eigenproblems of spec.md §4.8
// (elastic buckling) and §4.9 (free vibration). Both reduce to the same
// form, K_ff x = lambda B_ff x with K_ff always symmetric positive
// definite (B_ff is -K_g(N0) for buckling, M for modal): a Cholesky
// factorisation K_ff = L*Lt converts it to the standard symmetric
// eigenproblem C*z = mu*z with C = L^-1 * B_ff * L^-T and lambda = 1/mu,
// solved with gonum.org/v1/gonum/mat's dense symmetric eigensolver --
// the same package other_examples' gonum lapack sample draws its
// generalised-eigenproblem building blocks from, here applied via the
// higher-level mat.EigenSym API instead of the raw lapack QZ call since
// K_ff's positive definiteness removes the need for that general case.
package eigen

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/planarframe/assembly"
	"github.com/cpmech/planarframe/model"
)

// minEigenvalue is the threshold below which a reduced-problem eigenvalue
// mu is treated as zero/spurious and discarded.
const minEigenvalue = 1e-9

// Mode is one eigenpair: the eigenvalue (buckling load factor or omega^2,
// depending on caller) and its eigenvector expanded to the full DOF space
// (zero at every constrained DOF).
type Mode struct {
	Lambda float64
	Vector []float64
}

// Buckling solves (K + lambda*Kg(N0))_ff x = 0 for the smallest positive
// load factors, per spec.md §4.8, returning them ascending. N0 is the
// reference member normal force distribution (typically the first-order
// solve's result, tension-positive per solve.NormalForces) that Kg is
// linear in; since Kg(N0) is itself negative-definite-ish for a
// compressive N0, the generalized problem is built against its negation
// so that the returned load factors come out positive.
func Buckling(mdl *model.Model, dm model.DofMap, n0 []float64, count int) ([]Mode, error) {
	g := assembly.Build(mdl, dm, n0, false)
	blocksK := assembly.Partition(dm, g.K)
	blocksKg := assembly.Partition(dm, g.Kg)
	return solveGeneralized(blocksK.Ff, negate(blocksKg.Ff), dm, count)
}

// Modal solves K_ff x = omega^2 M_ff x for the smallest natural
// frequencies (Lambda holds omega^2, rad^2/s^2), per spec.md §4.9.
func Modal(mdl *model.Model, dm model.DofMap, count int) ([]Mode, error) {
	g := assembly.Build(mdl, dm, nil, true)
	blocksK := assembly.Partition(dm, g.K)
	blocksM := assembly.Partition(dm, g.M)
	return solveGeneralized(blocksK.Ff, blocksM.Ff, dm, count)
}

// solveGeneralized reduces A_ff x = lambda*B_ff x (A SPD) to a standard
// symmetric eigenproblem via Cholesky, keeps the smallest `count` positive
// lambdas (0 means "all"), expands each eigenvector to the full DOF space,
// and sign-normalizes it (largest-magnitude component positive).
func solveGeneralized(A, B [][]float64, dm model.DofMap, count int) ([]Mode, error) {
	n := len(A)
	if n == 0 {
		return nil, chk.Err("eigen: empty free-DOF block")
	}

	var chol mat.Cholesky
	symA := toSymDense(n, A)
	if ok := chol.Factorize(symA); !ok {
		return nil, model.ErrEigenSolverFailed
	}
	var L mat.TriDense
	chol.LTo(&L)

	denseB := toDense(n, B)
	var X mat.Dense
	if err := X.Solve(&L, denseB); err != nil {
		return nil, model.ErrEigenSolverFailed
	}
	var Z mat.Dense
	if err := Z.Solve(&L, X.T()); err != nil {
		return nil, model.ErrEigenSolverFailed
	}

	// symmetrize against numerical noise: C = (Z + Zt)/2
	c := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c[i*n+j] = 0.5 * (Z.At(i, j) + Z.At(j, i))
		}
	}
	symC := mat.NewSymDense(n, c)

	var es mat.EigenSym
	if ok := es.Factorize(symC, true); !ok {
		return nil, model.ErrEigenSolverFailed
	}
	mus := es.Values(nil)
	var vecsZ mat.Dense
	es.VectorsTo(&vecsZ)

	// x = L^-T z
	var X2 mat.Dense
	if err := X2.Solve(L.T(), &vecsZ); err != nil {
		return nil, model.ErrEigenSolverFailed
	}

	type cand struct {
		lambda float64
		vec    []float64
	}
	var cands []cand
	for k := 0; k < n; k++ {
		mu := mus[k]
		if mu <= minEigenvalue {
			continue
		}
		vec := make([]float64, n)
		for i := 0; i < n; i++ {
			vec[i] = X2.At(i, k)
		}
		cands = append(cands, cand{lambda: 1.0 / mu, vec: vec})
	}
	sort.Slice(cands, func(i, j int) bool { return cands[i].lambda < cands[j].lambda })
	if count > 0 && len(cands) > count {
		cands = cands[:count]
	}

	modes := make([]Mode, len(cands))
	for i, cd := range cands {
		modes[i] = Mode{Lambda: cd.lambda, Vector: expandAndNormalize(dm, cd.vec)}
	}
	return modes, nil
}

// expandAndNormalize maps a free-DOF eigenvector into the full 3n DOF
// space (zero at constrained DOFs) and flips its sign so the
// largest-magnitude component is positive, per spec.md §4.8/§4.9's
// eigenvector normalization convention.
func expandAndNormalize(dm model.DofMap, free []float64) []float64 {
	n := len(dm.Global) * 3
	full := make([]float64, n)
	copy(full, free)

	maxAbs, maxIdx := 0.0, 0
	for i, v := range full {
		if a := absf(v); a > maxAbs {
			maxAbs, maxIdx = a, i
		}
	}
	if maxAbs > 0 && full[maxIdx] < 0 {
		for i := range full {
			full[i] = -full[i]
		}
	}
	return full
}

// Frequency converts a Modal eigenvalue (omega^2, rad^2/s^2) to a natural
// frequency in Hz, f = sqrt(omega^2)/(2*pi).
func Frequency(omega2 float64) float64 {
	return math.Sqrt(omega2) / (2 * math.Pi)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func toDense(n int, A [][]float64) *mat.Dense {
	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			flat[i*n+j] = A[i][j]
		}
	}
	return mat.NewDense(n, n, flat)
}

func negate(A [][]float64) [][]float64 {
	out := make([][]float64, len(A))
	for i := range A {
		out[i] = make([]float64, len(A[i]))
		for j := range A[i] {
			out[i][j] = -A[i][j]
		}
	}
	return out
}

func toSymDense(n int, A [][]float64) *mat.SymDense {
	flat := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			flat[i*n+j] = A[i][j]
		}
	}
	return mat.NewSymDense(n, flat)
}
