// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package secondorder implements the P-delta fixed-point iteration of
// spec.md §4.7: the geometric-stiffness contribution of the member axial
// forces from the previous iterate is folded into the elastic stiffness
// and the system is re-solved until the normal forces stop moving, or the
// iteration cap is reached, or the reduced system loses positive
// definiteness (buckling reached).
package secondorder

import (
	"math"

	"github.com/cpmech/planarframe/assembly"
	"github.com/cpmech/planarframe/config"
	"github.com/cpmech/planarframe/model"
	"github.com/cpmech/planarframe/solve"
)

// Diagnostics reports the non-fatal outcomes of the fixed-point loop, per
// spec.md §4.7's failure semantics: neither condition aborts the call,
// both travel alongside the last iterate produced.
type Diagnostics struct {
	Iterations int  // number of fixed-point iterations performed
	Converged  bool // false => UnconvergedSecondOrder: iteration cap reached
}

// Result extends solve.Result with the second-order iteration diagnostics
// and the converged (or last-attempted) member normal forces.
type Result struct {
	solve.Result
	NormalForces []float64
	Diagnostics  Diagnostics
}

// Solve runs the fixed-point iteration of spec.md §4.7 starting from the
// first-order normal forces, reassembling K_g(N^k) and re-solving
// (K+K_g)_ff·u_f=F_f each iteration via solve.SPD until the infinity-norm
// relative change in normal forces drops below cfg.SecondOrderTol or
// cfg.SecondOrderMaxIters is reached.
//
// If (K+K_g)_ff loses positive definiteness at any iterate -- reported by
// solve.SPD's underlying Cholesky factorisation failing, since there is
// no separate indefinite solver in this package (see solve/linsolve.go)
// -- Solve returns the last valid iterate (nil if the first iterate
// already fails) together with
// model.ErrBucklingReached: axial load has reached or exceeded the
// lowest buckling eigenvalue. This error is informational, not a
// validation failure -- callers may still use the returned Result.
func Solve(mdl *model.Model, dm model.DofMap, cfg config.Config) (*Result, error) {
	g0 := assembly.Build(mdl, dm, nil, false)
	first, err := solve.FirstOrder(mdl, dm, g0)
	if err != nil {
		return nil, err
	}
	N := solve.NormalForces(first.MemberForces)

	var last *solve.Result
	var lastErr error
	converged := false
	iters := 0
	for k := 0; k < cfg.SecondOrderMaxIters; k++ {
		iters = k + 1
		g := assembly.Build(mdl, dm, N, false)
		Kred := addKg(g.K, g.Kg)

		blocks := assembly.Partition(dm, Kred)
		Ff, Fc := assembly.SplitVector(dm, g.F)

		uf, err := solve.SPD(blocks.Ff, Ff)
		if err != nil {
			lastErr = model.ErrBucklingReached
			break
		}

		R := make([]float64, dm.Ncons)
		for i := 0; i < dm.Ncons; i++ {
			var sum float64
			for j := 0; j < dm.Nfree; j++ {
				sum += blocks.Cf[i][j] * uf[j]
			}
			R[i] = sum - Fc[i]
		}

		u := make([]float64, g.N)
		copy(u, uf)
		forces := solve.MemberEndForces(mdl, dm, u, N)
		Nnext := solve.NormalForces(forces)

		res := solve.Result{U: u, R: R, MemberForces: forces}
		last = &res

		if relInfNormDiff(N, Nnext) < cfg.SecondOrderTol {
			N = Nnext
			converged = true
			break
		}
		N = Nnext
	}

	if last == nil {
		return nil, lastErr
	}
	out := &Result{
		Result:       *last,
		NormalForces: N,
		Diagnostics:  Diagnostics{Iterations: iters, Converged: converged},
	}
	if lastErr != nil {
		return out, lastErr
	}
	return out, nil
}

// addKg returns K + Kg entrywise; Kg nil is treated as all-zero. Kg(N) is
// built from the tension-positive member normal force N (element.Geometric),
// so adding it is what makes compression (N<0) soften the structure toward
// the singular, buckled state.
func addKg(K, Kg [][]float64) [][]float64 {
	n := len(K)
	out := make([][]float64, n)
	for i := range K {
		out[i] = make([]float64, n)
		for j := range K[i] {
			out[i][j] = K[i][j]
			if Kg != nil {
				out[i][j] += Kg[i][j]
			}
		}
	}
	return out
}

// relInfNormDiff returns ‖b-a‖∞ / max(1, ‖a‖∞), per spec.md §4.7's
// convergence criterion.
func relInfNormDiff(a, b []float64) float64 {
	var diff, normA float64
	for i := range a {
		if d := math.Abs(b[i] - a[i]); d > diff {
			diff = d
		}
		if na := math.Abs(a[i]); na > normA {
			normA = na
		}
	}
	denom := 1.0
	if normA > 1.0 {
		denom = normA
	}
	return diff / denom
}
