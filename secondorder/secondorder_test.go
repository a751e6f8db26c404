// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package secondorder

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/planarframe/config"
	"github.com/cpmech/planarframe/model"
)

// cantileverTipLoad mirrors solve.cantileverTipLoad: a horizontal member
// under a pure transverse tip load never develops an axial force, so the
// second-order (P-delta) correction is exactly zero and the fixed-point
// loop converges on its very first pass.
func cantileverTipLoad(L, E, I, P float64) (*model.Model, model.DofMap) {
	mdl := &model.Model{
		Joints: []model.Joint{
			{Number: 1, X: 0, Y: 0, Support: model.FixedSupport},
			{Number: 2, X: L, Y: 0, Support: model.RigidJoint},
		},
		Members: []model.Member{
			{Beam: 1, StartJ: 1, EndJ: 2, A: 1, E: E, I: I, Rho: 0},
		},
		Loads: []model.Load{
			{Kind: model.PL, Beam: 1, Magnitude: P, D1: L},
		},
	}
	return mdl, model.BuildDofMap(mdl.Joints)
}

func TestSolve_ZeroAxialForceConvergesImmediately(tst *testing.T) {
	chk.PrintTitle("Solve. a transverse-only cantilever has N=0 and converges on the first pass")
	L, E, I, P := 4.0, 2e8, 6e-5, -1000.0
	mdl, dm := cantileverTipLoad(L, E, I, P)
	var cfg config.Config
	cfg.SetDefault()

	res, err := Solve(mdl, dm, cfg)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if !res.Diagnostics.Converged {
		tst.Errorf("expected convergence")
	}
	chk.IntAssert(res.Diagnostics.Iterations, 1)
	chk.IntAssert(len(res.NormalForces), 1)
	chk.Scalar(tst, "normal force", 1e-9, res.NormalForces[0], 0)
}

func TestSolve_MatchesFirstOrderWhenAxialForceIsZero(tst *testing.T) {
	chk.PrintTitle("Solve. matches FirstOrder's displacement when N=0 throughout")
	L, E, I, P := 4.0, 2e8, 6e-5, -1000.0
	mdl, dm := cantileverTipLoad(L, E, I, P)
	var cfg config.Config
	cfg.SetDefault()

	res, err := Solve(mdl, dm, cfg)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	wantV := P * L * L * L / (3 * E * I)
	wantTh := P * L * L / (2 * E * I)
	vTip := res.U[dm.Global[1][1]]
	thTip := res.U[dm.Global[1][2]]
	chk.Scalar(tst, "tip deflection", 1e-6*absf(wantV), vTip, wantV)
	chk.Scalar(tst, "tip rotation", 1e-6*absf(wantTh), thTip, wantTh)
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestSolve_RespectsIterationCap(tst *testing.T) {
	chk.PrintTitle("Solve. SecondOrderMaxIters bounds the reported iteration count")
	L, E, I, P := 4.0, 2e8, 6e-5, -1000.0
	mdl, dm := cantileverTipLoad(L, E, I, P)
	var cfg config.Config
	cfg.SetDefault()
	cfg.SecondOrderMaxIters = 3

	res, err := Solve(mdl, dm, cfg)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if res.Diagnostics.Iterations > cfg.SecondOrderMaxIters {
		tst.Errorf("iterations %d exceeded cap %d", res.Diagnostics.Iterations, cfg.SecondOrderMaxIters)
	}
}
