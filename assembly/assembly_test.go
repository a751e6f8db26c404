// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/planarframe/model"
)

func cantilever() (*model.Model, model.DofMap) {
	mdl := &model.Model{
		Joints: []model.Joint{
			{Number: 1, X: 0, Y: 0, Support: model.FixedSupport},
			{Number: 2, X: 5, Y: 0, Support: model.RigidJoint},
		},
		Members: []model.Member{
			{Beam: 1, StartJ: 1, EndJ: 2, A: 0.02, E: 2e8, I: 8e-5, Rho: 7850},
		},
		Loads: []model.Load{
			{Kind: model.PL, Beam: 1, Magnitude: -1000, D1: 5},
		},
	}
	return mdl, model.BuildDofMap(mdl.Joints)
}

func TestBuild_StiffnessIsSymmetric(tst *testing.T) {
	chk.PrintTitle("Build. global K is symmetric")
	mdl, dm := cantilever()
	g := Build(mdl, dm, nil, false)
	for i := 0; i < g.N; i++ {
		for j := 0; j < g.N; j++ {
			chk.Scalar(tst, "K symmetry", 1e-6, g.K[i][j], g.K[j][i])
		}
	}
}

func TestBuild_MassOnlyWhenRequested(tst *testing.T) {
	chk.PrintTitle("Build. M is nil unless withMass requested")
	mdl, dm := cantilever()
	g := Build(mdl, dm, nil, false)
	if g.M != nil {
		tst.Errorf("expected nil M when withMass=false")
	}
	g2 := Build(mdl, dm, nil, true)
	if g2.M == nil {
		tst.Errorf("expected non-nil M when withMass=true")
	}
}

func TestBuild_KgOnlyWhenNormalForcesGiven(tst *testing.T) {
	chk.PrintTitle("Build. Kg is nil unless normal forces supplied")
	mdl, dm := cantilever()
	g := Build(mdl, dm, nil, false)
	if g.Kg != nil {
		tst.Errorf("expected nil Kg without normal forces")
	}
	g2 := Build(mdl, dm, []float64{-500}, false)
	if g2.Kg == nil {
		tst.Errorf("expected non-nil Kg with normal forces")
	}
}

func TestPartition_BlockSizes(tst *testing.T) {
	chk.PrintTitle("Partition. block sizes match Nfree/Ncons")
	mdl, dm := cantilever()
	g := Build(mdl, dm, nil, false)
	b := Partition(dm, g.K)
	if len(b.Ff) != dm.Nfree || len(b.Ff[0]) != dm.Nfree {
		tst.Errorf("Ff size mismatch")
	}
	if len(b.Cc) != dm.Ncons || len(b.Cc[0]) != dm.Ncons {
		tst.Errorf("Cc size mismatch")
	}
	if len(b.Fc) != dm.Nfree || len(b.Fc[0]) != dm.Ncons {
		tst.Errorf("Fc size mismatch")
	}
}
