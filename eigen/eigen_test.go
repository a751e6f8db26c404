// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eigen

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/planarframe/model"
)

// singleCantilever builds a one-element fixed-free cantilever with unit
// section properties (E=I=A=L=1), so that every closed-form check below
// reduces to small, hand-checkable numbers.
func singleCantilever(rho float64) (*model.Model, model.DofMap) {
	mdl := &model.Model{
		Joints: []model.Joint{
			{Number: 1, X: 0, Y: 0, Support: model.FixedSupport},
			{Number: 2, X: 1, Y: 0, Support: model.RigidJoint},
		},
		Members: []model.Member{
			{Beam: 1, StartJ: 1, EndJ: 2, A: 1, E: 1, I: 1, Rho: rho},
		},
	}
	return mdl, model.BuildDofMap(mdl.Joints)
}

// TestBuckling_MatchesSingleElementClosedForm cross-checks the buckling
// load factors against the 2x2 generalized-eigenvalue problem obtained by
// hand-eliminating the decoupled axial DOF from the unit cantilever's
// elastic and geometric stiffness matrices (det(K_ff - lambda*Kg_ff)=0
// reduces to 135x^2-156x+12=0 in x=lambda/(30*EI/L^2)). The smaller root is
// within 1% of the classical Euler load pi^2*EI/(4L^2)=2.467, matching the
// well-known slight overestimate of a single cubic beam-column element.
func TestBuckling_MatchesSingleElementClosedForm(tst *testing.T) {
	chk.PrintTitle("Buckling. single-element cantilever matches the hand-reduced 2x2 problem")
	mdl, dm := singleCantilever(0)
	n0 := []float64{-1} // unit reference compression (tension-positive convention)

	modes, err := Buckling(mdl, dm, n0, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(modes), 2)
	chk.Scalar(tst, "lambda1", 1e-2, modes[0].Lambda, 2.486)
	chk.Scalar(tst, "lambda2", 3e-2, modes[1].Lambda, 32.18)
	if modes[0].Lambda >= modes[1].Lambda {
		tst.Errorf("expected ascending lambdas, got %v", modes)
	}
	if modes[0].Lambda <= 0 {
		tst.Errorf("expected a positive load factor for a compressive reference force, got %g", modes[0].Lambda)
	}
}

// TestModal_MatchesSingleElementClosedForm cross-checks the three free
// DOFs' natural frequencies: the axial stretching mode (omega^2=3EA/(mbar
// L^2)=3, exact for this one-element discretisation) and the two bending
// modes from the consistent-mass 2x2 reduction (35y^2-102y+3=0 in
// y=omega^2*mbar*L^4/(420EI)), whose smaller root (omega^2~=12.48) is
// within 1% of the textbook single-element cantilever value
// 3.53*sqrt(EI/(mbar L^4)).
func TestModal_MatchesSingleElementClosedForm(tst *testing.T) {
	chk.PrintTitle("Modal. single-element cantilever matches the hand-reduced eigenvalues")
	mdl, dm := singleCantilever(1)

	modes, err := Modal(mdl, dm, 3)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(len(modes), 3)
	chk.Scalar(tst, "axial omega^2", 1e-6, modes[0].Lambda, 3.0)
	chk.Scalar(tst, "bending mode 1 omega^2", 1e-2, modes[1].Lambda, 12.48)
	if modes[1].Lambda >= modes[2].Lambda {
		tst.Errorf("expected ascending omega^2, got %v", modes)
	}
}

func TestExpandAndNormalize_ZerosConstrainedDOFsAndFixesSign(tst *testing.T) {
	chk.PrintTitle("expandAndNormalize. constrained DOFs stay zero, largest component positive")
	joints := []model.Joint{
		{Number: 1, X: 0, Y: 0, Support: model.FixedSupport},
		{Number: 2, X: 1, Y: 0, Support: model.RigidJoint},
	}
	dm := model.BuildDofMap(joints)
	free := []float64{-1, 2, -5} // largest magnitude is -5, at index 2
	full := expandAndNormalize(dm, free)
	chk.IntAssert(len(full), 6)
	chk.Scalar(tst, "flipped[0]", 1e-15, full[0], 1)
	chk.Scalar(tst, "flipped[1]", 1e-15, full[1], -2)
	chk.Scalar(tst, "flipped[2]", 1e-15, full[2], 5)
	for _, i := range []int{3, 4, 5} {
		chk.Scalar(tst, "constrained DOF stays zero", 1e-15, full[i], 0)
	}
}

func TestFrequency_ConvertsOmegaSquaredToHz(tst *testing.T) {
	chk.PrintTitle("Frequency. omega^2 converts to Hz via sqrt/2pi")
	omega2 := 100.0 // omega=10 rad/s
	f := Frequency(omega2)
	chk.Scalar(tst, "frequency", 1e-9, f, 10.0/(2*3.141592653589793))
}
