// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func simpleValidModel() *Model {
	return &Model{
		Joints: []Joint{
			{Number: 1, X: 0, Y: 0, Support: FixedSupport},
			{Number: 2, X: 5, Y: 0, Support: RigidJoint},
		},
		Members: []Member{
			{Beam: 1, StartJ: 1, EndJ: 2, A: 1, E: 1, I: 1, Rho: 0},
		},
		Loads: []Load{
			{Kind: PL, Beam: 1, Magnitude: -10, D1: 2.5},
		},
	}
}

func TestValidate_AcceptsWellFormedModel(tst *testing.T) {
	chk.PrintTitle("Validate. accepts a well-formed two-joint model")
	if err := simpleValidModel().Validate(); err != nil {
		tst.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_RejectsZeroLengthMember(tst *testing.T) {
	chk.PrintTitle("Validate. rejects a zero-length member")
	mdl := simpleValidModel()
	mdl.Joints[1].X, mdl.Joints[1].Y = 0, 0
	err := mdl.Validate()
	if !errors.Is(err, ErrInvalidGeometry) {
		tst.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestValidate_RejectsOutOfRangeLoad(tst *testing.T) {
	chk.PrintTitle("Validate. rejects a PL beyond the member length")
	mdl := simpleValidModel()
	mdl.Loads[0].D1 = 99
	err := mdl.Validate()
	if !errors.Is(err, ErrInvalidLoad) {
		tst.Errorf("expected ErrInvalidLoad, got %v", err)
	}
}

func TestValidate_RejectsDuplicateJointNumber(tst *testing.T) {
	chk.PrintTitle("Validate. rejects duplicate joint numbers")
	mdl := simpleValidModel()
	mdl.Joints[1].Number = 1
	err := mdl.Validate()
	if !errors.Is(err, ErrInvalidGeometry) {
		tst.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestSupportCode_ConstrainedTable(tst *testing.T) {
	chk.PrintTitle("SupportCode. constrained table matches spec sec. 3")
	cases := []struct {
		code             SupportCode
		u, v, theta bool
	}{
		{RigidJoint, false, false, false},
		{HingedSupport, true, true, false},
		{FixedSupport, true, true, true},
		{RollerXPlane, false, true, false},
		{RollerYPlane, true, false, false},
		{GlidedSupport, false, true, true},
		{RollerXPlaneHinge, false, true, false},
	}
	for _, c := range cases {
		u, v, th := c.code.Constrained()
		if u != c.u || v != c.v || th != c.theta {
			tst.Errorf("%v: got (%v,%v,%v), want (%v,%v,%v)", c.code, u, v, th, c.u, c.v, c.theta)
		}
	}
}

func TestBuildDofMap_FreeBeforeConstrained(tst *testing.T) {
	chk.PrintTitle("BuildDofMap. free DOFs occupy the leading block")
	joints := []Joint{
		{Number: 1, X: 0, Y: 0, Support: FixedSupport},
		{Number: 2, X: 5, Y: 0, Support: RigidJoint},
	}
	dm := BuildDofMap(joints)
	chk.IntAssert(dm.Nfree, 3)
	chk.IntAssert(dm.Ncons, 3)
	for _, idx := range dm.Global[0] {
		if idx < dm.Nfree {
			tst.Errorf("joint 1 (fixed) DOF %d should be in constrained block", idx)
		}
	}
	for _, idx := range dm.Global[1] {
		if idx >= dm.Nfree {
			tst.Errorf("joint 2 (rigid) DOF %d should be in free block", idx)
		}
	}
}
