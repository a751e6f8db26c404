// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestElastic_AxialBlock(tst *testing.T) {
	chk.PrintTitle("Elastic. axial stiffness block matches EA/L")
	L, EA, EI := 4.0, 2.1e6, 3.4e5
	k := Elastic(L, EA, EI)
	chk.Scalar(tst, "k[0][0]", 1e-9, k[0][0], EA/L)
	chk.Scalar(tst, "k[3][3]", 1e-9, k[3][3], EA/L)
	chk.Scalar(tst, "k[0][3]", 1e-9, k[0][3], -EA/L)
	for i := 0; i < Nu; i++ {
		for j := 0; j < Nu; j++ {
			chk.Scalar(tst, "symmetry", 1e-9, k[i][j], k[j][i])
		}
	}
}

func TestElastic_BendingBlock(tst *testing.T) {
	chk.PrintTitle("Elastic. bending stiffness block matches 12EI/L^3 etc")
	L, EA, EI := 5.0, 1.0, 1.0
	k := Elastic(L, EA, EI)
	chk.Scalar(tst, "k[1][1]", 1e-9, k[1][1], 12*EI/(L*L*L))
	chk.Scalar(tst, "k[2][2]", 1e-9, k[2][2], 4*EI/L)
	chk.Scalar(tst, "k[1][2]", 1e-9, k[1][2], 6*EI/(L*L))
	chk.Scalar(tst, "k[2][5]", 1e-9, k[2][5], 2*EI/L)
}

func TestGeometric_Symmetry(tst *testing.T) {
	chk.PrintTitle("Geometric. symmetric and zero for N=0")
	L := 3.0
	kg0 := Geometric(L, 0)
	for i := 0; i < Nu; i++ {
		for j := 0; j < Nu; j++ {
			chk.Scalar(tst, "kg0==0", 1e-12, kg0[i][j], 0)
		}
	}
	kg := Geometric(L, 1000.0)
	for i := 0; i < Nu; i++ {
		for j := 0; j < Nu; j++ {
			chk.Scalar(tst, "symmetry", 1e-9, kg[i][j], kg[j][i])
		}
	}
}

func TestConsistentMass_Symmetry(tst *testing.T) {
	chk.PrintTitle("ConsistentMass. symmetric, positive diagonal for mbar>0")
	L, mbar := 2.0, 7.85
	m := ConsistentMass(L, mbar)
	for i := 0; i < Nu; i++ {
		if m[i][i] <= 0 {
			tst.Errorf("mass diagonal must be positive at %d: got %g", i, m[i][i])
		}
		for j := 0; j < Nu; j++ {
			chk.Scalar(tst, "symmetry", 1e-9, m[i][j], m[j][i])
		}
	}
}

func TestRotation_Orthogonal(tst *testing.T) {
	chk.PrintTitle("Rotation. T is orthogonal for a 3-4-5 member")
	c, s := 0.6, 0.8
	T := Rotation(c, s)
	// T * T^T should be the identity on the 2x2 translational sub-blocks
	sum := T[0][0]*T[0][0] + T[0][1]*T[0][1]
	chk.Scalar(tst, "row-norm", 1e-12, sum, 1.0)
}

func TestToGlobal_PreservesSymmetry(tst *testing.T) {
	chk.PrintTitle("ToGlobal. T^T*k*T stays symmetric")
	L, EA, EI := 4.0, 1e5, 2e4
	T := Rotation(0.6, 0.8)
	kg := ToGlobal(T, Elastic(L, EA, EI))
	for i := 0; i < Nu; i++ {
		for j := 0; j < Nu; j++ {
			chk.Scalar(tst, "symmetry", 1e-6, kg[i][j], kg[j][i])
		}
	}
}
