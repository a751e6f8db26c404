// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package element builds the local 6x6 elastic stiffness, geometric
// stiffness, and consistent mass matrices of a prismatic 2-D Euler-Bernoulli
// beam-column element, plus the rotation matrix taking global to local
// coordinates, following the formulation of spec.md §4.1. The matrix
// layout and rotation style are adapted from ele/solid/beam.go's
// Recompute method (2D branch) in the teacher repo.
package element

import "github.com/cpmech/gosl/la"

// Nu is the number of DOFs of a 2-D beam-column element: 3 per node
// (u, v, θ) times 2 nodes.
const Nu = 6

// Elastic returns the local elastic stiffness k_e (6x6) of a beam of
// length L, axial rigidity EA and flexural rigidity EI, in DOF order
// (u1,v1,θ1,u2,v2,θ2).
func Elastic(L, EA, EI float64) [][]float64 {
	k := la.MatAlloc(Nu, Nu)
	ll := L * L
	lll := ll * L
	m := EA / L
	n := EI / lll

	k[0][0] = m
	k[0][3] = -m
	k[1][1] = 12 * n
	k[1][2] = 6 * L * n
	k[1][4] = -12 * n
	k[1][5] = 6 * L * n
	k[2][1] = 6 * L * n
	k[2][2] = 4 * ll * n
	k[2][4] = -6 * L * n
	k[2][5] = 2 * ll * n
	k[3][0] = -m
	k[3][3] = m
	k[4][1] = -12 * n
	k[4][2] = -6 * L * n
	k[4][4] = 12 * n
	k[4][5] = -6 * L * n
	k[5][1] = 6 * L * n
	k[5][2] = 2 * ll * n
	k[5][4] = -6 * L * n
	k[5][5] = 4 * ll * n
	return k
}

// Geometric returns the local geometric stiffness k_g (6x6) of a beam of
// length L carrying normal force N (tension positive). Axial terms are
// zero in this formulation; non-zero entries sit in the bending block
// only, per spec.md §4.1.
func Geometric(L, N float64) [][]float64 {
	kg := la.MatAlloc(Nu, Nu)
	c := N / (30.0 * L)
	ll := L * L

	kg[1][1] = 36 * c
	kg[1][2] = 3 * L * c
	kg[1][4] = -36 * c
	kg[1][5] = 3 * L * c

	kg[2][1] = 3 * L * c
	kg[2][2] = 4 * ll * c
	kg[2][4] = -3 * L * c
	kg[2][5] = -ll * c

	kg[4][1] = -36 * c
	kg[4][2] = -3 * L * c
	kg[4][4] = 36 * c
	kg[4][5] = -3 * L * c

	kg[5][1] = 3 * L * c
	kg[5][2] = -ll * c
	kg[5][4] = -3 * L * c
	kg[5][5] = 4 * ll * c
	return kg
}

// ConsistentMass returns the local consistent mass matrix m_c (6x6) of a
// beam of length L with mass per unit length mbar = rho*A, combining the
// consistent axial rod block with the standard Hermite-cubic bending block.
func ConsistentMass(L, mbar float64) [][]float64 {
	mc := la.MatAlloc(Nu, Nu)
	if mbar == 0 {
		return mc
	}
	ll := L * L

	// axial block, DOFs (0,3): (mbar*L/6)*[[2,1],[1,2]]
	axial := mbar * L / 6.0
	mc[0][0] = 2 * axial
	mc[0][3] = 1 * axial
	mc[3][0] = 1 * axial
	mc[3][3] = 2 * axial

	// bending block, DOFs (1,2,4,5): standard consistent mass (mbar*L/420)
	b := mbar * L / 420.0
	mc[1][1] = 156.0 * b
	mc[1][2] = 22.0 * L * b
	mc[1][4] = 54.0 * b
	mc[1][5] = -13.0 * L * b
	mc[2][1] = 22.0 * L * b
	mc[2][2] = 4.0 * ll * b
	mc[2][4] = 13.0 * L * b
	mc[2][5] = -3.0 * ll * b
	mc[4][1] = 54.0 * b
	mc[4][2] = 13.0 * L * b
	mc[4][4] = 156.0 * b
	mc[4][5] = -22.0 * L * b
	mc[5][1] = -13.0 * L * b
	mc[5][2] = -3.0 * ll * b
	mc[5][4] = -22.0 * L * b
	mc[5][5] = 4.0 * ll * b
	return mc
}

// Rotation returns the 6x6 block-diagonal rotation matrix T taking global
// (x,y,θ) DOFs to local beam-aligned DOFs (d_local = T·d_global), given
// the member's direction cosine (c, s) = (Δx, Δy)/L.
func Rotation(c, s float64) [][]float64 {
	T := la.MatAlloc(Nu, Nu)
	T[0][0] = c
	T[0][1] = s
	T[1][0] = -s
	T[1][1] = c
	T[2][2] = 1
	T[3][3] = c
	T[3][4] = s
	T[4][3] = -s
	T[4][4] = c
	T[5][5] = 1
	return T
}

// ToGlobal rotates a local 6x6 element matrix kl to global coordinates:
// K = Tᵀ kl T.
func ToGlobal(T, kl [][]float64) [][]float64 {
	K := la.MatAlloc(Nu, Nu)
	la.MatTrMul3(K, 1, T, kl, T) // K := 1 * transpose(T) * kl * T
	return K
}
