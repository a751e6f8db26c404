// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package element

// Hermite cubic shape functions for the transverse displacement field of
// a 2-D Euler-Bernoulli beam element, spec.md §4.5: v(ξ) = N1(ξ)v1 +
// N2(ξ)θ1 + N3(ξ)v2 + N4(ξ)θ2, with ξ = x/L in [0,1]. N2 and N4 already
// carry one factor of L, matching the standard convention where θ is the
// physical (not natural-coordinate) rotation.
func ShapeN1(xi float64) float64     { return 1 - 3*xi*xi + 2*xi*xi*xi }
func ShapeN3(xi float64) float64     { return 3*xi*xi - 2*xi*xi*xi }
func ShapeN2(xi, L float64) float64  { return L * (xi - 2*xi*xi + xi*xi*xi) }
func ShapeN4(xi, L float64) float64  { return L * (-xi*xi + xi*xi*xi) }

// IntN1 .. IntN4Over1 are antiderivatives (w.r.t. ξ) of the shape
// functions above, used to integrate a constant-intensity UDL over a
// partial span [ξ1, ξ2] in closed form (loads.EquivalentNodalForces).
// IntN2Over1/IntN4Over1 are the antiderivatives of N2/L and N4/L
// respectively (the L factor is re-applied by the caller).
func IntN1(xi float64) float64 { xi2 := xi * xi; return xi - xi2*xi + 0.5*xi2*xi2 }
func IntN3(xi float64) float64 { xi2 := xi * xi; return xi2*xi - 0.5*xi2*xi2 }
func IntN2Over1(xi float64) float64 {
	xi2 := xi * xi
	return 0.5*xi2 - (2.0/3.0)*xi2*xi + 0.25*xi2*xi2
}
func IntN4Over1(xi float64) float64 {
	xi2 := xi * xi
	return -(1.0/3.0)*xi2*xi + 0.25*xi2*xi2
}

// Deflection evaluates the elastic-line transverse deflection v at
// natural coordinate xi in [0,1], given the member length L and its four
// transverse/rotational local DOFs (v1, theta1, v2, theta2).
func Deflection(xi, L, v1, theta1, v2, theta2 float64) float64 {
	return ShapeN1(xi)*v1 + ShapeN2(xi, L)*theta1 + ShapeN3(xi)*v2 + ShapeN4(xi, L)*theta2
}
