// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loads computes the equivalent nodal force vector a span load (PL
// or UDL, per spec.md §3-§4.2) contributes to a member's local DOFs, and
// samples the primary shear/moment/axial contribution the same loads
// impose along the span, for the member-level reconstruction of §4.5.
//
// The equivalent nodal load for a transverse load is the work-equivalent
// (consistent) nodal force obtained by integrating the load against the
// member's Hermite cubic shape functions -- the same functions used for
// elastic-line reconstruction in §4.5, so the two stay numerically
// consistent by construction. This is the formulation
// ele/solid/beam.go's AddToRhs uses for a full-span trapezoidal load; this
// package generalises it to an arbitrary partial span [d1,d2] and to a
// point load at an arbitrary station.
package loads

import (
	"github.com/cpmech/planarframe/element"
	"github.com/cpmech/planarframe/model"
)

// Resolved is a load with its member-local station(s) already validated
// against the member's length L (0 <= D1 <= D2 <= L for UDL, 0 <= D1 <= L
// for PL).
type Resolved struct {
	Kind      model.LoadKind
	Magnitude float64
	D1, D2    float64
}

// EquivalentNodalForces returns the local 6-vector (axial and transverse
// forces/moments at each end, in DOF order u1,v1,θ1,u2,v2,θ2) that is
// work-equivalent to the span load ld on a member of length L. PL/UDL only
// ever act transversely (spec.md §3), so entries 0 and 3 (axial) are
// always zero.
func EquivalentNodalForces(ld Resolved, L float64) [6]float64 {
	var f [6]float64
	switch ld.Kind {
	case model.PL:
		xi0 := ld.D1 / L
		P := ld.Magnitude
		f[1] = P * element.ShapeN1(xi0)
		f[2] = P * element.ShapeN2(xi0, L)
		f[4] = P * element.ShapeN3(xi0)
		f[5] = P * element.ShapeN4(xi0, L)
	case model.UDL:
		xi1, xi2 := ld.D1/L, ld.D2/L
		w := ld.Magnitude
		f[1] = w * L * (element.IntN1(xi2) - element.IntN1(xi1))
		f[2] = w * L * L * (element.IntN2Over1(xi2) - element.IntN2Over1(xi1))
		f[4] = w * L * (element.IntN3(xi2) - element.IntN3(xi1))
		f[5] = w * L * L * (element.IntN4Over1(xi2) - element.IntN4Over1(xi1))
	}
	return f
}

// ShearAt returns the primary shear V(x) contribution of the resolved
// loads on a member up to station x (0<=x<=L), to be added to the
// elastic-line shear built from the end force V1, per spec.md §4.5: the
// cumulative UDL integral and any transverse PL already passed add onto
// the base shear (V(x) = V1 + ShearAt(...)), matching the cut free-body
// carrying V1 plus everything applied to its left.
func ShearAt(rs []Resolved, x float64) float64 {
	var dv float64
	for _, ld := range rs {
		switch ld.Kind {
		case model.PL:
			if ld.D1 < x {
				dv += ld.Magnitude
			}
		case model.UDL:
			lo, hi := ld.D1, ld.D2
			if x <= lo {
				continue
			}
			covered := x
			if covered > hi {
				covered = hi
			}
			dv += ld.Magnitude * (covered - lo)
		}
	}
	return dv
}

// MomentAt returns the primary moment M(x) contribution of the resolved
// loads up to station x, on top of the beam's own elastic-line moment
// (M1 minus the V1*x term), per spec.md §4.5: "minus UDL moment
// contributions and minus PL·(x−d) terms for PLs with d < x".
func MomentAt(rs []Resolved, x float64) float64 {
	var dm float64
	for _, ld := range rs {
		switch ld.Kind {
		case model.PL:
			if ld.D1 < x {
				dm -= ld.Magnitude * (x - ld.D1)
			}
		case model.UDL:
			lo, hi := ld.D1, ld.D2
			if x <= lo {
				continue
			}
			covered := x
			if covered > hi {
				covered = hi
			}
			span := covered - lo
			// moment of the covered portion of the UDL about station x:
			// centroid is at lo + span/2, lever arm x - centroid.
			centroid := lo + span/2
			dm -= ld.Magnitude * span * (x - centroid)
		}
	}
	return dm
}
