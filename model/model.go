// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package model holds the input-boundary data types of the analysis engine:
// joints, prismatic members, span loads, and the closed set of support
// codes, together with the deterministic DOF numbering built from them.
package model

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// SupportCode is a joint's support condition, drawn from a closed set.
// The zero value, RigidJoint, constrains nothing.
type SupportCode int

const (
	RigidJoint          SupportCode = iota // aka Hinge Joint: (u,v,θ) all free
	HingedSupport                          // aka Hinged Joint Support: u,v fixed, θ free
	FixedSupport                           // u,v,θ all fixed
	RollerXPlane                           // u free, v fixed, θ free
	RollerYPlane                           // u fixed, v free, θ free
	GlidedSupport                          // u free, v,θ fixed
	RollerXPlaneHinge                      // same constraints as RollerXPlane
)

// Constrained reports, for the three DOFs (u, v, θ) of a joint carrying this
// support code, whether each is constrained (true) or free (false). This is
// the table in spec.md §3.
func (s SupportCode) Constrained() (u, v, theta bool) {
	switch s {
	case RigidJoint:
		return false, false, false
	case HingedSupport:
		return true, true, false
	case FixedSupport:
		return true, true, true
	case RollerXPlane, RollerXPlaneHinge:
		return false, true, false
	case RollerYPlane:
		return true, false, false
	case GlidedSupport:
		return false, true, true
	default:
		return false, false, false
	}
}

// String names the support code, used in error messages and persistence.
func (s SupportCode) String() string {
	switch s {
	case RigidJoint:
		return "Rigid Joint"
	case HingedSupport:
		return "Hinged Support"
	case FixedSupport:
		return "Fixed Support"
	case RollerXPlane:
		return "Roller in X-plane"
	case RollerYPlane:
		return "Roller in Y-plane"
	case GlidedSupport:
		return "Glided Support"
	case RollerXPlaneHinge:
		return "Roller in X-plane-Hinge"
	default:
		return "Unknown"
	}
}

// Joint is a node of the structure: a user-chosen positive joint number,
// its coordinates, and its support condition.
type Joint struct {
	Number  int
	X, Y    float64
	Support SupportCode
}

// Member is a prismatic 2-D beam-column line element referencing two
// joints by joint number. A, E, I must be strictly positive; Rho may be
// zero (massless member, still contributes no geometric inconsistency —
// see element.ConsistentMass).
type Member struct {
	Beam         int
	StartJ, EndJ int
	A, E, I, Rho float64
}

// Length returns the member's length, given the coordinates of its two end
// joints (already resolved by the caller via joint number lookup).
func Length(xs, ys, xe, ye float64) float64 {
	dx, dy := xe-xs, ye-ys
	return math.Hypot(dx, dy)
}

// DirectionCosines returns (c, s), the unit direction vector from start to
// end joint, given the member length L (must be > 0).
func DirectionCosines(xs, ys, xe, ye, L float64) (c, s float64) {
	return (xe - xs) / L, (ye - ys) / L
}

// LoadKind distinguishes a point load from a uniformly distributed load.
type LoadKind int

const (
	PL  LoadKind = iota // point load at distance D1 from the start joint
	UDL                 // uniformly distributed load over [D1, D2]
)

// Load is a point or distributed load applied to a member's local +y
// (transverse) axis, by beam-number reference. For PL, D1 is the distance
// from the start joint and D2 is unused. For UDL, D1 < D2 bound the loaded
// span and Magnitude is force per unit length.
type Load struct {
	Kind      LoadKind
	Beam      int
	Magnitude float64
	D1, D2    float64
}

// Model is the fully-resolved input to an analysis: joints, members, and
// loads, validated and ready for DOF numbering and assembly.
type Model struct {
	Joints  []Joint
	Members []Member
	Loads   []Load
}

// jointIndex returns the position of joint number jn in o.Joints, or -1.
func (o *Model) jointIndex(jn int) int {
	for i := range o.Joints {
		if o.Joints[i].Number == jn {
			return i
		}
	}
	return -1
}

// MemberGeometry returns the resolved start/end joint indices, length, and
// direction cosines for member index mi. It assumes Validate has already
// succeeded.
func (o *Model) MemberGeometry(mi int) (si, ei int, L, c, s float64) {
	m := o.Members[mi]
	si = o.jointIndex(m.StartJ)
	ei = o.jointIndex(m.EndJ)
	js, je := o.Joints[si], o.Joints[ei]
	L = Length(js.X, js.Y, je.X, je.Y)
	c, s = DirectionCosines(js.X, js.Y, je.X, je.Y, L)
	return
}

// Validate checks the invariants of spec.md §3 and the error taxonomy of
// §7: unique joint numbers, finite coordinates, unique positive beam
// numbers, distinct end joints referencing known joint numbers, strictly
// positive A/E/I, non-negative Rho, and loads referencing existing beams
// with in-range positions. It returns the first violation found, wrapped
// with the ErrInvalidGeometry/ErrInvalidLoad sentinels.
func (o *Model) Validate() error {
	seen := make(map[int]bool, len(o.Joints))
	for _, j := range o.Joints {
		if j.Number <= 0 {
			return wrapGeometry(chk.Err("joint number must be positive; got %d", j.Number))
		}
		if seen[j.Number] {
			return wrapGeometry(chk.Err("duplicate joint number %d", j.Number))
		}
		seen[j.Number] = true
		if math.IsNaN(j.X) || math.IsInf(j.X, 0) || math.IsNaN(j.Y) || math.IsInf(j.Y, 0) {
			return wrapGeometry(chk.Err("joint %d has non-finite coordinates", j.Number))
		}
	}

	beams := make(map[int]bool, len(o.Members))
	for _, m := range o.Members {
		if m.Beam <= 0 {
			return wrapGeometry(chk.Err("beam number must be positive; got %d", m.Beam))
		}
		if beams[m.Beam] {
			return wrapGeometry(chk.Err("duplicate beam number %d", m.Beam))
		}
		beams[m.Beam] = true
		if m.StartJ == m.EndJ {
			return wrapGeometry(chk.Err("member %d: start and end joint must be distinct", m.Beam))
		}
		if !seen[m.StartJ] {
			return wrapGeometry(chk.Err("member %d: start joint %d does not exist", m.Beam, m.StartJ))
		}
		if !seen[m.EndJ] {
			return wrapGeometry(chk.Err("member %d: end joint %d does not exist", m.Beam, m.EndJ))
		}
		if m.A <= 0 {
			return wrapGeometry(chk.Err("member %d: A must be positive; got %g", m.Beam, m.A))
		}
		if m.E <= 0 {
			return wrapGeometry(chk.Err("member %d: E must be positive; got %g", m.Beam, m.E))
		}
		if m.I <= 0 {
			return wrapGeometry(chk.Err("member %d: I must be positive; got %g", m.Beam, m.I))
		}
		if m.Rho < 0 {
			return wrapGeometry(chk.Err("member %d: Rho must be non-negative; got %g", m.Beam, m.Rho))
		}
		si := o.jointIndex(m.StartJ)
		ei := o.jointIndex(m.EndJ)
		js, je := o.Joints[si], o.Joints[ei]
		if Length(js.X, js.Y, je.X, je.Y) <= 0 {
			return wrapGeometry(chk.Err("member %d has zero length", m.Beam))
		}
	}

	for i, ld := range o.Loads {
		if !beams[ld.Beam] {
			return wrapLoad(chk.Err("load %d references non-existent beam %d", i, ld.Beam))
		}
		mi := o.memberIndexByBeam(ld.Beam)
		_, _, L, _, _ := o.MemberGeometry(mi)
		switch ld.Kind {
		case PL:
			if ld.D1 < 0 || ld.D1 > L {
				return wrapLoad(chk.Err("load %d: PL position %g out of [0,%g] on beam %d", i, ld.D1, L, ld.Beam))
			}
		case UDL:
			if ld.D1 >= ld.D2 || ld.D1 < 0 || ld.D2 > L {
				return wrapLoad(chk.Err("load %d: UDL span [%g,%g] invalid on beam %d (L=%g)", i, ld.D1, ld.D2, ld.Beam, L))
			}
		default:
			return wrapLoad(chk.Err("load %d: unknown load kind", i))
		}
	}
	return nil
}

func (o *Model) memberIndexByBeam(beam int) int {
	for i := range o.Members {
		if o.Members[i].Beam == beam {
			return i
		}
	}
	return -1
}
