// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refine implements the optional mesh-refinement preprocessor of
// spec.md §4.6: each member is subdivided into N equal-length sub-members
// joined by interior rigid joints, and every load on the original member
// is re-split onto the sub-member(s) it now covers.
package refine

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/planarframe/model"
)

// Refine subdivides every member of mdl into n equal sub-members (n must
// be >= 2), inserting n-1 interior rigid joints per member, renumbering
// joints contiguously 1..|J'| and beams contiguously 1..|M'|, and
// re-splitting every load onto the sub-member(s) it covers. The total
// applied force and moment of the returned model equal those of mdl, up
// to rounding (spec.md §4.6 round-trip invariant).
func Refine(mdl *model.Model, n int) (*model.Model, error) {
	if n < 2 {
		return nil, chk.Err("refine: N must be >= 2; got %d", n)
	}
	out := &model.Model{}

	// retained joints, renumbered 1..len(mdl.Joints)
	oldToNew := make(map[int]int, len(mdl.Joints))
	for i, j := range mdl.Joints {
		newNum := i + 1
		oldToNew[j.Number] = newNum
		out.Joints = append(out.Joints, model.Joint{Number: newNum, X: j.X, Y: j.Y, Support: j.Support})
	}
	nextJoint := len(mdl.Joints) + 1
	nextBeam := 1

	type subInfo struct {
		beams     []int     // new beam numbers, in order start->end
		nodeNums  []int     // n+1 joint numbers along the chain, start->end
		L         float64   // original member length
		subLength float64   // L/n
	}
	subs := make(map[int]subInfo, len(mdl.Members)) // keyed by original beam number

	for mi := range mdl.Members {
		m := mdl.Members[mi]
		si, ei, L, _, _ := mdl.MemberGeometry(mi)
		js, je := mdl.Joints[si], mdl.Joints[ei]

		nodeNums := make([]int, n+1)
		nodeNums[0] = oldToNew[js.Number]
		nodeNums[n] = oldToNew[je.Number]
		for k := 1; k < n; k++ {
			t := float64(k) / float64(n)
			x := js.X + t*(je.X-js.X)
			y := js.Y + t*(je.Y-js.Y)
			out.Joints = append(out.Joints, model.Joint{Number: nextJoint, X: x, Y: y, Support: model.RigidJoint})
			nodeNums[k] = nextJoint
			nextJoint++
		}

		beams := make([]int, n)
		for k := 0; k < n; k++ {
			beams[k] = nextBeam
			out.Members = append(out.Members, model.Member{
				Beam:   nextBeam,
				StartJ: nodeNums[k],
				EndJ:   nodeNums[k+1],
				A:      m.A, E: m.E, I: m.I, Rho: m.Rho,
			})
			nextBeam++
		}
		subs[m.Beam] = subInfo{beams: beams, nodeNums: nodeNums, L: L, subLength: L / float64(n)}
	}

	for _, ld := range mdl.Loads {
		si, ok := subs[ld.Beam]
		if !ok {
			return nil, chk.Err("refine: load references unknown beam %d", ld.Beam)
		}
		switch ld.Kind {
		case model.PL:
			k := int(math.Floor(ld.D1 * float64(n) / si.L))
			if k < 0 {
				k = 0
			}
			if k > n-1 {
				k = n - 1
			}
			local := ld.D1 - float64(k)*si.subLength
			out.Loads = append(out.Loads, model.Load{Kind: model.PL, Beam: si.beams[k], Magnitude: ld.Magnitude, D1: local})
		case model.UDL:
			for k := 0; k < n; k++ {
				lo := float64(k) * si.subLength
				hi := lo + si.subLength
				clipLo := math.Max(lo, ld.D1)
				clipHi := math.Min(hi, ld.D2)
				if clipHi <= clipLo {
					continue
				}
				out.Loads = append(out.Loads, model.Load{
					Kind: model.UDL, Beam: si.beams[k], Magnitude: ld.Magnitude,
					D1: clipLo - lo, D2: clipHi - lo,
				})
			}
		}
	}

	return out, nil
}
