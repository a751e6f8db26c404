// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagram reconstructs the member-level internal force and
// deflection distributions (spec.md §4.5) from a member's local end-force
// vector and the span loads applied to it, sampling Config.Segments+1
// stations uniformly along the member.
package diagram

import (
	"github.com/cpmech/planarframe/config"
	"github.com/cpmech/planarframe/element"
	"github.com/cpmech/planarframe/loads"
)

// Distribution holds the sampled internal-force and deflection arrays for
// one member, all of length len(X).
type Distribution struct {
	X    []float64 // station coordinates along the span, [0,L]
	N, V, M []float64
	Defl []float64
}

// Sample builds the axial N(x), shear V(x), moment M(x), and deflection
// v(x) arrays for a member of length L, given its local end-force vector
// fLocal = (N1,V1,M1,N2,V2,M2), its local end-displacement vector dLocal
// (used for the Hermite elastic-line deflection), and the span loads
// resolved onto it, per spec.md §4.5.
func Sample(cfg config.Config, L float64, fLocal [6]float64, dLocal [6]float64, rs []loads.Resolved) Distribution {
	S := cfg.Segments + 1
	d := Distribution{
		X:    make([]float64, S),
		N:    make([]float64, S),
		V:    make([]float64, S),
		M:    make([]float64, S),
		Defl: make([]float64, S),
	}
	ds := L / float64(S-1)
	N1, V1, M1 := fLocal[0], fLocal[1], fLocal[2]
	v1, theta1, v2, theta2 := dLocal[1], dLocal[2], dLocal[4], dLocal[5]
	for i := 0; i < S; i++ {
		x := float64(i) * ds
		if i == S-1 {
			x = L
		}
		d.X[i] = x
		d.N[i] = -N1
		d.V[i] = V1 + loads.ShearAt(rs, x)
		d.M[i] = M1 - V1*x + loads.MomentAt(rs, x)
		d.Defl[i] = element.Deflection(x/L, L, v1, theta1, v2, theta2)
	}
	return d
}

// Envelope reports the peak absolute moment and shear along a sampled
// distribution together with the station at which each occurs, in the
// manner of alexiusacademia-gorcb's beam-design envelope reporting
// adapted here as a companion to the mandated N/V/M/v sampling.
type Envelope struct {
	MaxAbsM, AtM float64
	MaxAbsV, AtV float64
}

// ComputeEnvelope scans a Distribution for its peak absolute moment and
// shear stations.
func ComputeEnvelope(d Distribution) Envelope {
	var e Envelope
	for i := range d.X {
		if am := abs(d.M[i]); am > e.MaxAbsM {
			e.MaxAbsM, e.AtM = am, d.X[i]
		}
		if av := abs(d.V[i]); av > e.MaxAbsV {
			e.MaxAbsV, e.AtV = av, d.X[i]
		}
	}
	return e
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
