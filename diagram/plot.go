// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotMoment draws a member's bending moment diagram offset from its axis
// by the moment value, scaled by sf, in the style of
// ele/solid/beam.go's PlotDiagMoment: it is a presentation-adjacent helper
// that no analysis operation calls, kept here so the gosl/plt dependency
// stays exercised without leaking into the numerical core.
//
//	xa, xb    -- member start/end coordinates (2-vectors)
//	withtext  -- annotate extrema and extremity values
//	sf        -- scaling factor; use 0 to auto-scale from d's own peak
func PlotMoment(d Distribution, xa, xb [2]float64, withtext bool, sf float64) {
	n := len(d.X)
	if n < 2 {
		return
	}
	if sf <= 0 {
		maxAbs := 0.0
		for _, m := range d.M {
			if a := abs(m); a > maxAbs {
				maxAbs = a
			}
		}
		dist := math.Hypot(xb[0]-xa[0], xb[1]-xa[1])
		sf = 1.0
		if maxAbs > 1e-7 {
			sf = 0.1 * dist / maxAbs
		}
	}

	vx, vy := xb[0]-xa[0], xb[1]-xa[1]
	L := math.Hypot(vx, vy)
	vx, vy = vx/L, vy/L
	nx, ny := -vy, vx // outward normal

	imin, imax := utl.DblArgMinMax(d.M)
	pts := utl.DblsAlloc(n, 2)
	for i := 0; i < n; i++ {
		xi := xa[0] + vx*d.X[i]
		yi := xa[1] + vy*d.X[i]
		mx := xi - sf*d.M[i]*nx
		my := yi - sf*d.M[i]*ny
		pts[i][0], pts[i][1] = mx, my

		clr, lw := "#919191", 1.0
		if i == imin || i == imax {
			lw = 2
			if d.M[i] < 0 {
				clr = "#9f0000"
			} else {
				clr = "#109f24"
			}
		}
		plt.Plot([]float64{xi, mx}, []float64{yi, my}, io.Sf("'-', color='%s', lw=%g, clip_on=0", clr, lw))
		if withtext && (i == imin || i == imax || i == 0 || i == n-1) {
			if abs(d.M[i]) > 1e-9 {
				angle := math.Atan2(-ny, -nx) * 180.0 / math.Pi
				plt.Text(mx, my, io.Sf("%g", d.M[i]), io.Sf("ha='center', size=7, rotation=%g, clip_on=0", angle))
			}
		}
	}
	plt.DrawPolyline(pts, &plt.Sty{Ec: "k", Fc: "none", Lw: 1}, "")
}
