// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package analysis is the top-level entry point of the planar frame
// engine: it validates a model, builds its DOF numbering, and dispatches
// to the first-order, second-order, buckling, or free-vibration solvers
// of spec.md §4.4, §4.7, §4.8, §4.9, in the manner of fem/solver.go's
// role as the single place presentation code calls into.
package analysis

import (
	"sort"

	"github.com/cpmech/planarframe/assembly"
	"github.com/cpmech/planarframe/config"
	"github.com/cpmech/planarframe/diagram"
	"github.com/cpmech/planarframe/eigen"
	"github.com/cpmech/planarframe/element"
	"github.com/cpmech/planarframe/loads"
	"github.com/cpmech/planarframe/model"
	"github.com/cpmech/planarframe/secondorder"
	"github.com/cpmech/planarframe/solve"
)

// MemberReport bundles a member's local end forces with its sampled
// internal-force and deflection distribution, the per-member output
// boundary item of spec.md §6.
type MemberReport struct {
	Beam         int
	EndForces    [6]float64
	Distribution diagram.Distribution
}

// StaticResult is the output boundary for a first- or second-order
// response: the full displacement vector, the reaction vector, and a
// report per member.
type StaticResult struct {
	U       []float64
	R       []float64
	Members []MemberReport
	// SecondOrder is non-nil only for the SecondOrder entry point.
	SecondOrder *secondorder.Diagnostics
}

// validateAndMap runs model.Validate and builds the DOF numbering, the
// common prologue to every entry point.
func validateAndMap(mdl *model.Model) (model.DofMap, error) {
	if err := mdl.Validate(); err != nil {
		return model.DofMap{}, err
	}
	return model.BuildDofMap(mdl.Joints), nil
}

// buildMemberReports samples N(x),V(x),M(x),v(x) for every member from
// its local end-force and end-displacement vectors, per spec.md §4.5.
func buildMemberReports(mdl *model.Model, dm model.DofMap, u []float64, forces [][6]float64, cfg config.Config) []MemberReport {
	out := make([]MemberReport, len(mdl.Members))
	for mi := range mdl.Members {
		m := mdl.Members[mi]
		si, ei, L, c, s := mdl.MemberGeometry(mi)
		dofs := dm.MemberDofs(si, ei)
		T := element.Rotation(c, s)

		var dGlobal [6]float64
		for k, I := range dofs {
			dGlobal[k] = u[I]
		}
		dLocal := rotateVec(T, dGlobal)

		rs := memberLoads(mdl, mi)
		d := diagram.Sample(cfg, L, forces[mi], dLocal, rs)
		out[mi] = MemberReport{Beam: m.Beam, EndForces: forces[mi], Distribution: d}
	}
	return out
}

func memberLoads(mdl *model.Model, mi int) []loads.Resolved {
	beam := mdl.Members[mi].Beam
	var out []loads.Resolved
	for _, ld := range mdl.Loads {
		if ld.Beam == beam {
			out = append(out, loads.Resolved{Kind: ld.Kind, Magnitude: ld.Magnitude, D1: ld.D1, D2: ld.D2})
		}
	}
	return out
}

func rotateVec(T [][]float64, v [6]float64) [6]float64 {
	var out [6]float64
	for i := 0; i < 6; i++ {
		var sum float64
		for j := 0; j < 6; j++ {
			sum += T[i][j] * v[j]
		}
		out[i] = sum
	}
	return out
}

// FirstOrder runs the linear-elastic analysis of spec.md §4.4.
func FirstOrder(mdl *model.Model, cfg config.Config) (*StaticResult, error) {
	dm, err := validateAndMap(mdl)
	if err != nil {
		return nil, err
	}
	g := assembly.Build(mdl, dm, nil, false)
	res, err := solve.FirstOrder(mdl, dm, g)
	if err != nil {
		return nil, err
	}
	return &StaticResult{
		U:       res.U,
		R:       res.R,
		Members: buildMemberReports(mdl, dm, res.U, res.MemberForces, cfg),
	}, nil
}

// SecondOrder runs the P-delta fixed-point iteration of spec.md §4.7.
// A non-nil error returned together with a non-nil result is
// model.ErrBucklingReached, and the result holds the last valid iterate.
// Validation and first-order errors, and buckling detected on the very
// first iterate, return a nil result.
func SecondOrder(mdl *model.Model, cfg config.Config) (*StaticResult, error) {
	dm, err := validateAndMap(mdl)
	if err != nil {
		return nil, err
	}
	res, err := secondorder.Solve(mdl, dm, cfg)
	if res == nil {
		return nil, err
	}
	sr := &StaticResult{
		U:           res.U,
		R:           res.R,
		Members:     buildMemberReports(mdl, dm, res.U, res.MemberForces, cfg),
		SecondOrder: &res.Diagnostics,
	}
	return sr, err
}

// BucklingResult is the output boundary for an elastic buckling
// eigenanalysis, spec.md §4.8.
type BucklingResult struct {
	Lambda1    float64
	Lambdas    []float64
	ModeShapes [][]float64 // columns expanded to full DOF space, ascending by Lambda
}

// Buckling runs the buckling eigenanalysis of spec.md §4.8: one
// first-order solve for the reference normal forces, then the
// generalised eigenproblem K_ff*phi + lambda*Kg_ff(N0)*phi = 0.
func Buckling(mdl *model.Model, cfg config.Config, count int) (*BucklingResult, error) {
	dm, err := validateAndMap(mdl)
	if err != nil {
		return nil, err
	}
	g := assembly.Build(mdl, dm, nil, false)
	first, err := solve.FirstOrder(mdl, dm, g)
	if err != nil {
		return nil, err
	}
	n0 := solve.NormalForces(first.MemberForces)

	modes, err := eigen.Buckling(mdl, dm, n0, count)
	if err != nil {
		return nil, err
	}
	return toBucklingResult(modes), nil
}

func toBucklingResult(modes []eigen.Mode) *BucklingResult {
	out := &BucklingResult{Lambdas: make([]float64, len(modes)), ModeShapes: make([][]float64, len(modes))}
	for i, m := range modes {
		out.Lambdas[i] = m.Lambda
		out.ModeShapes[i] = m.Vector
	}
	if len(out.Lambdas) > 0 {
		out.Lambda1 = out.Lambdas[0]
	}
	return out
}

// ModalResult is the output boundary for a free-vibration eigenanalysis,
// spec.md §4.9.
type ModalResult struct {
	Frequencies []float64 // Hz, ascending
	ModeShapes  [][]float64
}

// Modal runs the free-vibration eigenanalysis of spec.md §4.9: K_ff*phi =
// omega^2*M_ff*phi, with M built from each member's rho*A.
func Modal(mdl *model.Model, cfg config.Config, count int) (*ModalResult, error) {
	dm, err := validateAndMap(mdl)
	if err != nil {
		return nil, err
	}
	modes, err := eigen.Modal(mdl, dm, count)
	if err != nil {
		return nil, err
	}
	out := &ModalResult{Frequencies: make([]float64, len(modes)), ModeShapes: make([][]float64, len(modes))}
	for i, m := range modes {
		out.Frequencies[i] = eigen.Frequency(m.Lambda)
		out.ModeShapes[i] = m.Vector
	}
	return out, nil
}

// sortedCopy returns a sorted ascending copy of xs.
func sortedCopy(xs []float64) []float64 {
	out := append([]float64(nil), xs...)
	sort.Float64s(out)
	return out
}
