// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config holds the process-wide numerical knobs read by every
// analysis call: the segments-per-member sampling divisor and the
// second-order fixed-point iteration controls, plus an eigensolver backend
// selection that the eigen package does not read.
package config

import "github.com/cpmech/gosl/chk"

// EigenSolverKind names an eigensolver backend; ResolveSolver maps Auto to
// Dense or Sparse by model size. The eigen package has only the dense
// symmetric solver and does not read this setting, so every buckling and
// free-vibration analysis runs dense whatever value is chosen.
type EigenSolverKind int

const (
	// Auto resolves to Dense or Sparse based on model size.
	Auto EigenSolverKind = iota
	// Dense names the dense symmetric eigensolver.
	Dense
	// Sparse names an iterative solver for large models; no such solver
	// is implemented in this module.
	Sparse
)

// sparseThreshold is the free-DOF count above which Auto switches to Sparse.
const sparseThreshold = 500

// Config is a plain numerical-configuration value threaded explicitly
// through every analysis call. It is never read from inside the numerical
// kernels as a hidden global; see GetDefault/SetDefault below for the
// presentation-layer convenience accessors.
type Config struct {
	Segments            int             `json:"segments"`            // >=2, segments per member for diagram sampling (Segments+1 stations)
	SecondOrderTol      float64         `json:"secondOrderTol"`      // relative tolerance on ||N(k+1)-N(k)||inf
	SecondOrderMaxIters int             `json:"secondOrderMaxIters"` // iteration cap for the P-delta fixed point
	EigenSolver         EigenSolverKind `json:"eigenSolver"`         // Auto | Dense | Sparse
}

// SetDefault fills o with the standard defaults (segments=20, tol=1e-6,
// maxiters=25, solver=Auto), in the manner of gofem's own
// inp.LinSolData.SetDefault.
func (o *Config) SetDefault() {
	o.Segments = 20
	o.SecondOrderTol = 1e-6
	o.SecondOrderMaxIters = 25
	o.EigenSolver = Auto
}

// Validate checks that o's numerical knobs are usable.
func (o Config) Validate() error {
	if o.Segments < 2 {
		return chk.Err("config: segments must be >= 2; got %d", o.Segments)
	}
	if o.SecondOrderTol <= 0 {
		return chk.Err("config: secondOrderTol must be positive; got %g", o.SecondOrderTol)
	}
	if o.SecondOrderMaxIters < 1 {
		return chk.Err("config: secondOrderMaxIters must be >= 1; got %d", o.SecondOrderMaxIters)
	}
	return nil
}

// ResolveSolver picks a concrete Dense/Sparse choice for a model with nfree
// free DOFs, applying the Auto heuristic when o.EigenSolver is Auto.
func (o Config) ResolveSolver(nfree int) EigenSolverKind {
	if o.EigenSolver != Auto {
		return o.EigenSolver
	}
	if nfree > sparseThreshold {
		return Sparse
	}
	return Dense
}

// defaultConfig is the process-wide default, mirroring gofem's pattern of
// keeping a package-level default that presentation-layer code can read and
// mutate between analysis calls (never during one).
var defaultConfig Config

func init() {
	defaultConfig.SetDefault()
}

// GetDefault returns a copy of the current process-wide default Config.
func GetDefault() Config {
	return defaultConfig
}

// SetDefault replaces the process-wide default Config. It must not be
// called concurrently with an in-flight analysis that relies on
// GetDefault.
func SetDefault(c Config) {
	defaultConfig = c
}
