// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package model

import "errors"

// Error taxonomy (spec.md §7). Validation errors are produced eagerly by
// Model.Validate and abort the analysis before any numerical work starts.
// Numerical diagnostics are non-fatal: UnconvergedSecondOrder is not a
// sentinel error and travels inside the result structure returned by the
// secondorder package (Diagnostics.Converged), while ErrBucklingReached is
// returned as an error alongside the last valid iterate.
var (
	// ErrInvalidGeometry: zero-length member, non-finite coordinate,
	// I<=0, E<=0, A<=0, duplicate/missing joint or beam numbers.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrInvalidLoad: load references a non-existent beam number, UDL
	// with D1>=D2, or PL/UDL position outside [0,L].
	ErrInvalidLoad = errors.New("invalid load")

	// ErrUnderConstrained: K_ff is singular (a rigid-body mode remains).
	// Fatal for the analysis call that detects it.
	ErrUnderConstrained = errors.New("under-constrained: free stiffness block is singular")

	// ErrBucklingReached: (K + Kg) became indefinite/singular during the
	// second-order iteration. Non-fatal; reported to the caller.
	ErrBucklingReached = errors.New("buckling reached during second-order iteration")

	// ErrEigenSolverFailed: the underlying eigensolver failed to
	// converge. Fatal for that eigenanalysis call.
	ErrEigenSolverFailed = errors.New("eigensolver failed to converge")
)

// geometryError and loadError wrap a chk.Err-produced message so that
// errors.Is(err, ErrInvalidGeometry) / errors.Is(err, ErrInvalidLoad)
// still work after the detail is attached.
type geometryError struct{ detail error }

func (e *geometryError) Error() string { return e.detail.Error() }
func (e *geometryError) Unwrap() error { return ErrInvalidGeometry }

type loadError struct{ detail error }

func (e *loadError) Error() string { return e.detail.Error() }
func (e *loadError) Unwrap() error { return ErrInvalidLoad }

func wrapGeometry(detail error) error { return &geometryError{detail: detail} }
func wrapLoad(detail error) error     { return &loadError{detail: detail} }
