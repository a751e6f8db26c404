// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solve wraps the dense linear solve needed by the first-order
// and second-order analyses (spec.md §4.4, §4.7): a Cholesky-based SPD
// solve for the free-free stiffness block, which is always
// positive-definite for a well-constrained first-order model (§8
// invariant 3) and, for the second-order iteration's (K + Kg) block,
// loses positive-definiteness exactly when the reference load has
// reached the structure's buckling capacity -- so the same solve also
// serves as the iteration's loss-of-positive-definiteness detector
// (secondorder.Solve's model.ErrBucklingReached), with no separate
// general (possibly-indefinite) solver required.
package solve

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/planarframe/model"
)

// SPD solves A*x = b where A is expected to be symmetric positive
// definite (the free-free stiffness block for a well-constrained model,
// spec.md §8 invariant 3), via la.SolveRealLinSysSPD -- the same routine
// gosl's own FDM solver test (pde package) uses for its condensed system.
// Returns model.ErrUnderConstrained if A turns out not to be SPD
// (singular or indefinite, i.e. a rigid-body mode remains, or -- when A
// is the second-order iteration's (K + Kg) block -- the reference load
// has reached the buckling load).
func SPD(A [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	x := make([]float64, n)
	err := la.SolveRealLinSysSPD(x, A, b)
	if err != nil {
		return nil, wrapUnderConstrained(err)
	}
	return x, nil
}

func wrapUnderConstrained(detail error) error {
	return &underConstrainedError{detail: detail}
}

type underConstrainedError struct{ detail error }

func (e *underConstrainedError) Error() string {
	return chk.Err("%v: %v", model.ErrUnderConstrained, e.detail).Error()
}
func (e *underConstrainedError) Unwrap() error { return model.ErrUnderConstrained }
