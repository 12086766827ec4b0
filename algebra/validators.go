// SPDX-License-Identifier: MIT
// Package: algebra
//
// Purpose:
//  - Provide a single, canonical source of truth for the numeric checks applied
//    to 2×2 weight and covariance matrices.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence
//    (Finite → Symmetric → PSD) so the reported sentinel is stable.

package algebra

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ValidateFinite ensures every entry of m is finite.
// Returns ErrNaNInf otherwise.
func ValidateFinite(m Mat2) error {
	if !m.IsFinite() {
		return algebraErrorf(opValidateFinite, ErrNaNInf)
	}

	return nil
}

// ValidateSymmetric checks |m[0,1] - m[1,0]| ≤ tol, with a relative fallback
// of the same size for large entries.
//
// Returns ErrNaNInf on a non-finite tol, ErrAsymmetry on violation.
// A negative tol is flipped to its absolute value.
func ValidateSymmetric(m Mat2, tol float64) error {
	if isNonFinite(tol) {
		return algebraErrorf(opValidateSymmetric, ErrNaNInf)
	}
	tol = math.Abs(tol)
	if !scalar.EqualWithinAbsOrRel(m[1], m[2], tol, tol) {
		return algebraErrorf(opValidateSymmetric, ErrAsymmetry)
	}

	return nil
}

// ValidatePSD checks that a symmetric m has no eigenvalue below -tol.
//
// For a symmetric 2×2 matrix both eigenvalues are non-negative iff both
// diagonal entries and the determinant are non-negative; the check therefore
// needs no eigen decomposition. The determinant is compared against a tolerance
// scaled by the diagonal magnitude to stay meaningful for large entries.
//
// Assumes m is symmetric (run ValidateSymmetric first).
// Returns ErrNaNInf on a non-finite tol, ErrNotPSD on violation.
func ValidatePSD(m Mat2, tol float64) error {
	if isNonFinite(tol) {
		return algebraErrorf(opValidatePSD, ErrNaNInf)
	}
	tol = math.Abs(tol)
	// NaN entries fail the negated comparisons below.
	if !(m[0] >= -tol) || !(m[3] >= -tol) {
		return algebraErrorf(opValidatePSD, ErrNotPSD)
	}
	scale := math.Max(1, math.Abs(m[0])*math.Abs(m[3]))
	if !(m.Det() >= -tol*scale) {
		return algebraErrorf(opValidatePSD, ErrNotPSD)
	}

	return nil
}

// ValidateWeight – Composite: Finite (if enabled) → Symmetric → PSD.
//
// This is the precondition for a chi-squared weight (an inverse covariance):
// the quadratic form vᵀ·m·v is then a non-negative squared distance.
func ValidateWeight(m Mat2, opts ...Option) error {
	o := NewOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(m); err != nil {
			return algebraErrorf(opValidateWeight, err)
		}
	}
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return algebraErrorf(opValidateWeight, err)
	}
	if err := ValidatePSD(m, o.eps); err != nil {
		return algebraErrorf(opValidateWeight, err)
	}

	return nil
}

// ValidateCovariance – Composite: same sequence as ValidateWeight, tagged for
// covariance inputs. Invertibility is checked separately by Inverse.
func ValidateCovariance(m Mat2, opts ...Option) error {
	o := NewOptions(opts...)
	if o.validateNaNInf {
		if err := ValidateFinite(m); err != nil {
			return algebraErrorf(opValidateCovariance, err)
		}
	}
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return algebraErrorf(opValidateCovariance, err)
	}
	if err := ValidatePSD(m, o.eps); err != nil {
		return algebraErrorf(opValidateCovariance, err)
	}

	return nil
}
