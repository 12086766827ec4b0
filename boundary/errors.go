// SPDX-License-Identifier: MIT
// Package boundary: sentinel error set.
// Constructors, accessors and evaluators return these sentinels wrapped with an
// operation tag; callers match them via errors.Is.

package boundary

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned at construction when a tolerance violates
	// a non-negativity or zero/non-zero pairing invariant.
	ErrInvalidArgument = errors.New("boundary: invalid argument")

	// ErrTypeMismatch is returned when an accessor or the metric builder is
	// called on a Tolerance whose active variant does not support it. It marks a
	// defect in the calling code.
	ErrTypeMismatch = errors.New("boundary: tolerance type mismatch")

	// ErrMissingTransform is returned when a Cartesian policy is evaluated
	// without the Jacobian it needs.
	ErrMissingTransform = errors.New("boundary: missing bound-to-Cartesian Jacobian")
)

// Operation name constants for unified error wrapping.
const (
	opAbsoluteBound       = "AbsoluteBound"
	opAbsoluteCartesian   = "AbsoluteCartesian"
	opChi2BoundChecked    = "Chi2BoundChecked"
	opChi2BoundFromCov    = "Chi2BoundFromCovariance"
	opAsAbsoluteBound     = "AsAbsoluteBound"
	opAsAbsoluteCartesian = "AsAbsoluteCartesian"
	opAsAbsoluteEuclidean = "AsAbsoluteEuclidean"
	opAsChi2Bound         = "AsChi2Bound"
	opMetric              = "Metric"
	opDistance            = "Distance"
	opIsTolerated         = "IsTolerated"
)

// boundaryErrorf wraps err with an operation tag, preserving it via %w.
func boundaryErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mismatchErrorf reports an operation invoked on the wrong variant.
func mismatchErrorf(tag string, k Kind) error {
	return fmt.Errorf("%s: active kind is %s: %w", tag, k, ErrTypeMismatch)
}

// unreachableKind is the panic message of exhaustive switches.
func unreachableKind(k Kind) string {
	return fmt.Sprintf("boundary: unreachable tolerance kind %d", uint8(k))
}
