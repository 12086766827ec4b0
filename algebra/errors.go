// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
// All validators and kernels return these sentinels (optionally wrapped with an
// operation tag); tests match them via errors.Is.

package algebra

import "errors"

// Every message is prefixed with "algebra: ..." for consistency and to allow
// easy grepping across logs.
var (
	// ErrOutOfRange indicates that a row or column index is outside {0, 1}.
	ErrOutOfRange = errors.New("algebra: index out of range")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required
	// by the numeric policy.
	ErrNaNInf = errors.New("algebra: NaN or Inf encountered")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon.
	ErrAsymmetry = errors.New("algebra: matrix is not symmetric within eps")

	// ErrNotPSD signals that a symmetric matrix has a negative eigenvalue
	// beyond the configured epsilon.
	ErrNotPSD = errors.New("algebra: matrix is not positive semi-definite")

	// ErrSingular is returned when a matrix with zero determinant is inverted.
	ErrSingular = errors.New("algebra: singular matrix")
)
