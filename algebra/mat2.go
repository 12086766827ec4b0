// SPDX-License-Identifier: MIT
// Package algebra provides universal operations on 2×2 matrices and 2-vectors:
// transpose, products, quadratic forms, determinant and inverse.
//
// Purpose:
//   - Keep the hot-path kernels closed-form, branch-light and allocation-free.
//   - Mirror the row-major convention of a flat Dense backing store so that
//     index (i, j) lives at m[i*2+j].

package algebra

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Operation name constants for unified error wrapping.
const (
	opInverse            = "Inverse"
	opValidateFinite     = "ValidateFinite"
	opValidateSymmetric  = "ValidateSymmetric"
	opValidatePSD        = "ValidatePSD"
	opValidateWeight     = "ValidateWeight"
	opValidateCovariance = "ValidateCovariance"
)

// algebraErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func algebraErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mat2 is a row-major 2×2 matrix of float64 values:
//
//	| m[0] m[1] |
//	| m[2] m[3] |
//
// The zero value is the zero matrix.
type Mat2 [4]float64

// NewMat2 builds a matrix from its entries in row-major order.
func NewMat2(a00, a01, a10, a11 float64) Mat2 {
	return Mat2{a00, a01, a10, a11}
}

// Identity returns the 2×2 identity matrix.
func Identity() Mat2 {
	return Mat2{1, 0, 0, 1}
}

// Diag returns the diagonal matrix diag(d0, d1).
func Diag(d0, d1 float64) Mat2 {
	return Mat2{d0, 0, 0, d1}
}

// At returns the element at (row, col).
// Returns ErrOutOfRange unless 0 ≤ row, col ≤ 1.
func (m Mat2) At(row, col int) (float64, error) {
	if row < 0 || row > 1 || col < 0 || col > 1 {
		return 0, fmt.Errorf("Mat2.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m[row*2+col], nil
}

// Transpose returns mᵀ.
func (m Mat2) Transpose() Mat2 {
	return Mat2{m[0], m[2], m[1], m[3]}
}

// Mul returns the product m·b.
// Complexity: 8 multiplications, 4 additions.
func (m Mat2) Mul(b Mat2) Mat2 {
	return Mat2{
		m[0]*b[0] + m[1]*b[2], m[0]*b[1] + m[1]*b[3],
		m[2]*b[0] + m[3]*b[2], m[2]*b[1] + m[3]*b[3],
	}
}

// MulVec returns the product m·v.
func (m Mat2) MulVec(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: m[0]*v.X + m[1]*v.Y,
		Y: m[2]*v.X + m[3]*v.Y,
	}
}

// Gram returns mᵀ·m. The result is exactly symmetric by construction
// (both off-diagonal entries come from the same expression).
func (m Mat2) Gram() Mat2 {
	off := m[0]*m[1] + m[2]*m[3]

	return Mat2{
		m[0]*m[0] + m[2]*m[2], off,
		off, m[1]*m[1] + m[3]*m[3],
	}
}

// Quad returns the quadratic form vᵀ·m·v.
func (m Mat2) Quad(v r2.Vec) float64 {
	return v.X*(m[0]*v.X+m[1]*v.Y) + v.Y*(m[2]*v.X+m[3]*v.Y)
}

// Det returns the determinant of m.
func (m Mat2) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Trace returns the sum of the diagonal entries.
func (m Mat2) Trace() float64 {
	return m[0] + m[3]
}

// IsFinite reports whether every entry is finite.
func (m Mat2) IsFinite() bool {
	for _, v := range m {
		if isNonFinite(v) {
			return false
		}
	}

	return true
}

// Inverse returns m⁻¹ via the adjugate formula.
//
// Errors:
//   - ErrNaNInf if the determinant is not finite.
//   - ErrSingular if the determinant is exactly zero.
//
// There is no pivoting and no conditioning threshold; nearly singular inputs
// yield large but finite entries.
func Inverse(m Mat2) (Mat2, error) {
	det := m.Det()
	if isNonFinite(det) {
		return Mat2{}, algebraErrorf(opInverse, ErrNaNInf)
	}
	if det == 0 {
		return Mat2{}, algebraErrorf(opInverse, ErrSingular)
	}
	inv := 1 / det

	return Mat2{m[3] * inv, -m[1] * inv, -m[2] * inv, m[0] * inv}, nil
}

// String implements fmt.Stringer for easy debugging.
func (m Mat2) String() string {
	return fmt.Sprintf("[%g, %g]\n[%g, %g]\n", m[0], m[1], m[2], m[3])
}
