// SPDX-License-Identifier: MIT

// Package boundary: domain types. This file contains ONLY the closed set of
// tolerance kinds, the tolerance modes, the per-variant parameter structs and
// the optional Jacobian. Behavior lives in tolerance.go, metric.go and
// evaluate.go.
package boundary

import "github.com/katalvlaran/lvbound/algebra"

// Kind identifies the active variant of a Tolerance.
// The set is closed: every consumer switches over all six values.
type Kind uint8

const (
	// KindNone is an exact check. It is the zero Kind, so the zero Tolerance
	// is the most conservative policy.
	KindNone Kind = iota
	// KindInfinite disables the boundary check.
	KindInfinite
	// KindAbsoluteBound is a per-axis margin in bound coordinates.
	KindAbsoluteBound
	// KindAbsoluteCartesian is a per-axis margin in Cartesian coordinates.
	KindAbsoluteCartesian
	// KindAbsoluteEuclidean is a margin on the Euclidean residual length.
	KindAbsoluteEuclidean
	// KindChi2Bound is a maximum chi-squared in bound coordinates.
	KindChi2Bound
)

// Kinds returns every Kind in declaration order.
func Kinds() [6]Kind {
	return [6]Kind{
		KindNone, KindInfinite, KindAbsoluteBound,
		KindAbsoluteCartesian, KindAbsoluteEuclidean, KindChi2Bound,
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInfinite:
		return "Infinite"
	case KindAbsoluteBound:
		return "AbsoluteBound"
	case KindAbsoluteCartesian:
		return "AbsoluteCartesian"
	case KindAbsoluteEuclidean:
		return "AbsoluteEuclidean"
	case KindChi2Bound:
		return "Chi2Bound"
	default:
		return "Kind(invalid)"
	}
}

// Mode summarizes how a Tolerance changes the nominal boundary.
type Mode uint8

const (
	// ModeExtend enlarges the boundary.
	ModeExtend Mode = iota
	// ModeNone leaves the boundary exact.
	ModeNone
	// ModeShrink makes the check stricter than an exact one.
	ModeShrink
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeExtend:
		return "Extend"
	case ModeNone:
		return "None"
	case ModeShrink:
		return "Shrink"
	default:
		return "Mode(invalid)"
	}
}

// AbsoluteBoundParams holds per-axis tolerances in bound-frame units.
type AbsoluteBoundParams struct {
	Tolerance0 float64 // ≥ 0
	Tolerance1 float64 // ≥ 0
}

// AbsoluteCartesianParams holds per-axis tolerances in Cartesian units.
// Both are zero or both are non-zero.
type AbsoluteCartesianParams struct {
	Tolerance0 float64
	Tolerance1 float64
}

// AbsoluteEuclideanParams holds a single margin on the residual length.
// The sign is not validated; a negative value shrinks the boundary.
type AbsoluteEuclideanParams struct {
	Tolerance float64
}

// Chi2BoundParams holds a maximum chi-squared and the weight matrix (the
// inverse of the bound-frame covariance). Weight must be symmetric and positive
// semi-definite for the check to be meaningful; Chi2Bound does not enforce it.
type Chi2BoundParams struct {
	MaxChi2 float64
	Weight  algebra.Mat2
}

// Jacobian is an optional 2×2 matrix mapping small bound-coordinate
// displacements to Cartesian displacements at the evaluation point.
// The zero value is absent.
type Jacobian struct {
	m  algebra.Mat2
	ok bool
}

// NoJacobian returns an absent Jacobian.
func NoJacobian() Jacobian {
	return Jacobian{}
}

// NewJacobian returns a present Jacobian holding m.
func NewJacobian(m algebra.Mat2) Jacobian {
	return Jacobian{m: m, ok: true}
}

// Get returns the matrix and whether it is present.
func (j Jacobian) Get() (algebra.Mat2, bool) {
	return j.m, j.ok
}

// Present reports whether a matrix is held.
func (j Jacobian) Present() bool {
	return j.ok
}
