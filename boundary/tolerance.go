// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvbound/algebra"
)

// Tolerance is an immutable, tagged boundary-tolerance policy.
//
// Exactly one variant is active. Parameters are stored inline so a Tolerance
// is a plain value: assignment copies it, == compares it, and no method
// allocates. The zero value is None().
type Tolerance struct {
	kind Kind
	// t0, t1 hold the per-axis tolerances of AbsoluteBound and
	// AbsoluteCartesian; t0 alone holds the Euclidean tolerance or MaxChi2.
	t0, t1 float64
	weight algebra.Mat2 // Chi2Bound only
}

// Infinite returns a tolerance under which no boundary check rejects a point.
func Infinite() Tolerance {
	return Tolerance{kind: KindInfinite}
}

// None returns an exact boundary check.
func None() Tolerance {
	return Tolerance{kind: KindNone}
}

// AbsoluteBound returns a per-axis tolerance in bound coordinates.
//
// Errors:
//   - ErrInvalidArgument if t0 or t1 is negative or NaN.
func AbsoluteBound(t0, t1 float64) (Tolerance, error) {
	if !(t0 >= 0) || !(t1 >= 0) {
		return Tolerance{}, fmt.Errorf("%s: tolerances must be non-negative, got (%g, %g): %w",
			opAbsoluteBound, t0, t1, ErrInvalidArgument)
	}

	return Tolerance{kind: KindAbsoluteBound, t0: t0, t1: t1}, nil
}

// AbsoluteCartesian returns a per-axis tolerance in Cartesian coordinates.
//
// Errors:
//   - ErrInvalidArgument if t0 or t1 is negative or NaN.
//   - ErrInvalidArgument if exactly one of them is zero.
func AbsoluteCartesian(t0, t1 float64) (Tolerance, error) {
	if !(t0 >= 0) || !(t1 >= 0) {
		return Tolerance{}, fmt.Errorf("%s: tolerances must be non-negative, got (%g, %g): %w",
			opAbsoluteCartesian, t0, t1, ErrInvalidArgument)
	}
	if (t0 == 0) != (t1 == 0) {
		return Tolerance{}, fmt.Errorf("%s: tolerances must be both zero or both non-zero, got (%g, %g): %w",
			opAbsoluteCartesian, t0, t1, ErrInvalidArgument)
	}

	return Tolerance{kind: KindAbsoluteCartesian, t0: t0, t1: t1}, nil
}

// AbsoluteEuclidean returns a margin on the Euclidean residual length.
// The sign is not validated: a negative tolerance rejects every residual.
func AbsoluteEuclidean(t float64) Tolerance {
	return Tolerance{kind: KindAbsoluteEuclidean, t0: t}
}

// Chi2Bound returns a chi-squared tolerance with the given weight (inverse
// bound covariance). Neither argument is validated; see Chi2BoundChecked.
func Chi2Bound(weight algebra.Mat2, maxChi2 float64) Tolerance {
	return Tolerance{kind: KindChi2Bound, t0: maxChi2, weight: weight}
}

// Chi2BoundChecked is Chi2Bound with construction-time validation of the
// weight (finite, symmetric within eps, positive semi-definite) and of maxChi2
// (not NaN). The numeric policy is configured through algebra options.
//
// Errors:
//   - ErrInvalidArgument wrapping algebra.ErrNaNInf, algebra.ErrAsymmetry or
//     algebra.ErrNotPSD.
func Chi2BoundChecked(weight algebra.Mat2, maxChi2 float64, opts ...algebra.Option) (Tolerance, error) {
	if math.IsNaN(maxChi2) {
		return Tolerance{}, fmt.Errorf("%s: maxChi2 is NaN: %w", opChi2BoundChecked, ErrInvalidArgument)
	}
	if err := algebra.ValidateWeight(weight, opts...); err != nil {
		return Tolerance{}, fmt.Errorf("%s: %w: %w", opChi2BoundChecked, ErrInvalidArgument, err)
	}

	return Chi2Bound(weight, maxChi2), nil
}

// Chi2BoundFromCovariance builds a chi-squared tolerance from a bound-frame
// covariance: the weight is cov⁻¹, symmetrized to absorb rounding.
//
// Errors:
//   - ErrInvalidArgument wrapping the algebra sentinel when cov is not finite,
//     not symmetric, not positive semi-definite or singular.
func Chi2BoundFromCovariance(cov algebra.Mat2, maxChi2 float64, opts ...algebra.Option) (Tolerance, error) {
	if err := algebra.ValidateCovariance(cov, opts...); err != nil {
		return Tolerance{}, fmt.Errorf("%s: %w: %w", opChi2BoundFromCov, ErrInvalidArgument, err)
	}
	w, err := algebra.Inverse(cov)
	if err != nil {
		return Tolerance{}, fmt.Errorf("%s: %w: %w", opChi2BoundFromCov, ErrInvalidArgument, err)
	}
	off := 0.5 * (w[1] + w[2])
	w[1], w[2] = off, off

	return Chi2BoundChecked(w, maxChi2, opts...)
}

// Kind returns the active variant.
func (t Tolerance) Kind() Kind { return t.kind }

// IsInfinite reports whether no boundary check is performed.
func (t Tolerance) IsInfinite() bool { return t.kind == KindInfinite }

// IsNone reports whether the check is exact.
func (t Tolerance) IsNone() bool { return t.kind == KindNone }

// HasAbsoluteBound reports whether the tolerance can be consumed as a per-axis
// bound-frame tolerance. With isCartesian set (planar surfaces whose bound
// coordinates are unit-scaled Cartesian), an AbsoluteCartesian tolerance
// qualifies as well.
func (t Tolerance) HasAbsoluteBound(isCartesian bool) bool {
	return t.kind == KindAbsoluteBound || (isCartesian && t.kind == KindAbsoluteCartesian)
}

// HasAbsoluteCartesian reports whether the active variant is AbsoluteCartesian.
func (t Tolerance) HasAbsoluteCartesian() bool { return t.kind == KindAbsoluteCartesian }

// HasAbsoluteEuclidean reports whether the active variant is AbsoluteEuclidean.
func (t Tolerance) HasAbsoluteEuclidean() bool { return t.kind == KindAbsoluteEuclidean }

// HasChi2Bound reports whether the active variant is Chi2Bound.
func (t Tolerance) HasChi2Bound() bool { return t.kind == KindChi2Bound }

// AsAbsoluteBound returns the bound-frame per-axis tolerances. An
// AbsoluteCartesian tolerance is reinterpreted when isCartesian is set.
// Returns ErrTypeMismatch otherwise.
func (t Tolerance) AsAbsoluteBound(isCartesian bool) (AbsoluteBoundParams, error) {
	p, ok := t.AsAbsoluteBoundOpt(isCartesian)
	if !ok {
		return AbsoluteBoundParams{}, mismatchErrorf(opAsAbsoluteBound, t.kind)
	}

	return p, nil
}

// AsAbsoluteBoundOpt is AsAbsoluteBound for speculative callers: it reports
// false instead of failing.
func (t Tolerance) AsAbsoluteBoundOpt(isCartesian bool) (AbsoluteBoundParams, bool) {
	if !t.HasAbsoluteBound(isCartesian) {
		return AbsoluteBoundParams{}, false
	}

	return AbsoluteBoundParams{Tolerance0: t.t0, Tolerance1: t.t1}, true
}

// AsAbsoluteCartesian returns the Cartesian per-axis tolerances or ErrTypeMismatch.
func (t Tolerance) AsAbsoluteCartesian() (AbsoluteCartesianParams, error) {
	if t.kind != KindAbsoluteCartesian {
		return AbsoluteCartesianParams{}, mismatchErrorf(opAsAbsoluteCartesian, t.kind)
	}

	return AbsoluteCartesianParams{Tolerance0: t.t0, Tolerance1: t.t1}, nil
}

// AsAbsoluteEuclidean returns the Euclidean tolerance or ErrTypeMismatch.
func (t Tolerance) AsAbsoluteEuclidean() (AbsoluteEuclideanParams, error) {
	if t.kind != KindAbsoluteEuclidean {
		return AbsoluteEuclideanParams{}, mismatchErrorf(opAsAbsoluteEuclidean, t.kind)
	}

	return AbsoluteEuclideanParams{Tolerance: t.t0}, nil
}

// AsChi2Bound returns the chi-squared parameters or ErrTypeMismatch.
func (t Tolerance) AsChi2Bound() (Chi2BoundParams, error) {
	if t.kind != KindChi2Bound {
		return Chi2BoundParams{}, mismatchErrorf(opAsChi2Bound, t.kind)
	}

	return Chi2BoundParams{MaxChi2: t.t0, Weight: t.weight}, nil
}

// ToleranceMode reports whether the policy extends, keeps or shrinks the
// nominal boundary.
//
//	Infinite                          → Extend
//	None                              → None
//	AbsoluteBound, AbsoluteCartesian  → None if both tolerances are 0, else Extend
//	AbsoluteEuclidean, Chi2Bound      → sign of the tolerance / maxChi2
func (t Tolerance) ToleranceMode() Mode {
	switch t.kind {
	case KindInfinite:
		return ModeExtend
	case KindNone:
		return ModeNone
	case KindAbsoluteBound, KindAbsoluteCartesian:
		if t.t0 == 0 && t.t1 == 0 {
			return ModeNone
		}
		return ModeExtend
	case KindAbsoluteEuclidean, KindChi2Bound:
		return modeOf(t.t0)
	default:
		panic(unreachableKind(t.kind))
	}
}

// modeOf classifies a signed scalar threshold. NaN accepts nothing, which is
// stricter than an exact check, so it maps to ModeShrink.
func modeOf(x float64) Mode {
	switch {
	case x == 0:
		return ModeNone
	case x > 0:
		return ModeExtend
	default:
		return ModeShrink
	}
}

// String implements fmt.Stringer for easy debugging.
func (t Tolerance) String() string {
	switch t.kind {
	case KindInfinite, KindNone:
		return t.kind.String()
	case KindAbsoluteBound, KindAbsoluteCartesian:
		return fmt.Sprintf("%s(%g, %g)", t.kind, t.t0, t.t1)
	case KindAbsoluteEuclidean:
		return fmt.Sprintf("%s(%g)", t.kind, t.t0)
	case KindChi2Bound:
		return fmt.Sprintf("%s(max=%g, weight=[%g %g; %g %g])",
			t.kind, t.t0, t.weight[0], t.weight[1], t.weight[2], t.weight[3])
	default:
		panic(unreachableKind(t.kind))
	}
}
