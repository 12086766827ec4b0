// SPDX-License-Identifier: MIT

package boundary

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// IsTolerated reports whether a point whose bound-frame residual is r passes
// the boundary check.
//
// The residual holds, per bound axis, the signed excess of the point beyond
// the closest boundary edge; non-positive components mean "inside" along that
// axis. jac maps bound displacements to Cartesian ones and is needed only by
// AbsoluteCartesian (and optionally by AbsoluteEuclidean).
//
// Decision per variant:
//  1. Infinite          → always true.
//  2. None              → r.X ≤ 0 and r.Y ≤ 0.
//  3. AbsoluteBound     → |r.X| ≤ t0 and |r.Y| ≤ t1, Jacobian ignored.
//  4. AbsoluteCartesian → c = J·r; |c.X| ≤ t0 and |c.Y| ≤ t1.
//     Without a Jacobian: ErrMissingTransform.
//  5. AbsoluteEuclidean → √(rᵀ·M·r) ≤ t, M from Metric.
//  6. Chi2Bound         → rᵀ·W·r ≤ maxChi2.
//
// All comparisons are inclusive. NaN inputs are never tolerated except by
// Infinite. The call never allocates.
func (t Tolerance) IsTolerated(r r2.Vec, jac Jacobian) (bool, error) {
	switch t.kind {
	case KindInfinite:
		return true, nil
	case KindNone:
		return r.X <= 0 && r.Y <= 0, nil
	case KindAbsoluteBound:
		return math.Abs(r.X) <= t.t0 && math.Abs(r.Y) <= t.t1, nil
	case KindAbsoluteCartesian:
		j, ok := jac.Get()
		if !ok {
			return false, boundaryErrorf(opIsTolerated, ErrMissingTransform)
		}
		c := j.MulVec(r)
		return math.Abs(c.X) <= t.t0 && math.Abs(c.Y) <= t.t1, nil
	case KindAbsoluteEuclidean:
		m, _ := t.metric(jac)
		return euclidean(m.Quad(r)) <= t.t0, nil
	case KindChi2Bound:
		return t.weight.Quad(r) <= t.t0, nil
	default:
		panic(unreachableKind(t.kind))
	}
}

// Distance returns the generalized distance a metric-based variant compares
// against its threshold, so callers can rank candidates by closeness:
//
//	AbsoluteCartesian → |J·r| (Cartesian length); ErrMissingTransform without J
//	AbsoluteEuclidean → √(rᵀ·M·r)
//	Chi2Bound         → rᵀ·W·r (chi-squared, not its root)
//
// Infinite, None and AbsoluteBound have no single distance: ErrTypeMismatch.
func (t Tolerance) Distance(r r2.Vec, jac Jacobian) (float64, error) {
	switch t.kind {
	case KindInfinite, KindNone, KindAbsoluteBound:
		return 0, mismatchErrorf(opDistance, t.kind)
	case KindAbsoluteCartesian:
		j, ok := jac.Get()
		if !ok {
			return 0, boundaryErrorf(opDistance, ErrMissingTransform)
		}
		return r2.Norm(j.MulVec(r)), nil
	case KindAbsoluteEuclidean:
		m, _ := t.metric(jac)
		return euclidean(m.Quad(r)), nil
	case KindChi2Bound:
		return t.weight.Quad(r), nil
	default:
		panic(unreachableKind(t.kind))
	}
}

// euclidean takes the root of a squared length, clamping rounding noise below
// zero. NaN propagates.
func euclidean(d2 float64) float64 {
	if d2 < 0 {
		d2 = 0
	}

	return math.Sqrt(d2)
}
