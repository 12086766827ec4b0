// SPDX-License-Identifier: MIT

package boundary

import "github.com/katalvlaran/lvbound/algebra"

// HasMetric reports whether a generalized distance metric applies to the
// active variant, given whether a Jacobian is available.
//
//	Infinite, None, AbsoluteBound → false (no single metric)
//	AbsoluteCartesian             → hasJacobian
//	AbsoluteEuclidean, Chi2Bound  → true
func (t Tolerance) HasMetric(hasJacobian bool) bool {
	switch t.kind {
	case KindInfinite, KindNone, KindAbsoluteBound:
		return false
	case KindAbsoluteCartesian:
		return hasJacobian
	case KindAbsoluteEuclidean, KindChi2Bound:
		return true
	default:
		panic(unreachableKind(t.kind))
	}
}

// Metric builds the symmetric matrix M such that the generalized squared
// distance of a bound-frame residual r is rᵀ·M·r.
//
//	AbsoluteEuclidean, no Jacobian   → identity
//	AbsoluteEuclidean / Cartesian, J → Jᵀ·J
//	Chi2Bound                        → the stored weight (J is ignored)
//
// Returns ErrTypeMismatch whenever HasMetric(jac.Present()) is false.
func (t Tolerance) Metric(jac Jacobian) (algebra.Mat2, error) {
	m, ok := t.metric(jac)
	if !ok {
		return algebra.Mat2{}, mismatchErrorf(opMetric, t.kind)
	}

	return m, nil
}

// metric is the allocation-free core of Metric shared with the evaluators.
func (t Tolerance) metric(jac Jacobian) (algebra.Mat2, bool) {
	switch t.kind {
	case KindInfinite, KindNone, KindAbsoluteBound:
		return algebra.Mat2{}, false
	case KindAbsoluteCartesian:
		j, ok := jac.Get()
		if !ok {
			return algebra.Mat2{}, false
		}
		return j.Gram(), true
	case KindAbsoluteEuclidean:
		if j, ok := jac.Get(); ok {
			return j.Gram(), true
		}
		return algebra.Identity(), true
	case KindChi2Bound:
		return t.weight, true
	default:
		panic(unreachableKind(t.kind))
	}
}
