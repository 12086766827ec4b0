// SPDX-License-Identifier: MIT

// Package boundary decides whether a point near a bounded surface region is
// "on or near" that region under a configurable tolerance policy.
//
// 🚀 What is a boundary tolerance?
//
//	Track hypotheses carry uncertainties, so a geometry layer sometimes needs to
//	accept an intersection that lies slightly outside a surface's bounds. A
//	Tolerance captures exactly one way of measuring "slightly":
//	  • Infinite          — no boundary check, everything is accepted
//	  • None              — exact check, the point must already be inside
//	  • AbsoluteBound     — per-axis margin in bound (local surface) units
//	  • AbsoluteCartesian — per-axis margin in Cartesian units (needs a Jacobian)
//	  • AbsoluteEuclidean — margin on the Euclidean length of the residual
//	  • Chi2Bound         — upper bound on the Mahalanobis distance rᵀ·W·r
//
// ✨ Key properties:
//   - Tolerance is a fixed-size value: copy it freely, compare it with ==,
//     share it across goroutines without locks. Evaluation never allocates.
//   - Invalid configurations fail at construction (ErrInvalidArgument), never on
//     the evaluation path.
//   - Every consumer switches exhaustively over Kind.
//
// ⚙️ Usage:
//
//	tol, err := boundary.AbsoluteBound(0.1, 0.1)
//	if err != nil {
//		return err
//	}
//	ok, err := tol.IsTolerated(residual, boundary.NoJacobian())
//
// The residual is produced by the bound shape (the per-axis signed excess of the
// point beyond the closest boundary edge; non-positive means inside). The optional
// Jacobian maps bound-coordinate displacements to Cartesian displacements and is
// required only by Cartesian policies on non-Cartesian surfaces.
package boundary
