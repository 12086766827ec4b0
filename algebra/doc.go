// SPDX-License-Identifier: MIT

// Package algebra provides the fixed-size 2×2 linear algebra used by the
// boundary-tolerance kernel.
//
// The package provides:
//
//   - Mat2, a row-major 2×2 matrix stored inline as [4]float64. It is a plain
//     value: comparable with ==, copied by assignment, never heap-allocated.
//   - Closed-form kernels: Transpose, Mul, MulVec, Gram (JᵀJ), Quad (vᵀMv),
//     Det, Trace and Inverse.
//   - Validators (ValidateFinite, ValidateSymmetric, ValidatePSD and the
//     composites ValidateWeight / ValidateCovariance) returning the sentinels
//     from errors.go.
//   - Functional options (WithEpsilon, WithValidateNaNInf, ...) that configure
//     the numeric policy of the validators.
//
// Vectors are gonum's r2.Vec, so residuals produced by geometry code can be
// passed through without conversion.
//
// All kernels are O(1) and allocation-free.
package algebra
