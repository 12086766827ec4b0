// Package lvbound is a small, allocation-free kernel for boundary checks on
// detector surfaces: given the residual of a candidate point beyond a
// surface's bounds, decide whether it is tolerated.
//
// 🚀 What is inside?
//
//	A pure-Go library that brings together:
//		• Tolerance policies: Infinite, None, AbsoluteBound, AbsoluteCartesian,
//		  AbsoluteEuclidean, Chi2Bound
//		• Metric construction: identity, JᵀJ or the chi-squared weight
//		• Fixed-size 2×2 algebra with validators for weights and covariances
//
// ✨ Why choose lvbound?
//
//   - Value semantics – policies are comparable, copyable, lock-free to share
//   - Fail fast – invalid configurations are rejected at construction
//   - Pure Go – no cgo, no hidden state
//
// Under the hood, everything is organized under two subpackages:
//
//	algebra/  — Mat2, products, quadratic forms, inverse, validators, options
//	boundary/ — Tolerance, Jacobian, IsTolerated, Metric, Distance
//
// See examples/ for a surface layer consuming the kernel.
//
//	go get github.com/katalvlaran/lvbound
package lvbound
