// SPDX-License-Identifier: MIT

// Package scalar defines the numeric element types accepted by the vector and
// matrix packages, together with the small numeric policy they share.
//
// What & Why:
//
//	Every container in linbra is generic over a scalar type T. The constraints
//	in this package (Scalar, Integer, Float, ...) are the single place where
//	that set is declared. Operations that need a square root or a
//	well-defined division (normalization, inversion) are constrained to Float,
//	so misuse with integer components is rejected by the compiler.
//
// Numeric policy:
//
//	Arithmetic follows the scalar type's native semantics: IEEE-754 Inf/NaN
//	for floating point, wrap-around and truncation for integers. Nothing in
//	this package intercepts or re-signals those results.
//
//	Approximate comparison and text formatting are configured with functional
//	options (WithEpsilon, WithPrecision); defaults live in options.go.
package scalar
