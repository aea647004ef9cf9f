// SPDX-License-Identifier: MIT

package scalar

import "math"

// Signed is the set of signed integer scalar types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer scalar types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of integer scalar types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point scalar types.
// Operations needing a square root or an exact reciprocal are limited to it.
type Float interface {
	~float32 | ~float64
}

// Scalar is the set of all component types a vector or matrix may hold.
type Scalar interface {
	Integer | Float
}

// Abs returns |x|. For unsigned types it is the identity.
// The most negative signed value wraps to itself, like -x does.
func Abs[T Scalar](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Sqrt returns the square root of x computed in float64 and converted back
// to T. Integer results are truncated; a negative argument yields NaN for
// floating types (and an implementation-defined value for integers).
// Complexity: O(1).
func Sqrt[T Scalar](x T) T {
	return T(math.Sqrt(float64(x)))
}

// Convert returns x as U using Go's conversion rules (truncation toward zero
// for float→integer, wrap-around for narrowing integers).
func Convert[U, T Scalar](x T) U {
	return U(x)
}

// ApproxEqual reports whether |a-b| <= eps, with eps taken from opts
// (DefaultEpsilon when unset). Two NaNs are never equal; two infinities of
// the same sign are.
func ApproxEqual[T Scalar](a, b T, opts ...Option) bool {
	o := NewOptions(opts...)
	// exact hit covers integers and same-signed infinities
	if a == b {
		return true
	}
	// widen before subtracting so unsigned operands cannot wrap
	d := math.Abs(float64(a) - float64(b))

	return d <= o.epsilon
}
