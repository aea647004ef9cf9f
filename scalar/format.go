// SPDX-License-Identifier: MIT

package scalar

import (
	"strconv"
	"strings"
)

// Format renders x deterministically: integers in base 10, floats in the
// shortest form that round-trips ('g'), or with a fixed number of decimals
// when WithPrecision is given.
// Complexity: O(1).
func Format[T Scalar](x T, opts ...Option) string {
	o := NewOptions(opts...)

	if isFloat(x) {
		bits := 64
		if isFloat32(x) {
			bits = 32
		}
		if o.precision == DefaultPrecision {
			return strconv.FormatFloat(float64(x), 'g', -1, bits)
		}

		return strconv.FormatFloat(float64(x), 'f', o.precision, bits)
	}
	if x < 0 {
		return strconv.FormatInt(int64(x), 10)
	}

	return strconv.FormatUint(uint64(x), 10)
}

// Join formats each element of xs with Format and joins them with ", "
// inside brackets: "[1, 2, 3]".
func Join[T Scalar](xs []T, opts ...Option) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, x := range xs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Format(x, opts...))
	}
	b.WriteByte(']')

	return b.String()
}

// isFloat reports whether T is a floating-point type: only those can hold
// one half without truncating it to zero.
func isFloat[T Scalar](_ T) bool {
	h := 0.5

	return T(h) != 0
}

// isFloat32 reports whether T is float32-backed: 2^-30 added to one is
// lost in float32 but survives in float64.
func isFloat32[T Scalar](_ T) bool {
	tiny := 1.0 / (1 << 30)
	one := T(1)

	return one+T(tiny) == one
}
