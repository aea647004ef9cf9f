// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Implement every Vector<T,N> operator exactly once, generically over the
//     Array[T] constraint. Typed methods on Vector2/3/4 delegate here.
//
// Design:
//   - Operands are passed by value; kernels mutate their local copy and
//     return it, so inputs are never modified and nothing escapes to the heap.
//   - Loops run i = 0..N-1 in index order (deterministic accumulation order).
//   - Array[T] has no core type, so callers in generic code name T
//     explicitly: vector.Dot[T](a, b). Concrete callers use the methods.
package vector

import (
	"math"

	"github.com/katalvlaran/linbra/scalar"
)

// Array is the Vector<T,N> family: any array-backed type of length 2, 3 or 4
// whose components are T.
type Array[T scalar.Scalar] interface {
	~[2]T | ~[3]T | ~[4]T
}

// Fill returns a vector of type V with every component set to s.
//
//	Fill(s) = (s, s, …, s)
func Fill[V Array[T], T scalar.Scalar](s T) V {
	var v V
	for i := 0; i < len(v); i++ {
		v[i] = s
	}

	return v
}

// Add returns the component-wise sum a + b.
//
//	(a₁, …, aₙ) + (b₁, …, bₙ) = (a₁+b₁, …, aₙ+bₙ)
//
// Complexity: O(N).
func Add[T scalar.Scalar, V Array[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] += b[i]
	}

	return a
}

// Sub returns the component-wise difference a - b.
//
//	(a₁, …, aₙ) - (b₁, …, bₙ) = (a₁-b₁, …, aₙ-bₙ)
//
// Complexity: O(N).
func Sub[T scalar.Scalar, V Array[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] -= b[i]
	}

	return a
}

// Neg returns -v. Unsigned components wrap around.
func Neg[T scalar.Scalar, V Array[T]](v V) V {
	for i := 0; i < len(v); i++ {
		v[i] = -v[i]
	}

	return v
}

// Scale returns s·v.
//
//	s × (a₁, …, aₙ) = (s·a₁, …, s·aₙ)
//
// Complexity: O(N).
func Scale[T scalar.Scalar, V Array[T]](v V, s T) V {
	for i := 0; i < len(v); i++ {
		v[i] *= s
	}

	return v
}

// Div returns v/s with every component divided by s. A zero divisor follows
// T's semantics: ±Inf/NaN for floats, a run-time panic for integers (the
// same as the / operator).
func Div[T scalar.Scalar, V Array[T]](v V, s T) V {
	for i := 0; i < len(v); i++ {
		v[i] /= s
	}

	return v
}

// Mul returns the component-wise (Hadamard) product.
//
//	(a₁, …, aₙ) ∘ (b₁, …, bₙ) = (a₁·b₁, …, aₙ·bₙ)
func Mul[T scalar.Scalar, V Array[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] *= b[i]
	}

	return a
}

// Dot returns the scalar product Σ aᵢ·bᵢ, accumulated in index order.
// Complexity: O(N).
func Dot[T scalar.Scalar, V Array[T]](a, b V) T {
	var sum T
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}

	return sum
}

// Sum returns Σ vᵢ.
func Sum[T scalar.Scalar, V Array[T]](v V) T {
	var sum T
	for i := 0; i < len(v); i++ {
		sum += v[i]
	}

	return sum
}

// LengthSquared returns v·v in T. Cheaper than Length and exact for integers.
func LengthSquared[T scalar.Scalar, V Array[T]](v V) T {
	return Dot[T](v, v)
}

// Length returns the Euclidean magnitude √(v·v), computed in float64 for
// every scalar type.
func Length[T scalar.Scalar, V Array[T]](v V) float64 {
	var sum float64
	for i := 0; i < len(v); i++ {
		f := float64(v[i])
		sum += f * f
	}

	return math.Sqrt(sum)
}

// Distance returns |a - b| in float64. Components are widened before the
// subtraction, so unsigned operands do not wrap.
func Distance[T scalar.Scalar, V Array[T]](a, b V) float64 {
	var sum float64
	for i := 0; i < len(a); i++ {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return math.Sqrt(sum)
}

// Equal reports exact component-wise equality. NaN never equals itself.
func Equal[T scalar.Scalar, V Array[T]](a, b V) bool {
	return a == b
}

// ApproxEqual reports whether every pair of components is within the
// configured epsilon (scalar.DefaultEpsilon unless scalar.WithEpsilon).
func ApproxEqual[T scalar.Scalar, V Array[T]](a, b V, opts ...scalar.Option) bool {
	for i := 0; i < len(a); i++ {
		if !scalar.ApproxEqual(a[i], b[i], opts...) {
			return false
		}
	}

	return true
}

// Min returns the component-wise minimum.
func Min[T scalar.Scalar, V Array[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] = min(a[i], b[i])
	}

	return a
}

// Max returns the component-wise maximum.
func Max[T scalar.Scalar, V Array[T]](a, b V) V {
	for i := 0; i < len(a); i++ {
		a[i] = max(a[i], b[i])
	}

	return a
}

// Lerp interpolates linearly: a + t·(b - a). t outside [0,1] extrapolates.
func Lerp[T scalar.Float, V Array[T]](a, b V, t T) V {
	for i := 0; i < len(a); i++ {
		a[i] += t * (b[i] - a[i])
	}

	return a
}

// Normalize returns v/|v|, a unit vector with the direction of v.
// Returns ErrZeroLength when |v| == 0; v is never divided by zero.
//
//	v̂ = v / √(v·v)
//
// Complexity: O(N).
func Normalize[T scalar.Float, V Array[T]](v V) (V, error) {
	l := Length[T](v)
	if l == 0 {
		var zero V
		return zero, vectorErrorf(opNormalize, ErrZeroLength)
	}

	return Div[T](v, T(l)), nil
}

// Format renders v as "[v₀, v₁, …]" with scalar.Format for each component.
func Format[T scalar.Scalar, V Array[T]](v V, opts ...scalar.Option) string {
	xs := make([]T, len(v))
	for i := 0; i < len(v); i++ {
		xs[i] = v[i]
	}

	return scalar.Join(xs, opts...)
}
