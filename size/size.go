// SPDX-License-Identifier: MIT
// Package size exposes vectors as extents through width, height and depth.
//
// Purpose:
//   - Size2 and Size3 are read-only views aliasing fixed indices of the same
//     storage: width → 0, height → 1, depth → 2.
//   - New2 and New3 build sizes; Area, Volume and Aspect read any view.
//
// Implementations:
//   - Size2: vector.Vector2, vector.Vector3
//   - Size3: vector.Vector3

package size

import (
	"github.com/katalvlaran/linbra/scalar"
	"github.com/katalvlaran/linbra/vector"
)

// Size2 is a two-dimensional extent.
type Size2[T scalar.Scalar] interface {
	// W returns the width (index 0).
	W() T
	// H returns the height (index 1).
	H() T
}

// Size3 is a three-dimensional extent.
type Size3[T scalar.Scalar] interface {
	Size2[T]
	// D returns the depth (index 2).
	D() T
}

var (
	_ Size2[int] = vector.Vector2[int]{}
	_ Size2[int] = vector.Vector3[int]{}
	_ Size3[int] = vector.Vector3[int]{}
)

// New2 returns the size w × h.
func New2[T scalar.Scalar](w, h T) vector.Vector2[T] { return vector.New2(w, h) }

// New3 returns the size w × h × d.
func New3[T scalar.Scalar](w, h, d T) vector.Vector3[T] { return vector.New3(w, h, d) }

// Area returns W·H in the scalar type; integer overflow wraps.
func Area[T scalar.Scalar](s Size2[T]) T { return s.W() * s.H() }

// Volume returns W·H·D in the scalar type; integer overflow wraps.
func Volume[T scalar.Scalar](s Size3[T]) T { return s.W() * s.H() * s.D() }

// Aspect returns W/H. A zero height yields ±Inf or NaN.
func Aspect[T scalar.Float](s Size2[T]) T { return s.W() / s.H() }

// Fits reports whether inner fits inside outer on both axes.
func Fits[T scalar.Scalar](inner, outer Size2[T]) bool {
	return inner.W() <= outer.W() && inner.H() <= outer.H()
}
