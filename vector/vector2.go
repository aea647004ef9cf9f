// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linbra/scalar"

// Vector2 is a column of two components (x, y).
type Vector2[T scalar.Scalar] [2]T

// New2 returns the vector (x, y).
func New2[T scalar.Scalar](x, y T) Vector2[T] {
	return Vector2[T]{x, y}
}

// Perp returns v rotated a quarter turn counter-clockwise: (-y, x).
func (v Vector2[T]) Perp() Vector2[T] {
	return Vector2[T]{-v[1], v[0]}
}

// Cross returns the z component of the 3D cross product of (v, 0) and
// (o, 0): the signed area of the parallelogram spanned by v and o.
//
//	v × o = v0·o1 − v1·o0
func (v Vector2[T]) Cross(o Vector2[T]) T {
	return v[0]*o[1] - v[1]*o[0]
}

// Extend returns (x, y, z).
func (v Vector2[T]) Extend(z T) Vector3[T] {
	return Vector3[T]{v[0], v[1], z}
}
