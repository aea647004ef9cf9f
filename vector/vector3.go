// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linbra/scalar"

// Vector3 is a column of three components (x, y, z).
type Vector3[T scalar.Scalar] [3]T

// New3 returns the vector (x, y, z).
func New3[T scalar.Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Cross returns the cross product v × o, orthogonal to both operands and
// following the right-hand rule.
//
//	v × o = (v1·o2 − v2·o1, v2·o0 − v0·o2, v0·o1 − v1·o0)
func (v Vector3[T]) Cross(o Vector3[T]) Vector3[T] {
	return Vector3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// Extend returns (x, y, z, w).
func (v Vector3[T]) Extend(w T) Vector4[T] {
	return Vector4[T]{v[0], v[1], v[2], w}
}

// Truncate drops z and returns (x, y).
func (v Vector3[T]) Truncate() Vector2[T] {
	return Vector2[T]{v[0], v[1]}
}
