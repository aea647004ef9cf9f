// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linbra/scalar"

// Vector4 is a column of four components (x, y, z, w).
type Vector4[T scalar.Scalar] [4]T

// New4 returns the vector (x, y, z, w).
func New4[T scalar.Scalar](x, y, z, w T) Vector4[T] {
	return Vector4[T]{x, y, z, w}
}

// Truncate drops the last component and returns (x, y, z).
func (v Vector4[T]) Truncate() Vector3[T] {
	return Vector3[T]{v[0], v[1], v[2]}
}
