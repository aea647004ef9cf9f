// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Square-only algebra: identity, diagonal, trace, determinant, inverse.
//   - Determinants and inverses use closed-form cofactor/adjugate formulas
//     per size (2×2, 3×3, 4×4); there is no pivoting, so conditioning of
//     near-singular input is the caller's concern.
//
// Singular policy:
//   - InverseN returns ErrSingular (wrapped as "Inverse: matrix: singular
//     matrix") when Det() == 0 exactly, and the zero matrix alongside it.
//     No Inf/NaN is ever produced for singular input.

package matrix

import (
	"github.com/katalvlaran/linbra/scalar"
	"github.com/katalvlaran/linbra/vector"
)

// Matrix2 is the 2×2 matrix.
type Matrix2[T scalar.Scalar] = Matrix2x2[T]

// Matrix3 is the 3×3 matrix.
type Matrix3[T scalar.Scalar] = Matrix3x3[T]

// Matrix4 is the 4×4 matrix.
type Matrix4[T scalar.Scalar] = Matrix4x4[T]

// Identity2 returns the 2×2 identity matrix.
func Identity2[T scalar.Scalar]() Matrix2[T] { return identity[Matrix2[T], T, vector.Vector2[T]]() }

// Identity3 returns the 3×3 identity matrix.
func Identity3[T scalar.Scalar]() Matrix3[T] { return identity[Matrix3[T], T, vector.Vector3[T]]() }

// Identity4 returns the 4×4 identity matrix.
func Identity4[T scalar.Scalar]() Matrix4[T] { return identity[Matrix4[T], T, vector.Vector4[T]]() }

// Diagonal2 returns the 2×2 matrix with v on the main diagonal.
func Diagonal2[T scalar.Scalar](v vector.Vector2[T]) Matrix2[T] {
	return diagonal[Matrix2[T], T](v)
}

// Diagonal3 returns the 3×3 matrix with v on the main diagonal.
func Diagonal3[T scalar.Scalar](v vector.Vector3[T]) Matrix3[T] {
	return diagonal[Matrix3[T], T](v)
}

// Diagonal4 returns the 4×4 matrix with v on the main diagonal.
func Diagonal4[T scalar.Scalar](v vector.Vector4[T]) Matrix4[T] {
	return diagonal[Matrix4[T], T](v)
}

// Outer2 returns u ⊗ v: element (row r, column c) is u_r·v_c.
func Outer2[T scalar.Scalar](u, v vector.Vector2[T]) Matrix2[T] { return outer[Matrix2[T], T](u, v) }

// Outer3 returns u ⊗ v: element (row r, column c) is u_r·v_c.
func Outer3[T scalar.Scalar](u, v vector.Vector3[T]) Matrix3[T] { return outer[Matrix3[T], T](u, v) }

// Outer4 returns u ⊗ v: element (row r, column c) is u_r·v_c.
func Outer4[T scalar.Scalar](u, v vector.Vector4[T]) Matrix4[T] { return outer[Matrix4[T], T](u, v) }

// Diag returns the main diagonal.
func (m Matrix2x2[T]) Diag() vector.Vector2[T] { return diag[T, vector.Vector2[T]](m) }

// Diag returns the main diagonal.
func (m Matrix3x3[T]) Diag() vector.Vector3[T] { return diag[T, vector.Vector3[T]](m) }

// Diag returns the main diagonal.
func (m Matrix4x4[T]) Diag() vector.Vector4[T] { return diag[T, vector.Vector4[T]](m) }

// Trace returns the sum of the main diagonal.
func (m Matrix2x2[T]) Trace() T { return m.Diag().Sum() }

// Trace returns the sum of the main diagonal.
func (m Matrix3x3[T]) Trace() T { return m.Diag().Sum() }

// Trace returns the sum of the main diagonal.
func (m Matrix4x4[T]) Trace() T { return m.Diag().Sum() }

// Det returns the determinant.
//
//	| a b |
//	| c d | = ad − bc
func (m Matrix2x2[T]) Det() T {
	return m[0][0]*m[1][1] - m[1][0]*m[0][1]
}

// Det returns the determinant as the scalar triple product of the columns,
// c0·(c1×c2), which is the cofactor expansion along the first row.
func (m Matrix3x3[T]) Det() T {
	return m[0].Dot(m[1].Cross(m[2]))
}

// Det returns the determinant by cofactor expansion through the twelve 2×2
// minors of the upper and lower column pairs (Laplace expansion).
// Complexity: O(1), 40 multiplications.
func (m Matrix4x4[T]) Det() T {
	mn := minors4(m)

	return mn[0]*mn[11] - mn[1]*mn[10] + mn[2]*mn[9] + mn[3]*mn[8] - mn[4]*mn[7] + mn[5]*mn[6]
}

// minors4 returns the 2×2 minors used by Det and Inverse4. With aij = m[i][j]:
// entries 0..5 pair columns 0 and 1, entries 6..11 pair columns 2 and 3.
func minors4[T scalar.Scalar](m Matrix4x4[T]) [12]T {
	a0, a1, a2, a3 := m[0], m[1], m[2], m[3]

	return [12]T{
		a0[0]*a1[1] - a0[1]*a1[0], // b00
		a0[0]*a1[2] - a0[2]*a1[0], // b01
		a0[0]*a1[3] - a0[3]*a1[0], // b02
		a0[1]*a1[2] - a0[2]*a1[1], // b03
		a0[1]*a1[3] - a0[3]*a1[1], // b04
		a0[2]*a1[3] - a0[3]*a1[2], // b05
		a2[0]*a3[1] - a2[1]*a3[0], // b06
		a2[0]*a3[2] - a2[2]*a3[0], // b07
		a2[0]*a3[3] - a2[3]*a3[0], // b08
		a2[1]*a3[2] - a2[2]*a3[1], // b09
		a2[1]*a3[3] - a2[3]*a3[1], // b10
		a2[2]*a3[3] - a2[3]*a3[2], // b11
	}
}

// Inverse2 returns m⁻¹ = adj(m)/det(m).
//
//	| a b |⁻¹      1    |  d −b |
//	| c d |    = ───── · | −c  a |
//	             ad−bc
//
// Returns ErrSingular when det(m) == 0.
func Inverse2[T scalar.Float](m Matrix2[T]) (Matrix2[T], error) {
	det := m.Det()
	if det == 0 {
		return Matrix2[T]{}, matrixErrorf(opInverse, ErrSingular)
	}

	adj := Matrix2[T]{
		{m[1][1], -m[0][1]},
		{-m[1][0], m[0][0]},
	}

	return adj.Scale(1 / det), nil
}

// Inverse3 returns m⁻¹. Its rows are the pairwise cross products of m's
// columns divided by the determinant (the transposed cofactor matrix):
//
//	m⁻¹ = (1/det) · [c1×c2; c2×c0; c0×c1]
//
// Returns ErrSingular when det(m) == 0.
func Inverse3[T scalar.Float](m Matrix3[T]) (Matrix3[T], error) {
	r0 := m[1].Cross(m[2])
	det := m[0].Dot(r0)
	if det == 0 {
		return Matrix3[T]{}, matrixErrorf(opInverse, ErrSingular)
	}

	adj := FromRows3x3(r0, m[2].Cross(m[0]), m[0].Cross(m[1]))

	return adj.Scale(1 / det), nil
}

// Inverse4 returns m⁻¹ via the adjugate assembled from the twelve 2×2 minors.
// Returns ErrSingular when det(m) == 0.
// Complexity: O(1).
func Inverse4[T scalar.Float](m Matrix4[T]) (Matrix4[T], error) {
	b := minors4(m)
	det := b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
	if det == 0 {
		return Matrix4[T]{}, matrixErrorf(opInverse, ErrSingular)
	}

	a0, a1, a2, a3 := m[0], m[1], m[2], m[3]
	adj := Matrix4[T]{
		{
			a1[1]*b[11] - a1[2]*b[10] + a1[3]*b[9],
			a0[2]*b[10] - a0[1]*b[11] - a0[3]*b[9],
			a3[1]*b[5] - a3[2]*b[4] + a3[3]*b[3],
			a2[2]*b[4] - a2[1]*b[5] - a2[3]*b[3],
		},
		{
			a1[2]*b[8] - a1[0]*b[11] - a1[3]*b[7],
			a0[0]*b[11] - a0[2]*b[8] + a0[3]*b[7],
			a3[2]*b[2] - a3[0]*b[5] - a3[3]*b[1],
			a2[0]*b[5] - a2[2]*b[2] + a2[3]*b[1],
		},
		{
			a1[0]*b[10] - a1[1]*b[8] + a1[3]*b[6],
			a0[1]*b[8] - a0[0]*b[10] - a0[3]*b[6],
			a3[0]*b[4] - a3[1]*b[2] + a3[3]*b[0],
			a2[1]*b[2] - a2[0]*b[4] - a2[3]*b[0],
		},
		{
			a1[1]*b[7] - a1[0]*b[9] - a1[2]*b[6],
			a0[0]*b[9] - a0[1]*b[7] + a0[2]*b[6],
			a3[1]*b[1] - a3[0]*b[3] - a3[2]*b[0],
			a2[0]*b[3] - a2[1]*b[1] + a2[2]*b[0],
		},
	}

	return adj.Scale(1 / det), nil
}
