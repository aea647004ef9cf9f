// SPDX-License-Identifier: MIT

// Package matrix provides fixed-shape, stack-allocated matrices over any
// numeric scalar type.
//
// What & Why:
//
//	MatrixCxR[T] has C columns and R rows for every C, R in {2, 3, 4}. It is
//	a named array of C column vectors ([C]vector.VectorR[T]), so the shape is
//	part of the type: multiplying incompatible shapes or passing a vector of
//	the wrong length does not compile. Matrix2, Matrix3 and Matrix4 are
//	aliases of the square shapes.
//
// Storage convention:
//
//	Column-major. m[c][r] is the element in column c, row r; m[c] is column
//	c as a vector. NewCxR accepts natural row-major input and reshapes it:
//
//	  m := matrix.New2x2([2][2]float64{
//	      {1, 2}, // row 0
//	      {3, 4}, // row 1
//	  })
//	  m[0] == vector.New2(1.0, 3.0) // column 0
//
// Products:
//
//	MatrixCxR · MatrixKxC = MatrixKxR, spelled m.MulKxC(o). MulVec takes a
//	VectorC and returns a VectorR.
//
// Square algebra:
//
//	Det uses closed-form cofactor expansion per size. InverseN (float scalars
//	only) returns ErrSingular when the determinant is exactly zero; it never
//	panics and never fills the result with Inf or NaN.
//
// Formatting:
//
//	String prints one "[a, b, ...]" line per row, top to bottom.
//
// Implementation:
//
//	Every operator lives once in kernels.go, generic over the column set;
//	matrices_gen.go (internal/cmd/genshapes) binds it to each shape.
package matrix
