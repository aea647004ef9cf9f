// Package linbra is a small-dimension linear algebra toolkit: vectors and
// matrices of 2, 3 or 4 components over any numeric scalar type, with the
// shape checked by the compiler.
//
// 🚀 What is linbra?
//
//	Stack-allocated value types for graphics, games and numeric code:
//		• Vectors: Vector2/3/4[T] with arithmetic, dot & cross products, length, normalization
//		• Matrices: every MatrixCxR[T] for C, R in {2, 3, 4}, column-major
//		• Square algebra: identity, trace, closed-form determinant & inverse
//		• Views: points (x, y, z), sizes (w, h, d), colors (r, g, b, a) over the same storage
//
// ✨ Why choose linbra?
//
//   - Compile-time shapes – adding a Vector2 to a Vector3 does not build
//   - One kernel per operator – generic over every length, no per-size copies
//   - Value semantics – operators never mutate their operands, never allocate
//   - Explicit failures – singular matrices and zero-length normalization return errors
//
// Subpackages:
//
//	scalar/  — numeric constraints, tolerance & formatting options
//	vector/  — Vector2, Vector3, Vector4 and the generic vector kernels
//	matrix/  — Matrix2x2 … Matrix4x4, products, transpose, determinant, inverse
//	point/   — Point2, Point3 views, At2/At3, translation, distance
//	size/    — Size2, Size3 views, area, volume
//	color/   — RGB, RGBA views, hex packing & parsing
//
// Quick example:
//
//	m := matrix.New2x2([2][2]float64{
//		{1, 2},
//		{3, 4},
//	})
//	inv, err := matrix.Inverse2(m) // [-2, 1] / [1.5, -0.5], nil
//
//	go get github.com/katalvlaran/linbra
package linbra
